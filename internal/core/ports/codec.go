package ports

import (
	"io"

	"go.panid.dev/panid/internal/core/domain"
)

// TableCodec reads and writes working tables at the CLI boundary.
type TableCodec interface {
	// Read parses a table with a header row.
	Read(r io.Reader) (domain.Table, error)

	// Write serializes the table with columns in domain.Table.Columns()
	// order. Missing values are written as empty fields.
	Write(w io.Writer, t domain.Table) error
}
