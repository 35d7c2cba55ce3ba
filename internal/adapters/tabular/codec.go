// Package tabular reads and writes working tables as CSV with a header
// row.
package tabular

import (
	"encoding/csv"
	"io"

	"go.panid.dev/panid/internal/core/domain"
	"go.trai.ch/zerr"
)

// Codec implements ports.TableCodec using RFC 4180 CSV.
type Codec struct{}

// New creates a new Codec.
func New() *Codec {
	return &Codec{}
}

// Read parses CSV input. The first record is the header; rows shorter
// than the header pad missing cells with empty values.
func (c *Codec) Read(r io.Reader) (domain.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return domain.Table{}, zerr.Wrap(err, domain.ErrTableReadFailed.Error())
	}
	if len(records) == 0 {
		return domain.Table{}, zerr.With(domain.ErrTableReadFailed, "cause", "missing header row")
	}

	header := records[0]
	t := domain.Table{Header: header, Rows: make([]domain.Row, 0, len(records)-1)}
	for _, rec := range records[1:] {
		row := make(domain.Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		t.Append(row)
	}
	return t, nil
}

// Write serializes the table with columns in Table.Columns() order.
// Callers identify columns by name; output column order carries no
// meaning.
func (c *Codec) Write(w io.Writer, t domain.Table) error {
	cols := t.Columns()
	writer := csv.NewWriter(w)

	if err := writer.Write(cols); err != nil {
		return zerr.Wrap(err, domain.ErrTableWriteFailed.Error())
	}
	for _, row := range t.Rows {
		rec := make([]string, len(cols))
		for i, col := range cols {
			rec[i] = row[col]
		}
		if err := writer.Write(rec); err != nil {
			return zerr.Wrap(err, domain.ErrTableWriteFailed.Error())
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return zerr.Wrap(err, domain.ErrTableWriteFailed.Error())
	}
	return nil
}
