package domain

import (
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Row maps column names to values. A missing or unresolved ID is an
// empty value, never an absent row.
type Row map[string]string

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is tabular data flowing through a conversion pipeline. Rows are
// ordered; columns are identified by name only, never by position. The
// schema lives in Header so it survives a table with no data rows.
type Table struct {
	Header []string
	Rows   []Row
}

// Columns returns the union of the header and all row columns, sorted
// by name.
func (t Table) Columns() []string {
	seen := make(map[string]struct{})
	var cols []string
	add := func(k string) {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			cols = append(cols, k)
		}
	}
	for _, k := range t.Header {
		add(k)
	}
	for _, r := range t.Rows {
		for k := range r {
			add(k)
		}
	}
	slices.Sort(cols)
	return cols
}

// HasColumn reports whether the header or any row carries the given
// column.
func (t Table) HasColumn(name string) bool {
	if slices.Contains(t.Header, name) {
		return true
	}
	for _, r := range t.Rows {
		if _, ok := r[name]; ok {
			return true
		}
	}
	return false
}

// Append adds rows to the end of the table.
func (t *Table) Append(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Dedup returns a table with exact duplicate rows removed, keeping the
// first occurrence of each.
func (t Table) Dedup() Table {
	seen := make(map[uint64]struct{}, len(t.Rows))
	out := Table{Header: t.Header, Rows: make([]Row, 0, len(t.Rows))}
	for _, r := range t.Rows {
		fp := fingerprint(r)
		if _, ok := seen[fp]; ok {
			continue
		}
		seen[fp] = struct{}{}
		out.Append(r)
	}
	return out
}

// fingerprint hashes a row over its sorted column/value sequence.
// Length prefixes keep adjacent fields from aliasing each other.
func fingerprint(r Row) uint64 {
	cols := make([]string, 0, len(r))
	for k := range r {
		cols = append(cols, k)
	}
	slices.Sort(cols)

	h := xxhash.New()
	for _, c := range cols {
		v := r[c]
		_, _ = h.WriteString(strconv.Itoa(len(c)))
		_, _ = h.WriteString(c)
		_, _ = h.WriteString(strconv.Itoa(len(v)))
		_, _ = h.WriteString(v)
	}
	return h.Sum64()
}
