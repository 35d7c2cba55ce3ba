package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.panid.dev/panid/internal/core/domain"
)

func TestTable_Columns(t *testing.T) {
	t.Parallel()

	tbl := domain.Table{Rows: []domain.Row{
		{"b": "1", "a": "2"},
		{"c": "3"},
	}}

	assert.Equal(t, []string{"a", "b", "c"}, tbl.Columns())
	assert.Empty(t, domain.Table{}.Columns())
}

func TestTable_Columns_HeaderOnly(t *testing.T) {
	t.Parallel()

	tbl := domain.Table{Header: []string{"b", "a"}}
	assert.Equal(t, []string{"a", "b"}, tbl.Columns())
}

func TestTable_HasColumn(t *testing.T) {
	t.Parallel()

	tbl := domain.Table{Rows: []domain.Row{
		{"a": "1"},
		{"b": ""},
	}}

	assert.True(t, tbl.HasColumn("a"))
	assert.True(t, tbl.HasColumn("b"), "empty value still counts as present")
	assert.False(t, tbl.HasColumn("c"))

	empty := domain.Table{Header: []string{"a"}}
	assert.True(t, empty.HasColumn("a"), "header carries the schema without rows")
	assert.False(t, empty.HasColumn("b"))
}

func TestTable_Dedup_KeepsHeader(t *testing.T) {
	t.Parallel()

	tbl := domain.Table{Header: []string{"a"}}
	assert.Equal(t, []string{"a"}, tbl.Dedup().Header)
}

func TestTable_Dedup(t *testing.T) {
	t.Parallel()

	tbl := domain.Table{Rows: []domain.Row{
		{"a": "1", "b": "x"},
		{"a": "2", "b": "x"},
		{"a": "1", "b": "x"},
		{"a": "1"},
	}}

	got := tbl.Dedup()
	assert.Equal(t, 3, got.Len())
	assert.Equal(t, domain.Row{"a": "1", "b": "x"}, got.Rows[0])
	assert.Equal(t, domain.Row{"a": "2", "b": "x"}, got.Rows[1])
	assert.Equal(t, domain.Row{"a": "1"}, got.Rows[2])
}

func TestRow_Clone(t *testing.T) {
	t.Parallel()

	orig := domain.Row{"a": "1"}
	clone := orig.Clone()
	clone["a"] = "2"
	clone["b"] = "3"

	assert.Equal(t, domain.Row{"a": "1"}, orig)
}
