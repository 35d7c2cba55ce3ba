// Package convert implements the conversion engine that applies parsed
// directives to a working table.
package convert

import (
	"context"
	"fmt"

	"go.panid.dev/panid/internal/core/domain"
	"go.panid.dev/panid/internal/core/ports"
	"go.trai.ch/zerr"
)

// Engine applies conversion directives in order, pulling mapping tables
// from a MappingSource.
type Engine struct {
	source ports.MappingSource
	log    ports.Logger
}

// New creates a new Engine.
func New(source ports.MappingSource, log ports.Logger) *Engine {
	return &Engine{
		source: source,
		log:    log,
	}
}

// Apply runs the directives strictly in order: directive n+1 observes
// the fully materialized output of directive n, so a directive may
// reference a column an earlier one produced. A failing directive aborts
// the rest of the chain. Neither row order nor column order of the
// result is part of the contract.
func (e *Engine) Apply(ctx context.Context, t domain.Table, directives []domain.Directive) (domain.Table, error) {
	for i, d := range directives {
		e.log.Info(fmt.Sprintf("applying conversion %d of %d", i+1, len(directives)))

		next, err := e.applyOne(ctx, t, d)
		if err != nil {
			return domain.Table{}, zerr.With(err, "directive", describe(d))
		}
		t = next
	}
	return t, nil
}

// applyOne converts one column. Every row is looked up against the
// mapping table: zero matches keep the row with an empty destination,
// one match fills it in, and k matches expand the row into k copies that
// differ only in the destination value.
func (e *Engine) applyOne(ctx context.Context, t domain.Table, d domain.Directive) (domain.Table, error) {
	if !t.HasColumn(d.SourceColumn) {
		return domain.Table{}, zerr.With(domain.ErrUnknownColumn, "column", d.SourceColumn)
	}

	mapping, err := e.source.Resolve(ctx, d.SourceType, d.DestType)
	if err != nil {
		return domain.Table{}, zerr.Wrap(err, domain.ErrUnresolvedMapping.Error())
	}
	idx := mapping.Index(d.SourceType)

	out := domain.Table{Header: convertHeader(t, d), Rows: make([]domain.Row, 0, t.Len())}
	for _, row := range t.Rows {
		targets := idx[row[d.SourceColumn]]
		if len(targets) == 0 {
			out.Append(convertRow(row, d, ""))
			continue
		}
		for _, target := range targets {
			out.Append(convertRow(row, d, target))
		}
	}

	// Expansion against a many-to-many table can mint identical rows;
	// collapse them before the next directive sees the table.
	return out.Dedup(), nil
}

// convertRow copies the row and writes the destination value. The source
// column is dropped first in replace mode, which keeps source and
// destination sharing a name well-defined.
func convertRow(row domain.Row, d domain.Directive, value string) domain.Row {
	out := row.Clone()
	if d.Mode == domain.ModeReplace {
		delete(out, d.SourceColumn)
	}
	out[d.DestColumn] = value
	return out
}

// convertHeader derives the output schema: the destination column is
// added, and in replace mode the source column is dropped. Keeping the
// header explicit lets a table with no data rows keep its shape.
func convertHeader(t domain.Table, d domain.Directive) []string {
	var header []string
	for _, c := range t.Columns() {
		if d.Mode == domain.ModeReplace && c == d.SourceColumn {
			continue
		}
		if c == d.DestColumn {
			continue
		}
		header = append(header, c)
	}
	return append(header, d.DestColumn)
}

func describe(d domain.Directive) string {
	return fmt.Sprintf("%s:%s%s%s:%s", d.SourceColumn, d.SourceType, d.Mode, d.DestColumn, d.DestType)
}
