package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Mode controls whether a conversion keeps or replaces its source column.
type Mode string

const (
	// ModePreserve keeps the source column and adds the destination as a new column.
	ModePreserve Mode = "+"
	// ModeReplace drops the source column; the destination takes its place under the new name.
	ModeReplace Mode = ">"
)

// Directive is a single parsed conversion instruction. Directives are
// constructed by ParseDirective and consumed in order by the conversion
// engine; they are never persisted.
type Directive struct {
	SourceColumn string
	SourceType   IDType
	DestColumn   string
	DestType     IDType
	Mode         Mode
}

// ParseDirective parses a conversion string of the form
//
//	<column>:<type><symbol><column>:<type>
//
// where symbol is "+" (preserve the source column) or ">" (replace it).
// Column names are split from type tags at the first colon and must be
// non-empty; type tags must be in the identifier type registry. Exactly
// one symbol may appear in the whole string. When the destination column
// name already exists in the table it is overwritten.
func ParseDirective(raw string) (Directive, error) {
	if strings.Count(raw, string(ModePreserve))+strings.Count(raw, string(ModeReplace)) != 1 {
		return Directive{}, zerr.With(ErrInvalidConversion, "conversion", raw)
	}

	idx := strings.IndexAny(raw, "+>")
	mode := ModePreserve
	if raw[idx] == '>' {
		mode = ModeReplace
	}

	srcCol, srcType, err := parseOperand(raw[:idx], raw)
	if err != nil {
		return Directive{}, err
	}
	destCol, destType, err := parseOperand(raw[idx+1:], raw)
	if err != nil {
		return Directive{}, err
	}

	return Directive{
		SourceColumn: srcCol,
		SourceType:   srcType,
		DestColumn:   destCol,
		DestType:     destType,
		Mode:         mode,
	}, nil
}

func parseOperand(s, raw string) (string, IDType, error) {
	col, tag, ok := strings.Cut(s, ":")
	if !ok || col == "" || tag == "" {
		return "", "", zerr.With(ErrInvalidConversion, "conversion", raw)
	}
	t, err := ParseIDType(tag)
	if err != nil {
		return "", "", zerr.With(err, "conversion", raw)
	}
	return col, t, nil
}

// ParseDirectives parses each conversion string independently, preserving
// the given order. Directives apply in that literal order, so a directive
// may reference a column produced by an earlier one. Parsing fails on the
// first invalid string.
func ParseDirectives(raw []string) ([]Directive, error) {
	if len(raw) == 0 {
		return nil, ErrNoConversions
	}
	out := make([]Directive, 0, len(raw))
	for _, r := range raw {
		d, err := ParseDirective(r)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
