package domain

import "time"

// Pair is one association between two identifier values, as reported by
// the remote annotation source.
type Pair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Mapping is a stored relation between two identifier types. Neither
// side is unique: one-to-many, many-to-one and many-to-many relations
// are all valid. Absence of a pair means unknown, not excluded.
type Mapping struct {
	TypeA IDType `json:"type_a"`
	TypeB IDType `json:"type_b"`
	Pairs []Pair `json:"pairs"`
}

// Connects reports whether the mapping relates the two given types, in
// either orientation.
func (m *Mapping) Connects(a, b IDType) bool {
	return (m.TypeA == a && m.TypeB == b) || (m.TypeA == b && m.TypeB == a)
}

// Index builds a value lookup reading the pairs in the direction that
// starts at from. Pairs with an empty side are skipped, and repeated
// targets for the same source value collapse to one, preserving
// first-seen order. Returns nil when from is not one of the mapping's
// types.
func (m *Mapping) Index(from IDType) map[string][]string {
	var flip bool
	switch from {
	case m.TypeA:
		flip = false
	case m.TypeB:
		flip = true
	default:
		return nil
	}

	idx := make(map[string][]string)
	seen := make(map[Pair]struct{}, len(m.Pairs))
	for _, p := range m.Pairs {
		src, dst := p.A, p.B
		if flip {
			src, dst = dst, src
		}
		if src == "" || dst == "" {
			continue
		}
		key := Pair{A: src, B: dst}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		idx[src] = append(idx[src], dst)
	}
	return idx
}

// CachedMapping is a mapping plus the time it was last fetched from the
// remote source.
type CachedMapping struct {
	Mapping   Mapping   `json:"mapping"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Fresh reports whether the entry is younger than the retention window.
func (c *CachedMapping) Fresh(now time.Time, retention time.Duration) bool {
	return now.Sub(c.FetchedAt) < retention
}
