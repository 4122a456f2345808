package reconcile

import "substation-reconciler/core/table"

// Matcher resolves a local record to its authoritative counterpart using a
// staged fallback key sequence. The authoritative table is captured at
// construction and never mutated.
type Matcher struct {
	authority *table.Table
	keys      Keys
}

// NewMatcher creates a matcher over the authoritative table.
func NewMatcher(authority *table.Table, keys Keys) *Matcher {
	return &Matcher{authority: authority, keys: keys}
}

// Match returns the single best-matching authoritative record, or false if
// none exists. The stages, first success wins:
//
//  1. Exact match on the identity column, when the local identity is
//     non-null. If the identity misses, the natural-key stages below are
//     still attempted (an identity unknown to the authoritative source may
//     still describe equipment it tracks under a different identifier).
//  2. Filter the authoritative rows by exact station name equality.
//  3. Filter that set by exact component description equality.
//  4. When the local detail column is non-null, sub-filter by it; a
//     non-empty sub-filter wins with its first row.
//  5. Otherwise the first row of the description-filtered set wins.
//
// Null values never match anything, including other nulls, so a record with
// a null station name can only match through its identity. Every stage takes
// the first authoritative row in source order, which makes Match
// deterministic for a fixed authoritative table.
func (m *Matcher) Match(rec table.Record) (table.Record, bool) {
	if id := rec.Get(m.keys.Identity); !id.IsNull() {
		for i := 0; i < m.authority.Len(); i++ {
			candidate := m.authority.Row(i)
			if keyEqual(id, candidate.Get(m.keys.Identity)) {
				return candidate, true
			}
		}
	}

	station := rec.Get(m.keys.Station)
	description := rec.Get(m.keys.Description)
	detail := rec.Get(m.keys.Detail)

	var descMatch table.Record
	for i := 0; i < m.authority.Len(); i++ {
		candidate := m.authority.Row(i)
		if !keyEqual(station, candidate.Get(m.keys.Station)) {
			continue
		}
		if !keyEqual(description, candidate.Get(m.keys.Description)) {
			continue
		}
		if descMatch == nil {
			descMatch = candidate
		}
		if !detail.IsNull() && keyEqual(detail, candidate.Get(m.keys.Detail)) {
			return candidate, true
		}
	}

	if descMatch != nil {
		return descMatch, true
	}
	return nil, false
}

// keyEqual is the matching equality: both sides must be non-null and carry
// the same payload. Unlike the comparator, a null key matches nothing.
func keyEqual(a, b table.Value) bool {
	return a.Valid && b.Valid && a.Str == b.Str
}
