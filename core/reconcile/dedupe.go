package reconcile

import "substation-reconciler/core/table"

// Deduplicate returns a new table with rows sharing a non-null value in the
// identity column reduced to their first occurrence, preserving original
// order. Rows whose identity is null are never considered duplicates of
// each other and all survive. The second return is the number of rows
// removed. The input table is not modified.
func Deduplicate(t *table.Table, identity string) (*table.Table, int) {
	out := table.New(t.Columns()...)
	seen := make(map[string]struct{}, t.Len())
	removed := 0

	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		id := row.Get(identity)
		if id.IsNull() {
			out.Append(row.Clone())
			continue
		}
		if _, dup := seen[id.Str]; dup {
			removed++
			continue
		}
		seen[id.Str] = struct{}{}
		out.Append(row.Clone())
	}

	return out, removed
}
