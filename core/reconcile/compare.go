package reconcile

import "substation-reconciler/core/table"

// Compare returns the field-level discrepancies between a local record and
// its matched authoritative counterpart, in the given column order. The
// bookkeeping columns (ColMismatch, ColChange) are always skipped.
//
// Equality policy: two nulls agree; a null against anything non-null is a
// recorded difference, even when the non-null side is the empty string;
// two non-null values are compared as trimmed strings with no numeric
// coercion, so "1" and "1.0" differ.
func Compare(local, authority table.Record, columns []string) []Diff {
	var diffs []Diff

	for _, col := range columns {
		if col == ColMismatch || col == ColChange {
			continue
		}

		localVal := local.Get(col)
		authVal := authority.Get(col)

		if localVal.IsNull() && authVal.IsNull() {
			continue
		}
		if localVal.EqualTrimmed(authVal) {
			continue
		}

		diffs = append(diffs, Diff{Column: col, Local: localVal, Authority: authVal})
	}

	return diffs
}
