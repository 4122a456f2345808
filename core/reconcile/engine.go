package reconcile

import (
	"strings"

	"go.uber.org/zap"

	"substation-reconciler/core/table"
)

// Reconciler drives the full pass over a local table against the
// authoritative table held by its matcher.
type Reconciler struct {
	matcher *Matcher
	keys    Keys
	log     *zap.Logger
}

// NewReconciler creates a reconciler against the authoritative table.
// The logger may be nil, in which case stage counts are not logged.
func NewReconciler(authority *table.Table, keys Keys, log *zap.Logger) *Reconciler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reconciler{
		matcher: NewMatcher(authority, keys),
		keys:    keys,
		log:     log,
	}
}

// Annotate returns a copy of the local table with the ColMismatch column
// set per row: MismatchYes when the matched counterpart differs on at least
// one compared column, MismatchNo when it agrees on all of them, and
// MismatchNotFound when no counterpart exists. Data columns are untouched.
func (r *Reconciler) Annotate(local *table.Table) (*table.Table, Summary) {
	out := local.Clone()
	out.Fill(ColMismatch, table.String(MismatchNo))

	summary := Summary{Rows: out.Len()}
	for i := 0; i < out.Len(); i++ {
		row := out.Row(i)

		authRow, ok := r.matcher.Match(row)
		if !ok {
			row[ColMismatch] = table.String(MismatchNotFound)
			summary.Unmatched++
			continue
		}

		if diffs := Compare(row, authRow, out.Columns()); len(diffs) > 0 {
			row[ColMismatch] = table.String(MismatchYes)
			summary.Mismatched++
		} else {
			summary.Matched++
		}
	}

	r.log.Info("Cross-referenced local records against authoritative source",
		zap.Int("mismatches", summary.Mismatched),
		zap.Int("not_found", summary.Unmatched),
		zap.Int("matching", summary.Matched),
	)

	return out, summary
}

// Apply returns a copy of the annotated table in which every row marked
// MismatchYes has its differing columns overwritten with the authoritative
// values, plus one ChangeEntry per field updated, in pass order. Updated
// rows get a comma-joined list of their changed columns in ColChange.
// Rows marked MismatchNo or MismatchNotFound are left as they were.
func (r *Reconciler) Apply(annotated *table.Table) (*table.Table, []ChangeEntry, Summary) {
	out := annotated.Clone()
	out.AddColumn(ColChange)

	var entries []ChangeEntry
	summary := Summary{Rows: out.Len()}

	for i := 0; i < out.Len(); i++ {
		row := out.Row(i)
		if row.Get(ColMismatch).Str != MismatchYes {
			continue
		}

		authRow, ok := r.matcher.Match(row)
		if !ok {
			continue
		}

		diffs := Compare(row, authRow, out.Columns())
		if len(diffs) == 0 {
			continue
		}

		// Log entries carry the identity as it was before this row's
		// overwrites, even when the identity column itself is updated.
		oid := row.Get(r.keys.Identity)

		updated := make([]string, 0, len(diffs))
		for _, d := range diffs {
			row[d.Column] = d.Authority
			updated = append(updated, d.Column)

			entries = append(entries, ChangeEntry{
				OID:    oid,
				Column: d.Column,
				Old:    d.Local,
				New:    d.Authority,
			})
		}

		row[ColChange] = table.String("Updated: " + strings.Join(updated, ", "))
		summary.UpdatedRows++
		summary.FieldChanges += len(diffs)
	}

	r.log.Info("Applied authoritative values to mismatched records",
		zap.Int("updated_rows", summary.UpdatedRows),
		zap.Int("field_changes", summary.FieldChanges),
	)

	return out, entries, summary
}
