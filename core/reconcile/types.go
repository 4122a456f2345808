package reconcile

import "substation-reconciler/core/table"

// Bookkeeping columns written by the engine. They are always excluded from
// field comparison.
const (
	// ColMismatch carries the per-row match status.
	ColMismatch = "Mismatch"
	// ColChange carries the human-readable list of updated columns.
	ColChange = "Type of Change"
)

// Match status values written to the ColMismatch column. Exactly one holds
// for every row after Annotate.
const (
	// MismatchNo marks a row whose authoritative counterpart agrees on
	// every compared column.
	MismatchNo = "No"
	// MismatchYes marks a row with at least one differing column.
	MismatchYes = "Yes"
	// MismatchNotFound marks a row with no authoritative counterpart.
	MismatchNotFound = "Not in TLS"
)

// Keys names the columns the matcher uses, in fallback order.
type Keys struct {
	// Identity is the unique identifier column (OID).
	Identity string
	// Station is the station name column.
	Station string
	// Description is the component description column.
	Description string
	// Detail is the additional information column.
	Detail string
}

// Schema is the immutable configuration of the normalizer: how local column
// names map onto authoritative ones, and which columns only the
// authoritative source carries.
type Schema struct {
	// Renames maps a local column name to its authoritative name.
	// Columns not present in the input are skipped, not an error.
	Renames map[string]string
	// AuthorityOnly lists columns the authoritative source has that the
	// local sources lack. Absent ones are seeded with nulls.
	AuthorityOnly []string
}

// Diff is one field-level discrepancy between a local record and its
// authoritative counterpart.
type Diff struct {
	Column    string
	Local     table.Value
	Authority table.Value
}

// ChangeEntry records a single field overwrite performed by Apply.
// Entries are immutable once created and collected in pass order.
type ChangeEntry struct {
	// OID is the identity value of the updated record.
	OID table.Value
	// Column is the updated column name.
	Column string
	// Old is the local value before the overwrite.
	Old table.Value
	// New is the authoritative value written over it.
	New table.Value
}

// Summary aggregates the counts of a reconciliation stage.
type Summary struct {
	// Rows is the number of local rows processed.
	Rows int
	// Matched counts rows whose counterpart agrees on every column.
	Matched int
	// Mismatched counts rows with at least one differing column.
	Mismatched int
	// Unmatched counts rows with no authoritative counterpart.
	Unmatched int
	// UpdatedRows counts rows Apply actually rewrote.
	UpdatedRows int
	// FieldChanges counts individual field overwrites across all rows.
	FieldChanges int
}
