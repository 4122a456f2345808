// Package table provides the in-memory record store used throughout the
// reconciler: an ordered collection of rows whose cells carry an explicit
// null representation.
//
// A Table preserves column order and row insertion order, which makes every
// downstream operation (deduplication, matching, diffing) deterministic.
// Cells are Values: either a string payload or null. A column that is absent
// from a record reads as null, so sources with different column sets can be
// concatenated and compared without special cases.
//
// The package also owns file I/O for the two source formats:
//   - CSV via encoding/csv (empty cells load as null, nulls save as empty)
//   - XLSX via excelize (a named sheet within a workbook)
package table
