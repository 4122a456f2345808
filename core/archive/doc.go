// Package archive persists reconciliation run history to a relational
// database through GORM.
//
// Each run is stored with its counters (rows loaded, duplicates removed,
// mismatches, unmatched records, field changes) together with every
// change-log entry the pass produced, keyed by a run UUID. This gives the
// audit trail a queryable home beyond the per-run CSV report.
//
// The archive is optional: the pipeline only writes to it when enabled, and
// archive failures are surfaced but never alter the reconciliation outputs.
// Supported drivers are sqlite (local file, the default) and mysql.
package archive
