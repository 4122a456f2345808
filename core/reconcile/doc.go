// Package reconcile implements the matching-and-reconciliation engine that
// aligns a merged local record collection with an authoritative table.
//
// The engine is built from four pieces:
//
//  1. Deduplicate: drops repeated identity values from the merged local
//     collection, keeping the first occurrence.
//
//  2. Normalizer: renames local columns to the authoritative names and seeds
//     columns only the authoritative source carries, so both sides expose the
//     same column superset before any comparison.
//
//  3. Matcher: finds the authoritative counterpart of a local record using a
//     deterministic fallback key sequence (identity first, then station name,
//     component description, and additional information).
//
//  4. Reconciler: drives the full pass in two stages mirroring the batch
//     pipeline. Annotate marks every row's match status without touching data
//     columns; Apply overwrites mismatched fields with authoritative values
//     and emits one change-log entry per field updated.
//
// The authoritative table is read-only throughout: no engine stage ever
// mutates it. Both stages return new tables rather than mutating their input,
// so intermediate states (merged, annotated, updated) can all be persisted.
//
// An unmatched record is a normal terminal state, never an error. When more
// than one authoritative row satisfies a filter stage, the first in source
// order wins.
package reconcile
