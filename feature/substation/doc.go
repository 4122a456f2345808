// Package substation wires the reconciliation engine to the substation
// equipment data set: the SUB1/SUB2 CSV exports, the authoritative TLS
// sheet, and the fixed schema that maps one onto the other.
//
// The schema here is configuration data, not computed: the rename table
// covers the rating and kV columns the exports label differently, and the
// authoritative-only list covers the columns the TLS sheet alone carries
// (line numbers and low-side ratings).
//
// Pipeline.Run performs the full batch pass and writes four files to the
// output directory: the merged-and-normalized collection, the same
// collection annotated with per-record match status, the collection with
// authoritative values applied, and the change-log summary report.
package substation
