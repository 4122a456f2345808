// Package storage publishes reconciliation reports to S3-compatible
// object storage.
//
// The Client interface wraps the minio operations the publisher needs,
// keeping tests independent of a live endpoint (see the mocks package).
// Publish uploads the output files of a run under a per-run prefix so
// successive runs never overwrite each other.
//
// Publishing is optional and flag-gated: a batch run is complete once its
// local output files are written, whether or not they are also uploaded.
package storage
