// Package ledger persists the history of organize runs in SQLite.
//
// Every live run gets a row in runs and one row in placements per sample,
// recording where the sample went and how. The history command reads it
// back. Dry runs are never recorded.
package ledger
