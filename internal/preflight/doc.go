// Package preflight checks the filesystem before an organize run touches it.
//
// The source must be a readable directory; a missing source is reported as
// failure.ErrMissingSource so the CLI can exit before any work starts. For
// live runs the destination (or its nearest existing ancestor) and, when the
// ledger is enabled, the state directory must be writable.
package preflight
