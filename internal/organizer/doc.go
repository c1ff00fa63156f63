// Package organizer drives an organize run over a source tree.
//
// Scan captures a sorted, static list of accepted sample files. Run then
// takes each file through classification, tag extraction, candidate
// construction and collision-safe placement, one file at a time, reporting a
// line per file and a summary. Live runs hold an exclusive lock on the
// destination root and record every placement in the ledger; dry runs place
// into an in-memory preview of the destination and touch nothing.
package organizer
