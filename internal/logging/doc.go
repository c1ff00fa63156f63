// Package logging assembles the structured slog loggers used by samplesort.
//
// It owns the console and JSON handlers, level and output plumbing, and the
// context helpers that stamp every line of a run with its run id. A no-op
// logger is provided for tests and for wiring code that cannot fail.
package logging
