// Package main hosts the samplesort CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration, applies flag overrides and
// hands an organize run to internal/organizer. Supporting commands preview
// classification without touching disk, list ledger history, run the
// preflight checks and scaffold configuration files.
//
// Keep this package lean: new behaviour belongs in the internal packages and
// is surfaced here through flags or dedicated commands.
package main
