// Package failure defines the error markers shared by the sorting pipeline.
//
// Errors are tagged with one of the exported sentinels through Wrap so the
// CLI can decide on exit behaviour with errors.Is. Recoverable situations
// (name collisions, over-long paths, missing link support) never surface as
// errors; they are handled where they occur and logged as decisions.
package failure
