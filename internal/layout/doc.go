// Package layout models a proposed destination for one sample and keeps its
// path relative to the destination root within a fixed character budget.
//
// Candidates are values: EnforceLimit returns a new Candidate and only ever
// rewrites the stem (and, when space runs out, drops the tag suffix). Folder
// segments and the extension are never touched here.
package layout
