package layout

import (
	"path"
	"path/filepath"
	"strings"

	"samplesort/internal/classify"
	"samplesort/internal/textutil"
)

// DefaultBudget is the maximum length, in characters, of a destination path
// relative to the destination root.
const DefaultBudget = 128

// Candidate is a proposed destination for one sample.
type Candidate struct {
	Root     string
	Category classify.CategoryPath
	// Folder is an optional extra segment below the category (the pack folder).
	Folder string
	Stem   string
	Tag    string
	Ext    string
}

// Segments returns the folder segments below the root.
func (c Candidate) Segments() []string {
	segments := make([]string, 0, len(c.Category)+1)
	segments = append(segments, c.Category...)
	if c.Folder != "" {
		segments = append(segments, c.Folder)
	}
	return segments
}

// Name is the file name: stem, tag suffix and extension.
func (c Candidate) Name() string {
	return c.Stem + c.Tag + c.Ext
}

// ParentRel is the directory relative to the root, slash separated.
func (c Candidate) ParentRel() string {
	return path.Join(c.Segments()...)
}

// Rel is the full path relative to the root, slash separated.
func (c Candidate) Rel() string {
	return path.Join(c.ParentRel(), c.Name())
}

// Dir is the absolute destination directory.
func (c Candidate) Dir() string {
	return filepath.Join(append([]string{c.Root}, c.Segments()...)...)
}

// Path is the absolute destination path.
func (c Candidate) Path() string {
	return filepath.Join(c.Dir(), c.Name())
}

// WithName returns a copy whose stem, tag and extension are replaced by name.
// The extension of name is kept as Ext.
func (c Candidate) WithName(name string) Candidate {
	ext := path.Ext(name)
	if ext == name {
		ext = ""
	}
	c.Stem = strings.TrimSuffix(name, ext)
	c.Tag = ""
	c.Ext = ext
	return c
}

// AllowedNameLength is the longest file name that keeps parentRel/name within
// budget. The result can be zero or negative when the parent alone is too long.
func AllowedNameLength(parentRel string, budget int) int {
	if budget <= 0 {
		budget = DefaultBudget
	}
	if parentRel == "" || parentRel == "." {
		return budget
	}
	return budget - textutil.Len(parentRel) - 1
}

// Fits reports whether the candidate's relative path is within budget.
func (c Candidate) Fits(budget int) bool {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return textutil.Len(c.Rel()) <= budget
}

// DigestLength is the number of hex digest characters that name a file when
// nothing of its own name fits.
const DigestLength = 7

// MinBudget is the smallest budget that still leaves every category (and a
// pack folder of up to folderLength characters, when positive) room for a
// digest-only name with the longest accepted extension.
func MinBudget(folderLength int) int {
	parent := classify.LongestCategory(nil)
	if folderLength > 0 {
		parent += 1 + folderLength
	}
	return parent + 1 + DigestLength + classify.LongestExtension()
}
