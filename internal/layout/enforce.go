package layout

import (
	"strings"

	"samplesort/internal/textutil"
)

// EnforceLimit shortens the candidate's stem until its relative path fits
// budget. The pack hint strips redundant pack-name prefixes from the stem.
// When the parent path leaves no room the returned stem may be empty; the
// placer is expected to fall back to a hash-derived name in that case.
func EnforceLimit(c Candidate, budget int, packHint string) Candidate {
	if budget <= 0 {
		budget = DefaultBudget
	}
	if c.Fits(budget) {
		return c
	}
	allowed := AllowedNameLength(c.ParentRel(), budget)

	shortened := textutil.ShortenStem(c.Stem, packHint)
	out := c
	out.Stem = shortened
	if textutil.Len(out.Name()) <= allowed {
		return out
	}

	// Without the tag there is more room for the stem itself.
	out.Tag = compactTag(c.Tag)
	if textutil.Len(out.Name()) > allowed {
		out.Tag = ""
	}
	room := allowed - textutil.Len(out.Tag) - textutil.Len(out.Ext)
	out.Stem = strings.TrimRight(textutil.Truncate(shortened, room), "_")
	return out
}

// compactTag turns " [120bpm Cm]" into "_120bpm_Cm" for tight names.
func compactTag(tag string) string {
	inner := strings.Trim(strings.TrimSpace(tag), "[]")
	if inner == "" {
		return ""
	}
	return "_" + strings.Join(strings.Fields(inner), "_")
}
