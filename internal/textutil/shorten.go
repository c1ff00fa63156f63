package textutil

import (
	"regexp"
	"strings"
)

// DefaultFolderLength bounds shortened folder names. It is tighter than the
// file name allowance because folder names nest.
const DefaultFolderLength = 24

// folderPlaceholder stands in for a folder name that normalizes to nothing.
const folderPlaceholder = "x"

var unsafeStemChars = regexp.MustCompile(`[^\p{L}\p{N}+#]`)

// ShortenFolder compresses a folder name and truncates it to maxLen
// characters (DefaultFolderLength when maxLen is not positive).
func ShortenFolder(name string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultFolderLength
	}
	out := StripMedialVowels(DropFiller(Collapse(Fold(name))))
	out = strings.Trim(Truncate(out, maxLen), "_")
	if out == "" {
		return folderPlaceholder
	}
	return out
}

// ShortenStem compresses a file stem. When packHint is non-empty and the stem
// starts with it, that prefix is removed first.
func ShortenStem(stem, packHint string) string {
	out := StripPackPrefix(Collapse(Fold(stem)), packHint)
	out = StripMedialVowels(DropFiller(out))
	out = unsafeStemChars.ReplaceAllString(out, "_")
	out = strings.Trim(underscoreRun.ReplaceAllString(out, "_"), "_")
	if out == "" {
		return Collapse(stem)
	}
	return out
}

// StripPackPrefix removes a leading pack name from a collapsed stem, with or
// without a following underscore. The stem is returned unchanged when the
// prefix would consume all of it.
func StripPackPrefix(stem, packHint string) string {
	hint := Collapse(Fold(packHint))
	if hint == "" || len(stem) < len(hint) {
		return stem
	}
	if !strings.EqualFold(stem[:len(hint)], hint) {
		return stem
	}
	rest := strings.TrimPrefix(stem[len(hint):], "_")
	if rest == "" {
		return stem
	}
	return rest
}

// Pick returns a when cond holds and b otherwise.
func Pick[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
