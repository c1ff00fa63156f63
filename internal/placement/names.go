package placement

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path"
	"strconv"
	"strings"

	"samplesort/internal/layout"
	"samplesort/internal/textutil"
)

// DisambiguatorLength is the number of hex characters used to tell colliding
// names apart.
const DisambiguatorLength = layout.DigestLength

// maxCounterAttempts bounds the last-resort numbered names.
const maxCounterAttempts = 10000

// Disambiguator returns the first DisambiguatorLength hex characters of the
// SHA-256 digest of name.
func Disambiguator(name string) string {
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:])[:DisambiguatorLength]
}

// ResolveName picks the final file name for candidate within allowed
// characters. original is the name before any shortening and seeds the
// disambiguator. taken reports whether a name is unavailable.
func ResolveName(candidate, original string, allowed int, taken func(string) bool) (string, error) {
	ext := path.Ext(candidate)
	base := strings.TrimSuffix(candidate, ext)
	if base != "" && textutil.Len(candidate) <= allowed && !taken(candidate) {
		return candidate, nil
	}

	digest := Disambiguator(original)
	suffix := "_" + digest
	room := allowed - textutil.Len(ext) - textutil.Len(suffix)

	name := withSuffix(base, room, suffix, ext)
	if name == "" {
		name = digestOnly(digest, allowed, ext)
	}
	if !taken(name) {
		return name, nil
	}

	// The disambiguated name itself collided: retry with shorter prefixes of
	// the original name.
	originalBase := strings.TrimSuffix(original, path.Ext(original))
	limit := min(room, textutil.Len(originalBase)) - 1
	for n := limit; n >= 1; n-- {
		name = withSuffix(originalBase, n, suffix, ext)
		if name != "" && !taken(name) {
			return name, nil
		}
	}

	for i := 1; i <= maxCounterAttempts; i++ {
		name = digestOnly(digest+strconv.Itoa(i), allowed, ext)
		if !taken(name) {
			return name, nil
		}
	}
	return "", fmt.Errorf("no unique name left for %q", candidate)
}

// withSuffix truncates base to room characters and appends suffix and ext.
// It returns "" when room leaves no space for the base.
func withSuffix(base string, room int, suffix, ext string) string {
	if room < 1 {
		return ""
	}
	prefix := strings.TrimRight(textutil.Truncate(base, room), " _-.")
	if prefix == "" {
		return ""
	}
	return prefix + suffix + ext
}

// digestOnly builds a name from the digest alone. The digest keeps its right
// hand side when it must be cut, and the extension is dropped only when not
// even one digest character fits beside it.
func digestOnly(digest string, allowed int, ext string) string {
	avail := allowed - textutil.Len(ext)
	if avail < 1 {
		ext = ""
		avail = max(allowed, 1)
	}
	if len(digest) > avail {
		if len(digest) > DisambiguatorLength {
			digest = digest[len(digest)-avail:]
		} else {
			digest = digest[:avail]
		}
	}
	return digest + ext
}
