package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// separatorRun matches whitespace, hyphen, period and underscore runs.
var separatorRun = regexp.MustCompile(`[\s\-._]+`)

var underscoreRun = regexp.MustCompile(`_{2,}`)

// versionMarker matches tokens such as v2, v10, ver3 and version.
var versionMarker = regexp.MustCompile(`^(v|ver|version)\d*$`)

// fillerTokens is the fixed filler vocabulary, lower-case.
var fillerTokens = map[string]struct{}{
	// articles and joiners
	"a": {}, "an": {}, "the": {}, "of": {}, "and": {}, "with": {},
	// generic sample words
	"loop": {}, "loops": {}, "sample": {}, "samples": {}, "sound": {}, "sounds": {},
	"mix": {}, "take": {}, "stem": {}, "stems": {}, "one": {}, "shot": {}, "oneshot": {},
	// version and edit markers
	"final": {}, "edit": {}, "new": {}, "copy": {}, "master": {},
	// vendor and marketplace boilerplate
	"splice": {}, "pack": {}, "vol": {}, "volume": {}, "free": {}, "demo": {},
	"royalty": {}, "prod": {}, "presents": {}, "official": {}, "kit": {},
}

// Collapse replaces every run of whitespace, hyphen, period or underscore with a
// single underscore and trims leading and trailing underscores.
func Collapse(value string) string {
	return strings.Trim(separatorRun.ReplaceAllString(value, "_"), "_")
}

// IsFiller reports whether token belongs to the filler vocabulary.
func IsFiller(token string) bool {
	lowered := strings.ToLower(token)
	if _, ok := fillerTokens[lowered]; ok {
		return true
	}
	return versionMarker.MatchString(lowered)
}

// DropFiller removes filler tokens from an underscore-delimited string. When
// every token is filler the input is returned unchanged.
func DropFiller(value string) string {
	tokens := strings.Split(value, "_")
	kept := tokens[:0:0]
	for _, token := range tokens {
		if token == "" || IsFiller(token) {
			continue
		}
		kept = append(kept, token)
	}
	if len(kept) == 0 {
		return value
	}
	return strings.Join(kept, "_")
}

// StripMedialVowels removes a, e, i, o, u and y from the inside of every
// underscore-delimited token, keeping each token's first and last character.
func StripMedialVowels(value string) string {
	tokens := strings.Split(value, "_")
	for i, token := range tokens {
		tokens[i] = stripTokenVowels(token)
	}
	return underscoreRun.ReplaceAllString(strings.Join(tokens, "_"), "_")
}

func stripTokenVowels(token string) string {
	runes := []rune(token)
	if len(runes) <= 2 {
		return token
	}
	var b strings.Builder
	b.Grow(len(token))
	last := len(runes) - 1
	for i, r := range runes {
		if i != 0 && i != last && isVowel(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'A', 'E', 'I', 'O', 'U', 'Y':
		return true
	}
	return false
}

// Truncate returns at most limit runes of value. A non-positive limit yields "".
func Truncate(value string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	return string([]rune(value)[:limit])
}

// Len returns the length of value in characters.
func Len(value string) int {
	return utf8.RuneCountInString(value)
}
