package classify

import "unicode/utf8"

var (
	// AudioExtensions are always accepted, compared case-insensitively.
	AudioExtensions = []string{".wav", ".aif", ".aiff", ".flac", ".mp3", ".ogg", ".m4a"}
	// NonAudioExtensions are accepted only when non-audio files are requested.
	NonAudioExtensions = []string{".mid", ".midi", ".als", ".adg", ".fxp", ".nki"}
)

// LongestExtension is the length of the longest accepted extension, dot
// included.
func LongestExtension() int {
	longest := 0
	for _, exts := range [][]string{AudioExtensions, NonAudioExtensions} {
		for _, ext := range exts {
			longest = max(longest, utf8.RuneCountInString(ext))
		}
	}
	return longest
}

// LongestCategory is the length of the longest slash-joined category rules or
// the fallbacks can produce. A nil table measures DefaultRules.
func LongestCategory(rules []Rule) int {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	longest := max(utf8.RuneCountInString(LoopsFallback.String()), utf8.RuneCountInString(Unsorted.String()))
	for _, r := range rules {
		longest = max(longest, utf8.RuneCountInString(r.Category.String()))
	}
	return longest
}
