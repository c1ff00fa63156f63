package tagging

import (
	"regexp"
	"strconv"
	"strings"
)

// Tag holds the metadata recovered from a file name. A zero Tempo or empty Key
// means the marker was absent.
type Tag struct {
	Tempo int
	Key   string
}

var (
	tempoPattern = regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}])(\d{2,3})(\s*bpm)(?:[^\p{L}\p{N}]|$)`)
	keyPattern   = regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}#])([a-g])([#b])?(?:[\s_-]?(major|maj|minor|min|m))?(?:[^\p{L}\p{N}#]|$)`)
)

const separators = " _-."

// span is a half-open byte range of a marker inside a name.
type span struct{ start, end int }

// Extract scans filename for the first tempo marker ("120bpm", "90 BPM") and
// the first key marker ("Cm", "F# minor", "Bb maj", "A").
func Extract(filename string) Tag {
	tempo, _ := extractTempo(filename)
	key, _ := extractKey(filename)
	return Tag{Tempo: tempo, Key: key}
}

// Parse extracts the tag from stem and returns the stem with the matched
// markers removed, so "Amen Break 172bpm" becomes "Amen Break" and the tempo
// is carried by the rendered tag instead. Each marker takes the separators
// before it (or, at the start, after it) along. A stem made only of markers
// is returned unchanged.
func Parse(stem string) (Tag, string) {
	tempo, tempoAt := extractTempo(stem)
	key, keyAt := extractKey(stem)
	tag := Tag{Tempo: tempo, Key: key}

	var cuts []span
	if tempo > 0 {
		cuts = append(cuts, tempoAt)
	}
	if key != "" {
		cuts = append(cuts, keyAt)
	}
	if len(cuts) == 2 && cuts[1].start < cuts[0].start {
		cuts[0], cuts[1] = cuts[1], cuts[0]
	}

	var b strings.Builder
	prev := 0
	for i, c := range cuts {
		kept := stem[prev:c.start]
		trimmed := strings.TrimRight(kept, separators)
		if trimmed != kept || prev > 0 {
			b.WriteString(trimmed)
			prev = c.end
			continue
		}
		b.WriteString(kept)
		next := len(stem)
		if i+1 < len(cuts) {
			next = cuts[i+1].start
		}
		rest := stem[c.end:next]
		prev = c.end + len(rest) - len(strings.TrimLeft(rest, separators))
	}
	b.WriteString(stem[prev:])

	cleaned := strings.Trim(b.String(), separators)
	if cleaned == "" {
		return tag, stem
	}
	return tag, cleaned
}

func extractTempo(name string) (int, span) {
	loc := tempoPattern.FindStringSubmatchIndex(name)
	if loc == nil {
		return 0, span{}
	}
	bpm, err := strconv.Atoi(name[loc[2]:loc[3]])
	if err != nil || bpm <= 0 {
		return 0, span{}
	}
	return bpm, span{start: loc[2], end: loc[5]}
}

func extractKey(name string) (string, span) {
	offset := 0
	for offset < len(name) {
		loc := keyPattern.FindStringSubmatchIndex(name[offset:])
		if loc == nil {
			return "", span{}
		}
		root := name[offset+loc[2] : offset+loc[3]]
		end := offset + loc[3]
		var accidental, quality string
		if loc[4] >= 0 {
			accidental = name[offset+loc[4] : offset+loc[5]]
			end = offset + loc[5]
		}
		if loc[6] >= 0 {
			quality = name[offset+loc[6] : offset+loc[7]]
			end = offset + loc[7]
		}
		// A bare lower-case "a" is the English article far more often than A major.
		if root == "a" && accidental == "" && quality == "" {
			offset += loc[3]
			continue
		}
		return renderKey(root, accidental, quality), span{start: offset + loc[2], end: end}
	}
	return "", span{}
}

func renderKey(root, accidental, quality string) string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(root))
	switch accidental {
	case "#":
		b.WriteByte('#')
	case "b", "B":
		b.WriteByte('b')
	}
	switch strings.ToLower(quality) {
	case "m", "min", "minor":
		b.WriteByte('m')
	}
	return b.String()
}

// Empty reports whether neither marker was found.
func (t Tag) Empty() bool {
	return t.Tempo <= 0 && t.Key == ""
}

// Render returns " [<bpm>bpm <key>]" with absent fields omitted, or "" when the
// tag is empty. Tempo always precedes key.
func (t Tag) Render() string {
	parts := make([]string, 0, 2)
	if t.Tempo > 0 {
		parts = append(parts, strconv.Itoa(t.Tempo)+"bpm")
	}
	if t.Key != "" {
		parts = append(parts, t.Key)
	}
	if len(parts) == 0 {
		return ""
	}
	return " [" + strings.Join(parts, " ") + "]"
}

// String implements fmt.Stringer.
func (t Tag) String() string {
	return strings.TrimSpace(t.Render())
}
