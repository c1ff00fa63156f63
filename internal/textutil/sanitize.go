package textutil

import "strings"

// portableReplacer rewrites characters that FAT, exFAT, NTFS or HFS+ volumes
// reject in file names.
var portableReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// PortableName makes a stem safe on common sample drive filesystems.
// Separators and colons become dashes, other reserved characters and control
// characters are removed, and trailing dots or spaces are trimmed. The result
// can be empty.
func PortableName(stem string) string {
	out := portableReplacer.Replace(stem)
	out = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, out)
	return strings.TrimRight(strings.TrimSpace(out), ". ")
}
