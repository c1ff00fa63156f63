package layout_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"samplesort/internal/classify"
	"samplesort/internal/layout"
	"samplesort/internal/textutil"
)

func longStem(n int) string {
	words := []string{"Vintage", "Dusty", "Breakbeat", "Recorded", "Through", "Tape", "Machine", "Saturation"}
	var b strings.Builder
	for i := 0; b.Len() < n; i++ {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(words[i%len(words)])
	}
	return b.String()[:n]
}

func TestEnforceLimitLeavesShortPathsAlone(t *testing.T) {
	c := layout.Candidate{
		Root:     "/lib",
		Category: classify.CategoryPath{"Loops", "Drums", "Breaks"},
		Stem:     "Amen Break",
		Tag:      " [172bpm]",
		Ext:      ".wav",
	}
	out := layout.EnforceLimit(c, layout.DefaultBudget, "")
	require.Equal(t, c, out)
	require.Equal(t, "Loops/Drums/Breaks/Amen Break [172bpm].wav", out.Rel())
}

func TestEnforceLimitShortensOnlyStem(t *testing.T) {
	category := classify.CategoryPath{"Loops", "Drums", "Breaks"}
	stem := longStem(117)
	c := layout.Candidate{Root: "/lib", Category: category, Stem: stem, Ext: ".wav"}
	require.Equal(t, 140, textutil.Len(c.Rel()))

	out := layout.EnforceLimit(c, layout.DefaultBudget, "")
	require.LessOrEqual(t, textutil.Len(out.Rel()), layout.DefaultBudget)
	require.Equal(t, category, out.Category)
	require.Equal(t, ".wav", out.Ext)
	require.True(t, strings.HasPrefix(out.Stem, "Vntge_Dsty_Brkbt"), "stem %q", out.Stem)
}

func TestEnforceLimitHardTruncatesAndDropsTag(t *testing.T) {
	c := layout.Candidate{
		Root:     "/lib",
		Category: classify.CategoryPath{"Synth", "Pads"},
		Stem:     strings.Repeat("Xq", 100),
		Tag:      " [120bpm Cm]",
		Ext:      ".wav",
	}
	out := layout.EnforceLimit(c, 64, "")
	require.LessOrEqual(t, textutil.Len(out.Rel()), 64)
	require.Equal(t, "", out.Tag)
	require.Equal(t, 64-len("Synth/Pads/")-len(".wav"), textutil.Len(out.Stem))
}

func TestEnforceLimitCompactsTagWhenItFits(t *testing.T) {
	c := layout.Candidate{
		Root:     "/lib",
		Category: classify.CategoryPath{"Bass"},
		Stem:     "Warm Analog Bass Line Recorded Live",
		Tag:      " [120bpm Cm]",
		Ext:      ".wav",
	}
	out := layout.EnforceLimit(c, 45, "")
	require.Equal(t, "Wrm_Anlg_Bss_Lne_Rcrdd_Lve", out.Stem)
	require.LessOrEqual(t, textutil.Len(out.Rel()), 45)
	require.Equal(t, "_120bpm_Cm", out.Tag)
}

func TestEnforceLimitStripsPackHint(t *testing.T) {
	c := layout.Candidate{
		Root:     "/lib",
		Category: classify.CategoryPath{"Drums", "Kicks"},
		Stem:     "Vintage Vibes Kick Deep " + strings.Repeat("Long ", 30),
		Ext:      ".wav",
	}
	out := layout.EnforceLimit(c, layout.DefaultBudget, "Vintage Vibes")
	require.True(t, strings.HasPrefix(out.Stem, "Kck_Dp_Lng"), "stem %q", out.Stem)
}

func TestAllowedNameLength(t *testing.T) {
	require.Equal(t, 128, layout.AllowedNameLength("", 128))
	require.Equal(t, 128-len("Drums/Kicks")-1, layout.AllowedNameLength("Drums/Kicks", 128))
	require.LessOrEqual(t, layout.AllowedNameLength(strings.Repeat("d", 200), 128), 0)
}

func TestCandidatePaths(t *testing.T) {
	c := layout.Candidate{
		Root:     "/lib",
		Category: classify.CategoryPath{"Drums", "Kicks"},
		Folder:   "Vntg_Vbs",
		Stem:     "Kick",
		Ext:      ".wav",
	}
	require.Equal(t, "Drums/Kicks/Vntg_Vbs", c.ParentRel())
	require.Equal(t, "/lib/Drums/Kicks/Vntg_Vbs/Kick.wav", c.Path())

	renamed := c.WithName("Kick_abc1234.wav")
	require.Equal(t, "Kick_abc1234", renamed.Stem)
	require.Equal(t, ".wav", renamed.Ext)
	require.Equal(t, "", renamed.Tag)
}

func TestMinBudget(t *testing.T) {
	require.Equal(t, len("Loops/Drums/Breaks/")+layout.DigestLength+len(".aiff"), layout.MinBudget(0))
	require.Equal(t, layout.MinBudget(0)+25, layout.MinBudget(24))
	require.Equal(t, layout.DigestLength+len(".aiff"), layout.AllowedNameLength("Loops/Drums/Breaks/"+strings.Repeat("G", 24), layout.MinBudget(24)))
}
