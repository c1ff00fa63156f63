package organizer_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"samplesort/internal/config"
	"samplesort/internal/failure"
	"samplesort/internal/layout"
	"samplesort/internal/ledger"
	"samplesort/internal/logging"
	"samplesort/internal/organizer"
	"samplesort/internal/placement"
	"samplesort/internal/testsupport"
	"samplesort/internal/textutil"
)

func run(t *testing.T, cfg *config.Config, opts ...organizer.Option) (organizer.Summary, string, error) {
	t.Helper()
	var out bytes.Buffer
	opts = append([]organizer.Option{organizer.WithOutput(&out)}, opts...)
	summary, err := organizer.New(cfg, logging.NewNop(), opts...).Run(context.Background())
	return summary, out.String(), err
}

func relatives(summary organizer.Summary) []string {
	out := make([]string, 0, len(summary.Records))
	for _, record := range summary.Records {
		out = append(out, record.Relative)
	}
	return out
}

func TestRunPlacesTaggedSamples(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	srcs := testsupport.WriteSamples(t, cfg.Paths.SourceDir,
		"Amen Break 172bpm.wav",
		"Warm Bass Cm.wav",
	)

	summary, out, err := run(t, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Loops/Drums/Breaks/Amen Break [172bpm].wav",
		"Bass/Warm Bass [Cm].wav",
	}, relatives(summary))

	for i, record := range summary.Records {
		assert.Equal(t, placement.ActionSymlinked, record.Action)
		target, err := os.Readlink(record.Destination)
		require.NoError(t, err)
		want, err := filepath.EvalSymlinks(srcs[i])
		require.NoError(t, err)
		assert.Equal(t, want, target)
		assert.Contains(t, out, "Placed: "+record.Destination)
	}
	assert.Contains(t, out, "Processed 2 files")
	assert.NoFileExists(t, filepath.Join(cfg.Paths.DestDir, organizer.LockFileName))
}

func TestRunCopyLeavesSourceAndMoveRemovesIt(t *testing.T) {
	copyCfg := testsupport.NewConfig(t, testsupport.WithMode("copy"))
	copySrc := testsupport.WriteSamples(t, copyCfg.Paths.SourceDir, "Kick 01.wav")

	summary, _, err := run(t, copyCfg)
	require.NoError(t, err)
	require.Len(t, summary.Records, 1)
	assert.Equal(t, placement.ActionCopied, summary.Records[0].Action)
	assert.FileExists(t, copySrc[0])
	data, err := os.ReadFile(summary.Records[0].Destination)
	require.NoError(t, err)
	assert.Equal(t, "Kick 01.wav", string(data))

	moveCfg := testsupport.NewConfig(t, testsupport.WithMode("move"))
	moveSrc := testsupport.WriteSamples(t, moveCfg.Paths.SourceDir, "Kick 01.wav")

	summary, _, err = run(t, moveCfg)
	require.NoError(t, err)
	require.Len(t, summary.Records, 1)
	assert.Equal(t, placement.ActionMoved, summary.Records[0].Action)
	assert.NoFileExists(t, moveSrc[0])
	assert.FileExists(t, summary.Records[0].Destination)
}

func TestRunKeepsLongNamesWithinBudget(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	long := "Kick " + strings.Repeat("Punchy Layered Analog ", 6) + "120bpm"
	require.Greater(t, len(long), 128)
	testsupport.WriteSamples(t, cfg.Paths.SourceDir, "Vendor/"+long+".wav")

	summary, _, err := run(t, cfg)
	require.NoError(t, err)
	require.Len(t, summary.Records, 1)
	record := summary.Records[0]
	assert.LessOrEqual(t, textutil.Len(record.Relative), layout.DefaultBudget)
	assert.True(t, strings.HasPrefix(record.Relative, "Drums/Kicks/"))
	assert.True(t, strings.HasSuffix(record.Relative, ".wav"))
	assert.FileExists(t, record.Destination)
}

func TestRunDisambiguatesCollisions(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteSamples(t, cfg.Paths.SourceDir,
		"Pack A/Kick.wav",
		"Pack B/Kick.wav",
		"Pack C/kick.wav",
	)

	summary, _, err := run(t, cfg)
	require.NoError(t, err)
	got := relatives(summary)
	require.Len(t, got, 3)
	seen := map[string]bool{}
	for _, rel := range got {
		assert.True(t, strings.HasPrefix(rel, "Drums/Kicks/"))
		assert.False(t, seen[strings.ToLower(rel)], "duplicate destination %s", rel)
		seen[strings.ToLower(rel)] = true
	}
	assert.Len(t, testsupport.Files(testsupport.Snapshot(t, filepath.Join(cfg.Paths.DestDir, "Drums", "Kicks"))), 3)
}

func TestRunPackFolders(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithPackFolders())
	testsupport.WriteSamples(t, cfg.Paths.SourceDir, "Vintage Vibes/One Shots/Kick 01.wav")

	summary, _, err := run(t, cfg)
	require.NoError(t, err)
	require.Len(t, summary.Records, 1)
	folder := textutil.ShortenFolder("Vintage Vibes", cfg.Placement.MaxFolderLength)
	assert.Equal(t, "Drums/Kicks/"+folder+"/Kick 01.wav", summary.Records[0].Relative)
}

func TestRunPackFoldersAtMinimumBudget(t *testing.T) {
	budget := layout.MinBudget(24)
	cfg := testsupport.NewConfig(t, testsupport.WithPackFolders(), testsupport.WithMaxPathLength(budget))
	require.NoError(t, cfg.Validate())
	pack := strings.Repeat("G", 30)
	testsupport.WriteSamples(t, cfg.Paths.SourceDir,
		pack+"/Amen Break 172bpm.wav",
		pack+"/a/Amen Break 172bpm.wav",
		pack+"/b/Amen Break 172bpm.wav",
		pack+"/Breakbeat Long Session Take 90bpm.aiff",
		pack+"/Break.m4a",
	)

	summary, _, err := run(t, cfg)
	require.NoError(t, err)
	require.Len(t, summary.Records, 5)
	seen := map[string]bool{}
	for _, record := range summary.Records {
		assert.LessOrEqual(t, textutil.Len(record.Relative), budget, "over budget: %s", record.Relative)
		assert.True(t, strings.HasPrefix(record.Relative, "Loops/Drums/Breaks/"), record.Relative)
		key := strings.ToLower(record.Relative)
		assert.False(t, seen[key], "duplicate destination %s", record.Relative)
		seen[key] = true
	}
}

func TestDryRunMatchesLiveRunWithoutTouchingDisk(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteSamples(t, cfg.Paths.SourceDir,
		"Pack A/Kick.wav",
		"Pack B/Kick.wav",
		"Loops/Funky Drummer 98bpm.aif",
		"Textures/Rain Field Recording.wav",
	)
	base := testsupport.BaseDir(cfg)
	before := testsupport.Snapshot(t, base)

	dry, out, err := run(t, cfg, organizer.WithDryRun(true))
	require.NoError(t, err)
	assert.Equal(t, before, testsupport.Snapshot(t, base))
	assert.Contains(t, out, "Would process 4 files")
	for _, record := range dry.Records {
		assert.Equal(t, placement.ActionPlanned, record.Action)
		assert.Contains(t, out, record.Source+"  ->  "+record.Destination+"  [symlink]")
	}

	live, _, err := run(t, cfg)
	require.NoError(t, err)
	assert.Equal(t, relatives(dry), relatives(live))
}

func TestRunIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteSamples(t, cfg.Paths.SourceDir, "Kick.wav", "Snare.wav")

	first, _, err := run(t, cfg)
	require.NoError(t, err)
	snapshot := testsupport.Snapshot(t, cfg.Paths.DestDir)

	second, out, err := run(t, cfg)
	require.NoError(t, err)
	assert.Equal(t, relatives(first), relatives(second))
	for _, record := range second.Records {
		assert.Equal(t, placement.ActionSkipped, record.Action)
		assert.Contains(t, out, "Already placed: "+record.Destination)
	}
	assert.Equal(t, snapshot, testsupport.Snapshot(t, cfg.Paths.DestDir))
}

func TestRunQuietPrintsNothing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteSamples(t, cfg.Paths.SourceDir, "Kick.wav")

	summary, out, err := run(t, cfg, organizer.WithQuiet(true))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Files())
	assert.Empty(t, out)
}

func TestRunSkipsNonAudioUnlessEnabled(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteSamples(t, cfg.Paths.SourceDir, "Groove 90bpm.mid", "Kick.wav")

	summary, _, err := run(t, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Files())

	cfg = testsupport.NewConfig(t, testsupport.WithNonAudio())
	testsupport.WriteSamples(t, cfg.Paths.SourceDir, "Groove 90bpm.mid", "Kick.wav")
	summary, _, err = run(t, cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Files())
}

func TestRunRecordsLedger(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteSamples(t, cfg.Paths.SourceDir, "Kick.wav", "Sub Bass.wav")

	summary, _, err := run(t, cfg)
	require.NoError(t, err)

	store := testsupport.MustOpenLedger(t, cfg)
	runs, err := store.Runs(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, summary.RunID, runs[0].ID)
	assert.Equal(t, ledger.StatusCompleted, runs[0].Status)
	assert.Equal(t, 2, runs[0].Files)
	assert.Equal(t, summary.Bytes, runs[0].Bytes)
	assert.Equal(t, "symlink", runs[0].Mode)

	placements, err := store.Placements(context.Background(), summary.RunID)
	require.NoError(t, err)
	require.Len(t, placements, 2)
	assert.Equal(t, summary.Records[0].Relative, placements[0].Relative)
}

func TestDryRunAndDisabledLedgerWriteNoHistory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteSamples(t, cfg.Paths.SourceDir, "Kick.wav")
	_, _, err := run(t, cfg, organizer.WithDryRun(true))
	require.NoError(t, err)
	assert.NoFileExists(t, cfg.LedgerPath())

	cfg = testsupport.NewConfig(t, testsupport.WithoutLedger())
	testsupport.WriteSamples(t, cfg.Paths.SourceDir, "Kick.wav")
	_, _, err = run(t, cfg)
	require.NoError(t, err)
	assert.NoFileExists(t, cfg.LedgerPath())
}

func TestRunRefusesLockedDestination(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteSamples(t, cfg.Paths.SourceDir, "Kick.wav")
	require.NoError(t, os.MkdirAll(cfg.Paths.DestDir, 0o755))

	lock := flock.New(filepath.Join(cfg.Paths.DestDir, organizer.LockFileName))
	ok, err := lock.TryLock()
	require.NoError(t, err)
	require.True(t, ok)
	t.Cleanup(func() { _ = lock.Unlock() })

	_, _, err = run(t, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, organizer.ErrLocked))
	assert.NoDirExists(t, filepath.Join(cfg.Paths.DestDir, "Drums"))
}

func TestRunMissingSource(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	require.NoError(t, os.Remove(cfg.Paths.SourceDir))

	_, _, err := run(t, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, failure.ErrMissingSource))
	assert.NoDirExists(t, cfg.Paths.DestDir)
}

func TestRunUnknownModeIsConfigurationError(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMode("teleport"))
	testsupport.WriteSamples(t, cfg.Paths.SourceDir, "Kick.wav")

	_, _, err := run(t, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, failure.ErrConfiguration))
	assert.NoDirExists(t, cfg.Paths.DestDir)
}

func TestSummaryCategories(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteSamples(t, cfg.Paths.SourceDir, "Kick 1.wav", "Kick 2.wav", "Sub Bass.wav")

	summary, _, err := run(t, cfg, organizer.WithDryRun(true))
	require.NoError(t, err)
	assert.Equal(t, []organizer.CategoryCount{
		{Category: "Bass", Files: 1, Bytes: int64(len("Sub Bass.wav"))},
		{Category: "Drums/Kicks", Files: 2, Bytes: int64(len("Kick 1.wav") + len("Kick 2.wav"))},
	}, summary.Categories())
}

func TestPlanMakesStemsPortable(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	org := organizer.New(cfg, logging.NewNop())

	cand := org.Plan(organizer.Describe("Vendor/Kick: Hard 120bpm.wav"))
	assert.Equal(t, "Drums/Kicks/Kick- Hard [120bpm].wav", cand.Rel())

	bare := org.Plan(organizer.Describe("??? 90bpm.wav"))
	assert.Equal(t, "[90bpm]", bare.Tag)
	assert.Equal(t, "", bare.Stem)
}
