package organizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"samplesort/internal/classify"
	"samplesort/internal/config"
	"samplesort/internal/desttree"
	"samplesort/internal/failure"
	"samplesort/internal/layout"
	"samplesort/internal/logging"
	"samplesort/internal/placement"
	"samplesort/internal/preflight"
	"samplesort/internal/tagging"
	"samplesort/internal/textutil"
)

// LockFileName is created in the destination root while a live run holds it.
const LockFileName = ".samplesort.lock"

// ErrLocked reports that another live run holds the destination.
var ErrLocked = errors.New("destination is locked by another run")

// Organizer runs the placement pipeline over a source tree.
type Organizer struct {
	cfg        *config.Config
	logger     *slog.Logger
	out        io.Writer
	dryRun     bool
	quiet      bool
	classifier *classify.Classifier
}

// Option customizes an Organizer.
type Option func(*Organizer)

// WithDryRun computes destinations without touching the filesystem.
func WithDryRun(dryRun bool) Option {
	return func(o *Organizer) { o.dryRun = dryRun }
}

// WithQuiet suppresses per-file and summary lines.
func WithQuiet(quiet bool) Option {
	return func(o *Organizer) { o.quiet = quiet }
}

// WithOutput sets the report writer (stdout by default).
func WithOutput(w io.Writer) Option {
	return func(o *Organizer) { o.out = w }
}

// WithClassifier replaces the default rule table.
func WithClassifier(c *classify.Classifier) Option {
	return func(o *Organizer) { o.classifier = c }
}

// New constructs an organizer for cfg.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Organizer {
	o := &Organizer{
		cfg:        cfg,
		logger:     logging.NewComponentLogger(logger, "organizer"),
		out:        os.Stdout,
		classifier: classify.New(nil),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Summary describes a finished run.
type Summary struct {
	RunID   string
	DryRun  bool
	Mode    placement.Mode
	Records []Placed
	Bytes   int64
}

// Placed is a placement record plus the size of the sample.
type Placed struct {
	placement.Record
	Bytes int64
}

// Files is the number of processed files.
func (s Summary) Files() int {
	return len(s.Records)
}

// CategoryCount is the number of files and bytes placed in one category.
type CategoryCount struct {
	Category string
	Files    int
	Bytes    int64
}

// Run processes every accepted file under the source root. The first
// placement error aborts the run.
func (o *Organizer) Run(ctx context.Context) (Summary, error) {
	mode, err := placement.ParseMode(o.cfg.Placement.Mode)
	if err != nil {
		return Summary{}, err
	}
	if err := preflight.Err(preflight.RunAll(o.cfg, o.dryRun)); err != nil {
		return Summary{}, err
	}

	files, err := Scan(ctx, o.cfg.Paths.SourceDir, o.cfg.Placement.IncludeNonAudio)
	if err != nil {
		return Summary{}, err
	}

	started := time.Now()
	summary := Summary{RunID: uuid.NewString(), DryRun: o.dryRun, Mode: mode}
	ctx = logging.WithRunID(ctx, summary.RunID)
	logger := logging.WithContext(ctx, o.logger)
	logger.Info("organize run started",
		logging.String("source_dir", o.cfg.Paths.SourceDir),
		logging.String("dest_dir", o.cfg.Paths.DestDir),
		logging.String("mode", string(mode)),
		logging.Bool("dry_run", o.dryRun),
		logging.Int("files", len(files)),
	)

	tree, release, err := o.openTree()
	if err != nil {
		return summary, err
	}
	defer release()

	placer, err := placement.New(tree, mode, o.cfg.Placement.MaxPathLength, o.logger)
	if err != nil {
		return summary, err
	}

	journal, err := o.openJournal(ctx, summary.RunID, mode)
	if err != nil {
		return summary, err
	}
	runErr := o.placeAll(ctx, placer, journal, files, &summary)
	journal.finish(ctx, runErr, logger)
	if runErr != nil {
		logger.Error("organize run failed", logging.Error(runErr), logging.Int("placed", summary.Files()))
		return summary, runErr
	}

	if preview, ok := tree.(*desttree.Preview); ok {
		logger.Debug("dry run preview built", logging.Int("planned_entries", len(preview.Planned())))
	}
	o.report(summary.summaryLine())
	logger.Info("organize run finished",
		logging.Int("files", summary.Files()),
		logging.Int64("bytes", summary.Bytes),
		logging.Duration("elapsed", time.Since(started)),
	)
	return summary, nil
}

func (o *Organizer) placeAll(ctx context.Context, placer *placement.Placer, journal *journal, files []SampleFile, summary *Summary) error {
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		record, err := o.placeOne(ctx, placer, file)
		if err != nil {
			return err
		}
		placed := Placed{Record: record, Bytes: file.Size}
		summary.Records = append(summary.Records, placed)
		summary.Bytes += file.Size
		if err := journal.record(ctx, placed); err != nil {
			return err
		}

		if o.dryRun {
			o.report(fmt.Sprintf("%s  ->  %s  [%s]", record.Source, record.Destination, record.Mode))
		} else if record.Action == placement.ActionSkipped {
			o.report("Already placed: " + record.Destination)
		} else {
			o.report("Placed: " + record.Destination)
		}
	}
	return nil
}

// Plan builds the candidate destination of one file before length
// enforcement and uniqueness.
func (o *Organizer) Plan(file SampleFile) layout.Candidate {
	category := o.classifier.Classify(file.Name(), file.Ancestors)
	tag, stem := tagging.Parse(file.Stem)
	stem = textutil.PortableName(stem)
	cand := layout.Candidate{
		Root:     o.cfg.Paths.DestDir,
		Category: category,
		Stem:     stem,
		Tag:      textutil.Pick(stem == "", strings.TrimSpace(tag.Render()), tag.Render()),
		Ext:      file.Ext,
	}
	if o.cfg.Placement.PackFolders && file.PackHint != "" {
		cand.Folder = textutil.ShortenFolder(file.PackHint, o.cfg.Placement.MaxFolderLength)
	}
	return cand
}

func (o *Organizer) placeOne(ctx context.Context, placer *placement.Placer, file SampleFile) (placement.Record, error) {
	cand := o.Plan(file)
	logger := logging.WithContext(ctx, o.logger)
	if logger.Enabled(ctx, slog.LevelDebug) {
		match := o.classifier.Match(file.Name(), file.Ancestors)
		logger.Debug("sample classified",
			logging.DecisionArgs("category", match.Category.String(), classificationReason(match),
				logging.String(logging.FieldSource, file.Rel),
			)...,
		)
	}

	record, err := placer.Place(ctx, file.Path, cand, placement.Options{EnforceLimit: true, PackHint: file.PackHint})
	if err != nil {
		return record, err
	}
	logger.Debug("sample placed",
		logging.String(logging.FieldSource, file.Rel),
		logging.String(logging.FieldDestination, record.Relative),
		logging.String(logging.FieldCategory, record.Category),
		logging.String("action", string(record.Action)),
	)
	return record, nil
}

func classificationReason(match classify.Match) string {
	if match.Rule < 0 {
		return "no rule matched"
	}
	return fmt.Sprintf("rule %d matched %q", match.Rule, match.Keyword)
}

// openTree returns the destination tree and a release func. Live runs create
// the destination root and hold its lock until release.
func (o *Organizer) openTree() (placement.Tree, func(), error) {
	disk := desttree.NewDisk(o.cfg.Paths.DestDir)
	if o.dryRun {
		return desttree.NewPreview(disk), func() {}, nil
	}

	if err := os.MkdirAll(o.cfg.Paths.DestDir, 0o755); err != nil {
		return nil, nil, failure.Wrap(failure.ErrPlacement, "organize", "create destination", o.cfg.Paths.DestDir, err)
	}
	lockPath := filepath.Join(o.cfg.Paths.DestDir, LockFileName)
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, nil, failure.Wrap(failure.ErrPlacement, "organize", "acquire lock", lockPath, err)
	}
	if !ok {
		return nil, nil, failure.Wrap(failure.ErrPlacement, "organize", "acquire lock", lockPath, ErrLocked)
	}
	release := func() {
		if err := lock.Unlock(); err != nil {
			o.logger.Warn("failed to release destination lock", logging.String("lock", lockPath), logging.Error(err))
			return
		}
		_ = os.Remove(lockPath)
	}
	return disk, release, nil
}

func (o *Organizer) report(line string) {
	if o.quiet {
		return
	}
	fmt.Fprintln(o.out, line)
}

func (s Summary) summaryLine() string {
	verb := textutil.Pick(s.DryRun, "Would process", "Processed")
	return fmt.Sprintf("%s %d files", verb, s.Files())
}

// Categories aggregates the records per category, sorted by category.
func (s Summary) Categories() []CategoryCount {
	index := map[string]int{}
	var out []CategoryCount
	for _, record := range s.Records {
		i, ok := index[record.Category]
		if !ok {
			i = len(out)
			index[record.Category] = i
			out = append(out, CategoryCount{Category: record.Category})
		}
		out[i].Files++
		out[i].Bytes += record.Bytes
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}
