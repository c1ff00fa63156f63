package placement

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"samplesort/internal/failure"
	"samplesort/internal/layout"
	"samplesort/internal/logging"
	"samplesort/internal/textutil"
)

// Record is the outcome of placing one sample.
type Record struct {
	Source      string
	Destination string
	// Relative is Destination relative to the destination root.
	Relative string
	Category string
	Mode     Mode
	Action   Action
	// Original is the file name before shortening and disambiguation.
	Original string
}

// Options tune a single placement.
type Options struct {
	// EnforceLimit shortens the stem when the relative path exceeds the budget.
	EnforceLimit bool
	// PackHint is the top-level source folder, stripped from stems when shortening.
	PackHint string
}

// Placer places samples into a Tree. It remembers every destination it handed
// out so two samples of one run never share a path. Place is serialized so the
// sibling check and the placement happen atomically per call.
type Placer struct {
	tree   Tree
	mode   Mode
	budget int
	logger *slog.Logger

	mu      sync.Mutex
	claimed map[string]struct{}
}

// New constructs a placer. An unknown mode is a configuration error.
func New(tree Tree, mode Mode, budget int, logger *slog.Logger) (*Placer, error) {
	parsed, err := ParseMode(string(mode))
	if err != nil {
		return nil, err
	}
	if budget <= 0 {
		budget = layout.DefaultBudget
	}
	return &Placer{
		tree:    tree,
		mode:    parsed,
		budget:  budget,
		logger:  logging.NewComponentLogger(logger, "placer"),
		claimed: make(map[string]struct{}),
	}, nil
}

// Mode returns the placement mode.
func (p *Placer) Mode() Mode {
	return p.mode
}

// Place ensures the candidate's directory exists, optionally enforces the
// length budget, resolves a unique name and places src there.
func (p *Placer) Place(ctx context.Context, src string, cand layout.Candidate, opts Options) (Record, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	logger := logging.WithContext(ctx, p.logger)
	original := cand.Name()
	record := Record{
		Source:   src,
		Category: cand.Category.String(),
		Mode:     p.mode,
		Original: original,
	}

	parent := cand.ParentRel()
	if err := p.tree.EnsureDir(parent); err != nil {
		return record, failure.Wrap(failure.ErrPlacement, "placing", "ensure directory", parent, err)
	}

	if opts.EnforceLimit && !cand.Fits(p.budget) {
		before := cand.Rel()
		cand = layout.EnforceLimit(cand, p.budget, opts.PackHint)
		logger.Debug("destination shortened",
			logging.DecisionArgs("path_length", "shorten", fmt.Sprintf("%d > %d characters", textutil.Len(before), p.budget),
				logging.String("before", before),
				logging.String("after", cand.Rel()),
			)...,
		)
	}

	names, err := p.tree.Names(parent)
	if err != nil {
		return record, failure.Wrap(failure.ErrPlacement, "placing", "list directory", parent, err)
	}
	existing := make(map[string]string, len(names))
	for _, name := range names {
		existing[foldName(name)] = name
	}

	mayReuse := p.mode != ModeMove
	taken := func(name string) bool {
		rel := path.Join(parent, name)
		if _, ok := p.claimed[foldName(rel)]; ok {
			return true
		}
		actual, ok := existing[foldName(name)]
		if !ok {
			return false
		}
		return !(mayReuse && actual == name && p.tree.Holds(rel, src))
	}

	allowed := layout.AllowedNameLength(parent, p.budget)
	name, err := ResolveName(cand.Name(), original, allowed, taken)
	if err != nil {
		return record, failure.Wrap(failure.ErrPlacement, "placing", "resolve name", parent, err)
	}
	if name != cand.Name() {
		logger.Debug("destination disambiguated",
			logging.DecisionArgs("name_collision", "disambiguate", "name taken or over budget",
				logging.String("candidate", cand.Name()),
				logging.String("resolved", name),
			)...,
		)
	}

	rel := path.Join(parent, name)
	p.claimed[foldName(rel)] = struct{}{}
	record.Relative = rel
	record.Destination = filepath.Join(p.tree.Root(), filepath.FromSlash(rel))

	if _, exists := existing[foldName(name)]; exists {
		record.Action = ActionSkipped
		logger.Debug("destination already holds source", logging.String("destination", record.Destination))
		return record, nil
	}

	action, err := p.tree.Place(src, rel, p.mode)
	if err != nil {
		return record, failure.Wrap(failure.ErrPlacement, "placing", string(p.mode), rel, err)
	}
	record.Action = action
	return record, nil
}

// foldName keys names case-insensitively so case-insensitive filesystems
// cannot merge two destinations.
func foldName(name string) string {
	return strings.ToLower(name)
}
