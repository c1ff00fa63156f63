package organizer

import (
	"context"
	"log/slog"

	"samplesort/internal/ledger"
	"samplesort/internal/logging"
	"samplesort/internal/placement"
)

// journal writes a live run into the ledger. A nil store makes every method
// a no-op, which is how dry runs and disabled ledgers behave.
type journal struct {
	store *ledger.Store
	runID string
}

func (o *Organizer) openJournal(ctx context.Context, runID string, mode placement.Mode) (*journal, error) {
	j := &journal{runID: runID}
	if o.dryRun || !o.cfg.Ledger.Enabled {
		return j, nil
	}
	store, err := ledger.Open(o.cfg.LedgerPath())
	if err != nil {
		return nil, err
	}
	if err := store.BeginRun(ctx, ledger.Run{
		ID:        runID,
		SourceDir: o.cfg.Paths.SourceDir,
		DestDir:   o.cfg.Paths.DestDir,
		Mode:      string(mode),
	}); err != nil {
		_ = store.Close()
		return nil, err
	}
	j.store = store
	return j, nil
}

func (j *journal) record(ctx context.Context, placed Placed) error {
	if j.store == nil {
		return nil
	}
	return j.store.Record(ctx, ledger.Placement{
		RunID:       j.runID,
		Source:      placed.Source,
		Destination: placed.Destination,
		Relative:    placed.Relative,
		Category:    placed.Category,
		Action:      string(placed.Action),
		Original:    placed.Original,
		Bytes:       placed.Bytes,
	})
}

// finish closes the run row and the store. Ledger failures here are logged,
// not returned: the files are already placed.
func (j *journal) finish(ctx context.Context, runErr error, logger *slog.Logger) {
	if j.store == nil {
		return
	}
	if err := j.store.FinishRun(context.WithoutCancel(ctx), j.runID, runErr); err != nil {
		logger.Warn("failed to finish ledger run", logging.Error(err))
	}
	if err := j.store.Close(); err != nil {
		logger.Warn("failed to close ledger", logging.Error(err))
	}
}
