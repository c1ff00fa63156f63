package ledger

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"samplesort/internal/failure"
)

// Status is the lifecycle state of a run.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Run is one organize invocation.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	SourceDir  string
	DestDir    string
	Mode       string
	Status     Status
	Files      int
	Bytes      int64
	Error      string
}

// Placement is one sample placed by a run.
type Placement struct {
	RunID       string
	Source      string
	Destination string
	Relative    string
	Category    string
	Action      string
	Original    string
	Bytes       int64
	CreatedAt   time.Time
}

// BeginRun records a new running run.
func (s *Store) BeginRun(ctx context.Context, run Run) error {
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}
	err := s.exec(ctx,
		`INSERT INTO runs (id, started_at, source_dir, dest_dir, mode, status) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, formatTime(run.StartedAt), run.SourceDir, run.DestDir, run.Mode, string(StatusRunning),
	)
	if err != nil {
		return failure.Wrap(failure.ErrLedger, "ledger", "begin run", run.ID, err)
	}
	return nil
}

// Record appends one placement and bumps the run's counters.
func (s *Store) Record(ctx context.Context, p Placement) error {
	ctx = ensureContext(ctx)
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	err := retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO placements (run_id, source, destination, relative, category, action, original, bytes, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.RunID, p.Source, p.Destination, p.Relative, p.Category, p.Action, p.Original, p.Bytes, formatTime(p.CreatedAt),
		); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE runs SET files = files + 1, bytes = bytes + ? WHERE id = ?`, p.Bytes, p.RunID,
		); err != nil {
			return err
		}
		return tx.Commit()
	})
	if err != nil {
		return failure.Wrap(failure.ErrLedger, "ledger", "record placement", p.Source, err)
	}
	return nil
}

// FinishRun marks a run completed, or failed when runErr is non-nil.
func (s *Store) FinishRun(ctx context.Context, id string, runErr error) error {
	status := StatusCompleted
	var message sql.NullString
	if runErr != nil {
		status = StatusFailed
		message = sql.NullString{String: runErr.Error(), Valid: true}
	}
	err := s.exec(ctx,
		`UPDATE runs SET finished_at = ?, status = ?, error = ? WHERE id = ?`,
		formatTime(time.Now()), string(status), message, id,
	)
	if err != nil {
		return failure.Wrap(failure.ErrLedger, "ledger", "finish run", id, err)
	}
	return nil
}

// Runs returns the most recent runs, newest first. limit <= 0 returns all.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	ctx = ensureContext(ctx)
	query := `SELECT id, started_at, finished_at, source_dir, dest_dir, mode, status, files, bytes, error
		FROM runs ORDER BY started_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, failure.Wrap(failure.ErrLedger, "ledger", "list runs", "", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run               Run
			started, finished sql.NullString
			status            string
			errorText         sql.NullString
		)
		if err := rows.Scan(&run.ID, &started, &finished, &run.SourceDir, &run.DestDir, &run.Mode,
			&status, &run.Files, &run.Bytes, &errorText); err != nil {
			return nil, failure.Wrap(failure.ErrLedger, "ledger", "scan run", "", err)
		}
		run.StartedAt = parseTime(started)
		run.FinishedAt = parseTime(finished)
		run.Status = Status(status)
		run.Error = strings.TrimSpace(errorText.String)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, failure.Wrap(failure.ErrLedger, "ledger", "list runs", "", err)
	}
	return runs, nil
}

// Placements returns the placements of one run in insertion order.
func (s *Store) Placements(ctx context.Context, runID string) ([]Placement, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, source, destination, relative, category, action, original, bytes, created_at
		 FROM placements WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, failure.Wrap(failure.ErrLedger, "ledger", "list placements", runID, err)
	}
	defer rows.Close()

	var out []Placement
	for rows.Next() {
		var (
			p       Placement
			created sql.NullString
		)
		if err := rows.Scan(&p.RunID, &p.Source, &p.Destination, &p.Relative, &p.Category,
			&p.Action, &p.Original, &p.Bytes, &created); err != nil {
			return nil, failure.Wrap(failure.ErrLedger, "ledger", "scan placement", runID, err)
		}
		p.CreatedAt = parseTime(created)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, failure.Wrap(failure.ErrLedger, "ledger", "list placements", runID, err)
	}
	return out, nil
}
