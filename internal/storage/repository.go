package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	pq "github.com/lib/pq"

	"github.com/guttosm/nbpstat/internal/domain/models"
)

// ErrSchemaMissing is returned when the order_runs table does not exist yet.
var ErrSchemaMissing = errors.New("order_runs table is missing, run the migrations first")

// undefinedTable is the PostgreSQL error code for a missing relation.
const undefinedTable pq.ErrorCode = "42P01"

// RunsRepository defines contract for DB operations on the order journal.
type RunsRepository interface {
	InsertRun(ctx context.Context, run models.OrderRun) error
	InsertRuns(ctx context.Context, runs []models.OrderRun) error
	RecentRuns(ctx context.Context, limit int) ([]models.OrderRun, error)
}

type runsRepository struct {
	db *sql.DB
}

func NewRunsRepository(db *sql.DB) RunsRepository {
	return &runsRepository{db: db}
}

// InsertRun records one executed order.
func (r *runsRepository) InsertRun(ctx context.Context, run models.OrderRun) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO order_runs (id, kind, args, succeeded, output, error, pages, started_at, duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, run.ID, run.Kind, run.Args, run.Succeeded, run.Output, run.Error, run.Pages, run.StartedAt, run.DurationMs)
	return translate(err)
}

// InsertRuns records a whole batch in a single transaction using COPY.
func (r *runsRepository) InsertRuns(ctx context.Context, runs []models.OrderRun) error {
	if len(runs) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(
		"order_runs",
		"id",
		"kind",
		"args",
		"succeeded",
		"output",
		"error",
		"pages",
		"started_at",
		"duration_ms",
	))
	if err != nil {
		_ = tx.Rollback()
		return translate(err)
	}

	for _, run := range runs {
		if _, err := stmt.ExecContext(ctx,
			run.ID,
			run.Kind,
			run.Args,
			run.Succeeded,
			run.Output,
			run.Error,
			run.Pages,
			run.StartedAt,
			run.DurationMs,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	// flush the COPY buffer
	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// RecentRuns returns up to limit runs, newest first.
func (r *runsRepository) RecentRuns(ctx context.Context, limit int) ([]models.OrderRun, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, args, succeeded, output, error, pages, started_at, duration_ms
		FROM order_runs
		ORDER BY started_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, translate(err)
	}
	defer func() { _ = rows.Close() }()

	runs := make([]models.OrderRun, 0, limit)
	for rows.Next() {
		var run models.OrderRun
		if err := rows.Scan(
			&run.ID,
			&run.Kind,
			&run.Args,
			&run.Succeeded,
			&run.Output,
			&run.Error,
			&run.Pages,
			&run.StartedAt,
			&run.DurationMs,
		); err != nil {
			return nil, fmt.Errorf("scan order run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

func translate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == undefinedTable {
		return fmt.Errorf("%w: %s", ErrSchemaMissing, pqErr.Message)
	}
	return err
}
