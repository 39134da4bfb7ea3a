package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	pq "github.com/lib/pq"

	"github.com/guttosm/nbpstat/internal/domain/models"
)

type dummyErr struct{}

func (dummyErr) Error() string { return "dummy" }

func newMockRepo(t *testing.T) (*runsRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	repo := &runsRepository{db: db}
	cleanup := func() { _ = db.Close() }
	return repo, mock, cleanup
}

func sampleRun() models.OrderRun {
	return models.OrderRun{
		ID:         uuid.MustParse("3f1c2a6e-8d0b-4b8e-9a57-0c4b1f7e2d11"),
		Kind:       "gold-average",
		Args:       "2017-01-02,2017-01-31",
		Succeeded:  true,
		Output:     "The average price of gold from 2017-01-02 to 2017-01-31 was 151.2",
		Pages:      1,
		StartedAt:  time.Date(2025, 9, 11, 10, 0, 0, 0, time.UTC),
		DurationMs: 182,
	}
}

func TestNewRunsRepository_Construct(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()
	if r := NewRunsRepository(db); r == nil {
		t.Fatalf("expected non-nil repository")
	}
}

func TestInsertRun_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	run := sampleRun()
	mock.ExpectExec(`INSERT INTO order_runs \(id, kind, args, succeeded, output, error, pages, started_at, duration_ms\)`).
		WithArgs(run.ID.String(), run.Kind, run.Args, true, run.Output, "", 1, run.StartedAt, int64(182)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.InsertRun(context.Background(), run); err != nil {
		t.Fatalf("InsertRun: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertRun_MissingTable(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectExec(`INSERT INTO order_runs`).
		WillReturnError(&pq.Error{Code: "42P01", Message: `relation "order_runs" does not exist`})

	err := repo.InsertRun(context.Background(), sampleRun())
	if !errors.Is(err, ErrSchemaMissing) {
		t.Fatalf("expected ErrSchemaMissing, got %v", err)
	}
}

func TestInsertRun_OtherErrorUntouched(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectExec(`INSERT INTO order_runs`).WillReturnError(dummyErr{})

	err := repo.InsertRun(context.Background(), sampleRun())
	if !errors.Is(err, dummyErr{}) {
		t.Fatalf("expected dummy error, got %v", err)
	}
}

func TestRecentRuns_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	run := sampleRun()
	older := run.StartedAt.Add(-time.Hour)
	rows := sqlmock.NewRows([]string{"id", "kind", "args", "succeeded", "output", "error", "pages", "started_at", "duration_ms"}).
		AddRow(run.ID.String(), run.Kind, run.Args, true, run.Output, "", 1, run.StartedAt, int64(182)).
		AddRow("9b2e6c1d-0000-4000-8000-000000000001", "lowest-price", "", false, "", "The cheapest currency could not be found for the date 2017-11-12", 1, older, int64(40))

	mock.ExpectQuery(`SELECT id, kind, args, succeeded, output, error, pages, started_at, duration_ms\s+FROM order_runs\s+ORDER BY started_at DESC\s+LIMIT \$1`).
		WithArgs(2).
		WillReturnRows(rows)

	got, err := repo.RecentRuns(context.Background(), 2)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(got))
	}
	if diff := cmp.Diff(run, got[0]); diff != "" {
		t.Fatalf("first run mismatch (-want +got):\n%s", diff)
	}
	if got[1].Succeeded || got[1].Kind != "lowest-price" || got[1].Error == "" {
		t.Fatalf("second run mismatch: %+v", got[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecentRuns_QueryError(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(`SELECT .* FROM order_runs`).WillReturnError(dummyErr{})
	if _, err := repo.RecentRuns(context.Background(), 5); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRecentRuns_ScanError(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	rows := sqlmock.NewRows([]string{"id", "kind", "args", "succeeded", "output", "error", "pages", "started_at", "duration_ms"}).
		AddRow("not-a-uuid", "x", "", true, "", "", 0, time.Now(), int64(1))
	mock.ExpectQuery(`SELECT .* FROM order_runs`).WillReturnRows(rows)

	if _, err := repo.RecentRuns(context.Background(), 5); err == nil {
		t.Fatalf("expected scan error")
	}
}

func TestInsertRuns_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectBegin()
	// pq.CopyIn is driver specific; sqlmock only sees PREPARE and the EXEC calls.
	prep := mock.ExpectPrepare(".*")
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))     // row exec
	mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0)) // final Exec()
	mock.ExpectCommit()

	if err := repo.InsertRuns(context.Background(), []models.OrderRun{sampleRun()}); err != nil {
		t.Fatalf("InsertRuns: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertRuns_Empty(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	if err := repo.InsertRuns(context.Background(), nil); err != nil {
		t.Fatalf("InsertRuns: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no statements expected: %v", err)
	}
}

func TestInsertRuns_ErrorOnBegin(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectBegin().WillReturnError(dummyErr{})
	if err := repo.InsertRuns(context.Background(), []models.OrderRun{sampleRun()}); err == nil {
		t.Fatalf("expected error on begin")
	}
}

func TestInsertRuns_ErrorOnRowExec(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(".*")
	prep.ExpectExec().WillReturnError(dummyErr{})
	mock.ExpectRollback()

	if err := repo.InsertRuns(context.Background(), []models.OrderRun{sampleRun()}); err == nil {
		t.Fatalf("expected error on row exec")
	}
}
