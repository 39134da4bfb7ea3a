package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/nbpstat/config"
	"github.com/guttosm/nbpstat/internal/api"
	"github.com/guttosm/nbpstat/internal/nbp"
	"github.com/guttosm/nbpstat/internal/orders"
	"github.com/guttosm/nbpstat/internal/service"
	"github.com/guttosm/nbpstat/internal/storage"
)

// Deps bundles what both the CLI and the HTTP server are built from.
type Deps struct {
	Env orders.Env
	// DB and Runs are nil when the journal is disabled.
	DB   *sql.DB
	Runs storage.RunsRepository
}

// NewEnv builds the order environment backed by a live NBP client.
func NewEnv(cfg config.Config, opts ...nbp.Option) orders.Env {
	client := nbp.NewClient(nbp.Config{
		BaseURL:   cfg.NBP.BaseURL,
		Suffix:    cfg.NBP.URLSuffix,
		Timeout:   cfg.NBP.Timeout,
		RateLimit: cfg.NBP.RateLimit,
	}, opts...)
	return orders.Env{
		Fetcher:      client,
		RangeLimit:   cfg.NBP.RangeLimit,
		TableLimit:   cfg.NBP.TableLimit,
		HistoryStart: cfg.NBP.HistoryStart,
	}
}

// OpenJournal connects the order journal. It returns a nil repository and
// a no-op cleanup when the journal is disabled.
func OpenJournal(ctx context.Context, cfg config.Config) (storage.RunsRepository, func(), error) {
	db, cleanup, err := openJournalDB(ctx, cfg)
	if err != nil || db == nil {
		return nil, cleanup, err
	}
	return storage.NewRunsRepository(db), cleanup, nil
}

func openJournalDB(ctx context.Context, cfg config.Config) (*sql.DB, func(), error) {
	if !cfg.Journal.Enabled {
		return nil, func() {}, nil
	}
	// indirection for unit testing
	db, err := postgresOpener(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}
	return db, func() { _ = db.Close() }, nil
}

// Build wires the NBP client and, when enabled, the order journal.
// The returned cleanup releases the database connection.
func Build(ctx context.Context, cfg config.Config) (*Deps, func(), error) {
	deps := &Deps{Env: NewEnv(cfg)}
	db, cleanup, err := openJournalDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if db != nil {
		deps.DB = db
		deps.Runs = storage.NewRunsRepository(db)
	}
	return deps, cleanup, nil
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the NBP client and, if enabled, connects the journal.
//   - Creates the service and HTTP handler layers.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
func InitializeApp(ctx context.Context, cfg config.Config) (*gin.Engine, func(), error) {
	deps, cleanup, err := Build(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// Orders run through the performer so each one is logged, counted and journaled
	var opts []orders.PerformerOption
	if deps.Runs != nil {
		opts = append(opts, orders.WithJournal(deps.Runs))
	}
	performer := orders.NewPerformer(io.Discard, opts...)

	svc := service.NewOrderService(deps.Env, performer, deps.Runs)

	handler := api.NewHandler(svc)
	router := api.NewRouter(handler, api.RouterConfig{})

	// Register health and readiness probes
	var ping func(context.Context) error
	if deps.DB != nil {
		ping = deps.DB.PingContext
	}
	api.NewHealthHandler(ping).Register(router)

	return router, cleanup, nil
}
