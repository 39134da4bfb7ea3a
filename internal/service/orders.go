package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/nbpstat/internal/domain/models"
	"github.com/guttosm/nbpstat/internal/orders"
	"github.com/guttosm/nbpstat/internal/storage"
)

const (
	DefaultRunsLimit = 20
	MaxRunsLimit     = 100
)

var (
	// ErrUnknownOrder is returned for an order name no kind matches.
	ErrUnknownOrder = errors.New("unknown order")
	// ErrJournalDisabled is returned by RecentRuns when no journal is configured.
	ErrJournalDisabled = errors.New("order journal is disabled")
)

// OrderService runs single orders on behalf of the HTTP layer and exposes
// the journal of past runs.
type OrderService interface {
	Execute(ctx context.Context, name, rawArgs string) (orders.Outcome, error)
	RecentRuns(ctx context.Context, limit int) ([]models.OrderRun, error)
}

type orderService struct {
	env       orders.Env
	performer *orders.Performer
	repo      storage.RunsRepository
}

// NewOrderService wires the order environment, the performer and an
// optional journal repository (nil disables RecentRuns).
func NewOrderService(env orders.Env, performer *orders.Performer, repo storage.RunsRepository) OrderService {
	return &orderService{env: env, performer: performer, repo: repo}
}

// Execute builds the named order from its raw argument string and runs it.
// The returned error only covers an unknown name; run failures, argument
// problems included, are reported in Outcome.Err.
func (s *orderService) Execute(ctx context.Context, name, rawArgs string) (orders.Outcome, error) {
	kind, err := orders.ParseKind(name)
	if err != nil {
		return orders.Outcome{}, fmt.Errorf("%w: %s", ErrUnknownOrder, name)
	}
	o, err := orders.New(kind, kind.SplitArgs(rawArgs), s.env)
	if err != nil {
		return orders.Outcome{}, fmt.Errorf("%w: %s", ErrUnknownOrder, name)
	}
	return s.performer.Execute(ctx, o), nil
}

// RecentRuns lists the newest runs. limit is clamped to
// [1, MaxRunsLimit]; zero or negative means DefaultRunsLimit.
func (s *orderService) RecentRuns(ctx context.Context, limit int) ([]models.OrderRun, error) {
	if s.repo == nil {
		return nil, ErrJournalDisabled
	}
	if limit <= 0 {
		limit = DefaultRunsLimit
	}
	return s.repo.RecentRuns(ctx, min(limit, MaxRunsLimit))
}
