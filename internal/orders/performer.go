package orders

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/nbpstat/internal/dates"
	"github.com/guttosm/nbpstat/internal/domain/models"
	"github.com/guttosm/nbpstat/internal/logger"
	"github.com/guttosm/nbpstat/internal/metrics"
	"github.com/guttosm/nbpstat/internal/nbp"
)

const separator = "---------------------------------------------------------------"

// Journal records executed runs.
type Journal interface {
	InsertRun(ctx context.Context, run models.OrderRun) error
}

// Outcome is everything known about one execution.
type Outcome struct {
	Run    models.OrderRun
	Result Result
	Err    error
}

// Performer executes orders one at a time. A failing order never stops
// the ones after it.
type Performer struct {
	out     io.Writer
	journal Journal
	now     func() time.Time
}

// PerformerOption customizes a Performer.
type PerformerOption func(*Performer)

// WithJournal records every run in j. Journal failures are logged and
// otherwise ignored.
func WithJournal(j Journal) PerformerOption {
	return func(p *Performer) { p.journal = j }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) PerformerOption {
	return func(p *Performer) { p.now = now }
}

// NewPerformer returns a Performer printing reports to out.
func NewPerformer(out io.Writer, opts ...PerformerOption) *Performer {
	p := &Performer{out: out, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Perform runs the batch sequentially. For each order it prints a banner,
// then the report lines or a single failure line, then a separator.
func (p *Performer) Perform(ctx context.Context, batch []Order) []Outcome {
	outcomes := make([]Outcome, 0, len(batch))
	for _, o := range batch {
		fmt.Fprintf(p.out, "Executing order - %s\n", o.Describe())
		oc := p.Execute(ctx, o)
		if oc.Err != nil {
			fmt.Fprintln(p.out, oc.Err.Error())
		} else {
			for _, line := range oc.Result.Lines {
				fmt.Fprintln(p.out, line)
			}
		}
		fmt.Fprintf(p.out, "\n%s\n\n", separator)
		outcomes = append(outcomes, oc)
	}
	return outcomes
}

// Execute runs a single order without printing anything. The run is
// logged, counted and journaled.
func (p *Performer) Execute(ctx context.Context, o Order) Outcome {
	id := uuid.New()
	kind := o.Kind().String()
	log := logger.L().With().Str("run_id", id.String()).Str("order", kind).Logger()

	log.Info().Strs("args", o.Args()).Msg("order start")
	start := p.now()
	res, err := o.Run(ctx)
	elapsed := p.now().Sub(start)

	run := models.OrderRun{
		ID:         id,
		Kind:       kind,
		Args:       strings.Join(o.Args(), o.Kind().Separator()),
		Succeeded:  err == nil,
		Output:     strings.Join(res.Lines, "\n"),
		Pages:      res.Pages,
		StartedAt:  start,
		DurationMs: elapsed.Milliseconds(),
	}
	outcome := Classify(err)
	metrics.ObserveOrder(kind, outcome, res.Pages)

	if err != nil {
		run.Error = err.Error()
		log.Warn().Err(err).Str("outcome", outcome).Int("pages", res.Pages).Dur("elapsed", elapsed).Msg("order failed")
	} else {
		log.Info().Int("pages", res.Pages).Dur("elapsed", elapsed).Msg("order done")
	}

	if p.journal != nil {
		if jerr := p.journal.InsertRun(ctx, run); jerr != nil {
			log.Error().Err(jerr).Msg("journal insert failed")
		}
	}
	return Outcome{Run: run, Result: res, Err: err}
}

// IsValidation reports whether err comes from argument checking.
func IsValidation(err error) bool {
	var afe *ArgumentFormatError
	var dfe *dates.DateFormatError
	return errors.As(err, &afe) || errors.As(err, &dfe)
}

// IsNotFound reports whether err means the API had nothing for the query.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoDataInRange) || nbp.IsNotFoundOrInvalid(err)
}

// Classify maps a run error to a metrics outcome label.
func Classify(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case IsValidation(err):
		return metrics.OutcomeInvalid
	case IsNotFound(err):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}
