// Package orders implements the statistical queries ("orders") run against
// the NBP API and the batch runner that executes them.
//
// Every order validates its arguments once when it is built. An invalid
// order keeps its validation error and returns it from Run without touching
// the network. Run may be called again; each call fetches afresh and builds
// a new aggregate.
package orders

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/guttosm/nbpstat/internal/dates"
	"github.com/guttosm/nbpstat/internal/nbp"
	"github.com/guttosm/nbpstat/internal/paging"
)

// Default page limits and history start of the NBP API.
const (
	DefaultRangeLimit = 367
	DefaultTableLimit = 93
)

// DefaultHistoryStart is the first day with published table A rates.
var DefaultHistoryStart = civil.Date{Year: 2002, Month: 1, Day: 2}

// ErrNoDataInRange is returned when an order processed every page without
// receiving a single usable record.
var ErrNoDataInRange = errors.New("no data in the requested range")

// ArgumentFormatError reports arguments of the wrong arity or shape.
type ArgumentFormatError struct {
	Order  Kind
	Reason string
}

func (e *ArgumentFormatError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %s", e.Order, e.Reason)
}

// RunError ties a failure to the operation that was attempted, e.g.
// "The price of gold on 2017-01-01 could not be retrieved".
type RunError struct {
	Op  string
	Err error
}

func (e *RunError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// Result is the outcome of a successful run.
type Result struct {
	// Lines is the human readable report, one entry per output line.
	Lines []string
	// Data is the structured payload; its type depends on the order kind.
	Data any
	// Pages is the number of API requests the run issued.
	Pages int
}

// Order is one validated (or rejected) query.
type Order interface {
	Kind() Kind
	Args() []string
	// Describe is the one-line banner printed before the order runs.
	Describe() string
	// Err returns the validation error, nil for a valid order.
	Err() error
	Run(ctx context.Context) (Result, error)
}

// Env carries what every order needs to run. It is passed by value into
// each order when it is built.
type Env struct {
	Fetcher nbp.Fetcher
	// RangeLimit bounds gold and single-currency series requests.
	RangeLimit int
	// TableLimit bounds full-table requests.
	TableLimit   int
	HistoryStart civil.Date
	// Today returns the current date; nil means the local clock.
	Today func() civil.Date
}

func (e Env) withDefaults() Env {
	if e.RangeLimit < 1 {
		e.RangeLimit = DefaultRangeLimit
	}
	if e.TableLimit < 1 {
		e.TableLimit = DefaultTableLimit
	}
	if e.HistoryStart.IsZero() {
		e.HistoryStart = DefaultHistoryStart
	}
	if e.Today == nil {
		e.Today = dates.Today
	}
	return e
}

// base holds what all orders share.
type base struct {
	kind    Kind
	args    []string
	env     Env
	invalid error
}

func newBase(kind Kind, args []string, env Env) base {
	return base{kind: kind, args: args, env: env.withDefaults()}
}

func (b *base) Kind() Kind     { return b.kind }
func (b *base) Args() []string { return b.args }
func (b *base) Err() error     { return b.invalid }

// rawArg returns the i-th argument as given, or "" when it is missing.
func (b *base) rawArg(i int) string {
	if i < len(b.args) {
		return b.args[i]
	}
	return ""
}

func (b *base) reject(reason string) {
	if b.invalid == nil {
		b.invalid = &ArgumentFormatError{Order: b.kind, Reason: reason}
	}
}

var codePattern = regexp.MustCompile(`^\w{3}$`)

func (b *base) parseCode(s string) string {
	if !codePattern.MatchString(s) {
		b.reject(fmt.Sprintf("%q is not a 3 character currency code", s))
		return ""
	}
	return strings.ToUpper(s)
}

func (b *base) parseDate(s string) civil.Date {
	d, err := dates.Parse(s)
	if err != nil && b.invalid == nil {
		b.invalid = err
	}
	return d
}

// dateOrLastBusinessDay parses args[i] when present and non-empty, otherwise
// falls back to the last business day on or before today.
func (b *base) dateOrLastBusinessDay(args []string, i int) civil.Date {
	if i < len(args) && args[i] != "" {
		return b.parseDate(args[i])
	}
	return dates.LastBusinessDay(b.env.Today())
}

func (b *base) checkArity(args []string, lo, hi int) bool {
	if len(args) < lo || len(args) > hi {
		if lo == hi {
			b.reject(fmt.Sprintf("expected %d argument(s), got %d", lo, len(args)))
		} else {
			b.reject(fmt.Sprintf("expected %d to %d arguments, got %d", lo, hi, len(args)))
		}
		return false
	}
	return true
}

// forEachPage calls fn once for r when it fits in a single request, and
// otherwise once per page in chronological order. multi tells fn which of
// the two paths is running. It returns the number of pages visited.
func forEachPage(r dates.Range, limit int, fn func(page dates.Range, multi bool) error) (int, error) {
	if paging.FitsOnePage(r, limit) {
		return 1, fn(r, false)
	}
	n := 0
	for page := range paging.Seq(r, limit) {
		n++
		if err := fn(page, true); err != nil {
			return n, err
		}
	}
	return n, nil
}
