package orders

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"

	"github.com/guttosm/nbpstat/internal/dates"
	"github.com/guttosm/nbpstat/internal/nbp"
	"github.com/guttosm/nbpstat/internal/series"
)

// PeaksResult is the payload of a lowest-highest run.
type PeaksResult struct {
	Code    string     `json:"code"`
	Min     float64    `json:"min"`
	WhenMin civil.Date `json:"when_min"`
	Max     float64    `json:"max"`
	WhenMax civil.Date `json:"when_max"`
}

// LowestHighest scans a currency's whole table A history, RangeLimit days
// per request, for the days of its lowest and highest mid rate.
type LowestHighest struct {
	base
	code string
	rng  dates.Range
}

// NewLowestHighest expects a single currency code.
func NewLowestHighest(args []string, env Env) *LowestHighest {
	o := &LowestHighest{base: newBase(KindLowestHighest, args, env)}
	if !o.checkArity(args, 1, 1) {
		return o
	}
	o.code = o.parseCode(args[0])
	o.rng = dates.Range{Start: o.env.HistoryStart, End: o.env.Today()}
	return o
}

func (o *LowestHighest) Describe() string {
	code := o.code
	if o.invalid != nil {
		code = o.rawArg(0)
	}
	return fmt.Sprintf("Finding the dates on which the currency %s was the cheapest and the most expensive...", code)
}

func (o *LowestHighest) Run(ctx context.Context) (Result, error) {
	if o.invalid != nil {
		return Result{}, o.invalid
	}
	fail := func(err error) error {
		return &RunError{Op: fmt.Sprintf("The peaks of the price of %s could not be found", o.code), Err: err}
	}

	var lo, hi nbp.Rate
	found := false
	pages, err := forEachPage(o.rng, o.env.RangeLimit, func(page dates.Range, _ bool) error {
		rs, err := nbp.Rates(ctx, o.env.Fetcher, nbp.TableA, o.code, page)
		if err != nil {
			return err
		}
		pageLo, ok := series.MinBy(rs.Rates, nbp.RateMid)
		if !ok {
			return nil
		}
		pageHi, _ := series.MaxBy(rs.Rates, nbp.RateMid)
		if !found || pageLo.Mid < lo.Mid {
			lo = pageLo
		}
		if !found || pageHi.Mid > hi.Mid {
			hi = pageHi
		}
		found = true
		return nil
	})
	if err != nil {
		return Result{Pages: pages}, fail(err)
	}
	if !found {
		return Result{Pages: pages}, fail(ErrNoDataInRange)
	}

	res := PeaksResult{Code: o.code, Min: lo.Mid, WhenMin: lo.EffectiveDate, Max: hi.Mid, WhenMax: hi.EffectiveDate}
	return Result{
		Lines: []string{
			fmt.Sprintf("Minimum price of %s was %s on %s", o.code, formatFloat(res.Min), res.WhenMin),
			fmt.Sprintf("Maximum price of %s was %s on %s", o.code, formatFloat(res.Max), res.WhenMax),
		},
		Data:  res,
		Pages: pages,
	}, nil
}
