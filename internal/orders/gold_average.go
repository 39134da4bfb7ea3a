package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/nbpstat/internal/dates"
	"github.com/guttosm/nbpstat/internal/nbp"
	"github.com/guttosm/nbpstat/internal/series"
)

// GoldAverageResult is the payload of a gold-average run.
type GoldAverageResult struct {
	Start   string  `json:"start"`
	End     string  `json:"end"`
	Average float64 `json:"average"`
	Days    int     `json:"days"`
}

// GoldAverage computes the mean gold price over a range, splitting it into
// RangeLimit-day requests when needed. Every page must succeed.
type GoldAverage struct {
	base
	rng dates.Range
}

// NewGoldAverage expects "start[,end]"; end defaults to today.
func NewGoldAverage(args []string, env Env) *GoldAverage {
	o := &GoldAverage{base: newBase(KindGoldAverage, args, env)}
	if !o.checkArity(args, 1, 2) {
		return o
	}
	o.rng.Start = o.parseDate(args[0])
	if len(args) == 2 && args[1] != "" {
		o.rng.End = o.parseDate(args[1])
	} else {
		o.rng.End = o.env.Today()
	}
	if o.invalid == nil && o.rng.End.Before(o.rng.Start) {
		o.reject(fmt.Sprintf("start %s is after end %s", o.rng.Start, o.rng.End))
	}
	return o
}

func (o *GoldAverage) Describe() string {
	return "Finding the average price of gold in a given period of time..."
}

func (o *GoldAverage) Run(ctx context.Context) (Result, error) {
	if o.invalid != nil {
		return Result{}, o.invalid
	}
	start, end := o.rng.Start.String(), o.rng.End.String()

	if o.rng.Start == o.rng.End {
		gold, err := nbp.GoldOn(ctx, o.env.Fetcher, o.rng.Start)
		if err != nil {
			return Result{Pages: 1}, &RunError{Op: fmt.Sprintf("The average price of gold on %s could not be retrieved", start), Err: err}
		}
		return Result{
			Lines: []string{fmt.Sprintf("The average price of gold on %s was %s", start, formatFloat(gold.Price))},
			Data:  GoldAverageResult{Start: start, End: end, Average: gold.Price, Days: 1},
			Pages: 1,
		}, nil
	}

	fail := func(err error) error {
		return &RunError{Op: fmt.Sprintf("The average price of gold from %s to %s could not be retrieved", start, end), Err: err}
	}

	var prices []nbp.GoldPrice
	pages, err := forEachPage(o.rng, o.env.RangeLimit, func(page dates.Range, _ bool) error {
		got, err := nbp.Gold(ctx, o.env.Fetcher, page)
		if err != nil {
			return err
		}
		prices = append(prices, got...)
		return nil
	})
	if err != nil {
		return Result{Pages: pages}, fail(err)
	}

	avg, err := series.Average(prices, nbp.GoldPriceValue)
	if errors.Is(err, series.ErrEmptyInput) {
		return Result{Pages: pages}, fail(ErrNoDataInRange)
	}
	return Result{
		Lines: []string{fmt.Sprintf("The average price of gold from %s to %s was %s", start, end, formatFloat(avg))},
		Data:  GoldAverageResult{Start: start, End: end, Average: avg, Days: len(prices)},
		Pages: pages,
	}, nil
}
