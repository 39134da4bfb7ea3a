package orders

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"

	"github.com/guttosm/nbpstat/internal/dates"
	"github.com/guttosm/nbpstat/internal/nbp"
	"github.com/guttosm/nbpstat/internal/series"
)

// AmplitudeResult is the payload of a highest-amplitude run.
type AmplitudeResult struct {
	Code      string     `json:"code"`
	Min       float64    `json:"min"`
	WhenMin   civil.Date `json:"when_min"`
	Max       float64    `json:"max"`
	WhenMax   civil.Date `json:"when_max"`
	Amplitude float64    `json:"amplitude"`
}

// HighestAmplitude finds the table A currency whose mid rate moved the most
// between a start date and today. Tables are fetched TableLimit days at a
// time and folded into one per-currency extremes accumulator.
type HighestAmplitude struct {
	base
	rng dates.Range
}

// NewHighestAmplitude expects a single start date.
func NewHighestAmplitude(args []string, env Env) *HighestAmplitude {
	o := &HighestAmplitude{base: newBase(KindHighestAmplitude, args, env)}
	if !o.checkArity(args, 1, 1) {
		return o
	}
	o.rng = dates.Range{Start: o.parseDate(args[0]), End: o.env.Today()}
	if o.invalid == nil && o.rng.End.Before(o.rng.Start) {
		o.reject(fmt.Sprintf("start %s is in the future", o.rng.Start))
	}
	return o
}

func (o *HighestAmplitude) Describe() string {
	return "Finding the currency from table A which had the highest price amplitude starting from a given date..."
}

func (o *HighestAmplitude) Run(ctx context.Context) (Result, error) {
	if o.invalid != nil {
		return Result{}, o.invalid
	}
	fail := func(err error) error {
		return &RunError{Op: fmt.Sprintf("The currency for the period from %s to %s could not be found", o.rng.Start, o.rng.End), Err: err}
	}

	agg := series.NewExtremes()
	pages, err := forEachPage(o.rng, o.env.TableLimit, func(page dates.Range, _ bool) error {
		tables, err := nbp.Tables(ctx, o.env.Fetcher, nbp.TableA, page)
		if err != nil {
			return err
		}
		agg.Merge(series.MinMaxPerKey(tables, nbp.TableRows, nbp.TableRateCode, nbp.TableRateMid, nbp.TableDate))
		return nil
	})
	if err != nil {
		return Result{Pages: pages}, fail(err)
	}

	best, ok := agg.MaxAmplitude()
	if !ok {
		return Result{Pages: pages}, fail(ErrNoDataInRange)
	}
	res := AmplitudeResult{
		Code:      best.Key,
		Min:       best.Min,
		WhenMin:   best.WhenMin,
		Max:       best.Max,
		WhenMax:   best.WhenMax,
		Amplitude: best.Amplitude(),
	}
	return Result{
		Lines: []string{
			"Found currency: " + res.Code,
			fmt.Sprintf("Minimum price: %s (%s)", formatFloat(res.Min), res.WhenMin),
			fmt.Sprintf("Maximum price: %s (%s)", formatFloat(res.Max), res.WhenMax),
			"Amplitude: " + formatFloat(res.Amplitude),
		},
		Data:  res,
		Pages: pages,
	}, nil
}
