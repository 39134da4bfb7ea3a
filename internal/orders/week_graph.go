package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/nbpstat/internal/dates"
	"github.com/guttosm/nbpstat/internal/nbp"
	"github.com/guttosm/nbpstat/internal/series"
)

// barWidth is the length of the bar drawn for the highest value.
const barWidth = 20

// WeekGraphResult is the payload of a week-graph run. Values holds one
// entry per calendar day from Start, with -1 for days without a rate.
type WeekGraphResult struct {
	Code   string    `json:"code"`
	Start  string    `json:"start"`
	End    string    `json:"end"`
	Values []float64 `json:"values"`
	Min    float64   `json:"min"`
	Max    float64   `json:"max"`
}

// WeekGraph draws a per-weekday ASCII histogram of a currency's mid rate
// from the Monday of one week to the Friday of another.
//
// Rates are placed on a day-aligned series. When the range needs several
// requests, a page the API has no data for (404) is left as NoData instead
// of failing the whole run.
type WeekGraph struct {
	base
	code string
	rng  dates.Range
}

// NewWeekGraph expects "currency;yyyy,MM,W;yyyy,MM,W".
func NewWeekGraph(args []string, env Env) *WeekGraph {
	o := &WeekGraph{base: newBase(KindWeekGraph, args, env)}
	if !o.checkArity(args, 3, 3) {
		return o
	}
	o.code = o.parseCode(args[0])
	start, err := dates.ParseWeekDay(args[1], time.Monday)
	if err != nil {
		o.reject(err.Error())
		return o
	}
	end, err := dates.ParseWeekDay(args[2], time.Friday)
	if err != nil {
		o.reject(err.Error())
		return o
	}
	if end.Before(start) {
		o.reject(fmt.Sprintf("start week %s is after end week %s", args[1], args[2]))
	}
	o.rng = dates.Range{Start: start, End: end}
	return o
}

func (o *WeekGraph) Describe() string {
	return "Print a week-based ASCII graph presenting the relative change of value of a given currency during a given period..."
}

func (o *WeekGraph) Run(ctx context.Context) (Result, error) {
	if o.invalid != nil {
		return Result{}, o.invalid
	}
	fail := func(err error) error {
		return &RunError{Op: fmt.Sprintf("The histogram for the period from %s to %s could not be created", o.rng.Start, o.rng.End), Err: err}
	}

	aligned := series.NewAligned(o.rng)
	pages, err := forEachPage(o.rng, o.env.RangeLimit, func(page dates.Range, multi bool) error {
		rs, err := nbp.Rates(ctx, o.env.Fetcher, nbp.TableA, o.code, page)
		if err != nil {
			if multi && nbp.IsNoData(err) {
				return nil
			}
			return err
		}
		points := make([]series.Point, 0, len(rs.Rates))
		for _, r := range rs.Rates {
			points = append(points, series.Point{Date: r.EffectiveDate, Value: r.Mid})
		}
		aligned.Place(page, points)
		return nil
	})
	if err != nil {
		return Result{Pages: pages}, fail(err)
	}

	lo, hi, ok := aligned.Bounds()
	if !ok {
		return Result{Pages: pages}, fail(ErrNoDataInRange)
	}
	return Result{
		Lines: renderHistogram(o.code, aligned, lo, hi),
		Data: WeekGraphResult{
			Code:   o.code,
			Start:  o.rng.Start.String(),
			End:    o.rng.End.String(),
			Values: aligned.Values(),
			Min:    lo,
			Max:    hi,
		},
		Pages: pages,
	}, nil
}

var weekdays = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// renderHistogram groups the series by weekday, one line per week. The
// series must start on a Monday. Bars scale linearly from lo (empty) to hi
// (barWidth marks).
func renderHistogram(code string, a *series.Aligned, lo, hi float64) []string {
	values := a.Values()
	lines := []string{fmt.Sprintf("Printing the week-based histogram of the price of %s during the period %s:", code, a.Range())}
	for day, name := range weekdays {
		week := 0
		for i := day; i < len(values); i += 7 {
			week++
			label := fmt.Sprintf("[%s%03d]", name, week)
			v := values[i]
			if series.IsNoData(v) {
				lines = append(lines, label+"-- No data --")
				continue
			}
			lines = append(lines, fmt.Sprintf("%s%s (%s)", label, strings.Repeat("#", barLength(v, lo, hi)), formatFloat(v)))
		}
		lines = append(lines, "")
	}
	return lines
}

func barLength(v, lo, hi float64) int {
	if hi <= lo {
		return 0
	}
	return int((v - lo) / (hi - lo) * barWidth)
}
