package series

import (
	"cloud.google.com/go/civil"

	"github.com/guttosm/nbpstat/internal/dates"
)

// NoData marks a calendar day for which no value was published.
const NoData = -1.0

// IsNoData reports whether v is the NoData marker.
func IsNoData(v float64) bool {
	return v == NoData
}

// Point is one dated value.
type Point struct {
	Date  civil.Date
	Value float64
}

// Align turns the points fetched for one page into one value per calendar
// day of the page. Points must be in ascending date order; days without a
// point become NoData. Points outside the page or repeating an already
// filled day are ignored.
func Align(page dates.Range, points []Point) []float64 {
	out := make([]float64, 0, max(page.Days(), 0))
	cursor := page.Start
	for _, p := range points {
		if p.Date.Before(cursor) || p.Date.After(page.End) {
			continue
		}
		for cursor.Before(p.Date) {
			out = append(out, NoData)
			cursor = cursor.AddDays(1)
		}
		out = append(out, p.Value)
		cursor = cursor.AddDays(1)
	}
	for !cursor.After(page.End) {
		out = append(out, NoData)
		cursor = cursor.AddDays(1)
	}
	return out
}

// Aligned is a day-indexed series over a whole range. Index i holds the
// value for Start+i days. Every slot starts out as NoData.
type Aligned struct {
	rng    dates.Range
	values []float64
}

// NewAligned allocates a series covering r, pre-filled with NoData.
func NewAligned(r dates.Range) *Aligned {
	values := make([]float64, max(r.Days(), 0))
	for i := range values {
		values[i] = NoData
	}
	return &Aligned{rng: r, values: values}
}

// Range is the span the series covers.
func (a *Aligned) Range() dates.Range {
	return a.rng
}

// Place aligns one page's points and writes them at the page's offset from
// the start of the series. Slots falling outside the series are dropped.
func (a *Aligned) Place(page dates.Range, points []Point) {
	offset := dates.DayDiff(a.rng.Start, page.Start)
	for i, v := range Align(page, points) {
		if j := offset + i; j >= 0 && j < len(a.values) {
			a.values[j] = v
		}
	}
}

// At returns the value for day d, or NoData when d is outside the series.
func (a *Aligned) At(d civil.Date) float64 {
	i := dates.DayDiff(a.rng.Start, d)
	if i < 0 || i >= len(a.values) {
		return NoData
	}
	return a.values[i]
}

// Values returns a copy of the per-day values.
func (a *Aligned) Values() []float64 {
	out := make([]float64, len(a.values))
	copy(out, a.values)
	return out
}

// Bounds returns the smallest and largest real value, skipping NoData.
// ok is false when every slot is NoData.
func (a *Aligned) Bounds() (lo, hi float64, ok bool) {
	for _, v := range a.values {
		if IsNoData(v) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi, ok
}
