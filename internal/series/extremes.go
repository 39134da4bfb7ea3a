package series

import (
	"math"

	"cloud.google.com/go/civil"
)

// Extreme is the running minimum and maximum of one key together with the
// dates they were first observed on.
type Extreme struct {
	Key     string
	Min     float64
	WhenMin civil.Date
	Max     float64
	WhenMax civil.Date
}

// Amplitude is Max-Min.
func (e Extreme) Amplitude() float64 {
	return e.Max - e.Min
}

// Extremes tracks an Extreme per key. Keys are kept in the order they were
// first seen, and that order drives every iteration and tie-break.
// The zero value is ready to use.
type Extremes struct {
	order []string
	byKey map[string]*Extreme
}

// NewExtremes returns an empty accumulator.
func NewExtremes() *Extremes {
	return &Extremes{byKey: make(map[string]*Extreme)}
}

func (e *Extremes) entry(key string) *Extreme {
	if e.byKey == nil {
		e.byKey = make(map[string]*Extreme)
	}
	x, ok := e.byKey[key]
	if !ok {
		x = &Extreme{Key: key, Min: math.Inf(1), Max: math.Inf(-1)}
		e.byKey[key] = x
		e.order = append(e.order, key)
	}
	return x
}

// Observe folds one value seen on date when into key's extremes. Only a
// strictly smaller (larger) value moves the minimum (maximum), so ties keep
// the earlier date.
func (e *Extremes) Observe(key string, v float64, when civil.Date) {
	x := e.entry(key)
	if v < x.Min {
		x.Min, x.WhenMin = v, when
	}
	if v > x.Max {
		x.Max, x.WhenMax = v, when
	}
}

// Merge folds another accumulator into e, as if o's observations had been
// made after e's. Keys new to e are appended in o's order.
func (e *Extremes) Merge(o *Extremes) {
	if o == nil {
		return
	}
	for _, key := range o.order {
		src := o.byKey[key]
		x := e.entry(key)
		if src.Min < x.Min {
			x.Min, x.WhenMin = src.Min, src.WhenMin
		}
		if src.Max > x.Max {
			x.Max, x.WhenMax = src.Max, src.WhenMax
		}
	}
}

// Len is the number of distinct keys seen.
func (e *Extremes) Len() int {
	return len(e.order)
}

// Get returns the extremes recorded for key.
func (e *Extremes) Get(key string) (Extreme, bool) {
	x, ok := e.byKey[key]
	if !ok {
		return Extreme{}, false
	}
	return *x, true
}

// All returns every key's extremes in first-sighting order.
func (e *Extremes) All() []Extreme {
	out := make([]Extreme, 0, len(e.order))
	for _, key := range e.order {
		out = append(out, *e.byKey[key])
	}
	return out
}

// MaxAmplitude returns the key with the largest Max-Min. Among equal
// amplitudes the key seen first wins. ok is false when nothing was observed.
func (e *Extremes) MaxAmplitude() (best Extreme, ok bool) {
	bestAmp := math.Inf(-1)
	for _, key := range e.order {
		x := e.byKey[key]
		if amp := x.Amplitude(); amp > bestAmp {
			bestAmp = amp
			best = *x
			ok = true
		}
	}
	return best, ok
}

// MinMaxPerKey scans every inner record of every page and returns the
// per-key extremes. inner lists a page's records, key and value read a
// record, and when reads the page's date.
func MinMaxPerKey[P, R any](pages []P, inner func(P) []R, key func(R) string, value func(R) float64, when func(P) civil.Date) *Extremes {
	out := NewExtremes()
	for _, p := range pages {
		date := when(p)
		for _, r := range inner(p) {
			out.Observe(key(r), value(r), date)
		}
	}
	return out
}
