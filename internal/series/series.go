// Package series provides numeric helpers over slices of uniform records.
//
// Record fields are addressed through accessor functions, so the same
// helpers work for gold prices, single-currency rates and table rows.
package series

import (
	"errors"
	"slices"

	"github.com/montanaflynn/stats"
)

// ErrEmptyInput is returned by Average for an empty record set.
var ErrEmptyInput = errors.New("series: empty input")

// Values extracts value(r) for each record, in order.
func Values[T any](records []T, value func(T) float64) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = value(r)
	}
	return out
}

// Sum returns the arithmetic sum of value(r). An empty set sums to 0.
func Sum[T any](records []T, value func(T) float64) float64 {
	s, err := stats.Sum(Values(records, value))
	if err != nil {
		return 0
	}
	return s
}

// Average returns Sum/len. It fails with ErrEmptyInput instead of dividing
// by zero.
func Average[T any](records []T, value func(T) float64) (float64, error) {
	m, err := stats.Mean(Values(records, value))
	if err != nil {
		return 0, ErrEmptyInput
	}
	return m, nil
}

// MinBy returns the record with the smallest value. On ties the first
// record in scan order wins. ok is false for an empty slice.
func MinBy[T any](records []T, value func(T) float64) (best T, ok bool) {
	for i, r := range records {
		if i == 0 || value(r) < value(best) {
			best = r
		}
	}
	return best, len(records) > 0
}

// MaxBy returns the record with the largest value, first one winning ties.
func MaxBy[T any](records []T, value func(T) float64) (best T, ok bool) {
	for i, r := range records {
		if i == 0 || value(r) > value(best) {
			best = r
		}
	}
	return best, len(records) > 0
}

// TopNByDifference orders records by a(r)-b(r) descending and returns the
// first min(n, len) of them. Records with an equal difference keep their
// input order. n <= 0 yields an empty slice. The input is not modified.
func TopNByDifference[T any](records []T, n int, a, b func(T) float64) []T {
	if n <= 0 {
		return []T{}
	}
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(x, y T) int {
		dx, dy := a(x)-b(x), a(y)-b(y)
		switch {
		case dx > dy:
			return -1
		case dx < dy:
			return 1
		default:
			return 0
		}
	})
	return sorted[:min(n, len(sorted))]
}
