// Package paging splits a date range into consecutive sub-ranges that each
// fit into a single API query.
package paging

import (
	"iter"

	"github.com/guttosm/nbpstat/internal/dates"
)

// Pages returns the sub-ranges covering r, each at most limit days long.
//
// Every page but the last spans exactly limit days; the last one runs from
// the cursor to r.End and may be shorter (a single day when the cursor lands
// on r.End). The result always holds at least one page. For a reversed range
// the single emitted page is reversed too, and the fetch layer reports it.
func Pages(r dates.Range, limit int) []dates.Range {
	var out []dates.Range
	for p := range Seq(r, limit) {
		out = append(out, p)
	}
	return out
}

// Seq yields the same pages as Pages lazily. It can be ranged over any
// number of times.
func Seq(r dates.Range, limit int) iter.Seq[dates.Range] {
	if limit < 1 {
		limit = 1
	}
	return func(yield func(dates.Range) bool) {
		cursor := r.Start
		for dates.DayDiff(cursor, r.End) >= limit {
			page := dates.Range{Start: cursor, End: dates.AddDays(cursor, limit-1)}
			if !yield(page) {
				return
			}
			cursor = dates.AddDays(cursor, limit)
		}
		yield(dates.Range{Start: cursor, End: r.End})
	}
}

// FitsOnePage reports whether r can be fetched with a single query.
func FitsOnePage(r dates.Range, limit int) bool {
	return r.Span() < limit
}
