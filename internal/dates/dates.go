// Package dates holds the calendar arithmetic used by every order: strict
// YYYY-MM-DD parsing, signed day differences, day shifting and inclusive
// date ranges.
//
// All arithmetic is done on civil (time-zone free) dates, so crossing a DST
// boundary never produces a fractional or off-by-one day count.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
)

// Layout is the only accepted textual date format.
const Layout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d\d-\d\d$`)

// DateFormatError is returned when a string is not a valid YYYY-MM-DD date.
type DateFormatError struct {
	Input string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", e.Input)
}

// Parse parses a YYYY-MM-DD string. Both a shape mismatch and an impossible
// calendar date (e.g. 2017-02-30) yield a *DateFormatError.
func Parse(s string) (civil.Date, error) {
	if !datePattern.MatchString(s) {
		return civil.Date{}, &DateFormatError{Input: s}
	}
	d, err := civil.ParseDate(s)
	if err != nil || !d.IsValid() {
		return civil.Date{}, &DateFormatError{Input: s}
	}
	return d, nil
}

// IsDate reports whether s has the YYYY-MM-DD shape and denotes a real date.
func IsDate(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// DayDiff returns the signed number of calendar days from d1 to d2
// (positive when d2 is later).
func DayDiff(d1, d2 civil.Date) int {
	return d2.DaysSince(d1)
}

// AddDays shifts d by n calendar days; n may be negative.
func AddDays(d civil.Date, n int) civil.Date {
	return d.AddDays(n)
}

// Today returns the current local calendar date.
func Today() civil.Date {
	return civil.DateOf(time.Now())
}

// Range is an inclusive [Start, End] span of calendar days.
// Callers keep Start <= End; a reversed range is not rejected here.
type Range struct {
	Start civil.Date
	End   civil.Date
}

// NewRange builds a Range from two YYYY-MM-DD strings.
func NewRange(start, end string) (Range, error) {
	s, err := Parse(start)
	if err != nil {
		return Range{}, err
	}
	e, err := Parse(end)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: s, End: e}, nil
}

// Span is DayDiff(Start, End): 0 for a single-day range.
func (r Range) Span() int {
	return DayDiff(r.Start, r.End)
}

// Days is the inclusive number of calendar days covered by the range.
func (r Range) Days() int {
	return r.Span() + 1
}

// Contains reports whether d falls inside the range.
func (r Range) Contains(d civil.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

func (r Range) String() string {
	return r.Start.String() + " - " + r.End.String()
}

var weekPattern = regexp.MustCompile(`^(\d{4}),(\d\d),(\d)$`)

// ParseWeekDay resolves a "yyyy,MM,W" week-of-month reference to the given
// weekday of that week. Weeks start on Monday and week 1 is the first week
// holding at least four days of the month, so week 0 may begin in the
// previous month. A week with no day in the month is rejected.
func ParseWeekDay(s string, weekday time.Weekday) (civil.Date, error) {
	m := weekPattern.FindStringSubmatch(s)
	if m == nil {
		return civil.Date{}, fmt.Errorf("invalid week %q, expected yyyy,MM,W", s)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	week, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 {
		return civil.Date{}, fmt.Errorf("invalid week %q: month out of range", s)
	}

	first := civil.Date{Year: year, Month: time.Month(month), Day: 1}
	// Monday-based index of the 1st: Monday=0 .. Sunday=6.
	idx := (int(first.In(time.UTC).Weekday()) + 6) % 7
	monday := first.AddDays(-idx)
	if 7-idx < 4 {
		monday = monday.AddDays(7)
	}
	monday = monday.AddDays(7 * (week - 1))

	last := civil.DateOf(time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC))
	if monday.AddDays(6).Before(first) || monday.After(last) {
		return civil.Date{}, fmt.Errorf("invalid week %q: week %d has no day in %s %d", s, week, time.Month(month), year)
	}
	return monday.AddDays((int(weekday) + 6) % 7), nil
}
