package dates

import (
	"testing"
	"time"
)

func TestIsBusinessDay_WeekendsAndHolidays(t *testing.T) {
	cases := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  bool
	}{
		{name: "sunday", year: 2025, month: time.September, day: 21, want: false},
		{name: "saturday", year: 2025, month: time.September, day: 20, want: false},
		{name: "plain friday", year: 2025, month: time.September, day: 19, want: true},
		{name: "independence day", year: 2025, month: time.November, day: 11, want: false},
		{name: "constitution day", year: 2024, month: time.May, day: 3, want: false},
		{name: "easter monday", year: 2025, month: time.April, day: 21, want: false},
		{name: "corpus christi", year: 2025, month: time.June, day: 19, want: false},
		{name: "epiphany before 2011", year: 2010, month: time.January, day: 6, want: true},
		{name: "epiphany", year: 2017, month: time.January, day: 6, want: false},
		{name: "christmas eve 2024", year: 2024, month: time.December, day: 24, want: true},
		{name: "christmas eve 2025", year: 2025, month: time.December, day: 24, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsBusinessDay(d(tc.year, tc.month, tc.day)); got != tc.want {
				t.Fatalf("IsBusinessDay(%d-%02d-%02d)=%v, want %v", tc.year, tc.month, tc.day, got, tc.want)
			}
		})
	}
}

func TestLastBusinessDay(t *testing.T) {
	// Easter Monday 2025 rolls back over the weekend to Good Friday.
	if got, want := LastBusinessDay(d(2025, time.April, 21)), d(2025, time.April, 18); got != want {
		t.Fatalf("LastBusinessDay=%v, want %v", got, want)
	}
	if got, want := LastBusinessDay(d(2025, time.September, 19)), d(2025, time.September, 19); got != want {
		t.Fatalf("business day should map to itself, got %v", got)
	}
	if got, want := LastBusinessDay(d(2026, time.January, 1)), d(2025, time.December, 31); got != want {
		t.Fatalf("LastBusinessDay=%v, want %v", got, want)
	}
}

func TestEasterSunday(t *testing.T) {
	cases := map[int][2]int{
		2017: {4, 16},
		2024: {3, 31},
		2025: {4, 20},
	}
	for year, want := range cases {
		got := easterSunday(year)
		if int(got.Month) != want[0] || got.Day != want[1] {
			t.Fatalf("easter %d = %v, want %02d-%02d", year, got, want[0], want[1])
		}
	}
}
