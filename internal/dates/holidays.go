package dates

import (
	"time"

	"cloud.google.com/go/civil"
)

// LastBusinessDay returns the latest Polish business day on or before from.
// NBP publishes tables only on business days, so this is the default date
// for single-day lookups.
func LastBusinessDay(from civil.Date) civil.Date {
	d := from
	for !IsBusinessDay(d) {
		d = d.AddDays(-1)
	}
	return d
}

// IsBusinessDay reports whether d is a business day in Poland.
// It excludes Saturdays, Sundays and national holidays.
func IsBusinessDay(d civil.Date) bool {
	if wd := d.In(time.UTC).Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !isHolidayPL(d)
}

func isHolidayPL(d civil.Date) bool {
	type md struct {
		m time.Month
		d int
	}
	fixed := map[md]struct{}{
		{time.January, 1}:   {}, // New Year
		{time.May, 1}:       {}, // Labour Day
		{time.May, 3}:       {}, // Constitution Day
		{time.August, 15}:   {}, // Assumption
		{time.November, 1}:  {}, // All Saints
		{time.November, 11}: {}, // Independence Day
		{time.December, 25}: {}, // Christmas
		{time.December, 26}: {}, // Second day of Christmas
	}
	if _, ok := fixed[md{d.Month, d.Day}]; ok {
		return true
	}
	if d.Year >= 2011 && d.Month == time.January && d.Day == 6 {
		return true // Epiphany
	}
	if d.Year >= 2025 && d.Month == time.December && d.Day == 24 {
		return true // Christmas Eve
	}

	easter := easterSunday(d.Year)
	easterMonday := easter.AddDays(1)
	corpusChristi := easter.AddDays(60)
	return d == easterMonday || d == corpusChristi
}

// easterSunday returns the date of Easter Sunday for a given year
// (Meeus/Jones/Butcher algorithm).
func easterSunday(year int) civil.Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return civil.Date{Year: year, Month: time.Month(month), Day: day}
}
