package dates

import (
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/require"
)

func d(y int, m time.Month, day int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: day}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		want    civil.Date
		wantErr bool
	}{
		{in: "2017-11-10", want: d(2017, time.November, 10)},
		{in: "2016-02-29", want: d(2016, time.February, 29)},
		{in: "2017-02-29", wantErr: true},
		{in: "2017-1-10", wantErr: true},
		{in: "17-11-10", wantErr: true},
		{in: "2017/11/10", wantErr: true},
		{in: "", wantErr: true},
		{in: "2017-11-10 ", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				var dfe *DateFormatError
				require.True(t, errors.As(err, &dfe), "want DateFormatError, got %v", err)
				require.Equal(t, tc.in, dfe.Input)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDayDiff(t *testing.T) {
	require.Equal(t, 10, DayDiff(d(2017, 11, 10), d(2017, 11, 20)))
	require.Equal(t, 0, DayDiff(d(2017, 11, 10), d(2017, 11, 10)))
	require.Equal(t, -1, DayDiff(d(2017, 11, 11), d(2017, 11, 10)))
	require.Equal(t, 366, DayDiff(d(2016, 1, 1), d(2017, 1, 1)))
	// Poland switches to summer time on the last Sunday of March.
	require.Equal(t, 2, DayDiff(d(2017, 3, 25), d(2017, 3, 27)))
	require.Equal(t, 2, DayDiff(d(2017, 10, 28), d(2017, 10, 30)))
}

func TestAddDays(t *testing.T) {
	require.Equal(t, d(2017, 11, 13), AddDays(d(2017, 11, 4), 9))
	require.Equal(t, d(2017, 12, 2), AddDays(d(2017, 12, 1), 1))
	require.Equal(t, d(2017, 11, 4), AddDays(d(2017, 11, 4), 0))
	require.Equal(t, d(2017, 10, 31), AddDays(d(2017, 11, 1), -1))
	require.Equal(t, d(2018, 1, 1), AddDays(d(2017, 12, 31), 1))
}

func TestRange(t *testing.T) {
	r, err := NewRange("2017-11-10", "2017-11-20")
	require.NoError(t, err)
	require.Equal(t, 10, r.Span())
	require.Equal(t, 11, r.Days())
	require.True(t, r.Contains(d(2017, 11, 10)))
	require.True(t, r.Contains(d(2017, 11, 20)))
	require.False(t, r.Contains(d(2017, 11, 21)))
	require.Equal(t, "2017-11-10 - 2017-11-20", r.String())

	_, err = NewRange("2017-11-10", "2017-13-01")
	require.Error(t, err)
}

func TestParseWeekDay(t *testing.T) {
	cases := []struct {
		in      string
		weekday time.Weekday
		want    civil.Date
		wantErr bool
	}{
		// 2014-11-01 is a Saturday, so week 1 starts on Monday 2014-11-03.
		{in: "2014,11,3", weekday: time.Monday, want: d(2014, 11, 17)},
		// 2016-01-01 is a Friday; week 1 starts on 2016-01-04.
		{in: "2016,01,2", weekday: time.Friday, want: d(2016, 1, 15)},
		// 2017-11-01 is a Wednesday, so the first partial week counts as week 1.
		{in: "2017,11,1", weekday: time.Monday, want: d(2017, 10, 30)},
		// 2014-11-01 leaves only two days in the first week, which becomes week 0.
		{in: "2014,11,0", weekday: time.Monday, want: d(2014, 10, 27)},
		{in: "2017,11,5", weekday: time.Friday, want: d(2017, 12, 1)},
		{in: "2017,11,0", weekday: time.Friday, wantErr: true},
		{in: "2017,11,6", weekday: time.Monday, wantErr: true},
		{in: "2017,11,9", weekday: time.Monday, wantErr: true},
		{in: "2017,02,8", weekday: time.Monday, wantErr: true},
		{in: "2017,13,1", weekday: time.Monday, wantErr: true},
		{in: "2017-11-1", weekday: time.Monday, wantErr: true},
		{in: "2017,1,1", weekday: time.Monday, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseWeekDay(tc.in, tc.weekday)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.weekday, got.In(time.UTC).Weekday())
		})
	}
}
