//
// chrono
// SPDX-License-Identifier: GPL-3.0
//

package chrono

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonthAndYear(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2000, 2))
	assert.Equal(t, 28, DaysInMonth(1999, 2))
	assert.Equal(t, 366, DaysInYear(2000))
	assert.Equal(t, 365, DaysInYear(1999))
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(1900))
	assert.True(t, IsLeapYear(1904))
}

func TestDateOrdinalRoundTrip(t *testing.T) {
	t.Run("construct then recover ordinal", func(t *testing.T) {
		d, err := NewDate(2018, 4, 26)
		require.NoError(t, err)
		recovered, err := DateFromOrdinal(d.Ordinal())
		require.NoError(t, err)
		assert.Equal(t, d, recovered)
	})
	t.Run("ordinal extremes", func(t *testing.T) {
		min, err := DateFromOrdinal(1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), min.Ordinal())
		max, err := DateFromOrdinal(MaxOrdinal)
		require.NoError(t, err)
		assert.Equal(t, int64(MaxOrdinal), max.Ordinal())
		assert.Equal(t, "9999-12-31", max.String())
	})
	t.Run("out of range ordinal fails", func(t *testing.T) {
		_, err := DateFromOrdinal(MaxOrdinal + 1)
		require.Error(t, err)
	})
}

func TestZeroDate(t *testing.T) {
	d, err := NewDate(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, ZeroDate, d)
	assert.Equal(t, "0000-00-00", d.String())
}

// Repeated end-of-month-anchored month addition lands on the last day
// of each destination month.
func TestDateAddEndOfMonthAnchor(t *testing.T) {
	d, err := NewDate(1976, 1, -1)
	require.NoError(t, err)
	assert.Equal(t, "1976-01-31", d.String())

	oneMonth, err := NewDuration(DurationComponents{Months: 1})
	require.NoError(t, err)

	d, err = d.Add(oneMonth)
	require.NoError(t, err)
	assert.Equal(t, "1976-02-29", d.String())

	d, err = d.Add(oneMonth)
	require.NoError(t, err)
	assert.Equal(t, "1976-03-31", d.String())

	d, err = d.Add(oneMonth)
	require.NoError(t, err)
	assert.Equal(t, "1976-04-30", d.String())
}

// Days are applied before months.
func TestDateAddDaysBeforeMonths(t *testing.T) {
	d, err := NewDate(1976, 1, 31)
	require.NoError(t, err)
	dur, err := NewDuration(DurationComponents{Months: 1, Days: 1})
	require.NoError(t, err)
	result, err := d.Add(dur)
	require.NoError(t, err)
	assert.Equal(t, "1976-03-01", result.String())
}

// Subtracting two dates yields a pure day count, with months and
// seconds left at zero.
func TestDateSub(t *testing.T) {
	d1, err := NewDate(2000, 1, 1)
	require.NoError(t, err)
	d2, err := NewDate(1999, 12, 25)
	require.NoError(t, err)
	dur := d1.Sub(d2)
	assert.Equal(t, int64(7), dur.Days)
	assert.Equal(t, int64(0), dur.Months)
	assert.Equal(t, int64(0), dur.Seconds)
}

func TestDateAddRejectsSecondsOrSubseconds(t *testing.T) {
	d, err := NewDate(2020, 1, 1)
	require.NoError(t, err)
	dur, err := NewDuration(DurationComponents{Seconds: 1})
	require.NoError(t, err)
	_, err = d.Add(dur)
	require.Error(t, err)
	var chronoErr *Error
	require.ErrorAs(t, err, &chronoErr)
	assert.Equal(t, ErrInvalidOperation, chronoErr.Kind)
}

func TestDateComparisons(t *testing.T) {
	d1, _ := NewDate(2020, 1, 1)
	d2, _ := NewDate(2020, 1, 2)
	assert.True(t, d1.Before(d2))
	assert.True(t, d2.After(d1))
	assert.True(t, d1.Equal(d1))
}

func TestDateYearWeekDay(t *testing.T) {
	// 2018-04-26 is a Thursday, ISO week 17.
	d, err := NewDate(2018, 4, 26)
	require.NoError(t, err)
	year, week, weekday, err := d.YearWeekDay()
	require.NoError(t, err)
	assert.Equal(t, 2018, year)
	assert.Equal(t, 17, week)
	assert.Equal(t, 4, weekday)
}

func TestDateYearDay(t *testing.T) {
	d, err := NewDate(2018, 3, 1)
	require.NoError(t, err)
	year, yday, err := d.YearDay()
	require.NoError(t, err)
	assert.Equal(t, 2018, year)
	assert.Equal(t, 60, yday) // 31 (Jan) + 28 (Feb) + 1
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2018-04-26")
	require.NoError(t, err)
	assert.Equal(t, "2018-04-26", d.String())

	_, err = ParseDate("not-a-date")
	require.Error(t, err)
}
