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

// ToClockTime measures elapsed seconds and nanoseconds since the
// ordinal epoch, 0001-01-01T00:00:00.
func TestDateTimeToClockTime(t *testing.T) {
	dt, err := NewDateTime(2018, 4, 26, 23, 0, 17, 914_390_409, nil)
	require.NoError(t, err)

	ct := dt.ToClockTime()
	assert.Equal(t, int64(63_660_380_417), ct.Seconds)
	assert.Equal(t, int32(914_390_409), ct.Nanoseconds)
}

// Adding a whole-day interval carries into the date while leaving the
// time-of-day untouched.
func TestDateTimeAddClockTimeInterval(t *testing.T) {
	dt, err := NewDateTime(2018, 4, 26, 23, 0, 17, 914_390_409, nil)
	require.NoError(t, err)

	advanced, err := dt.AddClockTime(ClockTime{Seconds: 86400})
	require.NoError(t, err)

	assert.Equal(t, 2018, advanced.Year())
	assert.Equal(t, 4, advanced.Month())
	assert.Equal(t, 27, advanced.Day())
	assert.Equal(t, 23, advanced.Hour())
	assert.Equal(t, 0, advanced.Minute())
	assert.Equal(t, 17, advanced.Second())
	assert.Equal(t, int32(914_390_409), advanced.Nanos())
}

// DateTime subtraction keeps months and days as independent, possibly
// opposite-signed components rather than normalizing across them.
func TestDateTimeSubMixedSign(t *testing.T) {
	a, err := NewDateTime(2018, 4, 1, 23, 0, 17, 914_390_409, nil)
	require.NoError(t, err)
	b, err := NewDateTime(2018, 1, 26, 0, 0, 0, 0, nil)
	require.NoError(t, err)

	dur, err := a.Sub(b)
	require.NoError(t, err)

	assert.Equal(t, int64(3), dur.Months)
	assert.Equal(t, int64(-25), dur.Days)

	hours, minutes, seconds := dur.HoursMinutesSeconds()
	assert.Equal(t, int64(23), hours)
	assert.Equal(t, int64(0), minutes)
	assert.InDelta(t, 17.914390409, seconds, 1e-9)
}

func TestDateTimeFromClockTimeRoundTrip(t *testing.T) {
	dt, err := NewDateTime(2018, 4, 26, 23, 0, 17, 914_390_409, nil)
	require.NoError(t, err)

	recovered, err := DateTimeFromClockTime(dt.ToClockTime(), OrdinalEpoch)
	require.NoError(t, err)
	assert.True(t, dt.Equal(recovered))
}

// A negative elapsed interval crossing before the ordinal epoch must
// fail rather than silently landing on the ZeroDate sentinel.
func TestAddClockTimeBeforeOrdinalEpochFails(t *testing.T) {
	_, err := OrdinalEpoch.AddClockTime(ClockTime{Seconds: -1})
	require.Error(t, err)
	var chronoErr *Error
	require.ErrorAs(t, err, &chronoErr)
	assert.Equal(t, ErrOutOfRange, chronoErr.Kind)
}

func TestNowProducesAClock(t *testing.T) {
	dt, err := Now(nil)
	require.NoError(t, err)
	assert.True(t, dt.Year() >= 2024)
}

func TestDateTimeTerminalValues(t *testing.T) {
	assert.Equal(t, DateMin, DateTimeMin.Date())
	assert.Equal(t, DateMax, DateTimeMax.Date())
	assert.Equal(t, ZeroDate, Never.Date())
	assert.Equal(t, 1970, UnixEpoch.Year())
}
