//
// chrono
// SPDX-License-Identifier: GPL-3.0
//

package chrono

import (
	"fmt"
	"time"
)

// DateTime pairs a Date with a Time; the Time carries any attached
// Zone. Equality and ordering compose lexicographically, date first.
type DateTime struct {
	date Date
	time Time
}

// NewDateTime validates and composes a full calendar timestamp.
func NewDateTime(year, month, day, hour, minute, second int, nanos int32, zone Zone) (DateTime, error) {
	d, err := NewDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	t, err := NewTime(hour, minute, second, nanos, zone)
	if err != nil {
		return DateTime{}, err
	}
	return CombineDateTime(d, t), nil
}

// CombineDateTime is the low-level constructor pairing an already-valid
// Date and Time.
func CombineDateTime(date Date, t Time) DateTime {
	return DateTime{date: date, time: t}
}

// UnixEpochDate is 1970-01-01, used as the reference date for Time's
// zone delegation and as DateTime's "from_clock_time" default epoch.
var UnixEpochDate Date

// UnixEpoch is 1970-01-01T00:00:00.
var UnixEpoch DateTime

// OrdinalEpoch is 0001-01-01T00:00:00, the fixed reference ToClockTime
// is always computed against; DateTimeFromClockTime must be called
// with this same epoch to invert a DateTime.ToClockTime() result.
var OrdinalEpoch DateTime

// DateTimeMin, DateTimeMax and Never are DateTime's terminal values.
// Never pairs ZeroDate with Midnight, outside the valid calendar range.
var (
	DateTimeMin DateTime
	DateTimeMax DateTime
	Never       DateTime
)

func init() {
	var err error
	UnixEpochDate, err = NewDate(1970, 1, 1)
	if err != nil {
		panic(err)
	}
	UnixEpoch = CombineDateTime(UnixEpochDate, Midnight)
	OrdinalEpoch = CombineDateTime(DateMin, Midnight)
	DateTimeMin = CombineDateTime(DateMin, TimeMin)
	DateTimeMax = CombineDateTime(DateMax, TimeMax)
	Never = CombineDateTime(ZeroDate, Midnight)
}

// Date returns the date component.
func (dt DateTime) Date() Date { return dt.date }

// Time returns the time-of-day component.
func (dt DateTime) Time() Time { return dt.time }

// Year, Month, Day, Hour, Minute, Second and Nanos forward to the
// underlying Date/Time components.
func (dt DateTime) Year() int     { return dt.date.Year() }
func (dt DateTime) Month() int    { return dt.date.Month() }
func (dt DateTime) Day() int      { return dt.date.Day() }
func (dt DateTime) Hour() int     { return dt.time.Hour() }
func (dt DateTime) Minute() int   { return dt.time.Minute() }
func (dt DateTime) Second() int   { return dt.time.Second() }
func (dt DateTime) Nanos() int32  { return dt.time.Nanos() }

// WithZone returns a copy of dt with its Time re-attached to zone.
func (dt DateTime) WithZone(zone Zone) DateTime {
	return CombineDateTime(dt.date, dt.time.ReplaceZone(zone))
}

// Replace returns a copy of dt with the given fields overridden; a nil
// field keeps dt's current value.
func (dt DateTime) Replace(year, month, day, hour, minute, second *int, nanos *int32) (DateTime, error) {
	d, err := dt.date.Replace(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	t, err := dt.time.Replace(hour, minute, second, nanos)
	if err != nil {
		return DateTime{}, err
	}
	return CombineDateTime(d, t), nil
}

// ToClockTime sums days_in_year(y) for y in 1..year-1, days_in_month(m)
// for m in 1..month-1, (day-1) days, and the time-of-day ticks — which
// is exactly (ordinal-1) days of 86400 seconds plus ticks, since Date's
// ordinal is already that same double sum. The epoch of this value is
// 0001-01-01T00:00:00.
func (dt DateTime) ToClockTime() ClockTime {
	daysBeforeDate := dt.date.Ordinal() - 1
	wholeSeconds, subsecNanos := nanoDivmod(dt.time.Ticks())
	return NewClockTime(daysBeforeDate*86400+wholeSeconds, subsecNanos)
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// DateTimeFromClockTime converts a ClockTime relative to epoch into a
// DateTime: it splits ct's seconds into whole days and seconds-of-day,
// advances epoch's date by that many days, and folds the seconds-of-day
// plus nanoseconds into epoch's time-of-day via Time.FromTicks.
func DateTimeFromClockTime(ct ClockTime, epoch DateTime) (DateTime, error) {
	days := floorDiv(ct.Seconds, 86400)
	secondsOfDay := floorMod(ct.Seconds, 86400)

	d, err := DateFromOrdinal(days + epoch.date.Ordinal())
	if err != nil {
		return DateTime{}, err
	}

	nanoseconds := nanosPerSecond*secondsOfDay + int64(ct.Nanoseconds)
	ticks := epoch.time.Ticks() + float64(nanoseconds)/float64(nanosPerSecond)
	t, err := TimeFromTicks(ticks, epoch.time.Zone())
	if err != nil {
		return DateTime{}, err
	}
	return CombineDateTime(d, t), nil
}

// Now reads the process Clock and returns the current DateTime. With a
// nil zone it returns local time (UTC instant shifted by the Clock's
// fixed local offset); with a non-nil zone it reads UTC and delegates
// the conversion to zone.FromUTC.
func Now(zone Zone) (DateTime, error) {
	clock, err := NewClock()
	if err != nil {
		return DateTime{}, err
	}
	utc := clock.ReadUTC()
	if zone == nil {
		local := utc.Add(clock.LocalOffset())
		return DateTimeFromClockTime(local, UnixEpoch)
	}
	utcDateTime, err := DateTimeFromClockTime(utc, UnixEpoch)
	if err != nil {
		return DateTime{}, err
	}
	return zone.FromUTC(utcDateTime.WithZone(zone))
}

// shiftByClockTime splits total (an elapsed ClockTime measured from the
// ordinal epoch) into whole days and a seconds-of-day remainder using
// symmetricDivmod rather than DateTimeFromClockTime's floor-based split:
// a seconds-of-day remainder that lands outside [0, 86400) must fail
// with ErrOutOfRange instead of silently wrapping into the previous or
// next day. This also guarantees the resulting ordinal is never passed
// to DateFromOrdinal as 0, so the ZeroDate "no date" sentinel can never
// surface as the result of DateTime arithmetic.
func shiftByClockTime(total ClockTime, zone Zone) (DateTime, error) {
	days, secondsOfDay := symmetricDivmod(total.Seconds, 86400)
	ordinal := days + OrdinalEpoch.date.Ordinal()
	if ordinal < 1 || ordinal > MaxOrdinal {
		return DateTime{}, newError(ErrOutOfRange, "DateTime.shiftByClockTime", "ordinal out of range (1..%d)", MaxOrdinal)
	}
	d, err := DateFromOrdinal(ordinal)
	if err != nil {
		return DateTime{}, err
	}
	nanoseconds := nanosPerSecond*secondsOfDay + int64(total.Nanoseconds)
	ticks := float64(nanoseconds) / float64(nanosPerSecond)
	t, err := TimeFromTicks(ticks, zone)
	if err != nil {
		return DateTime{}, err
	}
	return CombineDateTime(d, t), nil
}

// AddClockTime returns dt advanced by an elapsed interval, converting
// through ClockTime relative to the ordinal epoch (ToClockTime's own
// fixed reference) via symmetric divmod, then re-attaching dt's
// original zone.
func (dt DateTime) AddClockTime(interval ClockTime) (DateTime, error) {
	return shiftByClockTime(dt.ToClockTime().Add(interval), dt.time.Zone())
}

// SubClockTime returns dt moved back by an elapsed interval.
func (dt DateTime) SubClockTime(interval ClockTime) (DateTime, error) {
	return shiftByClockTime(dt.ToClockTime().Sub(interval), dt.time.Zone())
}

// Sub returns the calendar distance dt - other as a Duration whose
// months/days/seconds components are each computed independently and
// kept signed without cross-component normalization: Δmonths =
// 12·Δyear + Δmonth, Δdays = day1 - day2, Δseconds(+subseconds) =
// ticks1 - ticks2. The result can have mixed-sign components (e.g. +3
// months, -25 days) by design — this mirrors how humans describe
// calendar gaps, and is the inverse of Date.Add(Duration).
func (dt DateTime) Sub(other DateTime) (Duration, error) {
	y1, m1, d1 := dt.date.YearMonthDay()
	y2, m2, d2 := other.date.YearMonthDay()
	deltaMonths := int64(12*(y1-y2) + (m1 - m2))
	deltaDays := int64(d1 - d2)

	wholeSeconds1, ns1 := nanoDivmod(dt.time.Ticks())
	wholeSeconds2, ns2 := nanoDivmod(other.time.Ticks())
	totalNanos := (wholeSeconds1-wholeSeconds2)*nanosPerSecond + (ns1 - ns2)
	deltaSeconds, subsecNanos := symmetricDivmod(totalNanos, nanosPerSecond)

	return newDurationRaw("DateTime.Sub", deltaMonths, deltaDays, deltaSeconds, subsecNanos)
}

// Equal reports whether dt and other agree on date, time-of-day and
// zone.
func (dt DateTime) Equal(other DateTime) bool {
	return dt.date.Equal(other.date) && dt.time.Equal(other.time)
}

// Before and After compare dt and other lexicographically, date then
// time; comparing Times attached to different zones fails with
// ErrInvalidOperation.
func (dt DateTime) Before(other DateTime) (bool, error) {
	if !dt.date.Equal(other.date) {
		return dt.date.Before(other.date), nil
	}
	return dt.time.Before(other.time)
}

func (dt DateTime) After(other DateTime) (bool, error) {
	if !dt.date.Equal(other.date) {
		return dt.date.After(other.date), nil
	}
	return dt.time.After(other.time)
}

// AsTimezone converts dt into zone's local representation by first
// expressing dt as a UTC instant via its own attached zone's offset,
// then delegating to zone.FromUTC.
func (dt DateTime) AsTimezone(zone Zone) (DateTime, error) {
	offset, ok, err := dt.time.UTCOffset()
	if err != nil {
		return DateTime{}, err
	}
	if !ok {
		return DateTime{}, newError(ErrInvalidOperation, "DateTime.AsTimezone", "cannot convert a naive DateTime between zones")
	}
	utc, err := dt.SubClockTime(ClockTime{Seconds: offset.Seconds})
	if err != nil {
		return DateTime{}, err
	}
	return zone.FromUTC(utc.WithZone(zone))
}

func newDateTimeFromStdTime(t time.Time) (DateTime, error) {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return NewDateTime(y, int(mo), d, h, mi, s, int32(t.Nanosecond()), nil)
}

// String renders "YYYY-MM-DDTHH:MM:SS[.fffffffff]".
func (dt DateTime) String() string {
	return fmt.Sprintf("%sT%s", dt.date.String(), dt.time.String())
}
