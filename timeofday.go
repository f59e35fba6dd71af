//
// chrono
// SPDX-License-Identifier: GPL-3.0
//

package chrono

import "fmt"

// Time is a time-of-day value: hour, minute and second with nanosecond
// resolution, plus a redundant "ticks" float (seconds since midnight)
// kept in sync at construction time, and an optional Zone. A nil Zone
// makes this a "naive" time with no attached offset information.
type Time struct {
	hour, minute, second int
	nanos                int32
	ticks                float64
	zone                 Zone
}

// NewTime validates and constructs a Time from its calendar components.
// second must be in [0,59]; nanos in [0, 1e9).
func NewTime(hour, minute, second int, nanos int32, zone Zone) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, newError(ErrOutOfRange, "Time.New", "hour out of range (0..23)")
	}
	if minute < 0 || minute > 59 {
		return Time{}, newError(ErrOutOfRange, "Time.New", "minute out of range (0..59)")
	}
	if second < 0 || second > 59 {
		return Time{}, newError(ErrOutOfRange, "Time.New", "second out of range (0..59)")
	}
	if nanos < 0 || nanos >= int32(nanosPerSecond) {
		return Time{}, newError(ErrOutOfRange, "Time.New", "nanos out of range (0..1e9)")
	}
	ticks := float64(hour*3600+minute*60+second) + float64(nanos)/float64(nanosPerSecond)
	return Time{hour: hour, minute: minute, second: second, nanos: nanos, ticks: ticks, zone: zone}, nil
}

// TimeFromTicks constructs a Time from ticks (seconds since midnight),
// requiring 0 <= ticks < 86400.
func TimeFromTicks(ticks float64, zone Zone) (Time, error) {
	if ticks < 0 || ticks >= 86400 {
		return Time{}, newError(ErrOutOfRange, "Time.FromTicks", "ticks out of range [0, 86400)")
	}
	wholeSeconds, subsecNanos := nanoDivmod(ticks)
	minutesTotal, second := symmetricDivmod(wholeSeconds, 60)
	hour, minute := symmetricDivmod(minutesTotal, 60)
	return Time{
		hour: int(hour), minute: int(minute), second: int(second),
		nanos: int32(subsecNanos), ticks: ticks, zone: zone,
	}, nil
}

// Hour, Minute, Second and Nanos return Time's calendar components.
func (t Time) Hour() int     { return t.hour }
func (t Time) Minute() int   { return t.minute }
func (t Time) Second() int   { return t.second }
func (t Time) Nanos() int32  { return t.nanos }
func (t Time) Ticks() float64 { return t.ticks }

// Zone returns the attached Zone, or nil for a naive Time.
func (t Time) Zone() Zone { return t.zone }

func (t Time) clockAndNanos() (hour, minute, second, nanos int) {
	return t.hour, t.minute, t.second, int(t.nanos)
}

// Equal reports whether t and other have identical ticks and zone.
// Two naive Times (nil zone) compare by ticks alone.
func (t Time) Equal(other Time) bool {
	return t.ticks == other.ticks && t.zone == other.zone
}

// Before and After require t and other to share a zone (including both
// being naive); comparing across distinct zones fails with
// ErrInvalidOperation since there is no common instant to order them by.
func (t Time) Before(other Time) (bool, error) {
	if t.zone != other.zone {
		return false, newError(ErrInvalidOperation, "Time.Before", "cannot compare Times in different zones")
	}
	return t.ticks < other.ticks, nil
}

func (t Time) After(other Time) (bool, error) {
	if t.zone != other.zone {
		return false, newError(ErrInvalidOperation, "Time.After", "cannot compare Times in different zones")
	}
	return t.ticks > other.ticks, nil
}

func (t Time) referenceDateTime() DateTime {
	return DateTime{date: UnixEpochDate, time: t}
}

// UTCOffset, DST and TZName delegate to the attached Zone, using
// 1970-01-01 as the reference date the Zone resolves against. ok is
// false when t is naive. A zone-reported offset outside the
// whole-minute/<24h contract fails with ErrInvalidZoneOffset.
func (t Time) UTCOffset() (offset Duration, ok bool, err error) {
	if t.zone == nil {
		return Duration{}, false, nil
	}
	off, err := t.zone.UTCOffset(t.referenceDateTime())
	if err != nil {
		return Duration{}, false, err
	}
	if err := validateZoneOffset("Time.UTCOffset", off); err != nil {
		return Duration{}, false, err
	}
	return off, true, nil
}

func (t Time) DST() (dst Duration, ok bool, err error) {
	if t.zone == nil {
		return Duration{}, false, nil
	}
	d, err := t.zone.DST(t.referenceDateTime())
	if err != nil {
		return Duration{}, false, err
	}
	if err := validateZoneOffset("Time.DST", d); err != nil {
		return Duration{}, false, err
	}
	return d, true, nil
}

func (t Time) TZName() (name string, ok bool) {
	if t.zone == nil {
		return "", false
	}
	return t.zone.Name(t.referenceDateTime()), true
}

// Replace returns a copy of t with the given fields overridden; a nil
// field keeps t's current value. The attached zone is always kept; use
// ReplaceZone to change or clear it.
func (t Time) Replace(hour, minute, second *int, nanos *int32) (Time, error) {
	h, m, s, n := t.hour, t.minute, t.second, t.nanos
	if hour != nil {
		h = *hour
	}
	if minute != nil {
		m = *minute
	}
	if second != nil {
		s = *second
	}
	if nanos != nil {
		n = *nanos
	}
	return NewTime(h, m, s, n, t.zone)
}

// ReplaceZone returns a copy of t attached to zone (which may be nil to
// make t naive).
func (t Time) ReplaceZone(zone Zone) Time {
	t.zone = zone
	return t
}

// String renders "HH:MM:SS[.nnnnnnnnn]".
func (t Time) String() string {
	if t.nanos == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%09d", t.hour, t.minute, t.second, t.nanos)
}

// Midnight is 00:00:00 with no attached zone, used as DateTime.Never's
// time component.
var Midnight = Time{}

// TimeMin and TimeMax are Time's terminal values.
var (
	TimeMin Time
	TimeMax Time
)

func init() {
	var err error
	TimeMin, err = NewTime(0, 0, 0, 0, nil)
	if err != nil {
		panic(err)
	}
	TimeMax, err = NewTime(23, 59, 59, 999_999_999, nil)
	if err != nil {
		panic(err)
	}
}
