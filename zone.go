//
// chrono
// SPDX-License-Identifier: GPL-3.0
//

package chrono

import (
	_ "time/tzdata" // embed the IANA database so IANAZone works without a system copy

	"time"
)

// Zone is the tzinfo-style contract Time and DateTime consult for
// offset, daylight-saving and naming information. A nil Zone means
// "naive" — no attached zone.
type Zone interface {
	// UTCOffset returns local-minus-UTC for the given DateTime, or an
	// error-carrying ErrInvalidZoneOffset-flagged offset (checked by the
	// caller against the whole-minute/<24h contract).
	UTCOffset(dt DateTime) (Duration, error)
	// DST returns the daylight-saving adjustment in effect for dt, or
	// the zero Duration if the zone has none.
	DST(dt DateTime) (Duration, error)
	// Name returns the zone's display name for dt ("UTC", "EST", ...).
	Name(dt DateTime) string
	// FromUTC converts a DateTime expressed in UTC into this zone's
	// local representation.
	FromUTC(dt DateTime) (DateTime, error)
}

func validateZoneOffset(op string, offset Duration) error {
	if offset.Seconds%60 != 0 || offset.subsecNanos != 0 {
		return newError(ErrInvalidZoneOffset, op, "zone offset must be a whole number of minutes")
	}
	if absInt64(offset.Seconds) >= 24*3600 {
		return newError(ErrInvalidZoneOffset, op, "zone offset must be strictly less than 24h")
	}
	return nil
}

// fixedZone is a Zone with a constant UTC offset and no daylight-saving
// rule.
type fixedZone struct {
	name      string
	offset    Duration
}

// FixedZone returns a Zone at a constant offset from UTC. offsetSeconds
// must be a whole number of minutes and strictly less than 24h in
// magnitude, else construction fails with ErrInvalidZoneOffset.
func FixedZone(name string, offsetSeconds int64) (Zone, error) {
	offset, err := NewDuration(DurationComponents{Seconds: offsetSeconds})
	if err != nil {
		return nil, err
	}
	if err := validateZoneOffset("Zone.FixedZone", offset); err != nil {
		return nil, err
	}
	return fixedZone{name: name, offset: offset}, nil
}

func (z fixedZone) UTCOffset(DateTime) (Duration, error) { return z.offset, nil }

func (z fixedZone) DST(DateTime) (Duration, error) { return Duration{}, nil }

func (z fixedZone) Name(DateTime) string { return z.name }

func (z fixedZone) FromUTC(dt DateTime) (DateTime, error) {
	shifted, err := dt.AddClockTime(ClockTime{Seconds: z.offset.Seconds})
	if err != nil {
		return DateTime{}, err
	}
	return shifted.WithZone(z), nil
}

// UTC and GMT are the two zero-offset singleton zones.
var (
	UTC Zone = fixedZone{name: "UTC"}
	GMT Zone = fixedZone{name: "GMT"}
)

// ianaZone adapts the standard library's *time.Location (backed by
// time/tzdata, blank-imported above) to the Zone interface, so callers
// can attach a named IANA zone ("America/New_York") without the module
// reinventing tzdata parsing.
type ianaZone struct {
	loc *time.Location
}

// LoadZone resolves name ("UTC", "America/New_York", ...) against the
// embedded IANA database.
func LoadZone(name string) (Zone, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, newError(ErrNotSupported, "Zone.Load", "unknown IANA zone %q: %v", name, err)
	}
	return ianaZone{loc: loc}, nil
}

func (z ianaZone) stdTime(dt DateTime) time.Time {
	y, mo, d := dt.date.YearMonthDay()
	h, mi, s, ns := dt.time.clockAndNanos()
	return time.Date(y, time.Month(mo), d, h, mi, s, ns, z.loc)
}

func (z ianaZone) UTCOffset(dt DateTime) (Duration, error) {
	_, offsetSeconds := z.stdTime(dt).Zone()
	return NewDuration(DurationComponents{Seconds: int64(offsetSeconds)})
}

func (z ianaZone) DST(dt DateTime) (Duration, error) {
	std := z.stdTime(dt)
	_, offset := std.Zone()
	// time.Location does not expose the standard (non-DST) offset
	// directly; the smaller of the offsets in effect on January 1st and
	// July 1st of the same year approximates the "no DST" baseline, since
	// one of those two dates lies outside DST in either hemisphere.
	_, janOffset := time.Date(std.Year(), time.January, 1, 0, 0, 0, 0, z.loc).Zone()
	_, julOffset := time.Date(std.Year(), time.July, 1, 0, 0, 0, 0, z.loc).Zone()
	standard := min(janOffset, julOffset)
	if offset == standard {
		return Duration{}, nil
	}
	return NewDuration(DurationComponents{Seconds: int64(offset - standard)})
}

func (z ianaZone) Name(dt DateTime) string {
	name, _ := z.stdTime(dt).Zone()
	return name
}

func (z ianaZone) FromUTC(dt DateTime) (DateTime, error) {
	y, mo, d := dt.date.YearMonthDay()
	h, mi, s, ns := dt.time.clockAndNanos()
	local := time.Date(y, time.Month(mo), d, h, mi, s, ns, time.UTC).In(z.loc)
	converted, err := newDateTimeFromStdTime(local)
	if err != nil {
		return DateTime{}, err
	}
	return converted.WithZone(z), nil
}
