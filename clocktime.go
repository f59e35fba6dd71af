//
// chrono
// SPDX-License-Identifier: GPL-3.0
//

package chrono

import "fmt"

// ClockTime is a dual-purpose (seconds, nanoseconds) pair: it represents
// either an absolute instant read from a Clock, or an elapsed interval
// produced by subtracting two such instants. Nanoseconds is always
// normalized into [0, 1e9) with Seconds carrying the sign.
type ClockTime struct {
	Seconds     int64
	Nanoseconds int32
}

// NewClockTime normalizes (seconds, nanoseconds) into canonical form,
// folding any nanoseconds outside [0, 1e9) into the seconds component.
func NewClockTime(seconds int64, nanoseconds int64) ClockTime {
	extraSeconds, normNanos := symmetricDivmod(nanoseconds, nanosPerSecond)
	seconds += extraSeconds
	if normNanos < 0 {
		normNanos += nanosPerSecond
		seconds--
	}
	return ClockTime{Seconds: seconds, Nanoseconds: int32(normNanos)}
}

// Add returns t + other.
func (t ClockTime) Add(other ClockTime) ClockTime {
	return NewClockTime(t.Seconds+other.Seconds, int64(t.Nanoseconds)+int64(other.Nanoseconds))
}

// Sub returns t - other.
func (t ClockTime) Sub(other ClockTime) ClockTime {
	return NewClockTime(t.Seconds-other.Seconds, int64(t.Nanoseconds)-int64(other.Nanoseconds))
}

// SecondsAsFloat returns the (seconds, nanoseconds) pair collapsed into a
// single float64 count of seconds, for callers that accept a rounding
// error in exchange for a scalar.
func (t ClockTime) SecondsAsFloat() float64 {
	return float64(t.Seconds) + float64(t.Nanoseconds)/float64(nanosPerSecond)
}

// Equal, Before and After compare t and other as a lexicographic
// (seconds, nanoseconds) pair.
func (t ClockTime) Equal(other ClockTime) bool {
	return t.Seconds == other.Seconds && t.Nanoseconds == other.Nanoseconds
}

func (t ClockTime) Before(other ClockTime) bool {
	if t.Seconds != other.Seconds {
		return t.Seconds < other.Seconds
	}
	return t.Nanoseconds < other.Nanoseconds
}

func (t ClockTime) After(other ClockTime) bool {
	if t.Seconds != other.Seconds {
		return t.Seconds > other.Seconds
	}
	return t.Nanoseconds > other.Nanoseconds
}

// String renders "%d.%09ds".
func (t ClockTime) String() string {
	return fmt.Sprintf("%d.%09ds", t.Seconds, t.Nanoseconds)
}
