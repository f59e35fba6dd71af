//go:build unix

//
// chrono
// SPDX-License-Identifier: GPL-3.0
//

package chrono

import "golang.org/x/sys/unix"

// nativeBackend calls clock_gettime(CLOCK_REALTIME, ...) directly via
// golang.org/x/sys/unix, the top-precision backend alongside a
// monotonic reading and a safe fallback.
type nativeBackend struct{}

func (nativeBackend) Name() string { return "native" }

func (nativeBackend) Precision() int { return 9 }

func (nativeBackend) Available() bool {
	var ts unix.Timespec
	return unix.ClockGettime(unix.CLOCK_REALTIME, &ts) == nil
}

func (nativeBackend) Read() ClockTime {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &ts); err != nil {
		return ClockTime{}
	}
	return ClockTime{Seconds: int64(ts.Sec), Nanoseconds: int32(ts.Nsec)}
}
