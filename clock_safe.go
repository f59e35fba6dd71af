//
// chrono
// SPDX-License-Identifier: GPL-3.0
//

package chrono

import "time"

// safeBackend is the fallback every platform supports: the standard
// library's time.Now(), which in practice resolves to microseconds on
// some platforms. It is always available, and ranks lowest precision
// so it is only chosen when neither the monotonic nor native backend
// reports itself usable.
type safeBackend struct{}

func (safeBackend) Name() string { return "safe" }

func (safeBackend) Precision() int { return 6 }

func (safeBackend) Available() bool { return true }

func (safeBackend) Read() ClockTime {
	now := time.Now()
	return ClockTime{Seconds: now.Unix(), Nanoseconds: int32(now.Nanosecond())}
}
