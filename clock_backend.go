//
// chrono
// SPDX-License-Identifier: GPL-3.0
//

package chrono

// clockBackend is a single source of wall-clock readings. Backends are
// tried in descending Precision() order; the first one whose
// Available() returns true is selected once and memoized for the life
// of the process.
type clockBackend interface {
	// Name identifies the backend in logs ("native", "monotonic", "safe").
	Name() string
	// Precision is the number of significant decimal digits of a second
	// this backend can resolve: 9 for nanosecond backends, 6 for a
	// microsecond-resolution fallback.
	Precision() int
	// Available reports whether this backend can be used on the current
	// platform; it must be cheap and side-effect-free.
	Available() bool
	// Read returns the current wall-clock time as a ClockTime anchored
	// at the Unix epoch.
	Read() ClockTime
}

// registeredBackends lists every backend this module ships. selectBackend
// picks the available one with the highest precision; between backends of
// equal precision the earlier entry in this list wins.
func registeredBackends() []clockBackend {
	return []clockBackend{
		nativeBackend{},
		monotonicBackend{},
		safeBackend{},
	}
}

// selectBackend picks preferred by name if it is registered and
// available; otherwise (including when preferred is empty or names a
// backend that isn't usable) it falls back to the available backend
// with the highest precision.
func selectBackend(backends []clockBackend, preferred string) (clockBackend, error) {
	if preferred != "" {
		for _, b := range backends {
			if b.Name() == preferred && b.Available() {
				return b, nil
			}
		}
	}
	var best clockBackend
	bestPrecision := -1
	for _, b := range backends {
		if !b.Available() {
			continue
		}
		if b.Precision() > bestPrecision {
			best = b
			bestPrecision = b.Precision()
		}
	}
	if best == nil {
		return nil, newError(ErrNoClockAvailable, "Clock.New", "no registered backend reported itself available")
	}
	return best, nil
}
