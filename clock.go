//
// chrono
// SPDX-License-Identifier: GPL-3.0
//

package chrono

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zerjioang/chrono/internal/logging"
)

var clockLog = logging.Base("clock")

// Clock reads the current instant from whichever registered backend
// reports the highest available precision, selected once per process
// and reused afterward. Every Clock carries a UUID so repeated reads
// logged across a long-running process can be traced back to the
// instance that produced them.
type Clock struct {
	id      uuid.UUID
	backend clockBackend
}

var (
	globalBackendOnce    sync.Once
	globalBackend        clockBackend
	globalBackendErr     error
	preferredBackendName string
)

// SetPreferredBackend records the backend name (Config.PreferredBackend)
// that resolveGlobalBackend should try first. It must be called before
// the first Clock is created — backend selection is resolved once per
// process and memoized, so a call after that point has no effect.
func SetPreferredBackend(name string) {
	preferredBackendName = name
}

func resolveGlobalBackend() (clockBackend, error) {
	globalBackendOnce.Do(func() {
		globalBackend, globalBackendErr = selectBackend(registeredBackends(), preferredBackendName)
		if globalBackendErr == nil {
			clockLog.WithField("backend", globalBackend.Name()).
				WithField("precision", globalBackend.Precision()).
				WithField("preferred", preferredBackendName).
				Info("clock backend selected")
		} else {
			clockLog.WithError(globalBackendErr).Error("no clock backend available")
		}
	})
	return globalBackend, globalBackendErr
}

// NewClock constructs a Clock backed by the process-wide selected
// backend, failing with ErrNoClockAvailable if every registered
// backend reported itself unavailable.
func NewClock() (Clock, error) {
	backend, err := resolveGlobalBackend()
	if err != nil {
		return Clock{}, err
	}
	id := uuid.New()
	clockLog.WithField("clock_id", id.String()).WithField("backend", backend.Name()).Debug("clock instance created")
	return Clock{id: id, backend: backend}, nil
}

// ID returns the Clock instance's UUID, stable for its lifetime.
func (c Clock) ID() uuid.UUID { return c.id }

// Backend returns the selected backend's name ("native", "monotonic",
// or "safe").
func (c Clock) Backend() string { return c.backend.Name() }

// Precision returns the selected backend's resolvable decimal digits
// of a second.
func (c Clock) Precision() int { return c.backend.Precision() }

// ReadUTC returns the current instant as a ClockTime anchored at the
// Unix epoch.
func (c Clock) ReadUTC() ClockTime {
	return c.backend.Read()
}

var (
	localOffsetOnce sync.Once
	localOffset     ClockTime
)

// LocalOffset returns local-minus-UTC, fixed at program start. DST
// changes that occur later while the process runs are not tracked
// here; they are handled via the Zone attached to a Time/DateTime
// instead — Clock itself never tracks DST.
func (c Clock) LocalOffset() ClockTime {
	localOffsetOnce.Do(func() {
		_, offsetSeconds := time.Now().Zone()
		localOffset = NewClockTime(int64(offsetSeconds), 0)
	})
	return localOffset
}
