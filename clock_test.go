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

func TestNewClockSelectsABackend(t *testing.T) {
	c, err := NewClock()
	require.NoError(t, err)
	assert.NotEmpty(t, c.Backend())
	assert.GreaterOrEqual(t, c.Precision(), 6)
}

func TestClockInstancesHaveDistinctUUIDs(t *testing.T) {
	a, err := NewClock()
	require.NoError(t, err)
	b, err := NewClock()
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, a.Backend(), b.Backend())
}

func TestClockReadUTCIsMonotonicNonDecreasing(t *testing.T) {
	c, err := NewClock()
	require.NoError(t, err)
	first := c.ReadUTC()
	second := c.ReadUTC()
	assert.False(t, second.Before(first))
}

func TestSelectBackendFailsWhenNoneAvailable(t *testing.T) {
	_, err := selectBackend(nil, "")
	require.Error(t, err)
	var chronoErr *Error
	require.ErrorAs(t, err, &chronoErr)
	assert.Equal(t, ErrNoClockAvailable, chronoErr.Kind)
}

func TestSelectBackendHonorsPreferenceOverPrecision(t *testing.T) {
	backends := []clockBackend{monotonicBackend{}, safeBackend{}}
	b, err := selectBackend(backends, "safe")
	require.NoError(t, err)
	assert.Equal(t, "safe", b.Name())
}

func TestSelectBackendFallsBackWhenPreferenceUnusable(t *testing.T) {
	backends := []clockBackend{monotonicBackend{}, safeBackend{}}
	b, err := selectBackend(backends, "native")
	require.NoError(t, err)
	assert.Equal(t, "monotonic", b.Name())
}
