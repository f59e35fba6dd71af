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

func TestFixedZoneOffset(t *testing.T) {
	zone, err := FixedZone("PST", -8*3600)
	require.NoError(t, err)

	dt, err := NewDateTime(2020, 1, 1, 0, 0, 0, 0, zone)
	require.NoError(t, err)

	offset, err := zone.UTCOffset(dt)
	require.NoError(t, err)
	assert.Equal(t, int64(-8*3600), offset.Seconds)
	assert.Equal(t, "PST", zone.Name(dt))
}

func TestUTCAndGMTAreZeroOffset(t *testing.T) {
	dt, err := NewDateTime(2020, 1, 1, 0, 0, 0, 0, UTC)
	require.NoError(t, err)
	offset, err := UTC.UTCOffset(dt)
	require.NoError(t, err)
	assert.True(t, offset.IsZero())

	gmtOffset, err := GMT.UTCOffset(dt)
	require.NoError(t, err)
	assert.True(t, gmtOffset.IsZero())
}

func TestFixedZoneFromUTC(t *testing.T) {
	zone, err := FixedZone("JST", 9*3600)
	require.NoError(t, err)

	utcDT, err := NewDateTime(2020, 1, 1, 0, 0, 0, 0, nil)
	require.NoError(t, err)

	local, err := zone.FromUTC(utcDT)
	require.NoError(t, err)
	assert.Equal(t, 9, local.Hour())
	assert.Equal(t, "JST", local.Time().Zone().Name(local))
}

func TestLoadZoneUTC(t *testing.T) {
	zone, err := LoadZone("UTC")
	require.NoError(t, err)
	dt, err := NewDateTime(2020, 6, 1, 12, 0, 0, 0, zone)
	require.NoError(t, err)
	offset, err := zone.UTCOffset(dt)
	require.NoError(t, err)
	assert.True(t, offset.IsZero())
}
