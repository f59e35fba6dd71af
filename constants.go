//
// chrono
// SPDX-License-Identifier: GPL-3.0
//

package chrono

// Range constants for the representable calendar span.
const (
	MinYear = 1
	MaxYear = 9999

	minInt64 = -(1 << 63)
	maxInt64 = (1 << 63) - 1

	// MinInt64 and MaxInt64 are exported for callers constructing
	// Duration components close to their representable limits.
	MinInt64 = minInt64
	MaxInt64 = maxInt64

	// MaxOrdinal is the ordinal of 9999-12-31, the last representable Date.
	MaxOrdinal = 3_652_059
)
