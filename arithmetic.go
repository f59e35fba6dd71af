//
// chrono
// SPDX-License-Identifier: GPL-3.0
//

package chrono

import (
	"github.com/govalues/decimal"
)

const nanosPerSecond int64 = 1_000_000_000

// symmetricDivmod divides n by d (d > 0) truncating the quotient toward
// zero, so the remainder always shares the sign of n (or is zero). This
// is the carry rule used everywhere a signed component must not flip
// sign across a divmod. It gives the same result as Go's own integer /
// and % (both truncate toward zero), and differs from the floor-style
// divmod used elsewhere in the calendar literature.
func symmetricDivmod(n, d int64) (q, r int64) {
	q = n / d
	r = n - q*d
	return q, r
}

// nanoAdd combines two signed subsecond fractions (each in (-1,1),
// expressed as nanoseconds) with a signed seconds carry. It returns the
// carry (-1, 0 or 1 whole seconds) and the resulting subsecond
// nanoseconds, which share sign with the carry-adjusted total.
func nanoAdd(aNanos, bNanos int64) (carrySeconds int64, subsecNanos int64) {
	return symmetricDivmod(aNanos+bNanos, nanosPerSecond)
}

func nanoSub(aNanos, bNanos int64) (carrySeconds int64, subsecNanos int64) {
	return nanoAdd(aNanos, -bNanos)
}

// nanoMul scales a subsecond fraction by an integer multiplier, folding
// any overflow into a whole-second carry.
func nanoMul(subsecNanos, n int64) (carrySeconds int64, resultNanos int64) {
	return symmetricDivmod(subsecNanos*n, nanosPerSecond)
}

// nanoDivmod splits ticks (a non-negative float made of whole and
// fractional seconds) into an integer quotient and the fractional
// nanosecond remainder, used by Time.FromTicks style conversions.
func nanoDivmod(ticks float64) (whole int64, subsecNanos int64) {
	whole = int64(ticks)
	frac := ticks - float64(whole)
	subsecNanos = int64(frac*float64(nanosPerSecond) + 0.5)
	if subsecNanos >= nanosPerSecond {
		whole++
		subsecNanos -= nanosPerSecond
	}
	return whole, subsecNanos
}

// checkedMulAdd computes a*b+c and reports whether that computation
// overflowed int64. It backs the places that must report ErrOutOfRange
// on an int64 overflow that Go's wraparound arithmetic would otherwise
// hide silently (months/days/seconds fusion during Duration
// construction and scalar multiplication).
func checkedMulAdd(a, b, c int64) (result int64, overflowed bool) {
	if a != 0 && b != 0 {
		product := a * b
		if product/b != a {
			return 0, true
		}
		sum := product + c
		if (product > 0 && c > 0 && sum < 0) || (product < 0 && c < 0 && sum >= 0) {
			return 0, true
		}
		return sum, false
	}
	return c, false
}

// roundHalfToEven performs banker's rounding of x to the nearest
// integer, ties rounding to the nearest even integer. This backs
// Duration's months/days modulo and scalar multiplication/division,
// where the required rounding must match IEEE 754 roundTiesToEven
// rather than the "round half away from zero" a naive float round gives.
//
// The computation is delegated to github.com/govalues/decimal, whose
// Quo/Round operations round to nearest-even; this avoids a hand-rolled
// float-based implementation for a rounding mode that is easy to get
// subtly wrong at the tie boundary.
func roundHalfToEven(x float64) int64 {
	d, err := decimal.NewFromFloat64(x)
	if err != nil {
		return int64(x)
	}
	rounded := d.Round(0)
	whole, ok := rounded.Int64()
	if !ok {
		return int64(x)
	}
	return whole
}
