// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexed

import "math"

// isNaNInf64 reports whether x is NaN or ±Inf.
func isNaNInf64(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// ufp64 returns the unit in the first place of x: the pure power of two
// equal to the implicit-one position of |x|'s mantissa.
func ufp64(x float64) float64 {
	if x == 0 {
		return 0
	}
	_, exp := math.Frexp(x)
	return math.Ldexp(1, exp-1)
}

// Scale64 returns the smallest power of 2^scaleBits64 greater than or
// equal to |x|, the dynamic scale used by the scaled sum-of-squares
// kernels. Keeping the scale on this coarser grid makes every rescale
// ratio a power of the bin width, so rescaling never knocks an
// accumulator off the bin grid. The result is capped below the overflow
// threshold; the cap only matters within a few bin widths of the largest
// finite value, where the squared ratio stays small enough to deposit.
func Scale64(x float64) float64 {
	if x == 0 {
		return 0
	}
	frac, exp := math.Frexp(math.Abs(x))
	if frac == 0.5 {
		exp--
	}
	m := ceilDiv(exp, scaleBits64)
	if m*scaleBits64 > maxExp64-1 {
		m = (maxExp64 - 1) / scaleBits64
	}
	return math.Ldexp(1, m*scaleBits64)
}

// index64 returns the bin index of x: floor(exponent(|x|)/W64), clamped to
// [MinIndex64, MaxIndex64]. Zero maps to the index-zero sentinel.
func index64(x float64) int {
	if x == 0 {
		return MinIndex64
	}
	_, exp := math.Frexp(x)
	idx := floorDiv(exp-1, W64)
	if idx < MinIndex64 {
		return MinIndex64
	}
	if idx > MaxIndex64 {
		return MaxIndex64
	}
	return idx
}

// indexOfPrimaryIsZero64 reports whether p represents an uninitialized
// indexed accumulator.
func indexOfPrimaryIsZero64(p float64) bool {
	return p == 0
}

// forceLSBOne64 returns x with the least significant bit of its mantissa
// forced to one. Pre-rounding a value this way before adding it to a bin
// center guarantees that the rounding of the addition is never exact to
// the bin's last representable value, so the residual of the addition is
// itself exactly representable, regardless of the order prior deposits
// arrived in.
func forceLSBOne64(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x) | 1)
}

// binCenter64 returns the exact bin center for bin index idx:
// 1.5 * 2^(idx*W64 + P64), sitting P64 bits above the bin's value range
// so that deposits only perturb the center's low mantissa bits and its
// exponent never moves between renormalizes. Indexes below MinIndex64
// (the sub-window bins of a bottom-of-range window) share MinIndex64's
// center; shifts only ever move such bins further down the window, so
// the repetition stays self-consistent.
func binCenter64(idx int) float64 {
	if idx < MinIndex64 {
		idx = MinIndex64
	}
	return math.Ldexp(1.5, idx*W64+P64)
}

// binWidth64 returns the carry chunk for bin index idx: a quarter of the
// bin center's unit in the first place. Renormalize moves primary terms
// back toward their center in multiples of this chunk, and convert
// weighs the carry counters by it.
func binWidth64(idx int) float64 {
	if idx < MinIndex64 {
		idx = MinIndex64
	}
	return math.Ldexp(1, idx*W64+P64-2)
}

// topIndex64 recovers the top-bin index encoded in primary[0], whose
// exponent is pinned at its bin center's: ufp(primary[0]) == 2^(top*W64
// + P64) for every reachable accumulator state.
func topIndex64(p0 float64) int {
	_, exp := math.Frexp(p0)
	return floorDiv(exp-1-P64, W64)
}

// Top-bin compression/expansion factors used only when depositing into
// a freshly seeded accumulator's top bin, to recover
// roughly half a bit of precision that would otherwise be lost to
// pre-rounding immediately after seeding. Both factors are exact powers of
// two and exact inverses of one another, so applying and later
// compensating for them introduces no additional rounding.
var (
	compression64 = math.Ldexp(1, -(P64-1)/2)
	expansion64   = math.Ldexp(1, (P64-1)/2)
)
