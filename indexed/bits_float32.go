// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexed

import "math"

// isNaNInf32 reports whether x is NaN or ±Inf.
func isNaNInf32(x float32) bool {
	f := float64(x)
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// ufp32 returns the unit in the first place of x.
func ufp32(x float32) float32 {
	if x == 0 {
		return 0
	}
	_, exp := math.Frexp(float64(x))
	return float32(math.Ldexp(1, exp-1))
}

// Scale32 is the single-precision analogue of Scale64: the smallest
// power of 2^scaleBits32 greater than or equal to |x|, capped below the
// overflow threshold.
func Scale32(x float32) float32 {
	if x == 0 {
		return 0
	}
	frac, exp := math.Frexp(math.Abs(float64(x)))
	if frac == 0.5 {
		exp--
	}
	m := ceilDiv(exp, scaleBits32)
	if m*scaleBits32 > maxExp32-1 {
		m = (maxExp32 - 1) / scaleBits32
	}
	return float32(math.Ldexp(1, m*scaleBits32))
}

// index32 returns the bin index of x, clamped to [MinIndex32, MaxIndex32].
func index32(x float32) int {
	if x == 0 {
		return MinIndex32
	}
	_, exp := math.Frexp(float64(x))
	idx := floorDiv(exp-1, W32)
	if idx < MinIndex32 {
		return MinIndex32
	}
	if idx > MaxIndex32 {
		return MaxIndex32
	}
	return idx
}

func indexOfPrimaryIsZero32(p float32) bool {
	return p == 0
}

// forceLSBOne32 returns x with the least significant mantissa bit forced
// to one. See forceLSBOne64.
func forceLSBOne32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) | 1)
}

// binCenter32, binWidth32, and topIndex32 mirror their float64
// counterparts; see bits_float64.go for the geometry.
func binCenter32(idx int) float32 {
	if idx < MinIndex32 {
		idx = MinIndex32
	}
	return float32(math.Ldexp(1.5, idx*W32+P32))
}

func binWidth32(idx int) float32 {
	if idx < MinIndex32 {
		idx = MinIndex32
	}
	return float32(math.Ldexp(1, idx*W32+P32-2))
}

func topIndex32(p0 float32) int {
	_, exp := math.Frexp(float64(p0))
	return floorDiv(exp-1-P32, W32)
}

var (
	compression32 = float32(math.Ldexp(1, -(P32-1)/2))
	expansion32   = float32(math.Ldexp(1, (P32-1)/2))
)
