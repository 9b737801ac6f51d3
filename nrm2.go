// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reproblas

import (
	"math"

	"github.com/dasswap/reproblas/indexed"
)

// Dssq returns scale and ssq such that the true sum of squares of the n
// elements of x equals scale*scale*ssq, computed reproducibly and
// without overflowing or underflowing the squaring step even when x
// spans the full dynamic range of float64,.
func Dssq(n int, x []float64, incX int) (scale, ssq float64) {
	return DssqFold(indexed.DefaultFold64, n, x, incX)
}

// DssqFold is Dssq with an explicit accumulator fold.
func DssqFold(fold, n int, x []float64, incX int) (scale, ssq float64) {
	if n < 0 {
		reportError(errNegativeN)
		return 0, 0
	}
	if incX == 0 {
		reportError(errZeroIncX)
		return 0, 0
	}
	if !checkVectorLen(n, len(x), incX) {
		reportError(errShortX)
		return 0, 0
	}
	if n == 0 {
		return 0, 0
	}
	fold, ok := clampFold(fold, indexed.DefaultFold64, indexed.MaxFold64)
	if !ok {
		return 0, 0
	}
	primary := make([]float64, fold)
	carry := make([]float64, fold)
	indexed.SetZero64(fold, primary, 1, carry, 1)

	off := 0
	if incX < 0 {
		off = -(n - 1) * incX
	}
	scale = 0
	for start := 0; start < n; start += indexed.Endurance64 {
		blk := blockSize64(n - start)
		var max float64
		for i := 0; i < blk; i++ {
			if a := math.Abs(x[off+(start+i)*incX]); a > max {
				max = a
			}
		}
		if max > scale {
			newScale := indexed.Scale64(max)
			indexed.Rescale64(fold, newScale, scale, primary, 1, carry, 1)
			scale = newScale
		}
		depositBlock64(fold, blk, func(i int) float64 {
			v := x[off+(start+i)*incX]
			if scale != 0 {
				v /= scale
			}
			return v * v
		}, primary, 1, carry, 1)
	}
	ssq = indexed.Convert64(fold, primary, 1, carry, 1)
	return scale, ssq
}

// Dnrm2 returns the reproducible Euclidean norm of x.
func Dnrm2(n int, x []float64, incX int) float64 {
	return Dnrm2Fold(indexed.DefaultFold64, n, x, incX)
}

// Dnrm2Fold is Dnrm2 with an explicit accumulator fold.
func Dnrm2Fold(fold, n int, x []float64, incX int) float64 {
	scale, ssq := DssqFold(fold, n, x, incX)
	return scale * math.Sqrt(ssq)
}

// Sssq is the float32 analogue of Dssq.
func Sssq(n int, x []float32, incX int) (scale, ssq float32) {
	return SssqFold(indexed.DefaultFold32, n, x, incX)
}

// SssqFold is Sssq with an explicit accumulator fold.
func SssqFold(fold, n int, x []float32, incX int) (scale, ssq float32) {
	if n < 0 {
		reportError(errNegativeN)
		return 0, 0
	}
	if incX == 0 {
		reportError(errZeroIncX)
		return 0, 0
	}
	if !checkVectorLen(n, len(x), incX) {
		reportError(errShortX)
		return 0, 0
	}
	if n == 0 {
		return 0, 0
	}
	fold, ok := clampFold(fold, indexed.DefaultFold32, indexed.MaxFold32)
	if !ok {
		return 0, 0
	}
	primary := make([]float32, fold)
	carry := make([]float32, fold)
	indexed.SetZero32(fold, primary, 1, carry, 1)

	off := 0
	if incX < 0 {
		off = -(n - 1) * incX
	}
	scale = 0
	for start := 0; start < n; start += indexed.Endurance32 {
		blk := blockSize32(n - start)
		var max float32
		for i := 0; i < blk; i++ {
			v := x[off+(start+i)*incX]
			if v < 0 {
				v = -v
			}
			if v > max {
				max = v
			}
		}
		if max > scale {
			newScale := indexed.Scale32(max)
			indexed.Rescale32(fold, newScale, scale, primary, 1, carry, 1)
			scale = newScale
		}
		depositBlock32(fold, blk, func(i int) float32 {
			v := x[off+(start+i)*incX]
			if scale != 0 {
				v /= scale
			}
			return v * v
		}, primary, 1, carry, 1)
	}
	ssq = indexed.Convert32(fold, primary, 1, carry, 1)
	return scale, ssq
}

// Snrm2 is the float32 analogue of Dnrm2.
func Snrm2(n int, x []float32, incX int) float32 {
	return Snrm2Fold(indexed.DefaultFold32, n, x, incX)
}

// Snrm2Fold is Snrm2 with an explicit accumulator fold.
func Snrm2Fold(fold, n int, x []float32, incX int) float32 {
	scale, ssq := SssqFold(fold, n, x, incX)
	return scale * float32(math.Sqrt(float64(ssq)))
}

// Dznrm2 returns the reproducible Euclidean norm of the complex vector x,
// treating each element's real and imaginary parts as independent terms
// of the same scaled sum of squares.
func Dznrm2(n int, x []complex128, incX int) float64 {
	return Dznrm2Fold(indexed.DefaultFold64, n, x, incX)
}

// Dznrm2Fold is Dznrm2 with an explicit accumulator fold.
func Dznrm2Fold(fold, n int, x []complex128, incX int) float64 {
	if n < 0 {
		reportError(errNegativeN)
		return 0
	}
	if incX == 0 {
		reportError(errZeroIncX)
		return 0
	}
	if !checkVectorLen(n, len(x), incX) {
		reportError(errShortX)
		return 0
	}
	if n == 0 {
		return 0
	}
	fold, ok := clampFold(fold, indexed.DefaultFold64, indexed.MaxFold64)
	if !ok {
		return 0
	}
	primary := make([]float64, fold)
	carry := make([]float64, fold)
	indexed.SetZero64(fold, primary, 1, carry, 1)

	off := 0
	if incX < 0 {
		off = -(n - 1) * incX
	}
	scale := 0.0
	for start := 0; start < n; start += indexed.Endurance64 / 2 {
		blk := n - start
		if blk > indexed.Endurance64/2 {
			blk = indexed.Endurance64 / 2
		}
		var max float64
		for i := 0; i < blk; i++ {
			c := x[off+(start+i)*incX]
			if a := math.Abs(real(c)); a > max {
				max = a
			}
			if a := math.Abs(imag(c)); a > max {
				max = a
			}
		}
		if max > scale {
			newScale := indexed.Scale64(max)
			indexed.Rescale64(fold, newScale, scale, primary, 1, carry, 1)
			scale = newScale
		}
		depositBlock64(fold, 2*blk, func(i int) float64 {
			c := x[off+(start+i/2)*incX]
			var v float64
			if i%2 == 0 {
				v = real(c)
			} else {
				v = imag(c)
			}
			if scale != 0 {
				v /= scale
			}
			return v * v
		}, primary, 1, carry, 1)
	}
	ssq := indexed.Convert64(fold, primary, 1, carry, 1)
	return scale * math.Sqrt(ssq)
}

// Scnrm2 returns the reproducible Euclidean norm of the complex64 vector
// x, the complex64 analogue of Dznrm2.
func Scnrm2(n int, x []complex64, incX int) float32 {
	return Scnrm2Fold(indexed.DefaultFold32, n, x, incX)
}

// Scnrm2Fold is Scnrm2 with an explicit accumulator fold.
func Scnrm2Fold(fold, n int, x []complex64, incX int) float32 {
	if n < 0 {
		reportError(errNegativeN)
		return 0
	}
	if incX == 0 {
		reportError(errZeroIncX)
		return 0
	}
	if !checkVectorLen(n, len(x), incX) {
		reportError(errShortX)
		return 0
	}
	if n == 0 {
		return 0
	}
	fold, ok := clampFold(fold, indexed.DefaultFold32, indexed.MaxFold32)
	if !ok {
		return 0
	}
	primary := make([]float32, fold)
	carry := make([]float32, fold)
	indexed.SetZero32(fold, primary, 1, carry, 1)

	off := 0
	if incX < 0 {
		off = -(n - 1) * incX
	}
	scale := float32(0)
	for start := 0; start < n; start += indexed.Endurance32 / 2 {
		blk := n - start
		if blk > indexed.Endurance32/2 {
			blk = indexed.Endurance32 / 2
		}
		var max float32
		for i := 0; i < blk; i++ {
			c := x[off+(start+i)*incX]
			if a := float32(math.Abs(float64(real(c)))); a > max {
				max = a
			}
			if a := float32(math.Abs(float64(imag(c)))); a > max {
				max = a
			}
		}
		if max > scale {
			newScale := indexed.Scale32(max)
			indexed.Rescale32(fold, newScale, scale, primary, 1, carry, 1)
			scale = newScale
		}
		depositBlock32(fold, 2*blk, func(i int) float32 {
			c := x[off+(start+i/2)*incX]
			var v float32
			if i%2 == 0 {
				v = real(c)
			} else {
				v = imag(c)
			}
			if scale != 0 {
				v /= scale
			}
			return v * v
		}, primary, 1, carry, 1)
	}
	ssq := indexed.Convert32(fold, primary, 1, carry, 1)
	return scale * float32(math.Sqrt(float64(ssq)))
}
