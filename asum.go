// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reproblas

import (
	"math"

	"github.com/dasswap/reproblas/indexed"
)

// Dasum returns the reproducible sum of the absolute values of the n
// elements of x.
func Dasum(n int, x []float64, incX int) float64 {
	return DasumFold(indexed.DefaultFold64, n, x, incX)
}

// DasumFold is Dasum with an explicit accumulator fold.
func DasumFold(fold, n int, x []float64, incX int) float64 {
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
	for start := 0; start < n; start += indexed.Endurance64 {
		blk := blockSize64(n - start)
		depositBlock64(fold, blk, func(i int) float64 {
			return math.Abs(x[off+(start+i)*incX])
		}, primary, 1, carry, 1)
	}
	return indexed.Convert64(fold, primary, 1, carry, 1)
}

// Sasum is the float32 analogue of Dasum.
func Sasum(n int, x []float32, incX int) float32 {
	return SasumFold(indexed.DefaultFold32, n, x, incX)
}

// SasumFold is Sasum with an explicit accumulator fold.
func SasumFold(fold, n int, x []float32, incX int) float32 {
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
	for start := 0; start < n; start += indexed.Endurance32 {
		blk := blockSize32(n - start)
		depositBlock32(fold, blk, func(i int) float32 {
			v := x[off+(start+i)*incX]
			if v < 0 {
				return -v
			}
			return v
		}, primary, 1, carry, 1)
	}
	return indexed.Convert32(fold, primary, 1, carry, 1)
}

// Zasum returns the reproducible sum of |re(x_i)| + |im(x_i)| over the n
// elements of x, the conventional complex BLAS asum contribution.
func Zasum(n int, x []complex128, incX int) float64 {
	return ZasumFold(indexed.DefaultFold64, n, x, incX)
}

// ZasumFold is Zasum with an explicit accumulator fold.
func ZasumFold(fold, n int, x []complex128, incX int) float64 {
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
	for start := 0; start < n; start += indexed.Endurance64 {
		blk := blockSize64(n - start)
		depositBlock64(fold, blk, func(i int) float64 {
			c := x[off+(start+i)*incX]
			return math.Abs(real(c)) + math.Abs(imag(c))
		}, primary, 1, carry, 1)
	}
	return indexed.Convert64(fold, primary, 1, carry, 1)
}

// Casum is the complex64 analogue of Zasum.
func Casum(n int, x []complex64, incX int) float32 {
	return CasumFold(indexed.DefaultFold32, n, x, incX)
}

// CasumFold is Casum with an explicit accumulator fold.
func CasumFold(fold, n int, x []complex64, incX int) float32 {
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
	for start := 0; start < n; start += indexed.Endurance32 {
		blk := blockSize32(n - start)
		depositBlock32(fold, blk, func(i int) float32 {
			c := x[off+(start+i)*incX]
			re, im := real(c), imag(c)
			if re < 0 {
				re = -re
			}
			if im < 0 {
				im = -im
			}
			return re + im
		}, primary, 1, carry, 1)
	}
	return indexed.Convert32(fold, primary, 1, carry, 1)
}
