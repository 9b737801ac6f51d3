// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reproblas

import "github.com/dasswap/reproblas/indexed"

// Dsum returns the reproducible sum of the n elements of x, read at
// stride incX, using the default fold for float64.
func Dsum(n int, x []float64, incX int) float64 {
	return DsumFold(indexed.DefaultFold64, n, x, incX)
}

// DsumFold is Dsum with an explicit accumulator fold: larger folds
// retain more correction terms and so are less likely to need the
// indexed accumulator's full range, at the cost of more memory and work
// per deposit.
func DsumFold(fold, n int, x []float64, incX int) float64 {
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
			return x[off+(start+i)*incX]
		}, primary, 1, carry, 1)
	}
	return indexed.Convert64(fold, primary, 1, carry, 1)
}

// Ssum is the float32 analogue of Dsum.
func Ssum(n int, x []float32, incX int) float32 {
	return SsumFold(indexed.DefaultFold32, n, x, incX)
}

// SsumFold is Ssum with an explicit accumulator fold.
func SsumFold(fold, n int, x []float32, incX int) float32 {
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
			return x[off+(start+i)*incX]
		}, primary, 1, carry, 1)
	}
	return indexed.Convert32(fold, primary, 1, carry, 1)
}

// clampFold implements the zero-means-default fold semantics shared by
// every Fold-suffixed entry point. A fold of 0 selects def. Any other
// fold outside [indexed.MinFold, max] is a caller bug ("fold out
// of range" is an invalid argument), not a value to silently
// clamp: clampFold reports it and returns ok == false so the caller
// returns its documented sentinel instead of computing a result with a
// different fold than the one requested.
func clampFold(fold, def, max int) (clamped int, ok bool) {
	if fold == 0 {
		return def, true
	}
	if fold < indexed.MinFold || fold > max {
		reportError(errFoldRange)
		return 0, false
	}
	return fold, true
}

// Zsum is the complex128 analogue of Dsum.
func Zsum(n int, x []complex128, incX int) complex128 {
	return ZsumFold(indexed.DefaultFold64, n, x, incX)
}

// ZsumFold is Zsum with an explicit accumulator fold.
func ZsumFold(fold, n int, x []complex128, incX int) complex128 {
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
	acc := indexed.NewComplex128(fold)
	off := 0
	if incX < 0 {
		off = -(n - 1) * incX
	}
	for i := 0; i < n; i++ {
		acc.AddScalar(x[off+i*incX])
	}
	return acc.ToScalar()
}

// Csum is the complex64 analogue of Dsum.
func Csum(n int, x []complex64, incX int) complex64 {
	return CsumFold(indexed.DefaultFold32, n, x, incX)
}

// CsumFold is Csum with an explicit accumulator fold.
func CsumFold(fold, n int, x []complex64, incX int) complex64 {
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
	acc := indexed.NewComplex64(fold)
	off := 0
	if incX < 0 {
		off = -(n - 1) * incX
	}
	for i := 0; i < n; i++ {
		acc.AddScalar(x[off+i*incX])
	}
	return acc.ToScalar()
}
