// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reproblas

import "github.com/dasswap/reproblas/indexed"

// Ddot returns the reproducible dot product of x and y, each of length n.
func Ddot(n int, x []float64, incX int, y []float64, incY int) float64 {
	return DdotFold(indexed.DefaultFold64, n, x, incX, y, incY)
}

// DdotFold is Ddot with an explicit accumulator fold. Every product
// x[i]*y[i] is formed in working precision before it is deposited, so the
// accumulator sees the same bit pattern a non-reproducible dot product
// would sum, just not in the same order.
func DdotFold(fold, n int, x []float64, incX int, y []float64, incY int) float64 {
	if n < 0 {
		reportError(errNegativeN)
		return 0
	}
	if incX == 0 {
		reportError(errZeroIncX)
		return 0
	}
	if incY == 0 {
		reportError(errZeroIncY)
		return 0
	}
	if !checkVectorLen(n, len(x), incX) {
		reportError(errShortX)
		return 0
	}
	if !checkVectorLen(n, len(y), incY) {
		reportError(errShortY)
		return 0
	}
	fold, ok := clampFold(fold, indexed.DefaultFold64, indexed.MaxFold64)
	if !ok {
		return 0
	}
	primary := make([]float64, fold)
	carry := make([]float64, fold)
	indexed.SetZero64(fold, primary, 1, carry, 1)

	offX, offY := 0, 0
	if incX < 0 {
		offX = -(n - 1) * incX
	}
	if incY < 0 {
		offY = -(n - 1) * incY
	}
	for start := 0; start < n; start += indexed.Endurance64 {
		blk := blockSize64(n - start)
		depositBlock64(fold, blk, func(i int) float64 {
			return x[offX+(start+i)*incX] * y[offY+(start+i)*incY]
		}, primary, 1, carry, 1)
	}
	return indexed.Convert64(fold, primary, 1, carry, 1)
}

// Sdot is the float32 analogue of Ddot.
func Sdot(n int, x []float32, incX int, y []float32, incY int) float32 {
	return SdotFold(indexed.DefaultFold32, n, x, incX, y, incY)
}

// SdotFold is Sdot with an explicit accumulator fold.
func SdotFold(fold, n int, x []float32, incX int, y []float32, incY int) float32 {
	if n < 0 {
		reportError(errNegativeN)
		return 0
	}
	if incX == 0 {
		reportError(errZeroIncX)
		return 0
	}
	if incY == 0 {
		reportError(errZeroIncY)
		return 0
	}
	if !checkVectorLen(n, len(x), incX) {
		reportError(errShortX)
		return 0
	}
	if !checkVectorLen(n, len(y), incY) {
		reportError(errShortY)
		return 0
	}
	fold, ok := clampFold(fold, indexed.DefaultFold32, indexed.MaxFold32)
	if !ok {
		return 0
	}
	primary := make([]float32, fold)
	carry := make([]float32, fold)
	indexed.SetZero32(fold, primary, 1, carry, 1)

	offX, offY := 0, 0
	if incX < 0 {
		offX = -(n - 1) * incX
	}
	if incY < 0 {
		offY = -(n - 1) * incY
	}
	for start := 0; start < n; start += indexed.Endurance32 {
		blk := blockSize32(n - start)
		depositBlock32(fold, blk, func(i int) float32 {
			return x[offX+(start+i)*incX] * y[offY+(start+i)*incY]
		}, primary, 1, carry, 1)
	}
	return indexed.Convert32(fold, primary, 1, carry, 1)
}

// Zdotu returns the reproducible unconjugated dot product of complex
// vectors x and y.
func Zdotu(n int, x []complex128, incX int, y []complex128, incY int) complex128 {
	return ZdotuFold(indexed.DefaultFold64, n, x, incX, y, incY)
}

// ZdotuFold is Zdotu with an explicit accumulator fold.
func ZdotuFold(fold, n int, x []complex128, incX int, y []complex128, incY int) complex128 {
	if n < 0 {
		reportError(errNegativeN)
		return 0
	}
	if incX == 0 {
		reportError(errZeroIncX)
		return 0
	}
	if incY == 0 {
		reportError(errZeroIncY)
		return 0
	}
	if !checkVectorLen(n, len(x), incX) {
		reportError(errShortX)
		return 0
	}
	if !checkVectorLen(n, len(y), incY) {
		reportError(errShortY)
		return 0
	}
	fold, ok := clampFold(fold, indexed.DefaultFold64, indexed.MaxFold64)
	if !ok {
		return 0
	}
	acc := indexed.NewComplex128(fold)
	offX, offY := 0, 0
	if incX < 0 {
		offX = -(n - 1) * incX
	}
	if incY < 0 {
		offY = -(n - 1) * incY
	}
	for i := 0; i < n; i++ {
		acc.AddScalar(x[offX+i*incX] * y[offY+i*incY])
	}
	return acc.ToScalar()
}

// Zdotc returns the reproducible conjugated dot product conj(x)·y.
func Zdotc(n int, x []complex128, incX int, y []complex128, incY int) complex128 {
	return ZdotcFold(indexed.DefaultFold64, n, x, incX, y, incY)
}

// ZdotcFold is Zdotc with an explicit accumulator fold.
func ZdotcFold(fold, n int, x []complex128, incX int, y []complex128, incY int) complex128 {
	if n < 0 {
		reportError(errNegativeN)
		return 0
	}
	if incX == 0 {
		reportError(errZeroIncX)
		return 0
	}
	if incY == 0 {
		reportError(errZeroIncY)
		return 0
	}
	if !checkVectorLen(n, len(x), incX) {
		reportError(errShortX)
		return 0
	}
	if !checkVectorLen(n, len(y), incY) {
		reportError(errShortY)
		return 0
	}
	fold, ok := clampFold(fold, indexed.DefaultFold64, indexed.MaxFold64)
	if !ok {
		return 0
	}
	acc := indexed.NewComplex128(fold)
	offX, offY := 0, 0
	if incX < 0 {
		offX = -(n - 1) * incX
	}
	if incY < 0 {
		offY = -(n - 1) * incY
	}
	for i := 0; i < n; i++ {
		xc := x[offX+i*incX]
		xc = complex(real(xc), -imag(xc))
		acc.AddScalar(xc * y[offY+i*incY])
	}
	return acc.ToScalar()
}

// Cdotu returns the reproducible unconjugated dot product of complex64
// vectors x and y.
func Cdotu(n int, x []complex64, incX int, y []complex64, incY int) complex64 {
	return CdotuFold(indexed.DefaultFold32, n, x, incX, y, incY)
}

// CdotuFold is Cdotu with an explicit accumulator fold.
func CdotuFold(fold, n int, x []complex64, incX int, y []complex64, incY int) complex64 {
	if n < 0 {
		reportError(errNegativeN)
		return 0
	}
	if incX == 0 {
		reportError(errZeroIncX)
		return 0
	}
	if incY == 0 {
		reportError(errZeroIncY)
		return 0
	}
	if !checkVectorLen(n, len(x), incX) {
		reportError(errShortX)
		return 0
	}
	if !checkVectorLen(n, len(y), incY) {
		reportError(errShortY)
		return 0
	}
	fold, ok := clampFold(fold, indexed.DefaultFold32, indexed.MaxFold32)
	if !ok {
		return 0
	}
	acc := indexed.NewComplex64(fold)
	offX, offY := 0, 0
	if incX < 0 {
		offX = -(n - 1) * incX
	}
	if incY < 0 {
		offY = -(n - 1) * incY
	}
	for i := 0; i < n; i++ {
		acc.AddScalar(x[offX+i*incX] * y[offY+i*incY])
	}
	return acc.ToScalar()
}

// Cdotc returns the reproducible conjugated dot product conj(x)·y for
// complex64 vectors.
func Cdotc(n int, x []complex64, incX int, y []complex64, incY int) complex64 {
	return CdotcFold(indexed.DefaultFold32, n, x, incX, y, incY)
}

// CdotcFold is Cdotc with an explicit accumulator fold.
func CdotcFold(fold, n int, x []complex64, incX int, y []complex64, incY int) complex64 {
	if n < 0 {
		reportError(errNegativeN)
		return 0
	}
	if incX == 0 {
		reportError(errZeroIncX)
		return 0
	}
	if incY == 0 {
		reportError(errZeroIncY)
		return 0
	}
	if !checkVectorLen(n, len(x), incX) {
		reportError(errShortX)
		return 0
	}
	if !checkVectorLen(n, len(y), incY) {
		reportError(errShortY)
		return 0
	}
	fold, ok := clampFold(fold, indexed.DefaultFold32, indexed.MaxFold32)
	if !ok {
		return 0
	}
	acc := indexed.NewComplex64(fold)
	offX, offY := 0, 0
	if incX < 0 {
		offX = -(n - 1) * incX
	}
	if incY < 0 {
		offY = -(n - 1) * incY
	}
	for i := 0; i < n; i++ {
		xc := x[offX+i*incX]
		xc = complex(real(xc), -imag(xc))
		acc.AddScalar(xc * y[offY+i*incY])
	}
	return acc.ToScalar()
}
