// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reproblas

import "github.com/dasswap/reproblas/indexed"

// Dgemv computes y = alpha*A*x + beta*y (trans == NoTrans) or
// y = alpha*A^T*x + beta*y (trans == Trans), where A is an m×n matrix
// stored according to o with leading dimension lda. Every y[i] is formed
// by depositing beta*y[i] and each alpha*A[i,j]*x[j] term into one
// indexed accumulator, so the result is independent of how the row's
// terms are ordered or blocked,.
func Dgemv(o Order, trans Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	DgemvFold(indexed.DefaultFold64, o, trans, m, n, alpha, a, lda, x, incX, beta, y, incY)
}

// DgemvFold is Dgemv with an explicit accumulator fold.
func DgemvFold(fold int, o Order, trans Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	if o != RowMajor && o != ColMajor {
		reportError(errBadOrder)
		return
	}
	if trans != NoTrans && trans != Trans && trans != ConjTrans {
		reportError(errBadTranspose)
		return
	}
	if m < 0 || n < 0 {
		reportError(errNegativeN)
		return
	}
	if incX == 0 {
		reportError(errZeroIncX)
		return
	}
	if incY == 0 {
		reportError(errZeroIncY)
		return
	}
	fold, ok := clampFold(fold, indexed.DefaultFold64, indexed.MaxFold64)
	if !ok {
		return
	}

	rowMajor := o == RowMajor
	if rowMajor && lda < max(1, n) || !rowMajor && lda < max(1, m) {
		reportError(errShortA)
		return
	}
	rows, cols := m, n
	if trans != NoTrans {
		rows, cols = n, m
	}
	if !checkVectorLen(cols, len(x), incX) {
		reportError(errShortX)
		return
	}
	if !checkVectorLen(rows, len(y), incY) {
		reportError(errShortY)
		return
	}

	at := func(i, j int) float64 {
		// i, j are indices into the m×n matrix A as stored (not
		// transposed): row i, column j.
		if rowMajor {
			return a[i*lda+j]
		}
		return a[j*lda+i]
	}

	offX, offY := 0, 0
	if incX < 0 {
		offX = -(cols - 1) * incX
	}
	if incY < 0 {
		offY = -(rows - 1) * incY
	}

	primary := make([]float64, fold)
	carry := make([]float64, fold)
	for r := 0; r < rows; r++ {
		indexed.SetZero64(fold, primary, 1, carry, 1)
		yi := offY + r*incY
		if beta != 0 {
			indexed.Update64(fold, beta*y[yi], primary, 1, carry, 1)
			indexed.Deposit64(fold, beta*y[yi], primary, 1)
			indexed.Renormalize64(fold, primary, 1, carry, 1)
		}
		for start := 0; start < cols; start += indexed.Endurance64 {
			blk := blockSize64(cols - start)
			depositBlock64(fold, blk, func(i int) float64 {
				c := start + i
				var aij float64
				if trans == NoTrans {
					aij = at(r, c)
				} else {
					aij = at(c, r)
				}
				return alpha * aij * x[offX+c*incX]
			}, primary, 1, carry, 1)
		}
		y[yi] = indexed.Convert64(fold, primary, 1, carry, 1)
	}
}

// Sgemv is the float32 analogue of Dgemv.
func Sgemv(o Order, trans Transpose, m, n int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int) {
	SgemvFold(indexed.DefaultFold32, o, trans, m, n, alpha, a, lda, x, incX, beta, y, incY)
}

// SgemvFold is Sgemv with an explicit accumulator fold.
func SgemvFold(fold int, o Order, trans Transpose, m, n int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int) {
	if o != RowMajor && o != ColMajor {
		reportError(errBadOrder)
		return
	}
	if trans != NoTrans && trans != Trans && trans != ConjTrans {
		reportError(errBadTranspose)
		return
	}
	if m < 0 || n < 0 {
		reportError(errNegativeN)
		return
	}
	if incX == 0 {
		reportError(errZeroIncX)
		return
	}
	if incY == 0 {
		reportError(errZeroIncY)
		return
	}
	fold, ok := clampFold(fold, indexed.DefaultFold32, indexed.MaxFold32)
	if !ok {
		return
	}

	rowMajor := o == RowMajor
	if rowMajor && lda < max(1, n) || !rowMajor && lda < max(1, m) {
		reportError(errShortA)
		return
	}
	rows, cols := m, n
	if trans != NoTrans {
		rows, cols = n, m
	}
	if !checkVectorLen(cols, len(x), incX) {
		reportError(errShortX)
		return
	}
	if !checkVectorLen(rows, len(y), incY) {
		reportError(errShortY)
		return
	}

	at := func(i, j int) float32 {
		if rowMajor {
			return a[i*lda+j]
		}
		return a[j*lda+i]
	}

	offX, offY := 0, 0
	if incX < 0 {
		offX = -(cols - 1) * incX
	}
	if incY < 0 {
		offY = -(rows - 1) * incY
	}

	primary := make([]float32, fold)
	carry := make([]float32, fold)
	for r := 0; r < rows; r++ {
		indexed.SetZero32(fold, primary, 1, carry, 1)
		yi := offY + r*incY
		if beta != 0 {
			indexed.Update32(fold, beta*y[yi], primary, 1, carry, 1)
			indexed.Deposit32(fold, beta*y[yi], primary, 1)
			indexed.Renormalize32(fold, primary, 1, carry, 1)
		}
		for start := 0; start < cols; start += indexed.Endurance32 {
			blk := blockSize32(cols - start)
			depositBlock32(fold, blk, func(i int) float32 {
				c := start + i
				var aij float32
				if trans == NoTrans {
					aij = at(r, c)
				} else {
					aij = at(c, r)
				}
				return alpha * aij * x[offX+c*incX]
			}, primary, 1, carry, 1)
		}
		y[yi] = indexed.Convert32(fold, primary, 1, carry, 1)
	}
}

// Zgemv is the complex128 analogue of Dgemv. ConjTrans additionally
// conjugates each element of op(A) before it is scaled and deposited.
func Zgemv(o Order, trans Transpose, m, n int, alpha complex128, a []complex128, lda int, x []complex128, incX int, beta complex128, y []complex128, incY int) {
	ZgemvFold(indexed.DefaultFold64, o, trans, m, n, alpha, a, lda, x, incX, beta, y, incY)
}

// ZgemvFold is Zgemv with an explicit accumulator fold.
func ZgemvFold(fold int, o Order, trans Transpose, m, n int, alpha complex128, a []complex128, lda int, x []complex128, incX int, beta complex128, y []complex128, incY int) {
	if o != RowMajor && o != ColMajor {
		reportError(errBadOrder)
		return
	}
	if trans != NoTrans && trans != Trans && trans != ConjTrans {
		reportError(errBadTranspose)
		return
	}
	if m < 0 || n < 0 {
		reportError(errNegativeN)
		return
	}
	if incX == 0 {
		reportError(errZeroIncX)
		return
	}
	if incY == 0 {
		reportError(errZeroIncY)
		return
	}
	fold, ok := clampFold(fold, indexed.DefaultFold64, indexed.MaxFold64)
	if !ok {
		return
	}

	rowMajor := o == RowMajor
	if rowMajor && lda < max(1, n) || !rowMajor && lda < max(1, m) {
		reportError(errShortA)
		return
	}
	rows, cols := m, n
	if trans != NoTrans {
		rows, cols = n, m
	}
	if !checkVectorLen(cols, len(x), incX) {
		reportError(errShortX)
		return
	}
	if !checkVectorLen(rows, len(y), incY) {
		reportError(errShortY)
		return
	}

	at := func(i, j int) complex128 {
		if rowMajor {
			return a[i*lda+j]
		}
		return a[j*lda+i]
	}

	offX, offY := 0, 0
	if incX < 0 {
		offX = -(cols - 1) * incX
	}
	if incY < 0 {
		offY = -(rows - 1) * incY
	}

	for r := 0; r < rows; r++ {
		acc := indexed.NewComplex128(fold)
		yi := offY + r*incY
		if beta != 0 {
			acc.AddScalar(beta * y[yi])
		}
		for c := 0; c < cols; c++ {
			var aij complex128
			if trans == NoTrans {
				aij = at(r, c)
			} else {
				aij = at(c, r)
			}
			if trans == ConjTrans {
				aij = complex(real(aij), -imag(aij))
			}
			acc.AddScalar(alpha * aij * x[offX+c*incX])
		}
		y[yi] = acc.ToScalar()
	}
}

// Cgemv is the complex64 analogue of Dgemv.
func Cgemv(o Order, trans Transpose, m, n int, alpha complex64, a []complex64, lda int, x []complex64, incX int, beta complex64, y []complex64, incY int) {
	CgemvFold(indexed.DefaultFold32, o, trans, m, n, alpha, a, lda, x, incX, beta, y, incY)
}

// CgemvFold is Cgemv with an explicit accumulator fold.
func CgemvFold(fold int, o Order, trans Transpose, m, n int, alpha complex64, a []complex64, lda int, x []complex64, incX int, beta complex64, y []complex64, incY int) {
	if o != RowMajor && o != ColMajor {
		reportError(errBadOrder)
		return
	}
	if trans != NoTrans && trans != Trans && trans != ConjTrans {
		reportError(errBadTranspose)
		return
	}
	if m < 0 || n < 0 {
		reportError(errNegativeN)
		return
	}
	if incX == 0 {
		reportError(errZeroIncX)
		return
	}
	if incY == 0 {
		reportError(errZeroIncY)
		return
	}
	fold, ok := clampFold(fold, indexed.DefaultFold32, indexed.MaxFold32)
	if !ok {
		return
	}

	rowMajor := o == RowMajor
	if rowMajor && lda < max(1, n) || !rowMajor && lda < max(1, m) {
		reportError(errShortA)
		return
	}
	rows, cols := m, n
	if trans != NoTrans {
		rows, cols = n, m
	}
	if !checkVectorLen(cols, len(x), incX) {
		reportError(errShortX)
		return
	}
	if !checkVectorLen(rows, len(y), incY) {
		reportError(errShortY)
		return
	}

	at := func(i, j int) complex64 {
		if rowMajor {
			return a[i*lda+j]
		}
		return a[j*lda+i]
	}

	offX, offY := 0, 0
	if incX < 0 {
		offX = -(cols - 1) * incX
	}
	if incY < 0 {
		offY = -(rows - 1) * incY
	}

	for r := 0; r < rows; r++ {
		acc := indexed.NewComplex64(fold)
		yi := offY + r*incY
		if beta != 0 {
			acc.AddScalar(beta * y[yi])
		}
		for c := 0; c < cols; c++ {
			var aij complex64
			if trans == NoTrans {
				aij = at(r, c)
			} else {
				aij = at(c, r)
			}
			if trans == ConjTrans {
				aij = complex(real(aij), -imag(aij))
			}
			acc.AddScalar(alpha * aij * x[offX+c*incX])
		}
		y[yi] = acc.ToScalar()
	}
}
