// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reproblas

import "github.com/dasswap/reproblas/indexed"

// Dgemm computes C = alpha*op(A)*op(B) + beta*C, where op(X) is X or X^T
// depending on tA/tB, A is m×k (or k×m if transposed), B is k×n (or n×k),
// and C is m×n, all stored according to o with the given leading
// dimensions. Every C[i,j] is the reproducible dot product of a row of
// op(A) and a column of op(B), accumulated through one indexed
// accumulator per output element.
func Dgemm(o Order, tA, tB Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	DgemmFold(indexed.DefaultFold64, o, tA, tB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

// DgemmFold is Dgemm with an explicit accumulator fold.
func DgemmFold(fold int, o Order, tA, tB Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	if o != RowMajor && o != ColMajor {
		reportError(errBadOrder)
		return
	}
	if m < 0 || n < 0 || k < 0 {
		reportError(errNegativeN)
		return
	}
	fold, ok := clampFold(fold, indexed.DefaultFold64, indexed.MaxFold64)
	if !ok {
		return
	}
	rowMajor := o == RowMajor

	aAt := func(i, j int) float64 {
		// i in [0,m), j in [0,k): element (i,j) of op(A).
		r, col := i, j
		if tA != NoTrans {
			r, col = j, i
		}
		if rowMajor {
			return a[r*lda+col]
		}
		return a[col*lda+r]
	}
	bAt := func(i, j int) float64 {
		// i in [0,k), j in [0,n): element (i,j) of op(B).
		r, col := i, j
		if tB != NoTrans {
			r, col = j, i
		}
		if rowMajor {
			return b[r*ldb+col]
		}
		return b[col*ldb+r]
	}
	cAt := func(i, j int) int {
		if rowMajor {
			return i*ldc + j
		}
		return j*ldc + i
	}

	primary := make([]float64, fold)
	carry := make([]float64, fold)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			ci := cAt(i, j)
			indexed.SetZero64(fold, primary, 1, carry, 1)
			if beta != 0 {
				indexed.Update64(fold, beta*c[ci], primary, 1, carry, 1)
				indexed.Deposit64(fold, beta*c[ci], primary, 1)
				indexed.Renormalize64(fold, primary, 1, carry, 1)
			}
			for start := 0; start < k; start += indexed.Endurance64 {
				blk := blockSize64(k - start)
				depositBlock64(fold, blk, func(p int) float64 {
					l := start + p
					return alpha * aAt(i, l) * bAt(l, j)
				}, primary, 1, carry, 1)
			}
			c[ci] = indexed.Convert64(fold, primary, 1, carry, 1)
		}
	}
}

// Sgemm is the float32 analogue of Dgemm.
func Sgemm(o Order, tA, tB Transpose, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	SgemmFold(indexed.DefaultFold32, o, tA, tB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

// SgemmFold is Sgemm with an explicit accumulator fold.
func SgemmFold(fold int, o Order, tA, tB Transpose, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	if o != RowMajor && o != ColMajor {
		reportError(errBadOrder)
		return
	}
	if m < 0 || n < 0 || k < 0 {
		reportError(errNegativeN)
		return
	}
	fold, ok := clampFold(fold, indexed.DefaultFold32, indexed.MaxFold32)
	if !ok {
		return
	}
	rowMajor := o == RowMajor

	aAt := func(i, j int) float32 {
		r, col := i, j
		if tA != NoTrans {
			r, col = j, i
		}
		if rowMajor {
			return a[r*lda+col]
		}
		return a[col*lda+r]
	}
	bAt := func(i, j int) float32 {
		r, col := i, j
		if tB != NoTrans {
			r, col = j, i
		}
		if rowMajor {
			return b[r*ldb+col]
		}
		return b[col*ldb+r]
	}
	cAt := func(i, j int) int {
		if rowMajor {
			return i*ldc + j
		}
		return j*ldc + i
	}

	primary := make([]float32, fold)
	carry := make([]float32, fold)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			ci := cAt(i, j)
			indexed.SetZero32(fold, primary, 1, carry, 1)
			if beta != 0 {
				indexed.Update32(fold, beta*c[ci], primary, 1, carry, 1)
				indexed.Deposit32(fold, beta*c[ci], primary, 1)
				indexed.Renormalize32(fold, primary, 1, carry, 1)
			}
			for start := 0; start < k; start += indexed.Endurance32 {
				blk := blockSize32(k - start)
				depositBlock32(fold, blk, func(p int) float32 {
					l := start + p
					return alpha * aAt(i, l) * bAt(l, j)
				}, primary, 1, carry, 1)
			}
			c[ci] = indexed.Convert32(fold, primary, 1, carry, 1)
		}
	}
}

// Zgemm is the complex128 analogue of Dgemm. tA/tB of ConjTrans
// conjugate the respective operand before multiplying.
func Zgemm(o Order, tA, tB Transpose, m, n, k int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta complex128, c []complex128, ldc int) {
	ZgemmFold(indexed.DefaultFold64, o, tA, tB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

// ZgemmFold is Zgemm with an explicit accumulator fold.
func ZgemmFold(fold int, o Order, tA, tB Transpose, m, n, k int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta complex128, c []complex128, ldc int) {
	if o != RowMajor && o != ColMajor {
		reportError(errBadOrder)
		return
	}
	if m < 0 || n < 0 || k < 0 {
		reportError(errNegativeN)
		return
	}
	fold, ok := clampFold(fold, indexed.DefaultFold64, indexed.MaxFold64)
	if !ok {
		return
	}
	rowMajor := o == RowMajor

	aAt := func(i, j int) complex128 {
		r, col := i, j
		if tA != NoTrans {
			r, col = j, i
		}
		var v complex128
		if rowMajor {
			v = a[r*lda+col]
		} else {
			v = a[col*lda+r]
		}
		if tA == ConjTrans {
			v = complex(real(v), -imag(v))
		}
		return v
	}
	bAt := func(i, j int) complex128 {
		r, col := i, j
		if tB != NoTrans {
			r, col = j, i
		}
		var v complex128
		if rowMajor {
			v = b[r*ldb+col]
		} else {
			v = b[col*ldb+r]
		}
		if tB == ConjTrans {
			v = complex(real(v), -imag(v))
		}
		return v
	}
	cAt := func(i, j int) int {
		if rowMajor {
			return i*ldc + j
		}
		return j*ldc + i
	}

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			ci := cAt(i, j)
			acc := indexed.NewComplex128(fold)
			if beta != 0 {
				acc.AddScalar(beta * c[ci])
			}
			for l := 0; l < k; l++ {
				acc.AddScalar(alpha * aAt(i, l) * bAt(l, j))
			}
			c[ci] = acc.ToScalar()
		}
	}
}

// Cgemm is the complex64 analogue of Dgemm.
func Cgemm(o Order, tA, tB Transpose, m, n, k int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta complex64, c []complex64, ldc int) {
	CgemmFold(indexed.DefaultFold32, o, tA, tB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

// CgemmFold is Cgemm with an explicit accumulator fold.
func CgemmFold(fold int, o Order, tA, tB Transpose, m, n, k int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta complex64, c []complex64, ldc int) {
	if o != RowMajor && o != ColMajor {
		reportError(errBadOrder)
		return
	}
	if m < 0 || n < 0 || k < 0 {
		reportError(errNegativeN)
		return
	}
	fold, ok := clampFold(fold, indexed.DefaultFold32, indexed.MaxFold32)
	if !ok {
		return
	}
	rowMajor := o == RowMajor

	aAt := func(i, j int) complex64 {
		r, col := i, j
		if tA != NoTrans {
			r, col = j, i
		}
		var v complex64
		if rowMajor {
			v = a[r*lda+col]
		} else {
			v = a[col*lda+r]
		}
		if tA == ConjTrans {
			v = complex(real(v), -imag(v))
		}
		return v
	}
	bAt := func(i, j int) complex64 {
		r, col := i, j
		if tB != NoTrans {
			r, col = j, i
		}
		var v complex64
		if rowMajor {
			v = b[r*ldb+col]
		} else {
			v = b[col*ldb+r]
		}
		if tB == ConjTrans {
			v = complex(real(v), -imag(v))
		}
		return v
	}
	cAt := func(i, j int) int {
		if rowMajor {
			return i*ldc + j
		}
		return j*ldc + i
	}

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			ci := cAt(i, j)
			acc := indexed.NewComplex64(fold)
			if beta != 0 {
				acc.AddScalar(beta * c[ci])
			}
			for l := 0; l < k; l++ {
				acc.AddScalar(alpha * aAt(i, l) * bAt(l, j))
			}
			c[ci] = acc.ToScalar()
		}
	}
}
