// Copyright ©2015 The gonum Authors. All rights reserved.
// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reproblas

// Vector represents a vector with an associated element increment, the
// shape Dgemv/Dgemm's x, y arguments take when a caller prefers a value
// type to a bare slice+stride pair.
type Vector struct {
	N    int
	Inc  int
	Data []float64
}

// General represents a matrix using row-major or column-major storage,
// mirroring the o argument every kernel in this package takes.
type General struct {
	Order      Order
	Rows, Cols int
	Stride     int
	Data       []float64
}

// Gemv computes y = alpha*op(a)*x + beta*y reproducibly, using a's
// Order and the given trans to select op.
func Gemv(trans Transpose, alpha float64, a General, x Vector, beta float64, y Vector) {
	Dgemv(a.Order, trans, a.Rows, a.Cols, alpha, a.Data, a.Stride, x.Data, x.Inc, beta, y.Data, y.Inc)
}

// Gemm computes c = alpha*op(a)*op(b) + beta*c reproducibly. a, b, and c
// must share the same Order.
func Gemm(tA, tB Transpose, alpha float64, a, b General, beta float64, c General) {
	k := a.Cols
	if tA != NoTrans {
		k = a.Rows
	}
	Dgemm(c.Order, tA, tB, c.Rows, c.Cols, k, alpha, a.Data, a.Stride, b.Data, b.Stride, beta, c.Data, c.Stride)
}
