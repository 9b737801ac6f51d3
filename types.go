// Copyright ©2013 The gonum Authors. All rights reserved.
// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reproblas

// Order is used to specify the matrix storage format of the gemv/gemm
// kernels.
type Order int

const (
	RowMajor Order = 101 + iota
	ColMajor
)

// Transpose is used to specify the transposition operation of the
// gemv/gemm kernels.
type Transpose int

const (
	NoTrans Transpose = 111 + iota
	Trans
	ConjTrans
)
