// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexed

// CombineFloat64 executes dst[i] ← combine(src[i], dst[i]) for i in
// [0, len(dst)), the shape required by an external collective reduce
// needs: an MPI_Op-style binary operator over arrays of same-fold,
// same-kind accumulators. src and dst must have equal length and every
// element must share the same fold.
func CombineFloat64(src, dst []Float64) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i].Combine(&src[i])
	}
}

func CombineFloat32(src, dst []Float32) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i].Combine(&src[i])
	}
}

func CombineComplex128(src, dst []Complex128) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i].Combine(&src[i])
	}
}

func CombineComplex64(src, dst []Complex64) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i].Combine(&src[i])
	}
}
