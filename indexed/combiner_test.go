// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexed

import "testing"

func TestCombineFloat64Slice(t *testing.T) {
	n := 4
	src := make([]Float64, n)
	dst := make([]Float64, n)
	for i := 0; i < n; i++ {
		src[i] = *NewFloat64(3)
		src[i].FromScalar(float64(i + 1))
		dst[i] = *NewFloat64(3)
		dst[i].FromScalar(float64(10 * (i + 1)))
	}
	CombineFloat64(src, dst)
	for i := 0; i < n; i++ {
		want := float64(i+1) + float64(10*(i+1))
		if got := dst[i].ToScalar(); got != want {
			t.Errorf("dst[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestCombineComplex128Slice(t *testing.T) {
	n := 3
	src := make([]Complex128, n)
	dst := make([]Complex128, n)
	for i := 0; i < n; i++ {
		src[i] = *NewComplex128(3)
		src[i].FromScalar(complex(float64(i), 0))
		dst[i] = *NewComplex128(3)
		dst[i].FromScalar(complex(0, float64(i)))
	}
	CombineComplex128(src, dst)
	for i := 0; i < n; i++ {
		want := complex(float64(i), float64(i))
		if got := dst[i].ToScalar(); got != want {
			t.Errorf("dst[%d] = %v, want %v", i, got, want)
		}
	}
}
