// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexed

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestComplex64RoundTrip(t *testing.T) {
	for _, x := range []complex64{0, 1 + 2i, -3.5 + 0i, 0 - 7i, 1e10 + 1e-5i} {
		a := NewComplex64(DefaultFold32)
		a.FromScalar(x)
		if got := a.ToScalar(); got != x {
			t.Errorf("round trip %v: got %v", x, got)
		}
	}
}

func TestComplex64TaintStickiness(t *testing.T) {
	a := NewComplex64(3)
	a.SetZero()
	a.AddScalar(1 + 1i)
	a.AddScalar(complex(float32(math.NaN()), 0))
	a.AddScalar(2 + 2i)
	got := a.ToScalar()
	if !cmplx.IsNaN(complex128(got)) {
		t.Fatalf("expected NaN after NaN deposit, got %v", got)
	}
}

func TestComplex64CombineCommutes(t *testing.T) {
	mk := func(x complex64) *Complex64 {
		a := NewComplex64(3)
		a.FromScalar(x)
		return a
	}
	a, b := mk(1+2i), mk(1e30-1e30i)

	ab := NewComplex64(3)
	ab.FromScalar(a.ToScalar())
	ab.Combine(b)
	ba := NewComplex64(3)
	ba.FromScalar(b.ToScalar())
	ba.Combine(a)
	if ab.ToScalar() != ba.ToScalar() {
		t.Errorf("combine not commutative: %v vs %v", ab.ToScalar(), ba.ToScalar())
	}
}
