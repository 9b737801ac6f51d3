// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexed

import (
	"math"
	"testing"
)

func TestFloat64RoundTrip(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 3.5, 1e10, -1e-10, 123456789.125} {
		a := NewFloat64(DefaultFold64)
		a.FromScalar(x)
		if got := a.ToScalar(); got != x {
			t.Errorf("round trip %v: got %v", x, got)
		}
	}
}

func TestFloat64TaintStickiness(t *testing.T) {
	a := NewFloat64(3)
	a.SetZero()
	a.AddScalar(1.0)
	a.AddScalar(math.NaN())
	a.AddScalar(2.0)
	if got := a.ToScalar(); !math.IsNaN(got) {
		t.Fatalf("expected NaN after NaN deposit, got %v", got)
	}

	b := NewFloat64(3)
	b.SetZero()
	b.AddScalar(math.Inf(1))
	b.AddScalar(1.0)
	if got := b.ToScalar(); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf, got %v", got)
	}
}

func TestFloat64CombineIdempotentOnZero(t *testing.T) {
	a := NewFloat64(3)
	a.FromScalar(42.5)
	z := NewFloat64(3)
	z.SetZero()

	got := NewFloat64(3)
	got.SetZero()
	got.Combine(a)
	if got.ToScalar() != a.ToScalar() {
		t.Errorf("combine(Z, A) = %v, want %v", got.ToScalar(), a.ToScalar())
	}

	got2 := NewFloat64(3)
	got2.FromScalar(a.ToScalar())
	got2.Combine(z)
	if got2.ToScalar() != a.ToScalar() {
		t.Errorf("combine(A, Z) = %v, want %v", got2.ToScalar(), a.ToScalar())
	}
}

func TestFloat64CombineCommutesAndAssociates(t *testing.T) {
	mk := func(x float64) *Float64 {
		a := NewFloat64(3)
		a.FromScalar(x)
		return a
	}
	a, b, c := mk(1.0), mk(1e100), mk(-1e100)

	ab := NewFloat64(3)
	ab.FromScalar(a.ToScalar())
	ab.Combine(b)
	ba := NewFloat64(3)
	ba.FromScalar(b.ToScalar())
	ba.Combine(a)
	if ab.ToScalar() != ba.ToScalar() {
		t.Errorf("combine not commutative: %v vs %v", ab.ToScalar(), ba.ToScalar())
	}

	abc1 := NewFloat64(3)
	abc1.FromScalar(ab.ToScalar())
	abc1.Combine(c)

	bc := NewFloat64(3)
	bc.FromScalar(b.ToScalar())
	bc.Combine(c)
	abc2 := NewFloat64(3)
	abc2.FromScalar(a.ToScalar())
	abc2.Combine(bc)

	if abc1.ToScalar() != abc2.ToScalar() {
		t.Errorf("combine not associative: %v vs %v", abc1.ToScalar(), abc2.ToScalar())
	}
}

// Rescaling along the Scale64 grid divides the represented value by the
// squared ratio exactly, and rescaling back restores it bit-for-bit.
func TestRescale64Exact(t *testing.T) {
	fold := 3
	primary := make([]float64, fold)
	carry := make([]float64, fold)
	SetZero64(fold, primary, 1, carry, 1)
	Update64(fold, 1.0, primary, 1, carry, 1)
	Deposit64(fold, 0.5625, primary, 1)
	Renormalize64(fold, primary, 1, carry, 1)
	before := Convert64(fold, primary, 1, carry, 1)

	newScale := Scale64(1e10)
	Rescale64(fold, newScale, 1, primary, 1, carry, 1)
	r := newScale * newScale
	if mid := Convert64(fold, primary, 1, carry, 1); mid*r != before {
		t.Errorf("rescaled value %v * %v = %v, want %v", mid, r, mid*r, before)
	}

	Rescale64(fold, 1, newScale, primary, 1, carry, 1)
	after := Convert64(fold, primary, 1, carry, 1)
	if before != after {
		t.Errorf("rescale round trip not exact: %v vs %v", before, after)
	}
}
