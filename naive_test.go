// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reproblas

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dasswap/reproblas/internal/naive"
)

// These tests cross-check the reproducible kernels against the
// non-reproducible internal/naive baseline on well-conditioned inputs,
// where order dependence should stay below floating-point noise, and
// then demonstrate the divergence naive.Sum is vulnerable to and Dsum is
// not.
func TestDsumAgreesWithNaiveOnWellConditionedInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	x := make([]float64, 500)
	for i := range x {
		x[i] = rng.NormFloat64()
	}
	got := Dsum(len(x), x, 1)
	want := naive.Sum(x)
	if relErr := math.Abs(got-want) / math.Abs(want); relErr > 1e-9 {
		t.Errorf("Dsum = %v, naive.Sum = %v, relative difference %v exceeds tolerance", got, want, relErr)
	}
}

func TestDnrm2AgreesWithNaiveOnWellConditionedInput(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	x := make([]float64, 500)
	for i := range x {
		x[i] = rng.NormFloat64()
	}
	got := Dnrm2(len(x), x, 1)
	want := naive.Norm(x)
	if relErr := math.Abs(got-want) / want; relErr > 1e-9 {
		t.Errorf("Dnrm2 = %v, naive.Norm = %v, relative difference %v exceeds tolerance", got, want, relErr)
	}
}

func TestDdotAgreesWithNaiveOnWellConditionedInput(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	x := make([]float64, 500)
	y := make([]float64, 500)
	for i := range x {
		x[i] = rng.NormFloat64()
		y[i] = rng.NormFloat64()
	}
	got := Ddot(len(x), x, 1, y, 1)
	want := naive.Dot(x, y)
	if relErr := math.Abs(got-want) / math.Abs(want); relErr > 1e-9 {
		t.Errorf("Ddot = %v, naive.Dot = %v, relative difference %v exceeds tolerance", got, want, relErr)
	}
}

// naive.Sum is order-dependent: the catastrophic-cancellation case that
// Dsum handles exactly (TestDsumCancellation) returns the wrong answer
// under naive left-to-right summation, because each 1.0 is absorbed into
// a huge term before the huge terms cancel.
func TestNaiveSumIsOrderDependentWhereDsumIsNot(t *testing.T) {
	x := []float64{1.0, 1e20, 1.0, -1e20}
	if got := naive.Sum(x); got != 0 {
		t.Fatalf("naive.Sum(%v) = %v, want 0 (both 1.0 terms lost to cancellation)", x, got)
	}
	if got := Dsum(len(x), x, 1); got != 2.0 {
		t.Errorf("Dsum(%v) = %v, want 2.0", x, got)
	}
}

func BenchmarkDsumN1000(b *testing.B) { benchmarkDsum(b, 1000) }
func BenchmarkDsumN10000(b *testing.B) { benchmarkDsum(b, 10000) }

func benchmarkDsum(b *testing.B, n int) {
	x := make([]float64, n)
	rng := rand.New(rand.NewSource(int64(n)))
	for i := range x {
		x[i] = rng.NormFloat64()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Dsum(n, x, 1)
	}
}

func BenchmarkNaiveSumN1000(b *testing.B) { benchmarkNaiveSum(b, 1000) }
func BenchmarkNaiveSumN10000(b *testing.B) { benchmarkNaiveSum(b, 10000) }

func benchmarkNaiveSum(b *testing.B, n int) {
	x := make([]float64, n)
	rng := rand.New(rand.NewSource(int64(n)))
	for i := range x {
		x[i] = rng.NormFloat64()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		naive.Sum(x)
	}
}

func BenchmarkDnrm2N1000(b *testing.B) { benchmarkDnrm2(b, 1000) }

func benchmarkDnrm2(b *testing.B, n int) {
	x := make([]float64, n)
	rng := rand.New(rand.NewSource(int64(n)))
	for i := range x {
		x[i] = rng.NormFloat64()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Dnrm2(n, x, 1)
	}
}

func BenchmarkNaiveNormN1000(b *testing.B) { benchmarkNaiveNorm(b, 1000) }

func benchmarkNaiveNorm(b *testing.B, n int) {
	x := make([]float64, n)
	rng := rand.New(rand.NewSource(int64(n)))
	for i := range x {
		x[i] = rng.NormFloat64()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		naive.Norm(x)
	}
}
