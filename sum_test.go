// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reproblas

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/dasswap/reproblas/indexed"
)

// Naive left-to-right summation absorbs each 1.0 into 1e20 (where it is
// below half an ulp) before the huge terms cancel, losing both; the
// reproducible sum retains them exactly.
func TestDsumCancellation(t *testing.T) {
	x := []float64{1.0, 1e20, 1.0, -1e20}
	if got := Dsum(len(x), x, 1); got != 2.0 {
		t.Errorf("Dsum(%v) = %v, want 2.0", x, got)
	}
}

// Dsum is invariant to any permutation of its input.
func TestDsumPermutationInvariance(t *testing.T) {
	x := []float64{1e20, 1.0, -1e20}
	want := Dsum(len(x), x, 1)
	if want != 1.0 {
		t.Fatalf("Dsum(%v) = %v, want 1.0", x, want)
	}

	perms := [][]float64{
		{1e20, 1.0, -1e20},
		{1e20, -1e20, 1.0},
		{1.0, 1e20, -1e20},
		{1.0, -1e20, 1e20},
		{-1e20, 1.0, 1e20},
		{-1e20, 1e20, 1.0},
	}
	for _, p := range perms {
		if got := Dsum(len(p), p, 1); got != want {
			t.Errorf("Dsum(%v) = %v, want %v", p, got, want)
		}
	}
}

// The same over a larger randomly shuffled vector: any permutation of x
// produces a bit-identical Dsum.
func TestDsumPermutationInvarianceRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 200
	x := make([]float64, n)
	for i := range x {
		exp := rng.Intn(400) - 200
		x[i] = (rng.Float64()*2 - 1) * math.Ldexp(1, exp)
	}
	want := Dsum(n, x, 1)

	for trial := 0; trial < 5; trial++ {
		p := append([]float64(nil), x...)
		rng.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
		if got := Dsum(n, p, 1); got != want {
			t.Errorf("trial %d: Dsum(shuffled) = %v, want %v", trial, got, want)
		}
	}
}

// Splitting the input into private per-block accumulators and
// combining them yields the same converted result as one-shot Dsum.
func TestDsumBlockInvariance(t *testing.T) {
	x := []float64{1.0, 1e100, 1.0, -1e100}
	want := Dsum(len(x), x, 1)

	fold := indexed.DefaultFold64
	combined := indexed.NewFloat64(fold)
	for _, block := range [][]float64{x[:2], x[2:]} {
		acc := indexed.NewFloat64(fold)
		primary, carry := acc.Buffers()
		for start := 0; start < len(block); start += indexed.Endurance64 {
			blk := blockSize64(len(block) - start)
			depositBlock64(fold, blk, func(i int) float64 {
				return block[start+i]
			}, primary, 1, carry, 1)
		}
		combined.Combine(acc)
	}
	if got := combined.ToScalar(); got != want {
		t.Errorf("block-combined sum = %v, want %v", got, want)
	}
}

// Once a NaN has been deposited, Dsum returns NaN; once a
// non-NaN ±Inf has been deposited and no NaN, Dsum returns that Inf
// (with opposite-sign Infs producing NaN, per IEEE semantics).
func TestDsumTaint(t *testing.T) {
	if got := Dsum(3, []float64{1.0, math.NaN(), 2.0}, 1); !math.IsNaN(got) {
		t.Errorf("Dsum with NaN = %v, want NaN", got)
	}
	if got := Dsum(3, []float64{math.Inf(1), 1.0, math.Inf(-1)}, 1); !math.IsNaN(got) {
		t.Errorf("Dsum(+Inf,1,-Inf) = %v, want NaN", got)
	}
	if got := Dsum(3, []float64{math.Inf(1), math.Inf(1), 1.0}, 1); !math.IsInf(got, 1) {
		t.Errorf("Dsum(+Inf,+Inf,1) = %v, want +Inf", got)
	}
}

func TestDsumEmpty(t *testing.T) {
	if got := Dsum(0, nil, 1); got != 0 {
		t.Errorf("Dsum(0, nil, 1) = %v, want 0", got)
	}
}

func TestDsumInvalidArgs(t *testing.T) {
	var msgs []string
	old := ErrorHandler
	ErrorHandler = func(msg string) { msgs = append(msgs, msg) }
	defer func() { ErrorHandler = old }()

	if got := Dsum(-1, nil, 1); got != 0 {
		t.Errorf("Dsum(-1, ...) = %v, want 0", got)
	}
	if got := Dsum(1, []float64{1}, 0); got != 0 {
		t.Errorf("Dsum(n, x, 0) = %v, want 0", got)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 reported errors, got %d: %v", len(msgs), msgs)
	}
}

// A fold outside [MinFold, MaxFold] is a caller bug, reported and
// answered with the documented sentinel — never silently clamped into
// range and used to compute a real result.
func TestDsumFoldOutOfRange(t *testing.T) {
	var msgs []string
	old := ErrorHandler
	ErrorHandler = func(msg string) { msgs = append(msgs, msg) }
	defer func() { ErrorHandler = old }()

	x := []float64{1, 2, 3}
	if got := DsumFold(1, len(x), x, 1); got != 0 {
		t.Errorf("DsumFold(1, ...) = %v, want 0 (fold below MinFold)", got)
	}
	if got := DsumFold(indexed.MaxFold64+1, len(x), x, 1); got != 0 {
		t.Errorf("DsumFold(MaxFold64+1, ...) = %v, want 0 (fold above MaxFold64)", got)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 reported errors, got %d: %v", len(msgs), msgs)
	}
}

// Endurance-sized block: exercise indexed.Endurance64+5 elements so the
// blocked deposit protocol fills one full Endurance64 block, renormalizes
// at its boundary, and then deposits a second block of 5 elements.
func TestDsumEnduranceBlock(t *testing.T) {
	n := indexed.Endurance64 + 5
	x := make([]float64, n)
	for i := range x {
		x[i] = 1.0
	}
	if got := Dsum(n, x, 1); got != float64(n) {
		t.Errorf("Dsum of %d ones = %v, want %v", n, got, float64(n))
	}
}

// Supplementing TestDsumBlockInvariance: doubles the number of
// blocks from 1 up to min(N, 1024) and checks each decomposition
// against the one-shot sum, then repeats against several orderings of
// the same data (forward, reversed, increasing-magnitude,
// decreasing-magnitude, and two independent shuffles) — the same
// doubling-and-reordering sweep classic reproducible-summation
// test suites run for level-1 kernels.
func TestDsumBlockDecompositionDoubling(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 137
	x := make([]float64, n)
	for i := range x {
		exp := rng.Intn(400) - 200
		x[i] = (rng.Float64()*2 - 1) * math.Ldexp(1, exp)
	}

	check := func(t *testing.T, data []float64) {
		t.Helper()
		want := Dsum(len(data), data, 1)
		fold := indexed.DefaultFold64
		maxBlocks := 1024
		for numBlocks := 1; numBlocks <= len(data) && numBlocks <= maxBlocks; numBlocks *= 2 {
			blockN := (len(data) + numBlocks - 1) / numBlocks
			combined := indexed.NewFloat64(fold)
			for start := 0; start < len(data); start += blockN {
				end := start + blockN
				if end > len(data) {
					end = len(data)
				}
				block := data[start:end]
				acc := indexed.NewFloat64(fold)
				primary, carry := acc.Buffers()
				for bstart := 0; bstart < len(block); bstart += indexed.Endurance64 {
					blk := blockSize64(len(block) - bstart)
					depositBlock64(fold, blk, func(i int) float64 {
						return block[bstart+i]
					}, primary, 1, carry, 1)
				}
				combined.Combine(acc)
			}
			if got := combined.ToScalar(); got != want {
				t.Errorf("numBlocks=%d, blockN=%d: block-combined sum = %v, want %v", numBlocks, blockN, got, want)
			}
		}
	}

	reversed := make([]float64, n)
	for i, v := range x {
		reversed[n-1-i] = v
	}
	increasing := append([]float64(nil), x...)
	sort.Slice(increasing, func(i, j int) bool { return math.Abs(increasing[i]) < math.Abs(increasing[j]) })
	decreasing := append([]float64(nil), x...)
	sort.Slice(decreasing, func(i, j int) bool { return math.Abs(decreasing[i]) > math.Abs(decreasing[j]) })
	shuffle1 := append([]float64(nil), x...)
	rng.Shuffle(len(shuffle1), func(i, j int) { shuffle1[i], shuffle1[j] = shuffle1[j], shuffle1[i] })
	shuffle2 := append([]float64(nil), x...)
	rng.Shuffle(len(shuffle2), func(i, j int) { shuffle2[i], shuffle2[j] = shuffle2[j], shuffle2[i] })

	orderings := map[string][]float64{
		"forward":    x,
		"reversed":   reversed,
		"increasing": increasing,
		"decreasing": decreasing,
		"shuffle1":   shuffle1,
		"shuffle2":   shuffle2,
	}
	for name, data := range orderings {
		t.Run(name, func(t *testing.T) { check(t, data) })
	}
}

func TestSsumBasic(t *testing.T) {
	x := []float32{1.0, 1e7, 1.0, -1e7}
	if got := Ssum(len(x), x, 1); got != 2.0 {
		t.Errorf("Ssum(%v) = %v, want 2.0", x, got)
	}
}

func TestZsumBasic(t *testing.T) {
	x := []complex128{1 + 1i, 1e15 - 1e15i, -1e15 + 1e15i, 1 - 1i}
	if got := Zsum(len(x), x, 1); got != 2+0i {
		t.Errorf("Zsum(%v) = %v, want (2+0i)", x, got)
	}
}
