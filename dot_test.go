// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reproblas

import (
	"math/rand"
	"testing"
)

// Ddot of two length-5 vectors is exact and reproducible.
func TestDdotBasic(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{5, 4, 3, 2, 1}
	if got := Ddot(len(x), x, 1, y, 1); got != 35.0 {
		t.Errorf("Ddot(%v, %v) = %v, want 35.0", x, y, got)
	}
}

// Permuting x and y in lock-step does not change Ddot.
func TestDdotPermutationInvariance(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{5, 4, 3, 2, 1}
	want := Ddot(len(x), x, 1, y, 1)

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 5; trial++ {
		perm := rng.Perm(len(x))
		px := make([]float64, len(x))
		py := make([]float64, len(y))
		for i, p := range perm {
			px[i] = x[p]
			py[i] = y[p]
		}
		if got := Ddot(len(px), px, 1, py, 1); got != want {
			t.Errorf("trial %d: Ddot(permuted) = %v, want %v", trial, got, want)
		}
	}
}

func TestDdotNegativeStride(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{5, 4, 3, 2, 1}
	rx := []float64{5, 4, 3, 2, 1}
	ry := []float64{1, 2, 3, 4, 5}
	want := Ddot(len(x), x, 1, y, 1)
	// Reading rx/ry back-to-front with incX=incY=-1 from the last
	// element reproduces the same pairing as the forward read.
	got := DdotFold(0, len(rx), rx, -1, ry, -1)
	if got != want {
		t.Errorf("Ddot with negative stride = %v, want %v", got, want)
	}
}

func TestZdotuVsZdotc(t *testing.T) {
	x := []complex128{1 + 2i, 3 - 1i}
	y := []complex128{2 + 0i, 1 + 1i}

	u := Zdotu(len(x), x, 1, y, 1)
	wantU := x[0]*y[0] + x[1]*y[1]
	if u != wantU {
		t.Errorf("Zdotu = %v, want %v", u, wantU)
	}

	c := Zdotc(len(x), x, 1, y, 1)
	wantC := complex(real(x[0]), -imag(x[0]))*y[0] + complex(real(x[1]), -imag(x[1]))*y[1]
	if c != wantC {
		t.Errorf("Zdotc = %v, want %v", c, wantC)
	}
}

func TestCdotuVsCdotc(t *testing.T) {
	x := []complex64{1 + 2i, 3 - 1i}
	y := []complex64{2 + 0i, 1 + 1i}

	u := Cdotu(len(x), x, 1, y, 1)
	wantU := x[0]*y[0] + x[1]*y[1]
	if u != wantU {
		t.Errorf("Cdotu = %v, want %v", u, wantU)
	}

	c := Cdotc(len(x), x, 1, y, 1)
	wantC := complex(real(x[0]), -imag(x[0]))*y[0] + complex(real(x[1]), -imag(x[1]))*y[1]
	if c != wantC {
		t.Errorf("Cdotc = %v, want %v", c, wantC)
	}
}

func TestDdotInvalidArgs(t *testing.T) {
	var msgs []string
	old := ErrorHandler
	ErrorHandler = func(msg string) { msgs = append(msgs, msg) }
	defer func() { ErrorHandler = old }()

	if got := Ddot(3, []float64{1, 2}, 1, []float64{1, 2, 3}, 1); got != 0 {
		t.Errorf("Ddot with short x = %v, want 0", got)
	}
	if len(msgs) == 0 {
		t.Fatal("expected at least one reported error")
	}
}
