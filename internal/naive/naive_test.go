// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package naive

import (
	"math"
	"testing"
)

func TestNorm(t *testing.T) {
	x := []float64{3, 4}
	if got := Norm(x); math.Abs(got-5) > 1e-12 {
		t.Errorf("Norm(%v) = %v, want 5", x, got)
	}
}

func TestDistance(t *testing.T) {
	x := []float64{4, 6}
	y := []float64{1, 2}
	if got := Distance(x, y); math.Abs(got-5) > 1e-12 {
		t.Errorf("Distance(%v, %v) = %v, want 5", x, y, got)
	}
}

func TestSum(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	if got := Sum(x); got != 10 {
		t.Errorf("Sum(%v) = %v, want 10", x, got)
	}
}

func TestDot(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}
	if got := Dot(x, y); got != 32 {
		t.Errorf("Dot(%v, %v) = %v, want 32", x, y, got)
	}
}
