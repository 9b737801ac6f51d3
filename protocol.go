// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reproblas

import (
	"math"

	"github.com/dasswap/reproblas/indexed"
)

// blockSize64 returns the number of elements safe to deposit into a
// float64 accumulator before it must be renormalized: at most
// indexed.Endurance64, and never more than the remaining length.
func blockSize64(remaining int) int {
	if remaining > indexed.Endurance64 {
		return indexed.Endurance64
	}
	return remaining
}

func blockSize32(remaining int) int {
	if remaining > indexed.Endurance32 {
		return indexed.Endurance32
	}
	return remaining
}

// depositBlock64 runs the blocked-deposit protocol for one block of
// up to indexed.Endurance64 values read through next: scan the block for
// its largest magnitude, update the accumulator's bin window once for the
// whole block, deposit every element, then renormalize once.
//
// next(i) must return the ith value of the block, 0 <= i < n.
func depositBlock64(fold int, n int, next func(i int) float64, primary []float64, incPri int, carry []float64, incCarry int) {
	if n == 0 {
		return
	}
	var max float64
	for i := 0; i < n; i++ {
		v := next(i)
		if a := math.Abs(v); a > max || math.IsNaN(a) {
			max = a
		}
	}
	indexed.Update64(fold, max, primary, incPri, carry, incCarry)
	for i := 0; i < n; i++ {
		indexed.Deposit64(fold, next(i), primary, incPri)
	}
	indexed.Renormalize64(fold, primary, incPri, carry, incCarry)
}

func depositBlock32(fold int, n int, next func(i int) float32, primary []float32, incPri int, carry []float32, incCarry int) {
	if n == 0 {
		return
	}
	var max float32
	for i := 0; i < n; i++ {
		v := next(i)
		if a := float32(math.Abs(float64(v))); a > max || math.IsNaN(float64(a)) {
			max = a
		}
	}
	indexed.Update32(fold, max, primary, incPri, carry, incCarry)
	for i := 0; i < n; i++ {
		indexed.Deposit32(fold, next(i), primary, incPri)
	}
	indexed.Renormalize32(fold, primary, incPri, carry, incCarry)
}
