// Copyright ©2019 The Gonum Authors. All rights reserved.
// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package naive implements the ordinary, order-dependent reductions the
// reproducible kernels in the root package are cross-checked and
// benchmarked against. Unlike an indexed accumulator, a naive running
// total carries no record of the order it was built in, so two callers
// summing the same multiset in different orders can observe different
// naive results even though every reproducible kernel in this module
// would agree exactly.
package naive

import "math"

// scaleSumSquares folds the n terms produced by next into a running
// scale/sumSquares pair using the standard overflow/underflow-avoiding
// recurrence: whenever a new term's magnitude exceeds the running scale,
// the accumulated sum of squares is rebased to the new scale before the
// term is folded in. The reproducible scaled-ssq kernels also rebase to a
// larger scale, but only once per block and only to power-of-two scales
// on a fixed grid, summing into an indexed accumulator; this recurrence
// rebases per term into a single float64, so its answer depends on the
// order next is driven in.
func scaleSumSquares(n int, next func(i int) float64) (scale, sumSquares float64) {
	sumSquares = 1.0
	for i := 0; i < n; i++ {
		v := next(i)
		if v == 0 {
			continue
		}
		mag := math.Abs(v)
		if math.IsNaN(mag) {
			return math.NaN(), 0
		}
		if scale < mag {
			ratio := scale / mag
			sumSquares = 1 + sumSquares*ratio*ratio
			scale = mag
		} else {
			ratio := mag / scale
			sumSquares += ratio * ratio
		}
	}
	return scale, sumSquares
}

// Norm returns the ordinary (non-reproducible) Euclidean norm of x.
func Norm(x []float64) float64 {
	scale, sumSquares := scaleSumSquares(len(x), func(i int) float64 { return x[i] })
	switch {
	case math.IsNaN(scale):
		return math.NaN()
	case math.IsInf(scale, 1):
		return math.Inf(1)
	default:
		return scale * math.Sqrt(sumSquares)
	}
}

// Distance returns the ordinary Euclidean distance between x and y.
func Distance(x, y []float64) float64 {
	scale, sumSquares := scaleSumSquares(len(x), func(i int) float64 { return x[i] - y[i] })
	switch {
	case math.IsNaN(scale):
		return math.NaN()
	case math.IsInf(scale, 1):
		return math.Inf(1)
	default:
		return scale * math.Sqrt(sumSquares)
	}
}

// Sum returns the ordinary left-to-right sum of x: the non-reproducible
// baseline the root package's Dsum is cross-checked and benchmarked
// against.
func Sum(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum
}

// Dot returns the ordinary left-to-right dot product of x and y.
func Dot(x, y []float64) float64 {
	var sum float64
	for i, v := range x {
		sum += v * y[i]
	}
	return sum
}
