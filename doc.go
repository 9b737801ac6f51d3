// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package reproblas provides reproducible floating-point reduction
primitives: summation, dot product, Euclidean norm, absolute-value sum,
and the matrix-vector/matrix-matrix kernels built on them.

Every kernel in this package produces bit-identical results regardless of
the order inputs arrive in, how the input is partitioned across blocks,
or how many workers participate in a parallel reduction. This is achieved
by depositing every contribution into an indexed accumulator (package
indexed) rather than a bare working-precision scalar: bin assignment
depends only on the exponent of each input, not on the order of arrival,
so the accumulator is exactly associative and commutative.

Naming follows the BLAS convention of a one-letter precision prefix:

	D - double real (float64)     S - single real (float32)
	Z - double complex            C - single complex

Every routine has a fold-implicit entry point that uses the default fold
for its precision, and a fold-explicit variant (suffixed Fold, taking fold
as its first argument) that lets a caller trade accuracy for memory and
throughput by retaining more or fewer bins in the accumulator.

The associative combiner in package indexed is the shape an external
collective reduce (MPI or otherwise) needs to merge per-worker partial
accumulators into one; this package does not implement message passing,
only the operator and the parallel façade (ParallelDsum and friends) that
drives it locally across goroutines.
*/
package reproblas
