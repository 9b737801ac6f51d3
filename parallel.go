// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reproblas

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/dasswap/reproblas/indexed"
)

// workQueue hands out contiguous element ranges to a fixed pool of
// workers via a single atomic counter, the usual shape for a blocked
// BLAS work queue, over one dimension with a caller-chosen block size.
type workQueue struct {
	head      int64
	n         int
	blockSize int
}

func newWorkQueue(n, blockSize int) *workQueue {
	return &workQueue{n: n, blockSize: blockSize}
}

// next returns the next [lo, hi) range to process, and ok == false once
// the queue is exhausted.
func (q *workQueue) next() (lo, hi int, ok bool) {
	w := int(atomic.AddInt64(&q.head, 1)) - 1
	lo = w * q.blockSize
	if lo >= q.n {
		return 0, 0, false
	}
	hi = lo + q.blockSize
	if hi > q.n {
		hi = q.n
	}
	return lo, hi, true
}

// numWorkers returns the number of goroutines a parallel reduction should
// use: one per available core, bounded above by the number of blocks
// there is work for.
func numWorkers(blocks int) int {
	w := runtime.GOMAXPROCS(0)
	if w > blocks {
		w = blocks
	}
	if w < 1 {
		w = 1
	}
	return w
}

// ParallelDsum computes the same reproducible result as Dsum, but spreads
// the reduction across goroutines and merges their partial accumulators
// with the associative combiner in package indexed rather
// than relying on message passing: the parallel façade this package
// exposes in place of an MPI collective.
func ParallelDsum(n int, x []float64, incX int) float64 {
	return ParallelDsumFold(indexed.DefaultFold64, n, x, incX)
}

// ParallelDsumFold is ParallelDsum with an explicit accumulator fold.
func ParallelDsumFold(fold, n int, x []float64, incX int) float64 {
	if n < 0 {
		reportError(errNegativeN)
		return 0
	}
	if incX == 0 {
		reportError(errZeroIncX)
		return 0
	}
	if !checkVectorLen(n, len(x), incX) {
		reportError(errShortX)
		return 0
	}
	if n == 0 {
		return 0
	}
	fold, ok := clampFold(fold, indexed.DefaultFold64, indexed.MaxFold64)
	if !ok {
		return 0
	}
	blocks := (n + indexed.Endurance64 - 1) / indexed.Endurance64
	workers := numWorkers(blocks)
	if workers <= 1 {
		return DsumFold(fold, n, x, incX)
	}

	off := 0
	if incX < 0 {
		off = -(n - 1) * incX
	}
	q := newWorkQueue(n, indexed.Endurance64)
	partials := make([]indexed.Float64, workers)
	for i := range partials {
		partials[i] = *indexed.NewFloat64(fold)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			acc := &partials[w]
			primary, carry := acc.Buffers()
			for {
				lo, hi, ok := q.next()
				if !ok {
					return
				}
				depositBlock64(fold, hi-lo, func(i int) float64 {
					return x[off+(lo+i)*incX]
				}, primary, 1, carry, 1)
			}
		}(w)
	}
	wg.Wait()

	result := indexed.NewFloat64(fold)
	for i := range partials {
		result.Combine(&partials[i])
	}
	return result.ToScalar()
}

// ParallelDdot is the parallel analogue of Ddot.
func ParallelDdot(n int, x []float64, incX int, y []float64, incY int) float64 {
	return ParallelDdotFold(indexed.DefaultFold64, n, x, incX, y, incY)
}

// ParallelDdotFold is ParallelDdot with an explicit accumulator fold.
func ParallelDdotFold(fold, n int, x []float64, incX int, y []float64, incY int) float64 {
	if n < 0 {
		reportError(errNegativeN)
		return 0
	}
	if incX == 0 {
		reportError(errZeroIncX)
		return 0
	}
	if incY == 0 {
		reportError(errZeroIncY)
		return 0
	}
	if !checkVectorLen(n, len(x), incX) {
		reportError(errShortX)
		return 0
	}
	if !checkVectorLen(n, len(y), incY) {
		reportError(errShortY)
		return 0
	}
	if n == 0 {
		return 0
	}
	fold, ok := clampFold(fold, indexed.DefaultFold64, indexed.MaxFold64)
	if !ok {
		return 0
	}
	blocks := (n + indexed.Endurance64 - 1) / indexed.Endurance64
	workers := numWorkers(blocks)
	if workers <= 1 {
		return DdotFold(fold, n, x, incX, y, incY)
	}

	offX, offY := 0, 0
	if incX < 0 {
		offX = -(n - 1) * incX
	}
	if incY < 0 {
		offY = -(n - 1) * incY
	}
	q := newWorkQueue(n, indexed.Endurance64)
	partials := make([]indexed.Float64, workers)
	for i := range partials {
		partials[i] = *indexed.NewFloat64(fold)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			acc := &partials[w]
			primary, carry := acc.Buffers()
			for {
				lo, hi, ok := q.next()
				if !ok {
					return
				}
				depositBlock64(fold, hi-lo, func(i int) float64 {
					return x[offX+(lo+i)*incX] * y[offY+(lo+i)*incY]
				}, primary, 1, carry, 1)
			}
		}(w)
	}
	wg.Wait()

	result := indexed.NewFloat64(fold)
	for i := range partials {
		result.Combine(&partials[i])
	}
	return result.ToScalar()
}
