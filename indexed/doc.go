// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package indexed implements the pre-rounded indexed accumulator algebra
// that makes the reproducible BLAS kernels in the parent package
// order-independent.
//
// A value is decomposed into an integer "index" derived from its
// exponent, and an indexed accumulator holds one
// pre-rounded floating-point value per retained index ("fold"), called the
// primary vector, alongside an integer-valued carry vector that records
// how many times a primary term has overflowed its window. Depositing a
// value into an accumulator never depends on the order or grouping of
// prior deposits, so accumulators computed over different partitions of
// the same multiset of inputs can be combined (Combine*) to reproduce
// exactly the accumulator that a single-threaded, single-order computation
// would have produced.
package indexed
