// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexed

// Kind identifies one of the four working scalar kinds the package
// operates on.
type Kind int

const (
	KindFloat64 Kind = iota
	KindFloat32
	KindComplex128
	KindComplex64
)

func (k Kind) String() string {
	switch k {
	case KindFloat64:
		return "float64"
	case KindFloat32:
		return "float32"
	case KindComplex128:
		return "complex128"
	case KindComplex64:
		return "complex64"
	default:
		return "indexed: unknown kind"
	}
}

// Bin widths, in bits, of the per-precision index table. Chosen so that
// ENDURANCE deposits of similarly-scaled terms cannot overflow a
// pre-rounded primary term's mantissa before a renormalize.
const (
	W64 = 40
	W32 = 13
)

// Mantissa precision, in bits including the implicit leading one, of each
// working precision.
const (
	P64 = 53
	P32 = 24
)

// DefaultFold is the fold used by the reproducible façade when the caller
// does not request one explicitly.
const (
	DefaultFold64 = 3
	DefaultFold32 = 3
)

// MaxFold bounds the fold a caller may request.
const (
	MaxFold64 = 10
	MaxFold32 = 10
)

// MinFold is the smallest fold accepted by any allocator.
const MinFold = 2

// Endurance64 and Endurance32 are the maximum number of deposits a block
// may make into an accumulator between renormalizes. The bound
// does not depend on fold: each retained term absorbs the same bounded
// number of pre-rounded corrections regardless of how many terms are kept.
const (
	Endurance64 = 1 << uint(P64-W64-2)
	Endurance32 = 1 << uint(P32-W32-2)
)

// floorDiv computes floor(a/b) for b > 0, unlike Go's truncating integer
// division.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ceilDiv computes ceil(a/b) for b > 0.
func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

// The bin center for index j sits P bits above the bin's value range:
// 1.5 * 2^(j*W + P). Every value of index j is then at least 2^(P-W)
// times smaller than its bin center, so ENDURANCE = 2^(P-W-2) deposits
// move the center's mantissa by less than a quarter of its unit in the
// first place and the center's exponent never changes between
// renormalizes. A primary term therefore behaves as a fixed-point
// accumulator with quantum 2^(j*W + 1), which is what makes deposits
// exact and order-independent.
//
// The index bounds keep every center (and its quantum) representable:
// the top index needs j*W + P + 1 below the max exponent so a term can
// drift a quarter-ufp above its center without overflowing, and the
// bottom index needs the center normal so the quantum does not fall off
// the subnormal floor.
const (
	minNormExp64 = -1022
	maxExp64     = 1023
	minNormExp32 = -126
	maxExp32     = 127
)

var (
	MinIndex64 = ceilDiv(minNormExp64-P64, W64)
	MaxIndex64 = floorDiv(maxExp64-1-P64, W64)
	MinIndex32 = ceilDiv(minNormExp32-P32, W32)
	MaxIndex32 = floorDiv(maxExp32-1-P32, W32)
)

// Grid spacing, in powers of two, of the dynamic sum-of-squares scale.
// Quantizing the scale this way makes every rescale ratio a power of
// 2^(2*scaleBits), a multiple of the bin width, so a rescaled
// accumulator lands back on the bin grid and stays convertible.
const (
	scaleBits64 = W64 / 2
	scaleBits32 = W32
)
