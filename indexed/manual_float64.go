// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexed

// This file implements the L2 "manual" indexed algebra for float64: every
// routine takes a fold and explicit-stride primary/carry vectors, the same
// shape BLAS level-1 routines conventionally use, so that a
// single set of routines backs both the packed accumulator type (stride 1)
// and the complex accumulator (stride 2, offset by lane).

// SetZero64 puts the fold-term accumulator (primary, carry) into the
// uninitialized state, representing exactly zero.
func SetZero64(fold int, primary []float64, incPri int, carry []float64, incCarry int) {
	for i := 0; i < fold; i++ {
		primary[i*incPri] = 0
		carry[i*incCarry] = 0
	}
}

// Update64 prepares the accumulator to accept deposits of magnitude up to
// |x|, shifting the bin window up and discarding the bins it pushes out
// the bottom, or seeding the window from scratch if the accumulator is
// uninitialized.
func Update64(fold int, x float64, primary []float64, incPri int, carry []float64, incCarry int) {
	updateIndex64(fold, index64(x), primary, incPri, carry, incCarry)
}

// updateIndex64 raises the accumulator's window so its top bin is at
// least j. The combiner calls this directly with another accumulator's
// top index; Update64 derives j from a magnitude bound.
func updateIndex64(fold, j int, primary []float64, incPri int, carry []float64, incCarry int) {
	if isNaNInf64(primary[0]) {
		return
	}
	if indexOfPrimaryIsZero64(primary[0]) {
		for i := 0; i < fold; i++ {
			primary[i*incPri] = binCenter64(j - i)
			carry[i*incCarry] = 0
		}
		return
	}
	t := topIndex64(primary[0])
	if j <= t {
		return
	}
	s := j - t
	if s > fold {
		s = fold
	}
	for i := fold - 1; i >= s; i-- {
		primary[i*incPri] = primary[(i-s)*incPri]
		carry[i*incCarry] = carry[(i-s)*incCarry]
	}
	for i := 0; i < s; i++ {
		primary[i*incPri] = binCenter64(j - i)
		carry[i*incCarry] = 0
	}
}

// Deposit64 adds x into an accumulator already updated to hold magnitudes
// at least |x|. It never touches carry; callers must renormalize after at
// most Endurance64 deposits.
func Deposit64(fold int, x float64, primary []float64, incPri int) {
	if isNaNInf64(x) || isNaNInf64(primary[0]) {
		primary[0] += x
		return
	}
	i := 0
	if indexOfPrimaryIsZero64(primary[0]) {
		m := primary[0]
		q := x * compression64
		q = forceLSBOne64(q)
		q += m
		primary[0] = q
		m -= q
		m *= expansion64 * 0.5
		x += m
		x += m
		i = 1
	}
	for ; i < fold-1; i++ {
		m := primary[i*incPri]
		q := forceLSBOne64(x)
		q += m
		primary[i*incPri] = q
		m -= q
		x += m
	}
	q := forceLSBOne64(x)
	primary[i*incPri] += q
}

// Renormalize64 restores the invariant that every primary[i] lies within
// the middle half-chunk of its bin window, [1.375, 1.625) times the
// center's ufp, moving whole carry chunks into the carry counter. A
// block of at most Endurance64 deposits moves a term by less than one
// chunk in either direction, so the adjustment loops run at most once
// per bin and the term's exponent never changes.
func Renormalize64(fold int, primary []float64, incPri int, carry []float64, incCarry int) {
	if isNaNInf64(primary[0]) || indexOfPrimaryIsZero64(primary[0]) {
		return
	}
	top := topIndex64(primary[0])
	for i := 0; i < fold; i++ {
		w := binWidth64(top - i)
		v := primary[i*incPri]
		for v >= 6.5*w {
			v -= w
			carry[i*incCarry]++
		}
		for v < 5.5*w {
			v += w
			carry[i*incCarry]--
		}
		primary[i*incPri] = v
	}
}

// Convert64 returns the working-precision value represented by the
// accumulator, without modifying it.
func Convert64(fold int, primary []float64, incPri int, carry []float64, incCarry int) float64 {
	if isNaNInf64(primary[0]) {
		return primary[0]
	}
	if indexOfPrimaryIsZero64(primary[0]) {
		return 0
	}
	top := topIndex64(primary[0])
	var sum float64
	for i := 0; i < fold; i++ {
		idx := top - i
		c := binCenter64(idx)
		w := binWidth64(idx)
		sum += (primary[i*incPri] - c) + carry[i*incCarry]*w
	}
	return sum
}

// AddIndexedToIndexed64 implements the associative combiner: it adds the
// accumulator (priX, carX) into (priY, carY), aligning X's bin window onto
// Y's first.
func AddIndexedToIndexed64(fold int, priX []float64, incX int, carX []float64, incCX int, priY []float64, incY int, carY []float64, incCY int) {
	if indexOfPrimaryIsZero64(priY[0]) {
		for i := 0; i < fold; i++ {
			priY[i*incY] = priX[i*incX]
			carY[i*incCY] = carX[i*incCX]
		}
		return
	}
	if indexOfPrimaryIsZero64(priX[0]) {
		return
	}
	if isNaNInf64(priX[0]) || isNaNInf64(priY[0]) {
		priY[0] += priX[0]
		return
	}

	top := topIndex64(priX[0])
	updateIndex64(fold, top, priY, incY, carY, incCY)
	topY := topIndex64(priY[0])
	offset := topY - top

	for j := 0; j < fold; j++ {
		yi := j + offset
		if yi >= fold {
			break
		}
		idx := top - j
		c := binCenter64(idx)
		priY[yi*incY] += priX[j*incX] - c
		carY[yi*incCY] += carX[j*incCX]
	}
	Renormalize64(fold, priY, incY, carY, incCY)
}

// Rescale64 rescales a sum-of-squares accumulator from oldScale to
// newScale. Both scales must lie on the Scale64 grid so that the squared
// ratio is a power of the bin width and the divided terms land back on
// the bin grid; the division itself is exact. A window pushed off the
// bottom of the index range (or all the way to zero) holds less than one
// working-precision ulp of any future contribution, so it is dropped and
// reseeded.
func Rescale64(fold int, newScale, oldScale float64, primary []float64, incPri int, carry []float64, incCarry int) {
	if newScale == oldScale || newScale == 0 || oldScale == 0 {
		return
	}
	r := newScale / oldScale
	r *= r
	for i := 0; i < fold; i++ {
		primary[i*incPri] /= r
		if primary[i*incPri] == 0 {
			Update64(fold-i, 0, primary[i*incPri:], incPri, carry[i*incCarry:], incCarry)
			return
		}
	}
	if !isNaNInf64(primary[0]) && topIndex64(primary[0]) < MinIndex64 {
		SetZero64(fold, primary, incPri, carry, incCarry)
	}
}
