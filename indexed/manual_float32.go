// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexed

// Single-precision counterpart of manual_float64.go. See its comments for
// the rationale; the algorithm is identical, only the scalar kind and bin
// width (W32) differ.

func SetZero32(fold int, primary []float32, incPri int, carry []float32, incCarry int) {
	for i := 0; i < fold; i++ {
		primary[i*incPri] = 0
		carry[i*incCarry] = 0
	}
}

func Update32(fold int, x float32, primary []float32, incPri int, carry []float32, incCarry int) {
	updateIndex32(fold, index32(x), primary, incPri, carry, incCarry)
}

func updateIndex32(fold, j int, primary []float32, incPri int, carry []float32, incCarry int) {
	if isNaNInf32(primary[0]) {
		return
	}
	if indexOfPrimaryIsZero32(primary[0]) {
		for i := 0; i < fold; i++ {
			primary[i*incPri] = binCenter32(j - i)
			carry[i*incCarry] = 0
		}
		return
	}
	t := topIndex32(primary[0])
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
		primary[i*incPri] = binCenter32(j - i)
		carry[i*incCarry] = 0
	}
}

func Deposit32(fold int, x float32, primary []float32, incPri int) {
	if isNaNInf32(x) || isNaNInf32(primary[0]) {
		primary[0] += x
		return
	}
	i := 0
	if indexOfPrimaryIsZero32(primary[0]) {
		m := primary[0]
		q := x * compression32
		q = forceLSBOne32(q)
		q += m
		primary[0] = q
		m -= q
		m *= expansion32 * 0.5
		x += m
		x += m
		i = 1
	}
	for ; i < fold-1; i++ {
		m := primary[i*incPri]
		q := forceLSBOne32(x)
		q += m
		primary[i*incPri] = q
		m -= q
		x += m
	}
	q := forceLSBOne32(x)
	primary[i*incPri] += q
}

func Renormalize32(fold int, primary []float32, incPri int, carry []float32, incCarry int) {
	if isNaNInf32(primary[0]) || indexOfPrimaryIsZero32(primary[0]) {
		return
	}
	top := topIndex32(primary[0])
	for i := 0; i < fold; i++ {
		w := binWidth32(top - i)
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

func Convert32(fold int, primary []float32, incPri int, carry []float32, incCarry int) float32 {
	if isNaNInf32(primary[0]) {
		return primary[0]
	}
	if indexOfPrimaryIsZero32(primary[0]) {
		return 0
	}
	top := topIndex32(primary[0])
	var sum float32
	for i := 0; i < fold; i++ {
		idx := top - i
		c := binCenter32(idx)
		w := binWidth32(idx)
		sum += (primary[i*incPri] - c) + carry[i*incCarry]*w
	}
	return sum
}

func AddIndexedToIndexed32(fold int, priX []float32, incX int, carX []float32, incCX int, priY []float32, incY int, carY []float32, incCY int) {
	if indexOfPrimaryIsZero32(priY[0]) {
		for i := 0; i < fold; i++ {
			priY[i*incY] = priX[i*incX]
			carY[i*incCY] = carX[i*incCX]
		}
		return
	}
	if indexOfPrimaryIsZero32(priX[0]) {
		return
	}
	if isNaNInf32(priX[0]) || isNaNInf32(priY[0]) {
		priY[0] += priX[0]
		return
	}

	top := topIndex32(priX[0])
	updateIndex32(fold, top, priY, incY, carY, incCY)
	topY := topIndex32(priY[0])
	offset := topY - top

	for j := 0; j < fold; j++ {
		yi := j + offset
		if yi >= fold {
			break
		}
		idx := top - j
		c := binCenter32(idx)
		priY[yi*incY] += priX[j*incX] - c
		carY[yi*incCY] += carX[j*incCX]
	}
	Renormalize32(fold, priY, incY, carY, incCY)
}

func Rescale32(fold int, newScale, oldScale float32, primary []float32, incPri int, carry []float32, incCarry int) {
	if newScale == oldScale || newScale == 0 || oldScale == 0 {
		return
	}
	r := newScale / oldScale
	r *= r
	for i := 0; i < fold; i++ {
		primary[i*incPri] /= r
		if primary[i*incPri] == 0 {
			Update32(fold-i, 0, primary[i*incPri:], incPri, carry[i*incCarry:], incCarry)
			return
		}
	}
	if !isNaNInf32(primary[0]) && topIndex32(primary[0]) < MinIndex32 {
		SetZero32(fold, primary, incPri, carry, incCarry)
	}
}
