// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexed

// Double-complex accumulators interleave real and imaginary lanes at
// stride 2 in a single float64 primary/carry vector, the layout
// complex BLAS storage conventionally uses; each lane is an
// independent float64 accumulator, so the real work is delegated to
// manual_float64.go with a doubled stride and a one-element lane offset
// for the imaginary half.

func SetZeroComplex128(fold int, primary []float64, incPri int, carry []float64, incCarry int) {
	SetZero64(fold, primary, 2*incPri, carry, 2*incCarry)
	SetZero64(fold, primary[1:], 2*incPri, carry[1:], 2*incCarry)
}

func UpdateComplex128(fold int, xr, xi float64, primary []float64, incPri int, carry []float64, incCarry int) {
	Update64(fold, xr, primary, 2*incPri, carry, 2*incCarry)
	Update64(fold, xi, primary[1:], 2*incPri, carry[1:], 2*incCarry)
}

// DepositComplex128 deposits a complex value, propagating taint from
// either lane into its own lane only (a NaN/Inf real
// part taints the real accumulator but the imaginary part still deposits
// normally, and vice versa).
func DepositComplex128(fold int, xr, xi float64, primary []float64, incPri int) {
	Deposit64(fold, xr, primary, 2*incPri)
	Deposit64(fold, xi, primary[1:], 2*incPri)
}

func RenormalizeComplex128(fold int, primary []float64, incPri int, carry []float64, incCarry int) {
	Renormalize64(fold, primary, 2*incPri, carry, 2*incCarry)
	Renormalize64(fold, primary[1:], 2*incPri, carry[1:], 2*incCarry)
}

func ConvertComplex128(fold int, primary []float64, incPri int, carry []float64, incCarry int) complex128 {
	re := Convert64(fold, primary, 2*incPri, carry, 2*incCarry)
	im := Convert64(fold, primary[1:], 2*incPri, carry[1:], 2*incCarry)
	return complex(re, im)
}

func AddIndexedToIndexedComplex128(fold int, priX []float64, incX int, carX []float64, incCX int, priY []float64, incY int, carY []float64, incCY int) {
	AddIndexedToIndexed64(fold, priX, 2*incX, carX, 2*incCX, priY, 2*incY, carY, 2*incCY)
	AddIndexedToIndexed64(fold, priX[1:], 2*incX, carX[1:], 2*incCX, priY[1:], 2*incY, carY[1:], 2*incCY)
}

// RescaleComplex128 rescales both lanes of a complex sum-of-squares
// accumulator. Each lane reseeds its own remaining bins independently if
// it underflows during the division, which is equivalent to the paired
// reseed since the lanes share no state.
func RescaleComplex128(fold int, newScale, oldScale float64, primary []float64, incPri int, carry []float64, incCarry int) {
	Rescale64(fold, newScale, oldScale, primary, 2*incPri, carry, 2*incCarry)
	Rescale64(fold, newScale, oldScale, primary[1:], 2*incPri, carry[1:], 2*incCarry)
}
