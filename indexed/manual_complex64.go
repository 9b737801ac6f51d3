// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexed

// Single-complex counterpart of manual_complex128.go: two float32 lanes at
// stride 2.

func SetZeroComplex64(fold int, primary []float32, incPri int, carry []float32, incCarry int) {
	SetZero32(fold, primary, 2*incPri, carry, 2*incCarry)
	SetZero32(fold, primary[1:], 2*incPri, carry[1:], 2*incCarry)
}

func UpdateComplex64(fold int, xr, xi float32, primary []float32, incPri int, carry []float32, incCarry int) {
	Update32(fold, xr, primary, 2*incPri, carry, 2*incCarry)
	Update32(fold, xi, primary[1:], 2*incPri, carry[1:], 2*incCarry)
}

func DepositComplex64(fold int, xr, xi float32, primary []float32, incPri int) {
	Deposit32(fold, xr, primary, 2*incPri)
	Deposit32(fold, xi, primary[1:], 2*incPri)
}

func RenormalizeComplex64(fold int, primary []float32, incPri int, carry []float32, incCarry int) {
	Renormalize32(fold, primary, 2*incPri, carry, 2*incCarry)
	Renormalize32(fold, primary[1:], 2*incPri, carry[1:], 2*incCarry)
}

func ConvertComplex64(fold int, primary []float32, incPri int, carry []float32, incCarry int) complex64 {
	re := Convert32(fold, primary, 2*incPri, carry, 2*incCarry)
	im := Convert32(fold, primary[1:], 2*incPri, carry[1:], 2*incCarry)
	return complex(re, im)
}

func AddIndexedToIndexedComplex64(fold int, priX []float32, incX int, carX []float32, incCX int, priY []float32, incY int, carY []float32, incCY int) {
	AddIndexedToIndexed32(fold, priX, 2*incX, carX, 2*incCX, priY, 2*incY, carY, 2*incCY)
	AddIndexedToIndexed32(fold, priX[1:], 2*incX, carX[1:], 2*incCX, priY[1:], 2*incY, carY[1:], 2*incCY)
}

func RescaleComplex64(fold int, newScale, oldScale float32, primary []float32, incPri int, carry []float32, incCarry int) {
	Rescale32(fold, newScale, oldScale, primary, 2*incPri, carry, 2*incCarry)
	Rescale32(fold, newScale, oldScale, primary[1:], 2*incPri, carry[1:], 2*incCarry)
}
