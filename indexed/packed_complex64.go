// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexed

import (
	"fmt"
	"strings"
)

// Complex64 is a packed single-complex indexed accumulator.
type Complex64 struct {
	Fold int
	data []float32
}

func SizeComplex64(fold int) int { return 4 * fold }

func NewComplex64(fold int) *Complex64 {
	fold = clampFold32(fold)
	return &Complex64{Fold: fold, data: make([]float32, 4*fold)}
}

func ReleaseComplex64(acc *Complex64) {
	acc.data = nil
}

func (a *Complex64) primary() []float32 { return a.data[:2*a.Fold] }
func (a *Complex64) carry() []float32   { return a.data[2*a.Fold:] }

func (a *Complex64) SetZero() {
	SetZeroComplex64(a.Fold, a.primary(), 1, a.carry(), 1)
}

func (a *Complex64) FromScalar(x complex64) {
	a.SetZero()
	a.AddScalar(x)
}

func (a *Complex64) AddScalar(x complex64) {
	re, im := real(x), imag(x)
	UpdateComplex64(a.Fold, re, im, a.primary(), 1, a.carry(), 1)
	DepositComplex64(a.Fold, re, im, a.primary(), 1)
	RenormalizeComplex64(a.Fold, a.primary(), 1, a.carry(), 1)
}

func (a *Complex64) ToScalar() complex64 {
	return ConvertComplex64(a.Fold, a.primary(), 1, a.carry(), 1)
}

// HasDenormalBits reports whether either lane's primary vector holds a
// nonzero entry of magnitude below 2^-130 (bin index at or below
// MinIndex32); subnormals in [2^-130, 2^-126) are not reported.
func (a *Complex64) HasDenormalBits() bool {
	for _, p := range a.primary() {
		if p != 0 && index32(p) <= MinIndex32 {
			return true
		}
	}
	return false
}

func (a *Complex64) Combine(src *Complex64) {
	AddIndexedToIndexedComplex64(a.Fold, src.primary(), 1, src.carry(), 1, a.primary(), 1, a.carry(), 1)
}

func (a *Complex64) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "indexed.Complex64{fold:%d primary:%v carry:%v}", a.Fold, a.primary(), a.carry())
	return b.String()
}
