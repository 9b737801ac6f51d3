// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexed

import (
	"fmt"
	"strings"
)

// Complex128 is a packed double-complex indexed accumulator: real and
// imaginary lanes interleaved at stride 2.
type Complex128 struct {
	Fold int
	data []float64
}

func SizeComplex128(fold int) int { return 4 * fold }

func NewComplex128(fold int) *Complex128 {
	fold = clampFold64(fold)
	return &Complex128{Fold: fold, data: make([]float64, 4*fold)}
}

func ReleaseComplex128(acc *Complex128) {
	acc.data = nil
}

func (a *Complex128) primary() []float64 { return a.data[:2*a.Fold] }
func (a *Complex128) carry() []float64   { return a.data[2*a.Fold:] }

func (a *Complex128) SetZero() {
	SetZeroComplex128(a.Fold, a.primary(), 1, a.carry(), 1)
}

func (a *Complex128) FromScalar(x complex128) {
	a.SetZero()
	a.AddScalar(x)
}

func (a *Complex128) AddScalar(x complex128) {
	re, im := real(x), imag(x)
	UpdateComplex128(a.Fold, re, im, a.primary(), 1, a.carry(), 1)
	DepositComplex128(a.Fold, re, im, a.primary(), 1)
	RenormalizeComplex128(a.Fold, a.primary(), 1, a.carry(), 1)
}

func (a *Complex128) ToScalar() complex128 {
	return ConvertComplex128(a.Fold, a.primary(), 1, a.carry(), 1)
}

// HasDenormalBits reports whether either lane's primary vector holds a
// nonzero entry of magnitude below 2^-1000 (bin index at or below
// MinIndex64), which covers every subnormal and the smallest normal values.
func (a *Complex128) HasDenormalBits() bool {
	for _, p := range a.primary() {
		if p != 0 && index64(p) <= MinIndex64 {
			return true
		}
	}
	return false
}

func (a *Complex128) Combine(src *Complex128) {
	AddIndexedToIndexedComplex128(a.Fold, src.primary(), 1, src.carry(), 1, a.primary(), 1, a.carry(), 1)
}

func (a *Complex128) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "indexed.Complex128{fold:%d primary:%v carry:%v}", a.Fold, a.primary(), a.carry())
	return b.String()
}
