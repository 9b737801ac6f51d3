// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexed

import (
	"fmt"
	"strings"
)

// Float32 is a packed single-precision indexed accumulator.
type Float32 struct {
	Fold int
	data []float32
}

func SizeFloat32(fold int) int { return 2 * fold }

func clampFold32(fold int) int {
	if fold == 0 {
		fold = DefaultFold32
	}
	if fold < MinFold {
		fold = MinFold
	}
	if fold > MaxFold32 {
		fold = MaxFold32
	}
	return fold
}

func NewFloat32(fold int) *Float32 {
	fold = clampFold32(fold)
	return &Float32{Fold: fold, data: make([]float32, 2*fold)}
}

func ReleaseFloat32(acc *Float32) {
	acc.data = nil
}

func (a *Float32) primary() []float32 { return a.data[:a.Fold] }
func (a *Float32) carry() []float32   { return a.data[a.Fold:] }

func (a *Float32) SetZero() {
	SetZero32(a.Fold, a.primary(), 1, a.carry(), 1)
}

func (a *Float32) FromScalar(x float32) {
	a.SetZero()
	a.AddScalar(x)
}

func (a *Float32) AddScalar(x float32) {
	Update32(a.Fold, x, a.primary(), 1, a.carry(), 1)
	Deposit32(a.Fold, x, a.primary(), 1)
	Renormalize32(a.Fold, a.primary(), 1, a.carry(), 1)
}

func (a *Float32) ToScalar() float32 {
	return Convert32(a.Fold, a.primary(), 1, a.carry(), 1)
}

func (a *Float32) Combine(src *Float32) {
	AddIndexedToIndexed32(a.Fold, src.primary(), 1, src.carry(), 1, a.primary(), 1, a.carry(), 1)
}

func (a *Float32) HasDenormalBits() bool {
	for _, p := range a.primary() {
		if p != 0 && index32(p) <= MinIndex32 {
			return true
		}
	}
	return false
}

func (a *Float32) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "indexed.Float32{fold:%d primary:%v carry:%v}", a.Fold, a.primary(), a.carry())
	return b.String()
}
