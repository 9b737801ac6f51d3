// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexed

import (
	"fmt"
	"strings"
)

// Float64 is a packed double-precision indexed accumulator: the
// user-facing scalar of this package. Primary and carry are held in one
// contiguous allocation of 2*Fold elements.
type Float64 struct {
	Fold int
	data []float64
}

// SizeFloat64 returns the number of float64 words a packed Float64
// accumulator of the given fold occupies.
func SizeFloat64(fold int) int { return 2 * fold }

// clampFold64 clamps a requested fold into the supported range, treating
// zero as "use the default".
func clampFold64(fold int) int {
	if fold == 0 {
		fold = DefaultFold64
	}
	if fold < MinFold {
		fold = MinFold
	}
	if fold > MaxFold64 {
		fold = MaxFold64
	}
	return fold
}

// NewFloat64 allocates a zeroed packed accumulator with the requested
// fold (0 selects DefaultFold64).
func NewFloat64(fold int) *Float64 {
	fold = clampFold64(fold)
	return &Float64{Fold: fold, data: make([]float64, 2*fold)}
}

// ReleaseFloat64 returns an accumulator's backing storage to the caller;
// it exists to mirror an explicit allocate/release lifecycle for callers
// that want one. The Go garbage collector reclaims acc regardless, so Release only
// needs to break the reference.
func ReleaseFloat64(acc *Float64) {
	acc.data = nil
}

func (a *Float64) primary() []float64 { return a.data[:a.Fold] }
func (a *Float64) carry() []float64   { return a.data[a.Fold:] }

// Buffers exposes a's primary and carry vectors directly, for callers
// (such as a parallel reduction's per-worker deposit loop) that need to
// drive the L2 manual routines without going through AddScalar.
func (a *Float64) Buffers() (primary, carry []float64) {
	return a.primary(), a.carry()
}

// SetZero puts a into the uninitialized / represents-exactly-zero state.
func (a *Float64) SetZero() {
	SetZero64(a.Fold, a.primary(), 1, a.carry(), 1)
}

// FromScalar sets a to represent exactly x.
func (a *Float64) FromScalar(x float64) {
	a.SetZero()
	a.AddScalar(x)
}

// AddScalar deposits x into a, as a one-element reduction.
func (a *Float64) AddScalar(x float64) {
	Update64(a.Fold, x, a.primary(), 1, a.carry(), 1)
	Deposit64(a.Fold, x, a.primary(), 1)
	Renormalize64(a.Fold, a.primary(), 1, a.carry(), 1)
}

// ToScalar returns the working-precision value a represents, without
// modifying a.
func (a *Float64) ToScalar() float64 {
	return Convert64(a.Fold, a.primary(), 1, a.carry(), 1)
}

// Combine merges src into a: a ← combine(src, a). a and src must share the
// same fold.
func (a *Float64) Combine(src *Float64) {
	AddIndexedToIndexed64(a.Fold, src.primary(), 1, src.carry(), 1, a.primary(), 1, a.carry(), 1)
}

// HasDenormalBits reports whether a's primary vector holds a nonzero
// entry whose bin index is at or below MinIndex64, that is, of magnitude
// below 2^-1000 (every subnormal, and the smallest normal values), the
// caller-observable predicate a caller may use to justify falling back
// to a faster, non-reproducible path.
func (a *Float64) HasDenormalBits() bool {
	for _, p := range a.primary() {
		if p != 0 && index64(p) <= MinIndex64 {
			return true
		}
	}
	return false
}

// String renders a's primary and carry vectors for debugging.
func (a *Float64) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "indexed.Float64{fold:%d primary:%v carry:%v}", a.Fold, a.primary(), a.carry())
	return b.String()
}
