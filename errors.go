// Copyright ©2024 The ReproBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reproblas

import (
	"fmt"
	"os"
)

// Error classes surfaced through ErrorHandler. NaN/Inf in the
// input is data, not an error, and is never reported here; it taints the
// accumulator instead (see package indexed).
const (
	errNegativeN    = "reproblas: n < 0"
	errZeroIncX     = "reproblas: incX == 0"
	errZeroIncY     = "reproblas: incY == 0"
	errBadOrder     = "reproblas: illegal order"
	errBadTranspose = "reproblas: illegal transpose"
	errFoldRange    = "reproblas: fold out of range [2, MaxFold]"
	errShortX       = "reproblas: x slice too short for n, incX"
	errShortY       = "reproblas: y slice too short for n, incY"
	errShortA       = "reproblas: a slice too short for m, n, lda"
)

// ErrorHandler receives the message for any invalid-argument condition a
// kernel detects. Kernels never panic or return an error value: instead
// they call the handler (which may log, count, or escalate) and then
// return their documented sentinel (0 for scalar results, a no-op for
// in-place results). The default handler writes the message to standard
// error and continues; setting ErrorHandler to nil discards messages.
var ErrorHandler func(msg string) = defaultErrorHandler

func defaultErrorHandler(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

// reportError invokes the configured ErrorHandler, tolerating a caller
// that has set it to nil.
func reportError(msg string) {
	if ErrorHandler != nil {
		ErrorHandler(msg)
	}
}

// checkVectorLen reports whether a slice of the given length can hold n
// elements at the given (possibly negative) increment.
func checkVectorLen(n int, length, inc int) bool {
	if n <= 0 {
		return true
	}
	if inc > 0 {
		return (n-1)*inc < length
	}
	return (1-n)*inc < length
}
