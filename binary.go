// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strtod

// This file implements the power-of-two fast path: when the radix
// itself is a power of two (2, 4, 8, 16, 32), every digit contributes an
// exact, fixed number of mantissa bits, so the literal's value can be
// rounded directly from its digits without any big-integer arithmetic
// at all. Number holds every digit in memory up front, so the sticky
// bit below is computed exactly from the actual trailing digits rather
// than an approximate "many digits" heuristic, and the invalidFP escape
// hatch is only ever taken for a genuinely inapplicable (non-power-of-
// two) radix.

// log2Radix returns log2(radix) and true if radix is a power of two in
// [2, 32], the precondition for the fast path in this file.
func log2Radix(radix uint32) (uint32, bool) {
	switch radix {
	case 2:
		return 1, true
	case 4:
		return 2, true
	case 8:
		return 3, true
	case 16:
		return 4, true
	case 32:
		return 5, true
	default:
		return 0, false
	}
}

// Binary computes the correctly-rounded value of n directly from its
// digits, when n.Radix is a power of two. It returns the invalidFP
// sentinel (see [ExtendedFloat.IsValid]) if n.Radix doesn't qualify;
// callers fall back to [SlowRadix] in that case, though for every
// radix this fast path does apply to, its result is already exact.
func Binary(n *Number, f32 bool) ExtendedFloat {
	shift, ok := log2Radix(n.Radix)
	if !ok {
		return invalidFP
	}
	info := floatInfoFor(f32)
	if n.IsZero() {
		return ExtendedFloat{Mant: 0, Exp: 0}
	}

	digits := n.Digits
	var mant uint64
	consumed := 0
	for ; consumed < len(digits); consumed++ {
		if mant>>(64-shift) != 0 {
			break
		}
		d, ok := digitValue(digits[consumed], n.Radix)
		if !ok {
			panic("strtod: Binary: invalid digit")
		}
		mant = mant<<shift | uint64(d)
	}
	sticky := anyNonzeroDigit(digits[consumed:])
	remaining := len(digits) - consumed

	// value == mant * radix**(Exp10 + remaining) == mant * 2**e
	e := (n.Exp10 + int32(remaining)) * int32(shift)

	// Left-justify for the shared rounder. mant's low lz bits become
	// zero; any truncated digit bits that in the exact value occupy
	// those positions are folded into sticky instead. That is still a
	// correct round-to-nearest-even input: the justified mantissa is a
	// multiple of 2**lz, so adding back bits strictly below 2**lz can
	// never move it across the halfway threshold — it can only break an
	// apparent tie upward, which is exactly what sticky encodes.
	lz := leadingZerosLimb(mant)
	mant <<= lz
	return roundNorm64(mant, e-int32(lz), sticky, info)
}
