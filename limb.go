// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strtod

import "math/bits"

// Limb is one machine-word digit of a multi-precision integer. 64-bit
// native multiplication (via [math/bits.Mul64]) is available on every
// platform Go targets, so unlike the C/Rust implementations this core
// is translated from, there's no 32-bit fallback to carry.
type Limb = uint64

// limbBits is the number of bits in a Limb.
const limbBits = 64

// scalarAdd adds two limbs and reports whether the result carried.
func scalarAdd(x, y Limb) (sum Limb, carry bool) {
	sum, c := bits.Add64(x, y, 0)
	return sum, c != 0
}

// scalarSub subtracts two limbs and reports whether the result borrowed.
func scalarSub(x, y Limb) (diff Limb, borrow bool) {
	diff, b := bits.Sub64(x, y, 0)
	return diff, b != 0
}

// scalarMul multiplies two limbs and adds a carry-in, returning the
// double-width result split into low and high limbs:
// low | (high << limbBits) == x*y + carry.
func scalarMul(x, y, carry Limb) (low, high Limb) {
	hi, lo := bits.Mul64(x, y)
	lo, c := bits.Add64(lo, carry, 0)
	hi += c
	return lo, hi
}

// scalarDiv divides the double-limb dividend (hi<<limbBits | lo) by
// divisor, returning the quotient and remainder. It panics if the
// quotient would overflow a single limb (divisor <= hi).
func scalarDiv(hi, lo, divisor Limb) (quot, rem Limb) {
	return bits.Div64(hi, lo, divisor)
}
