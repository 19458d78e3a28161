// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strtod

// splitRadix decomposes radix as odd * 2**shift, so that raising a
// BigInt/BigFloat to the radix's power can be done as an odd-base limb
// multiplication (powSmallSteps) composed with a binary shift (free on
// this representation).
func splitRadix(radix uint32) (odd uint32, shift uint32) {
	switch radix {
	case 2:
		return 0, 1
	case 3:
		return 3, 0
	case 4:
		return 0, 2
	case 5:
		return 5, 0
	case 6:
		return 3, 1
	case 7:
		return 7, 0
	case 8:
		return 0, 3
	case 9:
		return 9, 0
	case 10:
		return 5, 1
	case 11:
		return 11, 0
	case 12:
		return 3, 2
	case 13:
		return 13, 0
	case 14:
		return 7, 1
	case 15:
		return 15, 0
	case 16:
		return 0, 4
	case 17:
		return 17, 0
	case 18:
		return 9, 1
	case 19:
		return 19, 0
	case 20:
		return 5, 2
	case 21:
		return 21, 0
	case 22:
		return 11, 1
	case 23:
		return 23, 0
	case 24:
		return 3, 3
	case 25:
		return 25, 0
	case 26:
		return 13, 1
	case 27:
		return 27, 0
	case 28:
		return 7, 2
	case 29:
		return 29, 0
	case 30:
		return 15, 1
	case 31:
		return 31, 0
	case 32:
		return 0, 5
	case 33:
		return 33, 0
	case 34:
		return 17, 1
	case 35:
		return 35, 0
	case 36:
		return 9, 2
	default:
		panic("strtod: splitRadix: radix out of range")
	}
}

// exactSmallPower returns base**exp exactly; the caller is responsible
// for keeping exp within u64PowerLimit(base) so the result never
// overflows a uint64.
func exactSmallPower(base uint64, exp uint32) uint64 {
	result := uint64(1)
	for i := uint32(0); i < exp; i++ {
		result *= base
	}
	return result
}

// powSmallSteps multiplies v in place by base**exp, chunking the
// exponent into steps no larger than base's u64PowerLimit so each step
// is a single-limb multiplication (smallMul) against the odd-radix
// component produced by splitRadix.
func powSmallSteps(v limbVec, base uint32, exp uint32) {
	if exp == 0 || base == 0 {
		return
	}
	limit := u64PowerLimit(base)
	remaining := exp
	for remaining > 0 {
		step := remaining
		if step > limit {
			step = limit
		}
		smallMul(v, exactSmallPower(uint64(base), step))
		remaining -= step
	}
}
