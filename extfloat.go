// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strtod

import "math"

// ExtendedFloat is a binary value Mant * 2**Exp, the intermediate form
// between parsed digits and a packed IEEE-754 bit pattern. After
// rounding, a normal result's significand occupies the low
// mantissaBits+1 bits with the hidden bit explicit at bit mantissaBits;
// a subnormal's occupies fewer, with Exp pinned to denormalExp. Sign is
// not represented; a caller one layer up (sign and special-value
// handling) attaches it.
type ExtendedFloat struct {
	Mant uint64
	Exp  int32
}

// invalidFPExp marks an ExtendedFloat as unresolved: Binary returns it
// when the radix is not a power of two, and the caller re-dispatches to
// the main slow path.
const invalidFPExp = math.MinInt32

// invalidFP is the sentinel ExtendedFloat value signaling "redo this in
// the slow path".
var invalidFP = ExtendedFloat{Mant: 0, Exp: invalidFPExp}

// IsValid reports whether fp is a resolved result, as opposed to the
// invalidFP redo sentinel.
func (fp ExtendedFloat) IsValid() bool { return fp.Exp != invalidFPExp }

// floatInfo describes the bit layout of an IEEE-754 binary32 or
// binary64 value: mantissa width, exponent width, exponent bias, the
// biased exponent that encodes infinity, and the unbiased exponent of
// the smallest subnormal.
type floatInfo struct {
	mantissaBits  uint32
	exponentBits  uint32
	bias          int32
	infinitePower int32
	denormalExp   int32
}

var f64Info = floatInfo{
	mantissaBits:  52,
	exponentBits:  11,
	bias:          1023,
	infinitePower: 1<<11 - 1,
	denormalExp:   1 - 1023 - 52,
}

var f32Info = floatInfo{
	mantissaBits:  23,
	exponentBits:  8,
	bias:          127,
	infinitePower: 1<<8 - 1,
	denormalExp:   1 - 127 - 23,
}

// pack converts fp into the bit pattern of an IEEE-754 value described
// by info, handling the subnormal and overflow-to-infinity ranges. This
// is the shared tail end of both the power-of-two fast path and the
// digit-comparison slow path.
//
// fp arrives already rounded to its final precision: roundNorm64 picks
// the target mantissa width (fewer than mantissaBits+1 bits for a
// subnormal result) before rounding, so the rounding happens exactly
// once. pack only has to place the bits; rounding again here from full
// width down to subnormal width would be double rounding and can round
// the wrong way (the second pass would only see the bits that survived
// the first, having lost the true sticky bit below them).
//
// The subnormal test is the hidden bit, not the exponent: a subnormal
// leaves roundNorm64 with Exp pinned to denormalExp, which makes the
// recomputed biased exponent exactly 1 — the same as the smallest
// normal. What distinguishes the two is whether bit mantissaBits is
// set; when it isn't, the encoding's exponent field must be 0.
func (fp ExtendedFloat) pack(info floatInfo) uint64 {
	if fp.Mant == 0 {
		return 0
	}
	biasedExp := fp.Exp + int32(info.mantissaBits) + info.bias
	if biasedExp >= info.infinitePower {
		return uint64(info.infinitePower) << info.mantissaBits
	}
	if fp.Mant>>info.mantissaBits == 0 {
		// Subnormal: no hidden bit, exponent field 0, and the mantissa
		// bits are already in place (value == Mant * 2**denormalExp).
		return fp.Mant
	}
	mantMask := uint64(1)<<info.mantissaBits - 1
	return uint64(biasedExp)<<info.mantissaBits | (fp.Mant & mantMask)
}

// ToFloat64 packs fp as an IEEE-754 binary64 value.
func (fp ExtendedFloat) ToFloat64() float64 {
	return math.Float64frombits(fp.pack(f64Info))
}

// ToFloat32 packs fp as an IEEE-754 binary32 value.
func (fp ExtendedFloat) ToFloat32() float32 {
	return math.Float32frombits(uint32(fp.pack(f32Info)))
}
