// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strtod

// This file tabulates, for every supported radix 2..36, the constants
// that pick between the slow path's sub-algorithms and bound their
// work. Only decimal (radix 10) sees routine use, but BigInt's capacity
// (bigIntBits = 6000) is sized for full radix coverage, so the tables
// carry all of them.

// radixIndex maps a radix in [2,36] to a zero-based table index.
func radixIndex(radix uint32) int {
	if radix < 2 || radix > 36 {
		panic("strtod: radix out of range")
	}
	return int(radix - 2)
}

// exponentLimit returns the [min, max] decimal-exponent range for which
// radix**exponent is exactly representable in a float64 (or float32 when
// f32 is true) mantissa.
func exponentLimit(radix uint32, f32 bool) (min, max int32) {
	i := radixIndex(radix)
	if f32 {
		return f32ExponentLimit[i][0], f32ExponentLimit[i][1]
	}
	return f64ExponentLimit[i][0], f64ExponentLimit[i][1]
}

// mantissaLimit returns the largest number of digits in the given radix
// guaranteed to round-trip through a float64 (float32 when f32 is true)
// mantissa without loss.
func mantissaLimit(radix uint32, f32 bool) int32 {
	i := radixIndex(radix)
	if f32 {
		return f32MantissaLimit[i]
	}
	return f64MantissaLimit[i]
}

// maxDigits returns the maximum number of significant digits the
// digit-comparison slow path ever needs to consider for this radix and
// float width, or (0, false) if the radix has no finite bound (every odd
// radix falls through to the byte-comparison path instead).
func maxDigits(radix uint32, f32 bool) (int, bool) {
	i := radixIndex(radix)
	if f32 {
		n := f32MaxDigits[i]
		return n, n != 0
	}
	n := f64MaxDigits[i]
	return n, n != 0
}

// u32PowerLimit returns the largest exponent n such that radix**n fits in
// a uint32.
func u32PowerLimit(radix uint32) uint32 { return u32PowerLimitTable[radixIndex(radix)] }

// u64PowerLimit returns the largest exponent n such that radix**n fits in
// a uint64.
func u64PowerLimit(radix uint32) uint32 { return u64PowerLimitTable[radixIndex(radix)] }

// integralBinaryFactor returns ceil(log2(radix)), the number of bits of
// binary shift one radix digit contributes; large_quorem's normalized
// divisor requirement is expressed in terms of it.
func integralBinaryFactor(radix uint32) uint32 { return integralBinaryFactorTable[radixIndex(radix)] }

// log2X256 returns floor(256 * log2(radix)), a fixed-point lower bound
// on the bits one digit of the radix contributes. The slow path's range
// clamp uses it where a whole-bit floor would be too loose: over a
// ~1300-unit exponent the rounding error of floor(log2) reaches
// hundreds of bits, enough to let a should-be-clamped literal through
// to a BigInt power that exceeds capacity, while 1/256-bit granularity
// keeps the slack under six bits.
func log2X256(radix uint32) int64 { return int64(log2X256Table[radixIndex(radix)]) }

// f64ExponentLimit["radix"-2] = [min, max], the decimal/radix exponent
// range in which radix**e is exactly representable as a float64.
var f64ExponentLimit = [35][2]int32{
	{-1074, 1074}, // 2
	{-33, 33},     // 3
	{-537, 537},   // 4
	{-22, 22},     // 5
	{-22, 22},     // 6
	{-20, 20},     // 7
	{-358, 358},   // 8
	{-16, 16},     // 9
	{-22, 22},     // 10
	{-15, 15},     // 11
	{-22, 22},     // 12
	{-14, 14},     // 13
	{-20, 20},     // 14
	{-13, 13},     // 15
	{-268, 268},   // 16
	{-13, 13},     // 17
	{-22, 22},     // 18
	{-12, 12},     // 19
	{-22, 22},     // 20
	{-12, 12},     // 21
	{-15, 15},     // 22
	{-12, 12},     // 23
	{-22, 22},     // 24
	{-11, 11},     // 25
	{-20, 20},     // 26
	{-11, 11},     // 27
	{-14, 14},     // 28
	{-11, 11},     // 29
	{-22, 22},     // 30
	{-10, 10},     // 31
	{-214, 214},   // 32
	{-10, 10},     // 33
	{-20, 20},     // 34
	{-10, 10},     // 35
	{-15, 15},     // 36
}

var f32ExponentLimit = [35][2]int32{
	{-149, 149}, // 2
	{-15, 15},   // 3
	{-74, 74},   // 4
	{-10, 10},   // 5
	{-10, 10},   // 6
	{-9, 9},     // 7
	{-49, 49},   // 8
	{-7, 7},     // 9
	{-10, 10},   // 10
	{-7, 7},     // 11
	{-10, 10},   // 12
	{-6, 6},     // 13
	{-9, 9},     // 14
	{-6, 6},     // 15
	{-37, 37},   // 16
	{-6, 6},     // 17
	{-10, 10},   // 18
	{-5, 5},     // 19
	{-10, 10},   // 20
	{-5, 5},     // 21
	{-7, 7},     // 22
	{-5, 5},     // 23
	{-10, 10},   // 24
	{-5, 5},     // 25
	{-9, 9},     // 26
	{-5, 5},     // 27
	{-6, 6},     // 28
	{-5, 5},     // 29
	{-10, 10},   // 30
	{-4, 4},     // 31
	{-29, 29},   // 32
	{-4, 4},     // 33
	{-9, 9},     // 34
	{-4, 4},     // 35
	{-7, 7},     // 36
}

var f64MantissaLimit = [35]int32{
	53, // 2
	33, // 3
	26, // 4
	22, // 5
	20, // 6
	18, // 7
	17, // 8
	16, // 9
	15, // 10
	15, // 11
	14, // 12
	13, // 13
	13, // 14
	12, // 15
	12, // 16
	12, // 17
	11, // 18
	11, // 19
	11, // 20
	10, // 21
	10, // 22
	10, // 23
	10, // 24
	9,  // 25
	9,  // 26
	9,  // 27
	9,  // 28
	9,  // 29
	9,  // 30
	8,  // 31
	8,  // 32
	8,  // 33
	8,  // 34
	8,  // 35
	8,  // 36
}

var f32MantissaLimit = [35]int32{
	24, // 2
	15, // 3
	12, // 4
	10, // 5
	9,  // 6
	8,  // 7
	8,  // 8
	7,  // 9
	7,  // 10
	6,  // 11
	6,  // 12
	6,  // 13
	6,  // 14
	6,  // 15
	6,  // 16
	5,  // 17
	5,  // 18
	5,  // 19
	5,  // 20
	5,  // 21
	5,  // 22
	5,  // 23
	5,  // 24
	5,  // 25
	5,  // 26
	5,  // 27
	4,  // 28
	4,  // 29
	4,  // 30
	4,  // 31
	4,  // 32
	4,  // 33
	4,  // 34
	4,  // 35
	4,  // 36
}

// f64MaxDigits holds the max-digit bound for the digit-comparison slow
// path, 0 where the radix is odd and has no finite bound (those radixes
// use the byte-comparison path instead). The bound is the largest
// number of significant digits an exactly-representable halfway point
// can have in that radix, plus slack: past it, trailing digits can only
// break a tie, never create one, so a sticky bit suffices. The bounds
// grow with the radix because the deepest halfway points sit at the
// bottom of the subnormal range, where more of each digit's value is
// carried by the radix's odd factor. Power-of-two radixes are normally
// resolved by the fast path in binary.go; their entries here are
// generous bit-count bounds so the slow path stands alone on them too.
var f64MaxDigits = [35]int{
	767, // 2
	0,   // 3
	384, // 4
	0,   // 5
	682, // 6
	0,   // 7
	256, // 8
	0,   // 9
	769, // 10
	0,   // 11
	792, // 12
	0,   // 13
	808, // 14
	0,   // 15
	192, // 16
	0,   // 17
	832, // 18
	0,   // 19
	840, // 20
	0,   // 21
	848, // 22
	0,   // 23
	854, // 24
	0,   // 25
	859, // 26
	0,   // 27
	864, // 28
	0,   // 29
	868, // 30
	0,   // 31
	154, // 32
	0,   // 33
	876, // 34
	0,   // 35
	879, // 36
}

var f32MaxDigits = [35]int{
	114, // 2
	0,   // 3
	57,  // 4
	0,   // 5
	103, // 6
	0,   // 7
	38,  // 8
	0,   // 9
	114, // 10
	0,   // 11
	117, // 12
	0,   // 13
	119, // 14
	0,   // 15
	29,  // 16
	0,   // 17
	122, // 18
	0,   // 19
	123, // 20
	0,   // 21
	123, // 22
	0,   // 23
	124, // 24
	0,   // 25
	125, // 26
	0,   // 27
	125, // 28
	0,   // 29
	126, // 30
	0,   // 31
	23,  // 32
	0,   // 33
	127, // 34
	0,   // 35
	127, // 36
}

var u32PowerLimitTable = [35]uint32{
	31, // 2
	20, // 3
	15, // 4
	13, // 5
	12, // 6
	11, // 7
	10, // 8
	10, // 9
	9,  // 10
	9,  // 11
	8,  // 12
	8,  // 13
	8,  // 14
	8,  // 15
	7,  // 16
	7,  // 17
	7,  // 18
	7,  // 19
	7,  // 20
	7,  // 21
	7,  // 22
	7,  // 23
	6,  // 24
	6,  // 25
	6,  // 26
	6,  // 27
	6,  // 28
	6,  // 29
	6,  // 30
	6,  // 31
	6,  // 32
	6,  // 33
	6,  // 34
	6,  // 35
	6,  // 36
}

var u64PowerLimitTable = [35]uint32{
	63, // 2
	40, // 3
	31, // 4
	27, // 5
	24, // 6
	22, // 7
	21, // 8
	20, // 9
	19, // 10
	18, // 11
	17, // 12
	17, // 13
	16, // 14
	16, // 15
	15, // 16
	15, // 17
	15, // 18
	15, // 19
	14, // 20
	14, // 21
	14, // 22
	14, // 23
	13, // 24
	13, // 25
	13, // 26
	13, // 27
	13, // 28
	13, // 29
	13, // 30
	12, // 31
	12, // 32
	12, // 33
	12, // 34
	12, // 35
	12, // 36
}

var log2X256Table = [35]uint32{
	256,  // 2
	405,  // 3
	512,  // 4
	594,  // 5
	661,  // 6
	718,  // 7
	768,  // 8
	811,  // 9
	850,  // 10
	885,  // 11
	917,  // 12
	947,  // 13
	974,  // 14
	1000, // 15
	1024, // 16
	1046, // 17
	1067, // 18
	1087, // 19
	1106, // 20
	1124, // 21
	1141, // 22
	1158, // 23
	1173, // 24
	1188, // 25
	1203, // 26
	1217, // 27
	1230, // 28
	1243, // 29
	1256, // 30
	1268, // 31
	1280, // 32
	1291, // 33
	1302, // 34
	1313, // 35
	1323, // 36
}

var integralBinaryFactorTable = [35]uint32{
	1, // 2
	2, // 3
	2, // 4
	3, // 5
	3, // 6
	3, // 7
	3, // 8
	4, // 9
	4, // 10
	4, // 11
	4, // 12
	4, // 13
	4, // 14
	4, // 15
	4, // 16
	5, // 17
	5, // 18
	5, // 19
	5, // 20
	5, // 21
	5, // 22
	5, // 23
	5, // 24
	5, // 25
	5, // 26
	5, // 27
	5, // 28
	5, // 29
	5, // 30
	5, // 31
	5, // 32
	6, // 33
	6, // 34
	6, // 35
	6, // 36
}
