// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strtod

import "fmt"

// ScanDecimal reads the longest unsigned decimal literal (integer part,
// optional fractional part, optional exponent) at the start of s and
// returns the Number it describes plus whatever bytes in s weren't
// consumed. It's a minimal stand-in for the streaming byte iterator
// this package's ParseFloat64 and ParseFloat32 need but do not define (that
// collaborator, along with sign and special-value handling, is out of
// scope here); it recognizes only the grammar this package needs to be
// independently testable; a real parser's grammar validation happens
// upstream of this package.
func ScanDecimal(s []byte) (*Number, []byte, error) {
	i := 0
	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intPart := s[intStart:i]

	var fracPart []byte
	if i < len(s) && s[i] == '.' {
		i++
		fracStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		fracPart = s[fracStart:i]
	}

	if len(intPart) == 0 && len(fracPart) == 0 {
		return nil, s, fmt.Errorf("strtod: no digits in %q", s)
	}

	var exp10 int32
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		neg := false
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			neg = s[j] == '-'
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			// Saturate instead of overflowing: any exponent this large
			// is far outside the finite range either way, and the slow
			// path's range clamp resolves it to 0 or infinity.
			const maxScanExp = 1 << 24
			var v int32
			for _, c := range s[expStart:j] {
				v = v*10 + int32(c-'0')
				if v > maxScanExp {
					v = maxScanExp
				}
			}
			if neg {
				v = -v
			}
			exp10 = v
			i = j
		}
	}

	digits := make([]byte, 0, len(intPart)+len(fracPart))
	digits = append(digits, intPart...)
	digits = append(digits, fracPart...)
	exp10 -= int32(len(fracPart))

	digits = stripLeadingZeros(digits)

	return &Number{Digits: digits, Exp10: exp10, Radix: 10}, s[i:], nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// stripLeadingZeros drops leading '0' digits, always leaving at least
// one digit behind (so the all-zero literal normalizes to "0").
func stripLeadingZeros(digits []byte) []byte {
	i := 0
	for i < len(digits)-1 && digits[i] == '0' {
		i++
	}
	return digits[i:]
}

// ParseFloat64 parses an unsigned decimal literal (no sign, no "inf" or
// "nan") to the nearest float64, trying the power-of-two fast path
// first (inapplicable for decimal, but shared with ParseRadix) and
// falling back to the arbitrary-precision slow path, which is always
// correct on its own.
func ParseFloat64(s []byte) (float64, error) { return parse(s, 10, false) }

// ParseFloat32 is ParseFloat64's float32 counterpart.
func ParseFloat32(s []byte) (float32, error) {
	v, err := parse(s, 10, true)
	return float32(v), err
}

// ParseRadix parses an unsigned literal in the given radix (2..36) to
// the nearest float64. Radixes other than 10 are a supplement beyond
// decimal (see radix 2-36 support), since Go source syntax has no
// literal notation for them beyond 2, 8, 10, and 16.
func ParseRadix(s []byte, radix uint32) (float64, error) {
	n, rest, err := scanRadix(s, radix)
	if err != nil {
		return 0, err
	}
	if len(rest) != 0 {
		return 0, fmt.Errorf("strtod: trailing bytes: %q", rest)
	}
	return resolve(n, false).ToFloat64(), nil
}

func parse(s []byte, radix uint32, f32 bool) (float64, error) {
	n, rest, err := scanRadix(s, radix)
	if err != nil {
		return 0, err
	}
	if len(rest) != 0 {
		return 0, fmt.Errorf("strtod: trailing bytes: %q", rest)
	}
	fp := resolve(n, f32)
	if f32 {
		return float64(fp.ToFloat32()), nil
	}
	return fp.ToFloat64(), nil
}

// scanRadix is ScanDecimal generalized to an arbitrary radix; decimal
// is overwhelmingly the common case so ScanDecimal stays the direct
// entry point, but this package's radix-2..36 support needs a scanner
// too.
func scanRadix(s []byte, radix uint32) (*Number, []byte, error) {
	if radix == 10 {
		return ScanDecimal(s)
	}
	i := 0
	for i < len(s) {
		if _, ok := digitValue(s[i], radix); !ok {
			break
		}
		i++
	}
	if i == 0 {
		return nil, s, fmt.Errorf("strtod: no digits in %q", s)
	}
	digits := stripLeadingZeros(append([]byte(nil), s[:i]...))
	return &Number{Digits: digits, Exp10: 0, Radix: radix}, s[i:], nil
}

// resolve is the shared decision point between the power-of-two fast
// path and the arbitrary-precision slow path.
func resolve(n *Number, f32 bool) ExtendedFloat {
	if fp := Binary(n, f32); fp.IsValid() {
		return fp
	}
	return SlowRadix(n, f32)
}
