// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strtod

import (
	"math"
	"strconv"
	"testing"
)

// FuzzParseFloat64AgainstStrconv checks ParseFloat64 against stdlib's
// strconv.ParseFloat, which is itself correctly rounded, on any decimal
// literal the fuzzer can construct from the seed corpus below. A
// mismatch here means a correctness bug, not a style nit.
func FuzzParseFloat64AgainstStrconv(f *testing.F) {
	for _, seed := range []string{
		"0", "1", "0.1", "3.14159265358979", "1e300", "1e-300",
		"9999999999999999999", "0.00000000000001", "5e-324",
		"1.7976931348623157e308", "2.2250738585072014e-308",
		"100", "123456789.987654321", "2.2250738585072012e-308",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		n, rest, err := ScanDecimal([]byte(s))
		if err != nil || len(rest) != 0 {
			return // not a literal this minimal scanner accepts
		}
		want, werr := strconv.ParseFloat(s, 64)
		got := resolve(n, false).ToFloat64()
		if werr != nil {
			// strconv reports a range error for literals that overflow
			// float64 (or underflow past its smallest value); those inputs
			// are skipped rather than compared.
			return
		}
		if math.Float64bits(want) != math.Float64bits(got) {
			t.Fatalf("ParseFloat64(%q) = %v (%#016x), strconv.ParseFloat = %v (%#016x)",
				s, got, math.Float64bits(got), want, math.Float64bits(want))
		}
	})
}
