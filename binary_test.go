// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strtod

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLog2Radix(t *testing.T) {
	tests := []struct {
		radix uint32
		want  uint32
		ok    bool
	}{
		{2, 1, true},
		{4, 2, true},
		{8, 3, true},
		{16, 4, true},
		{32, 5, true},
		{10, 0, false},
		{3, 0, false},
	}
	for _, tt := range tests {
		got, ok := log2Radix(tt.radix)
		require.Equal(t, tt.ok, ok)
		if ok {
			require.Equal(t, tt.want, got)
		}
	}
}

func TestBinaryRejectsNonPowerOfTwoRadix(t *testing.T) {
	n := &Number{Digits: []byte{'1', '2'}, Exp10: 0, Radix: 10}
	fp := Binary(n, false)
	require.False(t, fp.IsValid())
}

func TestBinaryZero(t *testing.T) {
	n := &Number{Digits: []byte{'0'}, Exp10: 0, Radix: 16}
	fp := Binary(n, false)
	require.True(t, fp.IsValid())
	require.Equal(t, float64(0), fp.ToFloat64())
}

func TestBinaryHexIntegerExact(t *testing.T) {
	// 0x1F == 31, well within the fast path's exact range.
	n := &Number{Digits: []byte{'1', 'f'}, Exp10: 0, Radix: 16}
	fp := Binary(n, false)
	require.True(t, fp.IsValid())
	require.Equal(t, float64(31), fp.ToFloat64())
}

func TestBinaryMatchesMathPow2(t *testing.T) {
	// 0x10000000000000 (2**52) in binary radix, scaled via Exp10 in
	// units of the radix's own power-of-two shift.
	n := &Number{Digits: []byte{'1'}, Exp10: 52, Radix: 2}
	fp := Binary(n, false)
	require.True(t, fp.IsValid())
	require.Equal(t, math.Pow(2, 52), fp.ToFloat64())
}

func TestBinaryAgreesWithSlowRadixOnOctal(t *testing.T) {
	n := &Number{Digits: []byte{'7', '7', '7'}, Exp10: -2, Radix: 8}
	fast := Binary(n, false)
	require.True(t, fast.IsValid())
	slow := SlowRadix(n, false)
	require.Equal(t, slow.ToFloat64(), fast.ToFloat64())
}
