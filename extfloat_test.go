// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strtod

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackFloat64BitPatterns(t *testing.T) {
	tests := []struct {
		name string
		fp   ExtendedFloat
		want uint64
	}{
		{"zero", ExtendedFloat{Mant: 0, Exp: 0}, 0x0000000000000000},
		{"one", ExtendedFloat{Mant: 1 << 52, Exp: -52}, 0x3FF0000000000000},
		{"smallest subnormal", ExtendedFloat{Mant: 1, Exp: -1074}, 0x0000000000000001},
		{"largest subnormal", ExtendedFloat{Mant: 1<<52 - 1, Exp: -1074}, 0x000FFFFFFFFFFFFF},
		{"smallest normal", ExtendedFloat{Mant: 1 << 52, Exp: -1074}, 0x0010000000000000},
		{"largest finite", ExtendedFloat{Mant: 1<<53 - 1, Exp: 971}, 0x7FEFFFFFFFFFFFFF},
		{"overflow", ExtendedFloat{Mant: 1 << 52, Exp: 972}, 0x7FF0000000000000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, math.Float64bits(tt.fp.ToFloat64()))
		})
	}
}

func TestPackFloat32BitPatterns(t *testing.T) {
	tests := []struct {
		name string
		fp   ExtendedFloat
		want uint32
	}{
		{"one", ExtendedFloat{Mant: 1 << 23, Exp: -23}, 0x3F800000},
		{"smallest subnormal", ExtendedFloat{Mant: 1, Exp: -149}, 0x00000001},
		{"smallest normal", ExtendedFloat{Mant: 1 << 23, Exp: -149}, 0x00800000},
		{"overflow", ExtendedFloat{Mant: 1 << 23, Exp: 105}, 0x7F800000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, math.Float32bits(tt.fp.ToFloat32()))
		})
	}
}

func TestInvalidFPSentinel(t *testing.T) {
	require.False(t, invalidFP.IsValid())
	require.True(t, ExtendedFloat{Mant: 1 << 52, Exp: -52}.IsValid())
}
