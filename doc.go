// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strtod implements the slow-path core of a correctly-rounded
// string-to-float parser: the arbitrary-precision digit/byte comparison
// algorithms, their supporting big-integer arithmetic, the radix limit
// tables that pick between them, and the power-of-two fast path that
// coexists with them.
//
// The package does not itself implement the streaming digit iterator, a
// fast native-types/Eisel-Lemire approximation, or number-grammar
// validation; those are external collaborators (see [Number]).
// [ParseFloat64] and [ParseFloat32] wire a minimal digit scanner
// directly to [Binary] and [SlowRadix] so the package is usable and
// testable on its own.
package strtod
