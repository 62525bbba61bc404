// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package la adds the one dense-matrix reduction the assembler's binary
// doesn't get from gosl/la's free-function style (MatAlloc, MatCopy, ...):
// a Frobenius-norm difference, used by "igasf compare" (spec.md §6,
// grounded on original_source/src/bin/compareMatrices.cpp) to report how
// far two assembled matrices are from each other.
package la

import "math"

// Frobenius returns the Frobenius norm of a-b, two row-major dense
// matrices of equal shape.
func Frobenius(a, b [][]float64) float64 {
	var sumSq float64
	for i := range a {
		for j := range a[i] {
			d := a[i][j] - b[i][j]
			sumSq += d * d
		}
	}
	return math.Sqrt(sumSq)
}
