// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// Part is one additive term of a bilinear form: a test-derivative, a
// trial-derivative, and a flat per-quadrature-point scalar coefficient
// view. Coefs.Size() == the tensor-quadrature point count, ordered with
// direction 0 varying fastest (spec.md §3). The slice is non-owning: it
// lives for one assembly call, owned by the Model (spec.md §9 cyclic
// reference note).
type Part struct {
	Test  PartialDerivative
	Trial PartialDerivative
	Coefs []float64
}

// constArray returns a new slice of length n filled with v -- used when a
// Part's coefficient is constant across the quadrature grid (no geometry map).
func constArray(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
