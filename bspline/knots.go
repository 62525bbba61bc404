// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bspline

import "github.com/cpmech/gosl/chk"

// UniformOpenKnots builds a clamped, uniform knot vector on [0,1] with
// numElements equal-length elements: degree+1 repeated end knots and one
// interior breakpoint per element boundary, each repeated degree-smoothness
// times (clamped to [1,degree]). smoothness=degree-1 (the default the
// "generate" CLI subcommand uses, spec.md §6) gives maximal C^(degree-1)
// continuity and a multiplicity-1 interior knot at every element boundary;
// grounded on original_source/src/bin/generateTest.cpp's getBasis, which
// builds the same kind of test knot vector from -d/-n/-s.
func UniformOpenKnots(degree, numElements, smoothness int) []float64 {
	if numElements < 1 {
		chk.Panic("bspline: numElements must be >= 1, got %d", numElements)
	}
	mult := degree - smoothness
	if mult < 1 {
		mult = 1
	}
	if mult > degree {
		mult = degree
	}
	knots := make([]float64, 0, 2*(degree+1)+(numElements-1)*mult)
	for i := 0; i <= degree; i++ {
		knots = append(knots, 0)
	}
	for e := 1; e < numElements; e++ {
		x := float64(e) / float64(numElements)
		for k := 0; k < mult; k++ {
			knots = append(knots, x)
		}
	}
	for i := 0; i <= degree; i++ {
		knots = append(knots, 1)
	}
	return knots
}
