// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geometry implements the parameter-to-physical mapping and the
// per-quadrature-point push-forward of PDE coefficients (spec.md §4.9):
// GeoMap (BasisCoefficientMap, RationalMap) and transformCoefs.
package geometry

import (
	"github.com/IgASF/IgASF/tensor"
)

// GeoMap exposes evaluation and Jacobian of a (possibly rational) mapping
// from a D-dimensional parameter domain to a T-dimensional target space.
//
// Evaluate returns T slices, each of length grid.NumPoints().
// Jacobian returns D*T slices, each of length grid.NumPoints(), laid out as
// T row-major blocks of D: component t's derivative along direction i is
// slice index t*Dim()+i (spec.md §4.9's "row-major T×D blocks, one per
// point").
type GeoMap interface {
	Dim() int
	Target() int
	Evaluate(grid *tensor.CartesianGrid) [][]float64
	Jacobian(grid *tensor.CartesianGrid) [][]float64
}
