// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/tensor"
)

// RationalMap wraps a (T+1)-target GeoMap (the last component is the
// homogeneous weight) and emits NURBS quotient values x_t = x'_t/w and the
// corresponding quotient-rule Jacobian (spec.md §4.9).
type RationalMap struct {
	Original GeoMap
}

// NewRationalMap validates the wrapped map has at least 2 target
// components (T physical + 1 weight) and returns a RationalMap
func NewRationalMap(original GeoMap) *RationalMap {
	if original.Target() < 2 {
		chk.Panic("geometry: RationalMap requires a (T+1)-target original map, got target=%d", original.Target())
	}
	return &RationalMap{Original: original}
}

// Dim returns the parameter dimension D
func (o *RationalMap) Dim() int { return o.Original.Dim() }

// Target returns the physical target dimension T (one less than Original's)
func (o *RationalMap) Target() int { return o.Original.Target() - 1 }

// Evaluate implements GeoMap: x_t = x'_t / w
func (o *RationalMap) Evaluate(grid *tensor.CartesianGrid) [][]float64 {
	vals := o.Original.Evaluate(grid)
	T := o.Target()
	w := vals[T]
	out := make([][]float64, T)
	for t := 0; t < T; t++ {
		out[t] = make([]float64, len(w))
		for q := range w {
			out[t][q] = vals[t][q] / w[q]
		}
	}
	return out
}

// Jacobian implements GeoMap via the quotient rule:
// ∂x_t/∂ξ_i = (∂x'_t/∂ξ_i - x_t·∂w/∂ξ_i) / w
func (o *RationalMap) Jacobian(grid *tensor.CartesianGrid) [][]float64 {
	dim := o.Dim()
	T := o.Target()
	vals := o.Original.Evaluate(grid)
	jac := o.Original.Jacobian(grid)
	w := vals[T]
	x := o.Evaluate(grid)
	out := make([][]float64, T*dim)
	for t := 0; t < T; t++ {
		for i := 0; i < dim; i++ {
			dnum := jac[t*dim+i]
			dw := jac[T*dim+i]
			col := make([]float64, len(w))
			for q := range w {
				col[q] = (dnum[q] - x[t][q]*dw[q]) / w[q]
			}
			out[t*dim+i] = col
		}
	}
	return out
}
