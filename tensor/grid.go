// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tensor composes univariate B-spline bases and grids into their
// tensor-product counterparts: TensorBasis and CartesianGrid.
package tensor

import (
	"github.com/cpmech/gosl/chk"
)

// CartesianGrid holds one owned vector of unique sorted nodes per
// direction; the grid G = G_0 x ... x G_{D-1}.
type CartesianGrid struct {
	Axes [][]float64 // [D][]
}

// NewCartesianGrid validates that each axis is sorted and returns the grid
func NewCartesianGrid(axes [][]float64) *CartesianGrid {
	for i, axis := range axes {
		for j := 1; j < len(axis); j++ {
			if axis[j] <= axis[j-1] {
				chk.Panic("tensor: grid axis %d is not strictly increasing at index %d", i, j)
			}
		}
	}
	return &CartesianGrid{Axes: axes}
}

// Dim returns the number of parameter directions
func (o *CartesianGrid) Dim() int { return len(o.Axes) }

// NumPoints returns the product of per-direction node counts
func (o *CartesianGrid) NumPoints() int {
	n := 1
	for _, axis := range o.Axes {
		n *= len(axis)
	}
	return n
}

// ToPoints expands the grid into a D x NumPoints() matrix in inner-first
// tensor order (i_0 varies fastest).
func (o *CartesianGrid) ToPoints() [][]float64 {
	d := o.Dim()
	n := o.NumPoints()
	out := make([][]float64, d)
	for i := range out {
		out[i] = make([]float64, n)
	}
	stride := 1
	for i := 0; i < d; i++ {
		axis := o.Axes[i]
		for q := 0; q < n; q++ {
			idx := (q / stride) % len(axis)
			out[i][q] = axis[idx]
		}
		stride *= len(axis)
	}
	return out
}
