// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadrature

import (
	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/tensor"
)

// TensorQuadrature composes one ElementQuadrature per direction into a
// tensor-product quadrature grid.
type TensorQuadrature struct {
	Components []*ElementQuadrature
}

// Dim returns the number of parameter directions
func (o *TensorQuadrature) Dim() int { return len(o.Components) }

// Grid returns the CartesianGrid of mapped quadrature nodes (one axis per
// direction, already sorted since elements and reference nodes are
// monotonic within an element and elements are contiguous).
func (o *TensorQuadrature) Grid() *tensor.CartesianGrid {
	axes := make([][]float64, o.Dim())
	for i, c := range o.Components {
		axes[i] = c.Points
	}
	return tensor.NewCartesianGrid(axes)
}

// Weights returns the tensor-product combined weight at every grid point,
// in the same inner-first order as CartesianGrid.ToPoints/NumPoints.
func (o *TensorQuadrature) Weights() []float64 {
	n := 1
	for _, c := range o.Components {
		n *= len(c.Weights)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	stride := 1
	for _, c := range o.Components {
		for q := 0; q < n; q++ {
			idx := (q / stride) % len(c.Weights)
			out[q] *= c.Weights[idx]
		}
		stride *= len(c.Weights)
	}
	return out
}

// ElementBounds returns, per direction, the element-boundary partition of
// quadrature points (spec.md §4.6's E[i]) needed by the recursive
// assembler to avoid crossing an active-set change inside a point block.
func (o *TensorQuadrature) ElementBounds() [][]int {
	out := make([][]int, o.Dim())
	for i, c := range o.Components {
		out[i] = c.Bounds
	}
	return out
}

// ApplyToValues multiplies each value at quadrature point q (flat,
// tensor-grid-ordered) by the combined weight w_q -- absorbs quadrature
// weights into the test-side basis values by convention (spec.md §4.4).
func ApplyToValues(values []float64, w []float64) {
	if len(values) != len(w) {
		chk.Panic("quadrature: values length %d does not match weights length %d", len(values), len(w))
	}
	for i := range values {
		values[i] *= w[i]
	}
}
