// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/bspline"
)

// TensorBasis is an ordered list of D univariate bases. Size = product of
// component sizes. Global index I = Σ_i α_i · (∏_{j<i} size_j), given
// per-direction univariate indices α_i.
type TensorBasis struct {
	Components []*bspline.Bspline
}

// New returns a TensorBasis wrapping the given per-direction components
func New(components []*bspline.Bspline) *TensorBasis {
	if len(components) == 0 {
		chk.Panic("tensor: TensorBasis requires at least one component")
	}
	return &TensorBasis{Components: components}
}

// Dim returns the number of parameter directions
func (o *TensorBasis) Dim() int { return len(o.Components) }

// Size returns the product of per-direction basis sizes
func (o *TensorBasis) Size() int {
	n := 1
	for _, c := range o.Components {
		n *= c.NumBasis()
	}
	return n
}

// GlobalIndex maps per-direction univariate indices to the flat global
// basis-function index, with direction 0 varying fastest.
func (o *TensorBasis) GlobalIndex(alpha []int) int {
	idx := 0
	stride := 1
	for i, c := range o.Components {
		idx += alpha[i] * stride
		stride *= c.NumBasis()
	}
	return idx
}

// EvaluateComponents evaluates each directional component at the grid's
// nodes along that direction, requesting exactly the derivative orders the
// caller needs in derRequest[i] for direction i. This is the only
// evaluation entry point the assembler uses; arbitrary point-cloud
// evaluation (the source's stubbed TensorBasis::evaluate(points) overload)
// is intentionally not provided (spec.md §9 Open Question).
func (o *TensorBasis) EvaluateComponents(derRequest [][]int, grid *CartesianGrid) []*bspline.BasisValues {
	if grid.Dim() != o.Dim() {
		chk.Panic("tensor: grid dimension %d does not match basis dimension %d", grid.Dim(), o.Dim())
	}
	if len(derRequest) != o.Dim() {
		chk.Panic("tensor: derRequest length %d does not match basis dimension %d", len(derRequest), o.Dim())
	}
	out := make([]*bspline.BasisValues, o.Dim())
	for i, c := range o.Components {
		out[i] = c.EvaluateBatch(grid.Axes[i], derRequest[i])
	}
	return out
}
