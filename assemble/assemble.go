// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assemble

import (
	"github.com/IgASF/IgASF/bspline"
	"github.com/IgASF/IgASF/model"
	"github.com/IgASF/IgASF/sparsity"
)

// Assemble produces the sparse bilinear-form matrix M_{i,j} = Σ_q w_q ·
// φ_i(x_q) · coef(x_q) · ψ_j(x_q) for every Part, accumulating additively
// into one output MMatrix whose pattern is the Kronecker composition of
// the per-direction bilinear sparsities (spec.md §4.6). test/trial must
// already carry every derivative order any Part requests, and the test
// side must already be pre-multiplied by the quadrature weights
// (spec.md §4.4 applyToValues).
func Assemble(test, trial []*bspline.BasisValues, elementBounds [][]int, parts []*model.Part) (*sparsity.Matrix, error) {
	dm, err := NewDims(test, trial, elementBounds)
	if err != nil {
		return nil, err
	}
	out := sparsity.NewMatrix(dm.Output())
	dim := dm.D
	for _, part := range parts {
		recursiveAssemble(dm, dim-1, part.Test.Dims(dim), part.Trial.Dims(dim), part.Coefs, out.Values)
	}
	return out, nil
}
