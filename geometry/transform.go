// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/tensor"
)

// TransformCoefs evaluates geo's Jacobian at every point of grid and
// pushes a constant physical-space model (A T×T, b length T, c scalar)
// forward to per-quadrature-point parameter-space coefficients (spec.md
// §4.9):
//
//	tA_ij(q) = [J⁺ A J⁺ᵀ]_ij(q)·det(q)
//	tB_i(q)  = [J⁺ b]_i(q)·det(q)
//	tC(q)    = c·det(q)
//
// J⁺ is J⁻¹ when Dim()==Target() and the pseudo-inverse (JᵀJ)⁻¹Jᵀ when
// Dim()<Target() (an embedded lower-dimensional domain), with
// det = |det J| or sqrt(det(JᵀJ)) respectively. Returns tA flattened
// row-major (dim*dim entries), tB (dim entries), tC -- directly consumable
// by model.DecomposeTransformed.
func TransformCoefs(geo GeoMap, grid *tensor.CartesianGrid, A [][]float64, b []float64, c float64) (tA [][]float64, tB [][]float64, tC []float64) {
	dim := geo.Dim()
	target := geo.Target()
	if len(A) != target {
		chk.Panic("geometry: A has %d rows, want target dimension %d", len(A), target)
	}
	if len(b) != target {
		chk.Panic("geometry: b has length %d, want target dimension %d", len(b), target)
	}
	jac := geo.Jacobian(grid)
	n := grid.NumPoints()

	tA = make([][]float64, dim*dim)
	for i := range tA {
		tA[i] = make([]float64, n)
	}
	tB = make([][]float64, dim)
	for i := range tB {
		tB[i] = make([]float64, n)
	}
	tC = make([]float64, n)

	Jq := make([][]float64, target)
	for t := range Jq {
		Jq[t] = make([]float64, dim)
	}

	for q := 0; q < n; q++ {
		for t := 0; t < target; t++ {
			for i := 0; i < dim; i++ {
				Jq[t][i] = jac[t*dim+i][q]
			}
		}

		var jinv [][]float64
		var det float64
		if dim == target {
			var d float64
			jinv, d = invDet(Jq)
			det = math.Abs(d)
		} else {
			jt := transpose(Jq)
			g := matMul(jt, Jq)
			ginv, detG := invDet(g)
			jinv = matMul(ginv, jt)
			det = math.Sqrt(math.Abs(detG))
		}

		aq := matMul(matMul(jinv, A), transpose(jinv))
		bq := matVec(jinv, b)

		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				tA[i*dim+j][q] = aq[i][j] * det
			}
			tB[i][q] = bq[i] * det
		}
		tC[q] = c * det
	}
	return
}
