// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assemble

import (
	"github.com/cpmech/gosl/la"

	"github.com/IgASF/IgASF/bspline"
	"github.com/IgASF/IgASF/sparsity"
)

// assemble1D is the 1-D inner kernel (spec.md §4.7): for each element of
// quadrature points it accumulates the outer-product sum
// tmp += Σ_q T.val(dTest,q)·R.val(dTrial,q)^T·coefs[q] into a small dense
// block (active test funcs x active trial funcs, constant across the
// element by B-spline local support), then scatter-adds it into out using
// the bilinear sparsity S.
func assemble1D(T, R *bspline.BasisValues, dTest, dTrial int, coefs []float64, bounds []int, S *sparsity.Sparsity, out []float64) {
	diT := T.DerIndex(dTest)
	diR := R.DerIndex(dTrial)
	for e := 0; e < len(bounds)-1; e++ {
		pb, pe := bounds[e], bounds[e+1]
		aT := T.Pattern.Row(pb)
		aR := R.Pattern.Row(pb)
		tmp := la.MatAlloc(len(aT), len(aR))
		for q := pb; q < pe; q++ {
			for ri := range aT {
				tv := T.ValAt(diT, q, ri)
				if tv == 0 {
					continue
				}
				cv := tv * coefs[q]
				for ci := range aR {
					tmp[ri][ci] += cv * R.ValAt(diR, q, ci)
				}
			}
		}
		for ri, ii := range aT {
			rowStart := S.Start(ii)
			rowS := S.Row(ii)
			p := 0
			for ci, jj := range aR {
				for rowS[p] < jj {
					p++
				}
				out[rowStart+p] += tmp[ri][ci]
				_ = ci
			}
		}
	}
}
