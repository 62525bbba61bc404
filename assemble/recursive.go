// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assemble

import (
	"github.com/cpmech/gosl/chk"
)

// recursiveAssemble is the dimension-by-dimension contraction of spec.md
// §4.6. axis is the current (topmost unresolved) parameter direction;
// dTest/dTrial give the requested derivative order per direction for this
// Part; coefs is the flat per-quadrature-point coefficient slice for the
// sub-problem at this axis (length = Q_axis * coefBlockBelow); out
// accumulates into the flat values of dm.K[axis]'s CSR buffer (length
// dm.K[axis].NNZ()).
//
// D==1 (axis==0) bottoms out in the 1-D inner kernel. Otherwise each block
// of at most MaxTmp quadrature points (never crossing an element boundary,
// so active sets are invariant within it) first recurses one axis down for
// every point in the block, then contracts along the current axis: for
// every (test,trial) active pair the whole lower-dimension row is scaled
// by the pointwise test*trial value product and summed over the block,
// landing at the unique position the Kronecker sparsity predicts.
func recursiveAssemble(dm *Dims, axis int, dTest, dTrial []int, coefs []float64, out []float64) {
	if axis == 0 {
		assemble1D(dm.Test[0], dm.Trial[0], dTest[0], dTrial[0], coefs, dm.Bounds[0], dm.S[0], out)
		return
	}

	mT := dm.Test[axis]
	mR := dm.Trial[axis]
	Q := mT.Pattern.Rows()
	if len(coefs)%Q != 0 {
		chk.Panic("assemble: coefficient block of length %d is not divisible by axis %d point count %d", len(coefs), axis, Q)
	}
	coefBlock := len(coefs) / Q
	Klower := dm.K[axis-1]
	Scur := dm.S[axis]
	diT := mT.DerIndex(dTest[axis])
	diR := mR.DerIndex(dTrial[axis])
	Kaxis := dm.K[axis]
	scratch := dm.scratch[axis]

	for _, blk := range blocksFor(Q, dm.Bounds[axis]) {
		q0, q1 := blk[0], blk[1]
		B := q1 - q0

		for t := 0; t < B; t++ {
			buf := scratch[t]
			for i := range buf {
				buf[i] = 0
			}
			recursiveAssemble(dm, axis-1, dTest, dTrial, coefs[(q0+t)*coefBlock:(q0+t+1)*coefBlock], buf)
		}

		rowT := mT.Pattern.Row(q0)
		rowR := mR.Pattern.Row(q0)
		for tsIdx, testCol := range rowT {
			for trIdx, trialCol := range rowR {
				p := Scur.PosOf(testCol, trialCol)
				if p < 0 {
					chk.Panic("assemble: trial column %d not co-active with test column %d at axis %d", trialCol, testCol, axis)
				}
				for r := 0; r < Klower.Rows(); r++ {
					nnzR := Klower.NnzRow(r)
					if nnzR == 0 {
						continue
					}
					lowerStart := Klower.Start(r)
					rowIdx := testCol*Klower.Rows() + r
					outStart := Kaxis.Start(rowIdx) + p*nnzR
					for t := 0; t < B; t++ {
						w := mT.ValAt(diT, q0+t, tsIdx) * mR.ValAt(diR, q0+t, trIdx)
						if w == 0 {
							continue
						}
						buf := scratch[t]
						for q := 0; q < nnzR; q++ {
							out[outStart+q] += w * buf[lowerStart+q]
						}
					}
				}
			}
		}
	}
}
