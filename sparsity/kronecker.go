// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparsity

// Kronecker computes the sparsity of the Kronecker product E ⊗ I.
// Result has rows = E.Rows()*I.Rows(), cols = E.Cols*I.Cols,
// nnz = E.NNZ()*I.NNZ(). Row (eR*I.Rows()+iR) holds, for every
// c ∈ E.Row(eR) (outer, increasing) and every j ∈ I.Row(iR) (inner,
// increasing), the column j + I.Cols*c -- already strictly increasing
// because I.Row(iR) values are all < I.Cols.
func Kronecker(E, I *Sparsity) *Sparsity {
	rows := E.Rows() * I.Rows()
	cols := E.Cols * I.Cols
	nnz := E.NNZ() * I.NNZ()
	rowStart := make([]int, rows+1)
	colIdx := make([]int, nnz)
	pos := 0
	for eR := 0; eR < E.Rows(); eR++ {
		rowE := E.Row(eR)
		for iR := 0; iR < I.Rows(); iR++ {
			rowI := I.Row(iR)
			r := eR*I.Rows() + iR
			rowStart[r] = pos
			for _, c := range rowE {
				base := I.Cols * c
				for _, j := range rowI {
					colIdx[pos] = base + j
					pos++
				}
			}
		}
	}
	rowStart[rows] = pos
	return New(rowStart, colIdx, cols)
}
