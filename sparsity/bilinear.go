// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparsity

import (
	"github.com/cpmech/gosl/chk"
)

// Bilinear computes the sparsity of A^T B, where A and B are both indexed by
// (quadrature point, basis function) and share the same row count (the
// number of quadrature points). Row i of the result lists every column j
// such that some quadrature point q has i active in A.Row(q) and j active
// in B.Row(q).
//
// Contract (spec.md §4.1): the column-index set for each output row is an
// over-approximation -- the interval [minJ,maxJ] of co-active B-columns,
// not necessarily the exact co-active set. This is deliberate: B-spline
// local support makes the exact set already nearly-dense within the
// interval, and using the interval is cheaper to build and to scan.
func Bilinear(A, B *Sparsity) (*Sparsity, error) {
	if A.Rows() != B.Rows() {
		return nil, chk.Err("sparsity.Bilinear: row counts differ (A=%d, B=%d)", A.Rows(), B.Rows())
	}
	colsA, colsB := A.Cols, B.Cols
	minJ := make([]int, colsA)
	maxJ := make([]int, colsA)
	touched := make([]bool, colsA)
	for i := range minJ {
		minJ[i] = colsB
		maxJ[i] = -1
	}
	Q := A.Rows()
	for q := 0; q < Q; q++ {
		rowA := A.Row(q)
		rowB := B.Row(q)
		if len(rowB) == 0 {
			continue
		}
		jMin := rowB[0]
		jMax := rowB[len(rowB)-1]
		for _, i := range rowA {
			touched[i] = true
			if jMin < minJ[i] {
				minJ[i] = jMin
			}
			if jMax > maxJ[i] {
				maxJ[i] = jMax
			}
		}
	}
	rowStart := make([]int, colsA+1)
	for i := 0; i < colsA; i++ {
		n := 0
		if touched[i] {
			n = maxJ[i] - minJ[i] + 1
		}
		rowStart[i+1] = rowStart[i] + n
	}
	colIdx := make([]int, rowStart[colsA])
	for i := 0; i < colsA; i++ {
		p := rowStart[i]
		for j := minJ[i]; touched[i] && j <= maxJ[i]; j++ {
			colIdx[p] = j
			p++
		}
	}
	return New(rowStart, colIdx, colsB), nil
}
