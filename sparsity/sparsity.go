// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sparsity implements the CSR-structured index skeleton shared by
// tensor-product assembly: row-offset plus column-index arrays, bilinear
// co-activation discovery and Kronecker composition.
package sparsity

import (
	"github.com/cpmech/gosl/chk"
)

// Sparsity holds a CSR-like index skeleton: rowStart[0..R], colIdx[0..nnz).
// Column lists are strictly increasing within a row and lie in [0,Cols).
// Immutable after construction.
type Sparsity struct {
	RowStart []int // [rows+1] monotonic; RowStart[0]=0, RowStart[rows]=nnz
	ColIdx   []int // [nnz] strictly increasing per row
	Cols     int   // number of columns
}

// New builds a Sparsity from already-computed rowStart/colIdx slices,
// validating the invariants from spec.md §3 and §8-1/2.
func New(rowStart, colIdx []int, cols int) *Sparsity {
	if len(rowStart) == 0 {
		chk.Panic("sparsity: rowStart must have at least one entry")
	}
	if rowStart[0] != 0 {
		chk.Panic("sparsity: rowStart[0] must be zero, got %d", rowStart[0])
	}
	if rowStart[len(rowStart)-1] != len(colIdx) {
		chk.Panic("sparsity: rowStart[last]=%d must equal nnz=%d", rowStart[len(rowStart)-1], len(colIdx))
	}
	for r := 0; r < len(rowStart)-1; r++ {
		if rowStart[r] > rowStart[r+1] {
			chk.Panic("sparsity: rowStart is not monotonic at row %d", r)
		}
		prev := -1
		for _, c := range colIdx[rowStart[r]:rowStart[r+1]] {
			if c < 0 || c >= cols {
				chk.Panic("sparsity: column %d out of range [0,%d) at row %d", c, cols, r)
			}
			if c <= prev {
				chk.Panic("sparsity: column indices not strictly increasing at row %d", r)
			}
			prev = c
		}
	}
	return &Sparsity{RowStart: rowStart, ColIdx: colIdx, Cols: cols}
}

// Rows returns the number of rows
func (o *Sparsity) Rows() int { return len(o.RowStart) - 1 }

// NNZ returns the number of nonzero column entries
func (o *Sparsity) NNZ() int { return len(o.ColIdx) }

// Row returns the (sorted, unique) column indices active at row i
func (o *Sparsity) Row(i int) []int { return o.ColIdx[o.RowStart[i]:o.RowStart[i+1]] }

// Start returns the offset into ColIdx (and a parallel values slice) where row i begins
func (o *Sparsity) Start(i int) int { return o.RowStart[i] }

// NnzRow returns the number of nonzero columns in row i
func (o *Sparsity) NnzRow(i int) int { return o.RowStart[i+1] - o.RowStart[i] }

// PosOf returns the position p such that Row(i)[p] == col, or -1 if col is not active at row i.
// Exploits the strictly-increasing ordering with a linear scan; rows are short (B-spline support).
func (o *Sparsity) PosOf(i, col int) int {
	row := o.Row(i)
	for p, c := range row {
		if c == col {
			return p
		}
		if c > col {
			break
		}
	}
	return -1
}
