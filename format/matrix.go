// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/sparsity"
)

// DenseMatrixJSON is the wire shape {type:"matrix", rows, cols, coefs}
// (spec.md §6): coefs are stored column-major.
type DenseMatrixJSON struct {
	Type  string    `json:"type"`
	Rows  int       `json:"rows"`
	Cols  int       `json:"cols"`
	Coefs []float64 `json:"coefs"`
}

// Dense returns the matrix as row-major [][]float64
func (o *DenseMatrixJSON) Dense() [][]float64 {
	if len(o.Coefs) != o.Rows*o.Cols {
		chk.Panic("format: dense matrix coefs length %d does not match rows*cols=%d", len(o.Coefs), o.Rows*o.Cols)
	}
	out := make([][]float64, o.Rows)
	for i := range out {
		out[i] = make([]float64, o.Cols)
	}
	for j := 0; j < o.Cols; j++ {
		for i := 0; i < o.Rows; i++ {
			out[i][j] = o.Coefs[j*o.Rows+i]
		}
	}
	return out
}

// Column returns a single-column matrix (cols=1) as a flat []float64
func (o *DenseMatrixJSON) Column() []float64 {
	if o.Cols != 1 {
		chk.Panic("format: expected a column matrix (cols=1), got cols=%d", o.Cols)
	}
	return append([]float64(nil), o.Coefs...)
}

// NewDenseMatrixJSON encodes a row-major dense matrix into the wire shape
func NewDenseMatrixJSON(rows [][]float64) *DenseMatrixJSON {
	nr := len(rows)
	nc := 0
	if nr > 0 {
		nc = len(rows[0])
	}
	coefs := make([]float64, nr*nc)
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			coefs[j*nr+i] = rows[i][j]
		}
	}
	return &DenseMatrixJSON{Type: "matrix", Rows: nr, Cols: nc, Coefs: coefs}
}

// SparseMatrixJSON is the wire shape {type:"sparse matrix", rows, cols,
// coefs, col_pos, row_beg} (spec.md §6): row-major CSR.
type SparseMatrixJSON struct {
	Type   string    `json:"type"`
	Rows   int       `json:"rows"`
	Cols   int       `json:"cols"`
	Coefs  []float64 `json:"coefs"`
	ColPos []int     `json:"col_pos"`
	RowBeg []int     `json:"row_beg"`
}

// ToMatrix builds a sparsity.Matrix from the decoded JSON
func (o *SparseMatrixJSON) ToMatrix() *sparsity.Matrix {
	pattern := sparsity.New(o.RowBeg, o.ColPos, o.Cols)
	return &sparsity.Matrix{Pattern: pattern, Values: append([]float64(nil), o.Coefs...)}
}

// FromMatrix encodes a sparsity.Matrix as SparseMatrixJSON
func FromMatrix(m *sparsity.Matrix) *SparseMatrixJSON {
	return &SparseMatrixJSON{
		Type:   "sparse matrix",
		Rows:   m.Pattern.Rows(),
		Cols:   m.Pattern.Cols,
		Coefs:  append([]float64(nil), m.Values...),
		ColPos: append([]int(nil), m.Pattern.ColIdx...),
		RowBeg: append([]int(nil), m.Pattern.RowStart...),
	}
}
