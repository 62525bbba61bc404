// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bspline

import (
	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/sparsity"
)

// BasisValues holds a batch evaluation of a univariate basis: a Sparsity
// whose rows are quadrature points and columns are basis-function indices
// (row q lists the functions active at point q), plus one values slice per
// requested derivative order. All derivative value slices share Pattern,
// so Values[d][Pattern.Start(q)+p] is derivative DerVec[d] of the p-th
// active function at point q.
type BasisValues struct {
	Pattern *sparsity.Sparsity
	Values  [][]float64
	DerVec  []int
}

// DerIndex returns the position of derivative order `order` within DerVec,
// panicking if it was never requested -- a programming error (the caller
// controls which derivatives it asks for upfront).
func (o *BasisValues) DerIndex(order int) int {
	for i, d := range o.DerVec {
		if d == order {
			return i
		}
	}
	chk.Panic("bspline: derivative order %d was not requested (DerVec=%v)", order, o.DerVec)
	return -1
}

// Val returns derivative `order` of the p-th active function at point q
func (o *BasisValues) Val(order, q, p int) float64 {
	di := o.DerIndex(order)
	return o.Values[di][o.Pattern.Start(q)+p]
}

// ValAt returns derivative-index di (already resolved via DerIndex) of the
// p-th active function at point q -- the hot-path accessor used by the
// assembler, which resolves DerIndex once per Part rather than per point.
func (o *BasisValues) ValAt(di, q, p int) float64 {
	return o.Values[di][o.Pattern.Start(q)+p]
}

// ApplyWeights multiplies every derivative-value column at quadrature point
// q by w[q] in place -- used to absorb quadrature weights into the test
// basis (spec.md §4.4 applyToValues), by convention on the test side only.
func (o *BasisValues) ApplyWeights(w []float64) {
	rows := o.Pattern.Rows()
	if len(w) != rows {
		chk.Panic("bspline: weights length %d does not match rows %d", len(w), rows)
	}
	for _, vals := range o.Values {
		for q := 0; q < rows; q++ {
			start := o.Pattern.Start(q)
			end := o.Pattern.Start(q + 1)
			for p := start; p < end; p++ {
				vals[p] *= w[q]
			}
		}
	}
}
