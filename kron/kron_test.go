// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kron

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/bspline"
)

// Test_contract01 checks ContractForward against a hand-computed sparse
// mat-vec for a single direction, and that ContractBackward maps the
// result back to the basis-space shape.
func Test_contract01(tst *testing.T) {
	b := bspline.New(1, []float64{0, 0, 0.5, 1, 1})
	bv := b.EvaluateBatch([]float64{0.25, 0.75}, []int{0})

	x := []float64{1, 2, 3} // basis-space (3 basis functions)
	y, shape := ContractForward(x, []int{3}, 0, bv, 0)
	chk.IntAssert(shape[0], 2)

	// manual expectation: y[q] = Σ active basis values * x
	for q := 0; q < 2; q++ {
		row := bv.Pattern.Row(q)
		want := 0.0
		for p, alpha := range row {
			want += bv.ValAt(0, q, p) * x[alpha]
		}
		if diff := y[q] - want; diff > 1e-13 || diff < -1e-13 {
			tst.Fatalf("forward mismatch at %d: got=%v want=%v", q, y[q], want)
		}
	}

	z, shape2 := ContractBackward(y, shape, 0, bv, 0, 3)
	chk.IntAssert(shape2[0], 3)
	_ = z
}
