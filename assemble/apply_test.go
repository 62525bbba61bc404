// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assemble

import (
	"testing"

	"github.com/IgASF/IgASF/bspline"
	"github.com/IgASF/IgASF/model"
)

// Test_applyMatchesAssemble checks spec.md §8 property 6: KroneckerApply(v)
// equals M·v for the degree-1, 2-element stiffness matrix of S1.
func Test_applyMatchesAssemble(tst *testing.T) {
	b, eq := buildLinear2Elem()
	testVals := b.EvaluateBatch(eq.Points, []int{0, 1})
	testVals.ApplyWeights(eq.Weights)
	trialVals := b.EvaluateBatch(eq.Points, []int{0, 1})

	eqc := &model.EqCoefs{Dim: 1, HasA: true, A: [][]float64{{1}}}
	parts := eqc.DecomposeConstant(len(eq.Points))

	M, err := Assemble([]*bspline.BasisValues{testVals}, []*bspline.BasisValues{trialVals}, [][]int{eq.Bounds}, parts)
	if err != nil {
		tst.Fatalf("Assemble failed: %v", err)
	}
	dense := M.Dense()

	v := []float64{1.3, -0.7, 2.1}
	want := make([]float64, 3)
	for i := range want {
		for j := range v {
			want[i] += dense[i][j] * v[j]
		}
	}

	u := make([]float64, 3)
	n := b.NumBasis()
	KroneckerApply(
		[]*bspline.BasisValues{testVals},
		[]*bspline.BasisValues{trialVals},
		[]int{n}, []int{n},
		parts, v, u,
	)

	tol := 1e-9
	for i := range want {
		if diff := u[i] - want[i]; diff > tol || diff < -tol {
			tst.Fatalf("apply mismatch at %d: got=%v want=%v", i, u[i], want[i])
		}
	}
}
