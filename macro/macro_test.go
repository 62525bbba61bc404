// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package macro

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/assemble"
	"github.com/IgASF/IgASF/bspline"
	"github.com/IgASF/IgASF/model"
	"github.com/IgASF/IgASF/quadrature"
)

// buildLinear2Elem mirrors assemble's test fixture: degree-1, 2-element
// unit-interval basis and 2-point Gauss quadrature.
func buildLinear2Elem() (*bspline.Bspline, *quadrature.ElementQuadrature) {
	knots := []float64{0, 0, 0.5, 1, 1}
	b := bspline.New(1, knots)
	g := 1.0 / math.Sqrt(3)
	eq := &quadrature.ElementQuadrature{
		Template: quadrature.Template{Nodes: []float64{-g, g}, Weights: []float64{1, 1}},
		Elements: []float64{0, 0.5, 1},
	}
	eq.Build()
	return b, eq
}

// referenceLaplacian2D assembles the same 2-D Laplacian globally, the way
// Test_S3_laplacian2D does in the assemble package, as the ground truth
// macro-parallel assembly must reproduce exactly.
func referenceLaplacian2D(b *bspline.Bspline, eq *quadrature.ElementQuadrature, parts []*model.Part) *assembleResult {
	dim := 2
	testVals := make([]*bspline.BasisValues, dim)
	trialVals := make([]*bspline.BasisValues, dim)
	for i := 0; i < dim; i++ {
		testVals[i] = b.EvaluateBatch(eq.Points, []int{0, 1})
		testVals[i].ApplyWeights(eq.Weights)
		trialVals[i] = b.EvaluateBatch(eq.Points, []int{0, 1})
	}
	bounds := [][]int{eq.Bounds, eq.Bounds}
	out, err := assemble.Assemble(testVals, trialVals, bounds, parts)
	if err != nil {
		chk.Panic("reference assembly failed: %v", err)
	}
	return &assembleResult{dense: out.Dense()}
}

type assembleResult struct {
	dense [][]float64
}

// Test_macroEqualsGlobal checks spec.md §8 property 7: assembleParallel
// equals assemble element-wise to within 1e-10, for the element-wise
// macro size under 2 threads, the single-macro (whole domain) size under
// 1 and 4 threads, and a mixed per-direction size under 3 threads.
func Test_macroEqualsGlobal(tst *testing.T) {
	b, eq := buildLinear2Elem()
	dim := 2
	n := len(eq.Points)

	ones := make([]float64, n*n)
	for i := range ones {
		ones[i] = 1
	}
	parts := []*model.Part{
		{Test: model.Unit(dim, 0), Trial: model.Unit(dim, 0), Coefs: append([]float64(nil), ones...)},
		{Test: model.Unit(dim, 1), Trial: model.Unit(dim, 1), Coefs: append([]float64(nil), ones...)},
	}

	ref := referenceLaplacian2D(b, eq, parts)

	testBasis := []*bspline.Bspline{b, b}
	trialBasis := []*bspline.Bspline{b, b}
	ders := [][]int{{0, 1}, {0, 1}}
	quad := &quadrature.TensorQuadrature{Components: []*quadrature.ElementQuadrature{eq, eq}}

	cases := []struct {
		name    string
		sizes   []int
		threads int
	}{
		{"element-wise/2threads", []int{1, 1}, 2},
		{"single-macro/1thread", []int{2, 2}, 1},
		{"single-macro/4threads", []int{2, 2}, 4},
		{"mixed/3threads", []int{1, 2}, 3},
	}

	tol := 1e-10
	for _, c := range cases {
		partsCopy := []*model.Part{
			{Test: parts[0].Test, Trial: parts[0].Trial, Coefs: append([]float64(nil), ones...)},
			{Test: parts[1].Test, Trial: parts[1].Trial, Coefs: append([]float64(nil), ones...)},
		}
		got, err := AssembleParallel(testBasis, trialBasis, ders, ders, quad, partsCopy, c.sizes, c.threads)
		if err != nil {
			tst.Fatalf("%s: AssembleParallel failed: %v", c.name, err)
		}
		dense := got.Dense()
		if len(dense) != len(ref.dense) {
			tst.Fatalf("%s: row count mismatch: got=%d want=%d", c.name, len(dense), len(ref.dense))
		}
		for i := range dense {
			for j := range dense[i] {
				if diff := dense[i][j] - ref.dense[i][j]; diff > tol || diff < -tol {
					tst.Fatalf("%s: mismatch at (%d,%d): got=%v want=%v", c.name, i, j, dense[i][j], ref.dense[i][j])
				}
			}
		}
	}
}
