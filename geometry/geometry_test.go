// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/assemble"
	"github.com/IgASF/IgASF/bspline"
	"github.com/IgASF/IgASF/model"
	"github.com/IgASF/IgASF/quadrature"
	"github.com/IgASF/IgASF/tensor"
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

// Test_affineMassScaling checks spec.md §8 scenario S4: the affine map
// x=2ξ scales the mass matrix by its (constant) Jacobian determinant 2.
func Test_affineMassScaling(tst *testing.T) {
	b, eq := buildLinear2Elem()

	grid := tensor.NewCartesianGrid([][]float64{eq.Points})
	tb := tensor.New([]*bspline.Bspline{b})
	geo := NewBasisCoefficientMap(tb, [][]float64{{0, 1, 2}})

	chk.IntAssert(geo.Dim(), 1)
	chk.IntAssert(geo.Target(), 1)

	jac := geo.Jacobian(grid)
	for _, v := range jac[0] {
		if diff := v - 2; diff > 1e-12 || diff < -1e-12 {
			tst.Fatalf("expected constant Jacobian 2, got %v", v)
		}
	}

	tA, tB, tC := TransformCoefs(geo, grid, [][]float64{{0}}, []float64{0}, 1)
	_ = tA
	_ = tB
	for _, v := range tC {
		if diff := v - 2; diff > 1e-12 || diff < -1e-12 {
			tst.Fatalf("expected tC=2 everywhere, got %v", v)
		}
	}

	testVals := b.EvaluateBatch(eq.Points, []int{0})
	testVals.ApplyWeights(eq.Weights)
	trialVals := b.EvaluateBatch(eq.Points, []int{0})

	parts := model.DecomposeTransformed(1, nil, nil, tC)
	out, err := assemble.Assemble([]*bspline.BasisValues{testVals}, []*bspline.BasisValues{trialVals}, [][]int{eq.Bounds}, parts)
	if err != nil {
		tst.Fatalf("Assemble failed: %v", err)
	}
	dense := out.Dense()

	tol := 1e-10
	chk.Array(tst, "row0", tol, dense[0], []float64{2.0 / 6.0, 2.0 / 12.0, 0})
	chk.Array(tst, "row1", tol, dense[1], []float64{2.0 / 12.0, 2.0 / 3.0, 2.0 / 12.0})
	chk.Array(tst, "row2", tol, dense[2], []float64{0, 2.0 / 12.0, 2.0 / 6.0})
}
