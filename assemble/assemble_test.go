// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assemble

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/bspline"
	"github.com/IgASF/IgASF/model"
	"github.com/IgASF/IgASF/quadrature"
)

// buildLinear2Elem returns the degree-1, 2-element unit-interval basis
// together with its quadrature (2-point Gauss, exact up to cubic
// integrands) -- spec.md §8 scenarios S1/S2.
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

// Test_S1_stiffness checks spec.md §8 scenario S1
func Test_S1_stiffness(tst *testing.T) {
	b, eq := buildLinear2Elem()
	vals := b.EvaluateBatch(eq.Points, []int{0, 1})
	vals.ApplyWeights(eq.Weights) // weight test side (der used = 1 for stiffness)

	trialVals := b.EvaluateBatch(eq.Points, []int{0, 1})

	eqc := &model.EqCoefs{Dim: 1, HasA: true, A: [][]float64{{1}}}
	parts := eqc.DecomposeConstant(len(eq.Points))

	out, err := Assemble([]*bspline.BasisValues{vals}, []*bspline.BasisValues{trialVals}, [][]int{eq.Bounds}, parts)
	if err != nil {
		tst.Fatalf("Assemble failed: %v", err)
	}
	dense := out.Dense()
	tol := 1e-10
	chk.Array(tst, "row0", tol, dense[0], []float64{2, -2, 0})
	chk.Array(tst, "row1", tol, dense[1], []float64{-2, 4, -2})
	chk.Array(tst, "row2", tol, dense[2], []float64{0, -2, 2})
}

// Test_S2_mass checks spec.md §8 scenario S2
func Test_S2_mass(tst *testing.T) {
	b, eq := buildLinear2Elem()
	vals := b.EvaluateBatch(eq.Points, []int{0})
	vals.ApplyWeights(eq.Weights)
	trialVals := b.EvaluateBatch(eq.Points, []int{0})

	eqc := &model.EqCoefs{Dim: 1, HasC: true, C: 1}
	parts := eqc.DecomposeConstant(len(eq.Points))

	out, err := Assemble([]*bspline.BasisValues{vals}, []*bspline.BasisValues{trialVals}, [][]int{eq.Bounds}, parts)
	if err != nil {
		tst.Fatalf("Assemble failed: %v", err)
	}
	dense := out.Dense()
	tol := 1e-10
	chk.Array(tst, "row0", tol, dense[0], []float64{1.0 / 6.0, 1.0 / 12.0, 0})
	chk.Array(tst, "row1", tol, dense[1], []float64{1.0 / 12.0, 1.0 / 3.0, 1.0 / 12.0})
	chk.Array(tst, "row2", tol, dense[2], []float64{0, 1.0 / 12.0, 1.0 / 6.0})
}

// Test_S3_laplacian2D checks spec.md §8 scenario S3: the 2-D Laplacian on
// one element per direction equals M_x⊗M + M⊗M_x built from the 1-D
// stiffness M_x and the 1-D mass M alone.
func Test_S3_laplacian2D(tst *testing.T) {
	knots := []float64{0, 0, 0, 1, 1, 1}
	b := bspline.New(2, knots)
	g := math.Sqrt(3.0 / 5.0)
	eq := &quadrature.ElementQuadrature{
		Template: quadrature.Template{Nodes: []float64{-g, 0, g}, Weights: []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}},
		Elements: []float64{0, 1},
	}
	eq.Build()

	test0 := b.EvaluateBatch(eq.Points, []int{0, 1})
	test0.ApplyWeights(eq.Weights)
	test1 := b.EvaluateBatch(eq.Points, []int{0, 1})
	test1.ApplyWeights(eq.Weights)
	trial0 := b.EvaluateBatch(eq.Points, []int{0, 1})
	trial1 := b.EvaluateBatch(eq.Points, []int{0, 1})

	n := len(eq.Points)
	onesCoefs := make([]float64, n*n)
	for i := range onesCoefs {
		onesCoefs[i] = 1
	}

	// A = I: parts are d/dx0 * d/dx0 (test=e0,trial=e0) and d/dx1*d/dx1 (test=e1,trial=e1)
	parts := []*model.Part{
		{Test: model.Unit(2, 0), Trial: model.Unit(2, 0), Coefs: onesCoefs},
		{Test: model.Unit(2, 1), Trial: model.Unit(2, 1), Coefs: onesCoefs},
	}

	bounds := [][]int{eq.Bounds, eq.Bounds}
	out, err := Assemble([]*bspline.BasisValues{test0, test1}, []*bspline.BasisValues{trial0, trial1}, bounds, parts)
	if err != nil {
		tst.Fatalf("Assemble failed: %v", err)
	}
	dense := out.Dense()
	chk.IntAssert(len(dense), 9)
	chk.IntAssert(len(dense[0]), 9)

	// reference: 1-D stiffness matrix Mx (3x3) for the same degree-2 single-element basis
	t1d := b.EvaluateBatch(eq.Points, []int{0, 1})
	t1d.ApplyWeights(eq.Weights)
	r1d := b.EvaluateBatch(eq.Points, []int{0, 1})
	p1d := []*model.Part{{Test: model.Unit(1, 0), Trial: model.Unit(1, 0), Coefs: append([]float64(nil), onesCoefs[:n]...)}}
	m1d, err := Assemble([]*bspline.BasisValues{t1d}, []*bspline.BasisValues{r1d}, [][]int{eq.Bounds}, p1d)
	if err != nil {
		tst.Fatalf("1-D Assemble failed: %v", err)
	}
	Mx := m1d.Dense()

	// reference: 1-D mass matrix M (3x3) for the same basis
	pm := []*model.Part{{Test: model.Zero(), Trial: model.Zero(), Coefs: append([]float64(nil), onesCoefs[:n]...)}}
	mm, err := Assemble([]*bspline.BasisValues{t1d}, []*bspline.BasisValues{r1d}, [][]int{eq.Bounds}, pm)
	if err != nil {
		tst.Fatalf("1-D mass Assemble failed: %v", err)
	}
	M := mm.Dense()

	tol := 1e-9
	for i0 := 0; i0 < 3; i0++ {
		for i1 := 0; i1 < 3; i1++ {
			row := i0 + 3*i1
			for j0 := 0; j0 < 3; j0++ {
				for j1 := 0; j1 < 3; j1++ {
					col := j0 + 3*j1
					expect := Mx[i0][j0]*M[i1][j1] + M[i0][j0]*Mx[i1][j1]
					got := dense[row][col]
					if diff := got - expect; diff > tol || diff < -tol {
						tst.Fatalf("mismatch at (%d,%d): got=%v expect=%v", row, col, got, expect)
					}
				}
			}
		}
	}
}
