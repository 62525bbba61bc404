// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/bspline"
	"github.com/IgASF/IgASF/geometry"
	"github.com/IgASF/IgASF/model"
	"github.com/IgASF/IgASF/quadrature"
	"github.com/IgASF/IgASF/tensor"
)

// Test_problemRoundTrip checks that EncodeProblem followed by
// DecodeProblem reproduces a problem description's basis, quadrature and
// equation coefficients, with and without a geometry map.
func Test_problemRoundTrip(tst *testing.T) {
	knots := []float64{0, 0, 0.5, 1, 1}
	b := bspline.New(1, knots)
	g := 1.0 / math.Sqrt(3)
	eq := &quadrature.ElementQuadrature{
		Template: quadrature.Template{Nodes: []float64{-g, g}, Weights: []float64{1, 1}, Name: "Gauss-Legendre"},
		Elements: []float64{0, 0.5, 1},
	}
	eq.Build()
	basis := tensor.New([]*bspline.Bspline{b})
	quad := &quadrature.TensorQuadrature{Components: []*quadrature.ElementQuadrature{eq}}

	eqc := &model.EqCoefs{Dim: 1, HasA: true, A: [][]float64{{1}}}
	eqc.Resolve()

	pd := &ProblemDescription{Test: basis, Trial: basis, Quadrature: quad, EqCoefs: eqc}

	raw, err := EncodeProblem(pd)
	if err != nil {
		tst.Fatalf("EncodeProblem failed: %v", err)
	}
	back, err := DecodeProblem(raw)
	if err != nil {
		tst.Fatalf("DecodeProblem failed: %v", err)
	}

	chk.IntAssert(back.Test.Dim(), 1)
	chk.IntAssert(back.Test.Components[0].Degree, 1)
	chk.Array(tst, "knots", 1e-15, back.Test.Components[0].Knots, knots)
	chk.IntAssert(len(back.Quadrature.Components[0].Points), len(eq.Points))
	if !back.EqCoefs.HasA || back.EqCoefs.A[0][0] != 1 {
		tst.Fatalf("expected HasA with A[0][0]=1, got %+v", back.EqCoefs)
	}
	if back.Geometry != nil {
		tst.Fatalf("expected nil geometry, got %v", back.Geometry)
	}
}

// Test_geoMapRoundTrip checks a BasisCoefficientMap survives encode/decode
func Test_geoMapRoundTrip(tst *testing.T) {
	b := bspline.New(1, []float64{0, 0, 1, 1})
	basis := tensor.New([]*bspline.Bspline{b})
	geo := geometry.NewBasisCoefficientMap(basis, [][]float64{{0, 2}})

	raw := EncodeGeoMap(geo)
	back := DecodeGeoMap(raw)

	bcm, ok := back.(*geometry.BasisCoefficientMap)
	if !ok {
		tst.Fatalf("expected *geometry.BasisCoefficientMap, got %T", back)
	}
	chk.Array(tst, "coefs", 1e-15, bcm.Coefs[0], []float64{0, 2})
}
