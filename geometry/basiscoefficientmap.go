// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/kron"
	"github.com/IgASF/IgASF/model"
	"github.com/IgASF/IgASF/tensor"
)

// BasisCoefficientMap is a GeoMap backed by a tensor-product basis and a
// control-point matrix: x_t(ξ) = Σ_α N_α(ξ)·Coefs[t][α] (spec.md §4.9).
// Evaluate and Jacobian are §4.8-style Kronecker applies, one axis
// contraction per parameter direction, reusing the kron package shared
// with assemble.KroneckerApply.
type BasisCoefficientMap struct {
	Basis *tensor.TensorBasis
	Coefs [][]float64 // Coefs[t] has length Basis.Size(), one per target component t
}

// NewBasisCoefficientMap validates shapes and returns a BasisCoefficientMap
func NewBasisCoefficientMap(basis *tensor.TensorBasis, coefs [][]float64) *BasisCoefficientMap {
	n := basis.Size()
	for t, c := range coefs {
		if len(c) != n {
			chk.Panic("geometry: control-point component %d has length %d, want %d", t, len(c), n)
		}
	}
	return &BasisCoefficientMap{Basis: basis, Coefs: coefs}
}

// Dim returns the parameter dimension D
func (o *BasisCoefficientMap) Dim() int { return o.Basis.Dim() }

// Target returns the target dimension T
func (o *BasisCoefficientMap) Target() int { return len(o.Coefs) }

// Evaluate implements GeoMap
func (o *BasisCoefficientMap) Evaluate(grid *tensor.CartesianGrid) [][]float64 {
	dim := o.Dim()
	derReq := make([][]int, dim)
	for i := range derReq {
		derReq[i] = []int{0}
	}
	vals := o.Basis.EvaluateComponents(derReq, grid)
	ders := make([]int, dim)
	shape := make([]int, dim)
	for i := 0; i < dim; i++ {
		shape[i] = o.Basis.Components[i].NumBasis()
	}
	out := make([][]float64, o.Target())
	for t, coefs := range o.Coefs {
		out[t] = kron.ReduceForward(append([]float64(nil), coefs...), append([]int(nil), shape...), vals, ders)
	}
	return out
}

// Jacobian implements GeoMap
func (o *BasisCoefficientMap) Jacobian(grid *tensor.CartesianGrid) [][]float64 {
	dim := o.Dim()
	derReq := make([][]int, dim)
	for i := range derReq {
		derReq[i] = []int{0, 1}
	}
	vals := o.Basis.EvaluateComponents(derReq, grid)
	shape := make([]int, dim)
	for i := 0; i < dim; i++ {
		shape[i] = o.Basis.Components[i].NumBasis()
	}
	out := make([][]float64, o.Target()*dim)
	for t, coefs := range o.Coefs {
		for i := 0; i < dim; i++ {
			pd := model.Unit(dim, i)
			ders := pd.Dims(dim)
			out[t*dim+i] = kron.ReduceForward(append([]float64(nil), coefs...), append([]int(nil), shape...), vals, ders)
		}
	}
	return out
}
