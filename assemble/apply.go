// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assemble

import (
	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/bspline"
	"github.com/IgASF/IgASF/kron"
	"github.com/IgASF/IgASF/model"
)

// KroneckerApply computes u += (Σ parts) · v without materializing the
// assembled matrix (spec.md §4.8): for each Part it contracts v from
// trial-space to quadrature-space one axis at a time (forward), multiplies
// pointwise by the Part's coefficient, then scatters back from
// quadrature-space to test-space one axis at a time (backward).
//
// spec.md §9 documents the source's Kronecker factors in reversed order
// for template reasons; here axes are applied ascending (0..D-1) in both
// passes. This is equivalent: each axis's contraction acts on a disjoint
// tensor dimension, so the per-axis operators commute and the axis
// traversal order does not affect the result, only the scratch layout.
func KroneckerApply(test, trial []*bspline.BasisValues, trialSize, testSize []int, parts []*model.Part, v []float64, u []float64) {
	dim := len(trial)
	if len(v) != kron.Product(trialSize) {
		chk.Panic("assemble: input vector length %d does not match trial space size %d", len(v), kron.Product(trialSize))
	}
	if len(u) != kron.Product(testSize) {
		chk.Panic("assemble: output vector length %d does not match test space size %d", len(u), kron.Product(testSize))
	}
	for _, part := range parts {
		ders := make([]int, dim)
		for axis := 0; axis < dim; axis++ {
			ders[axis] = part.Trial.Get(axis)
		}
		data := kron.ReduceForward(append([]float64(nil), v...), append([]int(nil), trialSize...), trial, ders)
		shape := make([]int, dim)
		for axis := 0; axis < dim; axis++ {
			shape[axis] = trial[axis].Pattern.Rows()
		}
		if len(data) != len(part.Coefs) {
			chk.Panic("assemble: quadrature point count %d does not match coefficient count %d", len(data), len(part.Coefs))
		}
		for i := range data {
			data[i] *= part.Coefs[i]
		}
		for axis := 0; axis < dim; axis++ {
			data, shape = kron.ContractBackward(data, shape, axis, test[axis], part.Test.Get(axis), testSize[axis])
		}
		for i, val := range data {
			u[i] += val
		}
	}
}
