// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kron implements the generic per-axis tensor contraction shared by
// matrix-free application (assemble.KroneckerApply, spec.md §4.8) and
// geometry-map evaluation (geometry.BasisCoefficientMap, spec.md §4.9):
// both are "apply a Kronecker product of 1-D operators to a tensor"
// operations, just with different per-axis operators and directions.
package kron

import (
	"github.com/IgASF/IgASF/bspline"
)

func strideBefore(shape []int, axis int) int {
	s := 1
	for i := 0; i < axis; i++ {
		s *= shape[i]
	}
	return s
}

func strideAfter(shape []int, axis int) int {
	s := 1
	for i := axis + 1; i < len(shape); i++ {
		s *= shape[i]
	}
	return s
}

func flatIndex(before, axisIdx, after, strideB, axisSize int) int {
	return before + axisIdx*strideB + after*strideB*axisSize
}

// ContractForward reduces axis `axis` of a basis-space tensor (size
// shape[axis]=op.Pattern.Cols) to quadrature-space (size
// op.Pattern.Rows()): y_q = Σ_alpha op.val(der,q,alpha)·x_alpha.
func ContractForward(data []float64, shape []int, axis int, op *bspline.BasisValues, der int) ([]float64, []int) {
	di := op.DerIndex(der)
	strideB := strideBefore(shape, axis)
	after := strideAfter(shape, axis)
	oldSize := shape[axis]
	newSize := op.Pattern.Rows()
	newShape := append([]int(nil), shape...)
	newShape[axis] = newSize
	out := make([]float64, strideB*newSize*after)
	for a := 0; a < after; a++ {
		for q := 0; q < newSize; q++ {
			row := op.Pattern.Row(q)
			start := op.Pattern.Start(q)
			dst := flatIndex(0, q, a, strideB, newSize)
			for b := 0; b < strideB; b++ {
				sum := 0.0
				for p, alpha := range row {
					sum += op.Values[di][start+p] * data[flatIndex(b, alpha, a, strideB, oldSize)]
				}
				out[dst+b] = sum
			}
		}
	}
	return out, newShape
}

// ContractBackward is the transpose of ContractForward: it scatters a
// quadrature-space tensor (size shape[axis]=op.Pattern.Rows()) back to
// basis-space (size outSize=op.Pattern.Cols), z_alpha += Σ_q
// op.val(der,q,alpha)·y_q.
func ContractBackward(data []float64, shape []int, axis int, op *bspline.BasisValues, der int, outSize int) ([]float64, []int) {
	di := op.DerIndex(der)
	strideB := strideBefore(shape, axis)
	after := strideAfter(shape, axis)
	Q := shape[axis]
	newShape := append([]int(nil), shape...)
	newShape[axis] = outSize
	out := make([]float64, strideB*outSize*after)
	for a := 0; a < after; a++ {
		for q := 0; q < Q; q++ {
			row := op.Pattern.Row(q)
			start := op.Pattern.Start(q)
			src := flatIndex(0, q, a, strideB, Q)
			for b := 0; b < strideB; b++ {
				val := data[src+b]
				if val == 0 {
					continue
				}
				for p, alpha := range row {
					out[flatIndex(b, alpha, a, strideB, outSize)] += op.Values[di][start+p] * val
				}
			}
		}
	}
	return out, newShape
}

// Product returns the product of a shape's dimensions
func Product(ns []int) int {
	p := 1
	for _, n := range ns {
		p *= n
	}
	return p
}

// ReduceForward applies ContractForward axis-by-axis (0..len(ops)-1), taking
// a basis-space tensor down to quadrature-space. Shared by
// assemble.KroneckerApply and geometry.BasisCoefficientMap evaluation: both
// reduce a coefficient tensor to quadrature points one direction at a time.
func ReduceForward(data []float64, shape []int, ops []*bspline.BasisValues, ders []int) []float64 {
	for axis := range ops {
		data, shape = ContractForward(data, shape, axis, ops[axis], ders[axis])
	}
	return data
}
