// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bspline implements univariate B-spline basis evaluation: the
// leaves of the sum-factorization recursion. Given a knot vector, a degree
// and a batch of points, it returns the active basis-function indices and
// their values (and any requested derivative order) at each point.
package bspline

import (
	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/sparsity"
)

// Bspline holds a univariate B-spline space: degree and a non-decreasing
// knot vector k[0..m].
type Bspline struct {
	Degree int
	Knots  []float64
}

// New validates and returns a B-spline space
func New(degree int, knots []float64) *Bspline {
	if degree < 0 {
		chk.Panic("bspline: degree must be >= 0, got %d", degree)
	}
	if len(knots) < 2*degree+2 {
		chk.Panic("bspline: knot vector too short for degree %d: len=%d", degree, len(knots))
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			chk.Panic("bspline: knot vector not non-decreasing at index %d", i)
		}
	}
	return &Bspline{Degree: degree, Knots: knots}
}

// NumBasis returns the number of basis functions: m - d - 1
func (o *Bspline) NumBasis() int { return len(o.Knots) - o.Degree - 1 }

// findSpan locates the knot span index j such that Knots[j] <= x < Knots[j+1],
// using the standard binary-search recipe; x at the right boundary is
// clamped to the last interior span so the active set is well defined.
func (o *Bspline) findSpan(x float64) int {
	n := o.NumBasis() - 1 // index of last basis function
	if x >= o.Knots[n+1] {
		return n
	}
	if x <= o.Knots[o.Degree] {
		return o.Degree
	}
	lo, hi := o.Degree, n+1
	mid := (lo + hi) / 2
	for x < o.Knots[mid] || x >= o.Knots[mid+1] {
		if x < o.Knots[mid] {
			hi = mid
		} else {
			lo = mid
		}
		mid = (lo + hi) / 2
	}
	return mid
}

// dersBasisFuns computes the values of the d+1 active basis functions and
// their derivatives up to order maxDer at x, given the located span.
// Returns ders[k][r], k=0..maxDer, r=0..d: derivative k of basis function
// (span-d+r). Follows the standard triangular-table recursion: the ndu
// table is built with the value-refining passes (the (x-knot) factors),
// then each derivative order is assembled with the derivative-refining
// passes (division by knot differences), reusing the same table.
func (o *Bspline) dersBasisFuns(span int, x float64, maxDer int) [][]float64 {
	d := o.Degree
	if maxDer > d {
		maxDer = d
	}
	ndu := make([][]float64, d+1)
	for i := range ndu {
		ndu[i] = make([]float64, d+1)
	}
	left := make([]float64, d+1)
	right := make([]float64, d+1)
	ndu[0][0] = 1
	for j := 1; j <= d; j++ {
		left[j] = x - o.Knots[span+1-j]
		right[j] = o.Knots[span+j] - x
		saved := 0.0
		for r := 0; r < j; r++ {
			ndu[j][r] = right[r+1] + left[j-r]
			temp := ndu[r][j-1] / ndu[j][r]
			ndu[r][j] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		ndu[j][j] = saved
	}

	ders := make([][]float64, maxDer+1)
	for k := range ders {
		ders[k] = make([]float64, d+1)
	}
	for r := 0; r <= d; r++ {
		ders[0][r] = ndu[r][d]
	}

	a := [2][]float64{make([]float64, d+1), make([]float64, d+1)}
	for r := 0; r <= d; r++ {
		s1, s2 := 0, 1
		a[0][0] = 1
		for k := 1; k <= maxDer; k++ {
			dVal := 0.0
			rk := r - k
			pk := d - k
			if r >= k {
				a[s2][0] = a[s1][0] / ndu[pk+1][rk]
				dVal = a[s2][0] * ndu[rk][pk]
			}
			j1, j2 := 1, k-1
			if rk >= -1 {
				j1 = 1
			} else {
				j1 = -rk
			}
			if r-1 <= pk {
				j2 = k - 1
			} else {
				j2 = d - r
			}
			for j := j1; j <= j2; j++ {
				a[s2][j] = (a[s1][j] - a[s1][j-1]) / ndu[pk+1][rk+j]
				dVal += a[s2][j] * ndu[rk+j][pk]
			}
			if r <= pk {
				a[s2][k] = -a[s1][k-1] / ndu[pk+1][r]
				dVal += a[s2][k] * ndu[r][pk]
			}
			ders[k][r] = dVal
			s1, s2 = s2, s1
		}
	}

	fact := float64(d)
	for k := 1; k <= maxDer; k++ {
		for j := 0; j <= d; j++ {
			ders[k][j] *= fact
		}
		fact *= float64(d - k)
	}
	return ders
}

// EvaluateBatch evaluates this basis at every point in xs, returning the
// requested derivative orders as a BasisValues with exactly Degree+1
// nonzeros per row (the active span).
func (o *Bspline) EvaluateBatch(xs []float64, ders []int) *BasisValues {
	d := o.Degree
	rows := len(xs)
	cols := o.NumBasis()
	rowStart := make([]int, rows+1)
	colIdx := make([]int, rows*(d+1))
	for q := range xs {
		rowStart[q] = q * (d + 1)
	}
	rowStart[rows] = rows * (d + 1)

	values := make([][]float64, len(ders))
	for i := range values {
		values[i] = make([]float64, rows*(d+1))
	}

	maxReq := 0
	for _, ord := range ders {
		if ord > maxReq {
			maxReq = ord
		}
	}

	for q, x := range xs {
		span := o.findSpan(x)
		for r := 0; r <= d; r++ {
			colIdx[q*(d+1)+r] = span - d + r
		}
		table := o.dersBasisFuns(span, x, maxReq)
		for i, order := range ders {
			if order < len(table) {
				copy(values[i][q*(d+1):q*(d+1)+d+1], table[order])
			}
			// else: derivative order exceeds degree, values stay zero
		}
	}

	pattern := sparsity.New(rowStart, colIdx, cols)
	return &BasisValues{Pattern: pattern, Values: values, DerVec: append([]int(nil), ders...)}
}
