// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bspline

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_partition01 checks partition-of-unity and zero-derivative-sum
// (spec.md §8 property 3) for a degree-2 open-knot basis
func Test_partition01(tst *testing.T) {
	knots := []float64{0, 0, 0, 0.5, 1, 1, 1}
	b := New(2, knots)
	chk.IntAssert(b.NumBasis(), 4)

	xs := []float64{0.1, 0.25, 0.5, 0.6, 0.9}
	bv := b.EvaluateBatch(xs, []int{0, 1})

	tol := 1e-13
	for q := range xs {
		row := bv.Pattern.Row(q)
		chk.IntAssert(len(row), b.Degree+1)
		sumS, sumD := 0.0, 0.0
		start := bv.Pattern.Start(q)
		for p := range row {
			sumS += bv.ValAt(0, q, p)
			_ = start
			sumD += bv.Val(1, q, p)
		}
		if diff := sumS - 1.0; diff > tol || diff < -tol {
			tst.Fatalf("partition of unity failed at q=%d: sum=%v", q, sumS)
		}
		if sumD > tol || sumD < -tol {
			tst.Fatalf("derivative sum not zero at q=%d: sum=%v", q, sumD)
		}
	}
}

// Test_activecount01 checks exactly degree+1 active functions per point and
// that active indices form the expected span
func Test_activecount01(tst *testing.T) {
	knots := []float64{0, 0, 1, 2, 3, 3}
	b := New(1, knots)
	chk.IntAssert(b.NumBasis(), 4)
	bv := b.EvaluateBatch([]float64{0.5, 1.5, 2.9}, []int{0})
	chk.Ints(tst, "row 0", bv.Pattern.Row(0), []int{0, 1})
	chk.Ints(tst, "row 1", bv.Pattern.Row(1), []int{1, 2})
	chk.Ints(tst, "row 2", bv.Pattern.Row(2), []int{2, 3})
}
