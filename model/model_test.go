// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_partialderivative01(tst *testing.T) {
	pd := New([]int{2, 0, 3})
	chk.IntAssert(pd.Get(0), 2)
	chk.IntAssert(pd.Get(1), 0)
	chk.IntAssert(pd.Get(2), 3)
	u := Unit(3, 1)
	chk.IntAssert(u.Get(0), 0)
	chk.IntAssert(u.Get(1), 1)
	chk.IntAssert(u.Get(2), 0)
}

func Test_decompose01(tst *testing.T) {
	eq := &EqCoefs{Dim: 2, HasA: true, A: [][]float64{{1, 0}, {0, 1}}}
	eq.Resolve()
	parts := eq.DecomposeConstant(5)
	chk.IntAssert(len(parts), 2) // A_00 and A_11 only (off-diagonals zero)
	for _, p := range parts {
		chk.IntAssert(len(p.Coefs), 5)
	}
}

func Test_decompose02_defaultC(tst *testing.T) {
	eq := &EqCoefs{Dim: 1}
	eq.Resolve()
	if !eq.HasC || eq.C != 1 {
		tst.Fatalf("expected default C=1, got HasC=%v C=%v", eq.HasC, eq.C)
	}
	parts := eq.DecomposeConstant(3)
	chk.IntAssert(len(parts), 1)
	chk.IntAssert(parts[0].Test.Get(0), 0)
	chk.IntAssert(parts[0].Trial.Get(0), 0)
}
