// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparsity

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_sparsity01 checks the basic row/col accessors on a hand-built pattern
func Test_sparsity01(tst *testing.T) {

	// rows: 0->{0,1}, 1->{1,2,3}
	s := New([]int{0, 2, 5}, []int{0, 1, 1, 2, 3}, 4)
	chk.IntAssert(s.Rows(), 2)
	chk.IntAssert(s.NNZ(), 5)
	chk.Ints(tst, "row 0", s.Row(0), []int{0, 1})
	chk.Ints(tst, "row 1", s.Row(1), []int{1, 2, 3})
	chk.IntAssert(s.PosOf(1, 2), 1)
	chk.IntAssert(s.PosOf(1, 9), -1)
}

// Test_bilinear01 checks that bilinear sparsity produces the co-active interval
func Test_bilinear01(tst *testing.T) {

	// two quadrature points; A has 2 basis fns, B has 3
	// q=0: A active {0}, B active {0,1}
	// q=1: A active {1}, B active {1,2}
	A := New([]int{0, 1, 2}, []int{0, 1}, 2)
	B := New([]int{0, 2, 4}, []int{0, 1, 1, 2}, 3)
	S, err := Bilinear(A, B)
	if err != nil {
		tst.Fatalf("Bilinear failed: %v", err)
	}
	chk.IntAssert(S.Rows(), 2)
	chk.Ints(tst, "row 0 (co-active with basis 0 of A)", S.Row(0), []int{0, 1})
	chk.Ints(tst, "row 1 (co-active with basis 1 of A)", S.Row(1), []int{1, 2})
}

// Test_kronecker01 checks dimensions and row composition
func Test_kronecker01(tst *testing.T) {
	E := New([]int{0, 2}, []int{0, 1}, 2)   // 1 row, cols {0,1}
	I := New([]int{0, 1, 2}, []int{0, 0}, 1) // 2 rows, each col {0}
	K := Kronecker(E, I)
	chk.IntAssert(K.Rows(), E.Rows()*I.Rows())
	chk.IntAssert(K.Cols, E.Cols*I.Cols)
	chk.IntAssert(K.NNZ(), E.NNZ()*I.NNZ())
	// row (0*2+0) = 0: c in {0,1}, j in {0} => cols {0*1+0, 1*1+0} = {0,1}
	chk.Ints(tst, "row 0", K.Row(0), []int{0, 1})
	chk.Ints(tst, "row 1", K.Row(1), []int{0, 1})
}
