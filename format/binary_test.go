// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/sparsity"
)

// Test_binaryRoundTrip checks spec.md §8 property 4: encode then decode a
// sparse matrix, compare element-wise, bit-exact.
func Test_binaryRoundTrip(tst *testing.T) {
	pattern := sparsity.New([]int{0, 2, 3, 5}, []int{0, 1, 1, 0, 2}, 3)
	m := &sparsity.Matrix{Pattern: pattern, Values: []float64{1.5, -2.25, 3.0, 0.125, 42.0}}

	dir := tst.TempDir()
	fn := filepath.Join(dir, "m.bin")
	if err := WriteMatrix(m, fn); err != nil {
		tst.Fatalf("WriteMatrix failed: %v", err)
	}
	defer os.Remove(fn)

	back, err := ReadMatrix(fn)
	if err != nil {
		tst.Fatalf("ReadMatrix failed: %v", err)
	}

	chk.IntAssert(back.Pattern.Rows(), m.Pattern.Rows())
	chk.IntAssert(back.Pattern.Cols, m.Pattern.Cols)
	chk.Ints(tst, "rowStart", back.Pattern.RowStart, m.Pattern.RowStart)
	chk.Ints(tst, "colIdx", back.Pattern.ColIdx, m.Pattern.ColIdx)
	for i := range m.Values {
		if back.Values[i] != m.Values[i] {
			tst.Fatalf("value %d mismatch: got=%v want=%v (not bit-exact)", i, back.Values[i], m.Values[i])
		}
	}
}

// Test_sparseJSONRoundTrip checks the JSON sparse-matrix wire format
func Test_sparseJSONRoundTrip(tst *testing.T) {
	pattern := sparsity.New([]int{0, 1, 3}, []int{1, 0, 1}, 2)
	m := &sparsity.Matrix{Pattern: pattern, Values: []float64{7, 8, 9}}

	wire := FromMatrix(m)
	back := wire.ToMatrix()

	chk.IntAssert(back.Pattern.Rows(), 2)
	chk.Ints(tst, "rowStart", back.Pattern.RowStart, []int{0, 1, 3})
	chk.Ints(tst, "colIdx", back.Pattern.ColIdx, []int{1, 0, 1})
	chk.Array(tst, "values", 1e-15, back.Values, []float64{7, 8, 9})
}
