// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/IgASF/IgASF/format"
	"github.com/IgASF/IgASF/la"
)

// cmdCompare implements "igasf compare" (spec.md §6, grounded on
// original_source/src/bin/compareMatrices.cpp): read two binary matrix
// files, check their shapes agree, and report the Frobenius norm of their
// difference; fails if it exceeds 1e-7.
func cmdCompare(args []string) error {
	if len(args) != 2 {
		chk.Panic("igasf compare: expected exactly two matrix file arguments")
	}
	a, err := format.ReadMatrix(args[0])
	if err != nil {
		return chk.Err("igasf compare: cannot read %q: %v", args[0], err)
	}
	b, err := format.ReadMatrix(args[1])
	if err != nil {
		return chk.Err("igasf compare: cannot read %q: %v", args[1], err)
	}
	if a.Pattern.Rows() != b.Pattern.Rows() || a.Pattern.Cols != b.Pattern.Cols {
		return chk.Err("igasf compare: sizes do not agree: %dx%d vs %dx%d",
			a.Pattern.Rows(), a.Pattern.Cols, b.Pattern.Rows(), b.Pattern.Cols)
	}

	norm := la.Frobenius(a.Dense(), b.Dense())
	io.Pf("%v\n", norm)
	if norm >= 1e-7 {
		return chk.Err("igasf compare: matrices differ (norm=%v)", norm)
	}
	return nil
}
