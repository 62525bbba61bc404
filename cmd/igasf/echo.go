// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/IgASF/IgASF/format"
)

// cmdEcho implements "igasf echo" (spec.md §6, grounded on
// original_source/src/bin/echoMatrix.cpp): read a binary matrix file
// (path "stdin" reads from standard input) and print it as a dense table.
func cmdEcho(args []string) error {
	if len(args) != 1 {
		chk.Panic("igasf echo: expected exactly one matrix file argument")
	}
	m, err := format.ReadMatrix(args[0])
	if err != nil {
		return err
	}
	dense := m.Dense()
	for _, row := range dense {
		for j, v := range row {
			if j > 0 {
				io.Pf("  ")
			}
			io.Pf("%12.6g", v)
		}
		io.Pf("\n")
	}
	return nil
}
