// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package macro implements the macro-element parallel assembly driver
// (spec.md §4.10): partition each parameter direction into macros of
// consecutive elements, assemble each macro independently, and scatter
// into a shared global accumulator one 2^D coloring class at a time so
// that same-colored macros never touch the same basis-function index.
package macro

// axisPartition holds the [start,end) element ranges of one direction's macros
type axisPartition struct {
	ranges [][2]int
}

// partitionAxis splits [0,numElements) into consecutive runs of at most
// macroSize elements (macroSize clamped to at least 1); the last run may
// be shorter.
func partitionAxis(numElements, macroSize int) *axisPartition {
	if macroSize < 1 {
		macroSize = 1
	}
	var ranges [][2]int
	for e := 0; e < numElements; e += macroSize {
		end := e + macroSize
		if end > numElements {
			end = numElements
		}
		ranges = append(ranges, [2]int{e, end})
	}
	return &axisPartition{ranges: ranges}
}

// DefaultMacroSize returns max(degTest,degTrial)+1, the spec.md §4.10 default
func DefaultMacroSize(degTest, degTrial int) int {
	m := degTest
	if degTrial > m {
		m = degTrial
	}
	return m + 1
}

// forEachMacro enumerates every macro index vector whose per-direction
// parity matches the given 2^D color code (bit i of color picks even/odd
// macro index along direction i).
func forEachMacro(axes []*axisPartition, color int, fn func(idx []int)) {
	dim := len(axes)
	idx := make([]int, dim)
	var rec func(d int)
	rec = func(d int) {
		if d == dim {
			fn(append([]int(nil), idx...))
			return
		}
		want := (color >> uint(d)) & 1
		for m := 0; m < len(axes[d].ranges); m++ {
			if m&1 != want {
				continue
			}
			idx[d] = m
			rec(d + 1)
		}
	}
	rec(0)
}
