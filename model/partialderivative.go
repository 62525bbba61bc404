// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package model implements the PDE-side decomposition of a second-order
// model (A, b, c, optional geometry) into the Parts the sum-factorized
// assembler consumes. The assembler itself is oblivious to the PDE -- it
// only ever sees Parts (spec.md §4.5).
package model

import (
	"github.com/cpmech/gosl/chk"
)

const bitsPerDir = 4
const maxDerOrder = 15
const maxDirs = 64 / bitsPerDir // 16

// PartialDerivative is a packed multi-index (d_0, ..., d_{D-1}), d_i in
// [0,15], one in a PDE term's test or trial partial derivative in each
// parameter direction. Packed into 4 bits per direction so it is cheap to
// hash and to use as a map/set key (spec.md §9).
type PartialDerivative uint64

// New packs a slice of per-direction derivative orders into a PartialDerivative
func New(ds []int) PartialDerivative {
	if len(ds) > maxDirs {
		chk.Panic("model: PartialDerivative supports at most %d directions, got %d", maxDirs, len(ds))
	}
	var pd PartialDerivative
	for i, d := range ds {
		if d < 0 || d > maxDerOrder {
			chk.Panic("model: derivative order %d out of range [0,%d] at direction %d", d, maxDerOrder, i)
		}
		pd |= PartialDerivative(d) << uint(i*bitsPerDir)
	}
	return pd
}

// Unit returns the PartialDerivative representing a first derivative along
// direction `dir` and zero elsewhere, for a D-dimensional model.
func Unit(dim, dir int) PartialDerivative {
	ds := make([]int, dim)
	ds[dir] = 1
	return New(ds)
}

// Zero returns the PartialDerivative representing the value (no derivative)
func Zero() PartialDerivative { return PartialDerivative(0) }

// Get returns the derivative order along direction `dir`
func (pd PartialDerivative) Get(dir int) int {
	return int((pd >> uint(dir*bitsPerDir)) & 0xF)
}

// Dims unpacks the first `dim` per-direction derivative orders
func (pd PartialDerivative) Dims(dim int) []int {
	ds := make([]int, dim)
	for i := range ds {
		ds[i] = pd.Get(i)
	}
	return ds
}
