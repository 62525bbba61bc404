// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"github.com/cpmech/gosl/chk"
)

// EqCoefs holds the coefficients of a second-order scalar model
//
//    -div(A ∇u) + b·∇u + c·u = f
//
// on the parameter domain (or, with a geometry map, after push-forward by
// §4.9). Presence flags distinguish "absent" from "explicitly zero": an
// absent field defaults to zero, except C, which defaults to 1 iff A, B
// and C are all absent (spec.md §6).
type EqCoefs struct {
	Dim int

	HasA bool
	A    [][]float64 // Dim x Dim, row-major

	HasB bool
	B    []float64 // length Dim

	HasC bool
	C    float64
}

// Resolve applies the "C defaults to 1 iff everything else is absent" rule.
// Idempotent; call once after decoding (or before Decompose, for
// hand-built EqCoefs in tests).
func (o *EqCoefs) Resolve() {
	if !o.HasA && !o.HasB && !o.HasC {
		o.HasC = true
		o.C = 1
	}
}

// validate checks shape invariants (spec.md §7 Shape mismatch)
func (o *EqCoefs) validate() {
	if o.HasA {
		if len(o.A) != o.Dim {
			chk.Panic("model: A has %d rows, expected dim=%d", len(o.A), o.Dim)
		}
		for i, row := range o.A {
			if len(row) != o.Dim {
				chk.Panic("model: A row %d has %d columns, expected dim=%d", i, len(row), o.Dim)
			}
		}
	}
	if o.HasB && len(o.B) != o.Dim {
		chk.Panic("model: B has length %d, expected dim=%d", len(o.B), o.Dim)
	}
}

// DecomposeConstant produces one Part per nonzero A_ij (test=e_i,
// trial=e_j), one Part per nonzero B_i (test=0, trial=e_i), and one Part
// for C (test=trial=0) when present and nonzero -- the no-geometry case of spec.md
// §4.5. numPoints sizes every Part's constant-valued coefficient array.
func (o *EqCoefs) DecomposeConstant(numPoints int) []*Part {
	o.validate()
	d := o.Dim
	var parts []*Part
	if o.HasA {
		for i := 0; i < d; i++ {
			for j := 0; j < d; j++ {
				if o.A[i][j] != 0 {
					parts = append(parts, &Part{
						Test:  Unit(d, i),
						Trial: Unit(d, j),
						Coefs: constArray(numPoints, o.A[i][j]),
					})
				}
			}
		}
	}
	if o.HasB {
		for i := 0; i < d; i++ {
			if o.B[i] != 0 {
				parts = append(parts, &Part{
					Test:  Zero(),
					Trial: Unit(d, i),
					Coefs: constArray(numPoints, o.B[i]),
				})
			}
		}
	}
	if o.HasC && o.C != 0 {
		parts = append(parts, &Part{
			Test:  Zero(),
			Trial: Zero(),
			Coefs: constArray(numPoints, o.C),
		})
	}
	return parts
}

// DecomposeTransformed builds Parts from per-quadrature-point coefficient
// tensors already pushed forward by a geometry map (spec.md §4.9): tA is a
// flat Dim*Dim array of per-point coefficient slices (row-major, entry
// i*Dim+j), tB is Dim per-point coefficient slices, tC is a single
// per-point coefficient slice. A nil entry (or nil tA/tB/tC altogether) is
// treated as structurally zero and skipped, matching the no-geometry case.
func DecomposeTransformed(dim int, tA [][]float64, tB [][]float64, tC []float64) []*Part {
	var parts []*Part
	if tA != nil {
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				coefs := tA[i*dim+j]
				if coefs == nil {
					continue
				}
				parts = append(parts, &Part{Test: Unit(dim, i), Trial: Unit(dim, j), Coefs: coefs})
			}
		}
	}
	if tB != nil {
		for i := 0; i < dim; i++ {
			coefs := tB[i]
			if coefs == nil {
				continue
			}
			parts = append(parts, &Part{Test: Zero(), Trial: Unit(dim, i), Coefs: coefs})
		}
	}
	if tC != nil {
		parts = append(parts, &Part{Test: Zero(), Trial: Zero(), Coefs: tC})
	}
	return parts
}
