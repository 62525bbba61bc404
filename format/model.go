// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"github.com/IgASF/IgASF/model"
)

// EqCoefsJSON is the wire shape {dim, A?, B?, C?} (spec.md §6): absent
// fields default to zero, except C, which model.EqCoefs.Resolve defaults
// to 1 iff A, B and C are all absent.
type EqCoefsJSON struct {
	Dim int              `json:"dim"`
	A   *DenseMatrixJSON `json:"A,omitempty"`
	B   *DenseMatrixJSON `json:"B,omitempty"`
	C   *float64         `json:"C,omitempty"`
}

// Decode builds a model.EqCoefs and resolves the default-C rule
func (o *EqCoefsJSON) Decode() *model.EqCoefs {
	eq := &model.EqCoefs{Dim: o.Dim}
	if o.A != nil {
		eq.HasA = true
		eq.A = o.A.Dense()
	}
	if o.B != nil {
		eq.HasB = true
		eq.B = o.B.Column()
	}
	if o.C != nil {
		eq.HasC = true
		eq.C = *o.C
	}
	eq.Resolve()
	return eq
}

// NewEqCoefsJSON encodes a model.EqCoefs to its wire shape, omitting
// fields that were never set (spec.md §6 "absent fields default to zero").
func NewEqCoefsJSON(eq *model.EqCoefs) *EqCoefsJSON {
	o := &EqCoefsJSON{Dim: eq.Dim}
	if eq.HasA {
		o.A = NewDenseMatrixJSON(eq.A)
	}
	if eq.HasB {
		rows := make([][]float64, len(eq.B))
		for i, v := range eq.B {
			rows[i] = []float64{v}
		}
		o.B = NewDenseMatrixJSON(rows)
	}
	if eq.HasC {
		c := eq.C
		o.C = &c
	}
	return o
}
