// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package quadrature instantiates a Gauss quadrature template per element
// and composes per-direction rules into tensor quadrature grids. Gauss
// node/weight generation is out of scope (spec.md §1): the reference rule
// on [-1,1] is always supplied by the caller.
package quadrature

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Template holds a reference Gauss rule on [-1,1]
type Template struct {
	Nodes   []float64
	Weights []float64
	Name    string
}

// ElementQuadrature holds, for one parameter direction, the reference Gauss
// template and the element-boundary partition, plus the derived (mapped)
// nodes/weights over the whole direction.
type ElementQuadrature struct {
	Template Template
	Elements []float64 // E+1 sorted breakpoints b_0 .. b_E

	Points  []float64 // mapped nodes, concatenated across elements
	Weights []float64 // mapped weights
	Bounds  []int      // E+1 offsets into Points marking element starts/end
}

// Build maps the reference template onto every element interval and
// concatenates the result; call once after construction.
func (o *ElementQuadrature) Build() {
	if len(o.Elements) < 2 {
		chk.Panic("quadrature: need at least 2 element breakpoints, got %d", len(o.Elements))
	}
	nPerElem := len(o.Template.Nodes)
	nElem := len(o.Elements) - 1
	o.Points = make([]float64, 0, nElem*nPerElem)
	o.Weights = make([]float64, 0, nElem*nPerElem)
	o.Bounds = make([]int, nElem+1)
	for e := 0; e < nElem; e++ {
		lo, hi := o.Elements[e], o.Elements[e+1]
		half := (hi - lo) / 2
		mid := (hi + lo) / 2
		o.Bounds[e] = len(o.Points)
		for i := 0; i < nPerElem; i++ {
			o.Points = append(o.Points, mid+half*o.Template.Nodes[i])
			o.Weights = append(o.Weights, half*o.Template.Weights[i])
		}
	}
	o.Bounds[nElem] = len(o.Points)
}

// KnotsToElements returns the sorted union of break points (the distinct
// knot values) of the test and trial knot vectors -- the integration
// subdivision sequence for one direction.
func KnotsToElements(kT, kR []float64) []float64 {
	seen := make(map[float64]bool)
	var out []float64
	for _, k := range kT {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	for _, k := range kR {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Float64s(out)
	return out
}
