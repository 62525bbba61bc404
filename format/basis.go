// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package format implements the JSON problem-description decode (spec.md
// §6) and the binary matrix file format (spec.md §7): the boundary layer
// the assembler itself never touches. Struct-tag JSON shapes follow
// gofem's inp package conventions (inp/mat.go, inp/sim.go).
package format

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/bspline"
	"github.com/IgASF/IgASF/registry"
	"github.com/IgASF/IgASF/tensor"
)

// basisComponents is the spec.md §4.11 tag dispatch for tensor-product
// basis components. Bspline is the only component type today, but
// TensorBasisJSON.Decode goes through it rather than a hand-rolled
// switch so a future component type (e.g. Bezier) registers here instead
// of growing a branch at the call site.
var basisComponents = registry.New("basis component")

func init() {
	basisComponents.Set("Bspline", func(raw json.RawMessage) (interface{}, error) {
		var b BsplineJSON
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, chk.Err("format: cannot decode Bspline component: %v", err)
		}
		return b.Decode(), nil
	})
}

// BsplineJSON is the wire shape {type:"Bspline", degree, knots} (spec.md §6)
type BsplineJSON struct {
	Type   string    `json:"type"`
	Degree int       `json:"degree"`
	Knots  []float64 `json:"knots"`
}

// Decode builds the univariate basis
func (o *BsplineJSON) Decode() *bspline.Bspline {
	return bspline.New(o.Degree, o.Knots)
}

// NewBsplineJSON encodes a univariate basis to its wire shape
func NewBsplineJSON(b *bspline.Bspline) *BsplineJSON {
	return &BsplineJSON{Type: "Bspline", Degree: b.Degree, Knots: append([]float64(nil), b.Knots...)}
}

// TensorBasisJSON is the wire shape {type:"TensorBasis", components:[Bspline, ...]}
type TensorBasisJSON struct {
	Type       string            `json:"type"`
	Components []json.RawMessage `json:"components"`
}

// Decode builds the tensor-product basis, one component per direction
func (o *TensorBasisJSON) Decode() *tensor.TensorBasis {
	comps := make([]*bspline.Bspline, len(o.Components))
	for i, raw := range o.Components {
		v, err := basisComponents.Build(raw)
		if err != nil {
			chk.Panic("format: cannot decode basis component %d: %v", i, err)
		}
		b, ok := v.(*bspline.Bspline)
		if !ok {
			chk.Panic("format: basis component %d is not a tensor-product component", i)
		}
		comps[i] = b
	}
	return tensor.New(comps)
}

// NewTensorBasisJSON encodes a tensor-product basis to its wire shape
func NewTensorBasisJSON(tb *tensor.TensorBasis) *TensorBasisJSON {
	comps := make([]json.RawMessage, len(tb.Components))
	for i, c := range tb.Components {
		raw, err := json.Marshal(NewBsplineJSON(c))
		if err != nil {
			chk.Panic("format: cannot encode basis component %d: %v", i, err)
		}
		comps[i] = raw
	}
	return &TensorBasisJSON{Type: "TensorBasis", Components: comps}
}
