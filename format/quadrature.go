// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/quadrature"
)

// TemplateJSON is the wire shape of a quadrature template: {nodes, weights, name}
type TemplateJSON struct {
	Nodes   []float64 `json:"nodes"`
	Weights []float64 `json:"weights"`
	Name    string    `json:"name"`
}

// ElementQuadratureJSON is the wire shape {type:"ElementQuadrature", template, elements}
type ElementQuadratureJSON struct {
	Type     string       `json:"type"`
	Template TemplateJSON `json:"template"`
	Elements []float64    `json:"elements"`
}

// Decode builds and populates the per-element quadrature
func (o *ElementQuadratureJSON) Decode() *quadrature.ElementQuadrature {
	eq := &quadrature.ElementQuadrature{
		Template: quadrature.Template{Nodes: o.Template.Nodes, Weights: o.Template.Weights, Name: o.Template.Name},
		Elements: o.Elements,
	}
	eq.Build()
	return eq
}

// NewElementQuadratureJSON encodes a per-direction quadrature to its wire shape
func NewElementQuadratureJSON(eq *quadrature.ElementQuadrature) *ElementQuadratureJSON {
	return &ElementQuadratureJSON{
		Type:     "ElementQuadrature",
		Template: TemplateJSON{Nodes: eq.Template.Nodes, Weights: eq.Template.Weights, Name: eq.Template.Name},
		Elements: append([]float64(nil), eq.Elements...),
	}
}

// TensorQuadratureJSON is the wire shape {type:"TensorQuadrature", components:[ElementQuadrature, ...]}
type TensorQuadratureJSON struct {
	Type       string            `json:"type"`
	Components []json.RawMessage `json:"components"`
}

// Decode builds the tensor-product quadrature, one component per direction
func (o *TensorQuadratureJSON) Decode() *quadrature.TensorQuadrature {
	comps := make([]*quadrature.ElementQuadrature, len(o.Components))
	for i, raw := range o.Components {
		var e ElementQuadratureJSON
		if err := json.Unmarshal(raw, &e); err != nil {
			chk.Panic("format: cannot decode quadrature component %d: %v", i, err)
		}
		if e.Type != "ElementQuadrature" {
			chk.Panic("format: unsupported quadrature component type %q", e.Type)
		}
		comps[i] = e.Decode()
	}
	return &quadrature.TensorQuadrature{Components: comps}
}

// NewTensorQuadratureJSON encodes a tensor-product quadrature to its wire shape
func NewTensorQuadratureJSON(tq *quadrature.TensorQuadrature) *TensorQuadratureJSON {
	comps := make([]json.RawMessage, len(tq.Components))
	for i, c := range tq.Components {
		raw, err := json.Marshal(NewElementQuadratureJSON(c))
		if err != nil {
			chk.Panic("format: cannot encode quadrature component %d: %v", i, err)
		}
		comps[i] = raw
	}
	return &TensorQuadratureJSON{Type: "TensorQuadrature", Components: comps}
}
