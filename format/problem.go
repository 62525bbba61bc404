// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/IgASF/IgASF/geometry"
	"github.com/IgASF/IgASF/model"
	"github.com/IgASF/IgASF/quadrature"
	"github.com/IgASF/IgASF/tensor"
)

// ProblemDescription is the decoded top-level shape of a problem file
// (spec.md §6): test/trial tensor bases, an optional geometry map, the
// tensor quadrature and the PDE's EqCoefs.
type ProblemDescription struct {
	Test       *tensor.TensorBasis
	Trial      *tensor.TensorBasis
	Geometry   geometry.GeoMap // nil when absent (identity geometry)
	Quadrature *quadrature.TensorQuadrature
	EqCoefs    *model.EqCoefs
}

type problemJSON struct {
	Test       json.RawMessage `json:"test"`
	Trial      json.RawMessage `json:"trial"`
	Geometry   json.RawMessage `json:"geometry,omitempty"`
	Quadrature json.RawMessage `json:"quadrature"`
	EqCoefs    EqCoefsJSON     `json:"EqCoefs"`
}

// ReadProblem loads and decodes a problem-description file from disk
func ReadProblem(path string) (*ProblemDescription, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("format: cannot read problem file %q: %v", path, err)
	}
	return DecodeProblem(b)
}

// DecodeProblem decodes a problem-description JSON document. Decode
// failures (bad JSON, wrong type tag, shape mismatch) are surfaced as an
// error rather than a panic -- every Decode helper below panics on bad
// input, so DecodeProblem recovers and wraps (spec.md §7 "input parse
// failure").
func DecodeProblem(data []byte) (pd *ProblemDescription, err error) {
	defer func() {
		if r := recover(); r != nil {
			pd = nil
			err = chk.Err("format: problem decode failed: %v", r)
		}
	}()

	var raw problemJSON
	if e := json.Unmarshal(data, &raw); e != nil {
		return nil, chk.Err("format: invalid problem JSON: %v", e)
	}

	var testTB, trialTB TensorBasisJSON
	if e := json.Unmarshal(raw.Test, &testTB); e != nil {
		return nil, chk.Err("format: cannot decode test basis: %v", e)
	}
	if e := json.Unmarshal(raw.Trial, &trialTB); e != nil {
		return nil, chk.Err("format: cannot decode trial basis: %v", e)
	}

	var tq TensorQuadratureJSON
	if e := json.Unmarshal(raw.Quadrature, &tq); e != nil {
		return nil, chk.Err("format: cannot decode quadrature: %v", e)
	}

	pd = &ProblemDescription{
		Test:       testTB.Decode(),
		Trial:      trialTB.Decode(),
		Quadrature: tq.Decode(),
		EqCoefs:    raw.EqCoefs.Decode(),
	}
	if len(raw.Geometry) > 0 {
		pd.Geometry = DecodeGeoMap(raw.Geometry)
	}
	return pd, nil
}

// EncodeProblem marshals a ProblemDescription back into the wire JSON
// shape, the inverse of DecodeProblem -- used by the "generate" CLI
// subcommand (spec.md §6; grounded on original_source/src/bin/generateTest.cpp
// writing its problem description to standard output).
func EncodeProblem(pd *ProblemDescription) ([]byte, error) {
	raw := problemJSON{EqCoefs: *NewEqCoefsJSON(pd.EqCoefs)}
	var err error
	if raw.Test, err = json.Marshal(NewTensorBasisJSON(pd.Test)); err != nil {
		return nil, chk.Err("format: cannot encode test basis: %v", err)
	}
	if raw.Trial, err = json.Marshal(NewTensorBasisJSON(pd.Trial)); err != nil {
		return nil, chk.Err("format: cannot encode trial basis: %v", err)
	}
	if raw.Quadrature, err = json.Marshal(NewTensorQuadratureJSON(pd.Quadrature)); err != nil {
		return nil, chk.Err("format: cannot encode quadrature: %v", err)
	}
	raw.Geometry = EncodeGeoMap(pd.Geometry)
	return json.MarshalIndent(&raw, "", "  ")
}
