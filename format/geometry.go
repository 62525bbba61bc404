// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/geometry"
	"github.com/IgASF/IgASF/registry"
)

// geoMaps is the spec.md §4.11 tag dispatch for the GeoMap open-sum type.
var geoMaps = registry.New("geometry map")

func init() {
	geoMaps.Set("BasisCoefficientMap", func(raw json.RawMessage) (interface{}, error) {
		var m BasisCoefficientMapJSON
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, chk.Err("format: cannot decode BasisCoefficientMap: %v", err)
		}
		return m.Decode(), nil
	})
	geoMaps.Set("RationalMap", func(raw json.RawMessage) (interface{}, error) {
		var m RationalMapJSON
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, chk.Err("format: cannot decode RationalMap: %v", err)
		}
		return geometry.NewRationalMap(DecodeGeoMap(m.Original)), nil
	})
}

// BasisCoefficientMapJSON is the wire shape
// {type:"BasisCoefficientMap", basis:<TensorBasis>, coefs:<Matrix>}
// (spec.md §6). coefs is Basis.Size() rows by Target columns, one column
// per physical component.
type BasisCoefficientMapJSON struct {
	Type  string          `json:"type"`
	Basis TensorBasisJSON `json:"basis"`
	Coefs DenseMatrixJSON `json:"coefs"`
}

// Decode builds the BasisCoefficientMap
func (o *BasisCoefficientMapJSON) Decode() *geometry.BasisCoefficientMap {
	basis := o.Basis.Decode()
	dense := o.Coefs.Dense()
	coefs := make([][]float64, o.Coefs.Cols)
	for t := range coefs {
		coefs[t] = make([]float64, o.Coefs.Rows)
		for a := 0; a < o.Coefs.Rows; a++ {
			coefs[t][a] = dense[a][t]
		}
	}
	return geometry.NewBasisCoefficientMap(basis, coefs)
}

// NewBasisCoefficientMapJSON encodes a BasisCoefficientMap to its wire shape
func NewBasisCoefficientMapJSON(m *geometry.BasisCoefficientMap) *BasisCoefficientMapJSON {
	rows := m.Basis.Size()
	dense := make([][]float64, rows)
	for a := 0; a < rows; a++ {
		dense[a] = make([]float64, m.Target())
		for t := 0; t < m.Target(); t++ {
			dense[a][t] = m.Coefs[t][a]
		}
	}
	return &BasisCoefficientMapJSON{
		Type:  "BasisCoefficientMap",
		Basis: *NewTensorBasisJSON(m.Basis),
		Coefs: *NewDenseMatrixJSON(dense),
	}
}

// EncodeGeoMap encodes a GeoMap to a json.RawMessage dispatching on its
// concrete type; nil encodes to nil (identity geometry, spec.md §6).
func EncodeGeoMap(g geometry.GeoMap) json.RawMessage {
	if g == nil {
		return nil
	}
	switch m := g.(type) {
	case *geometry.BasisCoefficientMap:
		raw, err := json.Marshal(NewBasisCoefficientMapJSON(m))
		if err != nil {
			chk.Panic("format: cannot encode BasisCoefficientMap: %v", err)
		}
		return raw
	case *geometry.RationalMap:
		raw, err := json.Marshal(&RationalMapJSON{Type: "RationalMap", Original: EncodeGeoMap(m.Original)})
		if err != nil {
			chk.Panic("format: cannot encode RationalMap: %v", err)
		}
		return raw
	default:
		chk.Panic("format: cannot encode geometry map of type %T", g)
		return nil
	}
}

// RationalMapJSON is the wire shape {type:"RationalMap", original:<GeoMap>}
type RationalMapJSON struct {
	Type     string          `json:"type"`
	Original json.RawMessage `json:"original"`
}

// DecodeGeoMap dispatches on the "type" tag to BasisCoefficientMap or
// RationalMap (spec.md §6) via the geoMaps registry, recursing through it
// for RationalMap's wrapped original.
func DecodeGeoMap(raw json.RawMessage) geometry.GeoMap {
	v, err := geoMaps.Build(raw)
	if err != nil {
		chk.Panic("format: %v", err)
	}
	return v.(geometry.GeoMap)
}
