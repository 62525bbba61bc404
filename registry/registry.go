// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package registry implements the process-wide "type" tag dispatch used by
// the JSON boundary (spec.md §4.11): open-sum types are decoded by looking
// up a builder keyed by their "type" tag. The format package registers
// basis components and GeoMaps; quadrature and model decoding do not go
// through a Registry. Modeled on gofem's ele.SetInfoFunc/SetAllocator/New
// factory (ele/factory.go): one tag-keyed map per Registry plus Set/Build
// methods, panicking on a duplicate registration and erroring (not
// panicking) on a lookup
// miss, since a missing tag is a bad-input condition, not a programming
// error.
package registry

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
)

// BuilderFunc decodes a raw JSON object (after peeking its "type" tag) into
// a concrete value. Returns the decoded value and its interface identity
// is up to the caller -- different registries (Basis, GeoMap, ...) each
// carry their own map so lookups never cross domains.
type BuilderFunc func(raw json.RawMessage) (interface{}, error)

// Registry is a tag -> builder table for one polymorphic family
type Registry struct {
	name     string
	builders map[string]BuilderFunc
}

// New returns an empty Registry for the named polymorphic family (used
// only in panic/error messages, e.g. "basis", "geometry map")
func New(name string) *Registry {
	return &Registry{name: name, builders: make(map[string]BuilderFunc)}
}

// Set registers a builder for the given type tag. Panics on a duplicate
// tag: registration happens once at program init, so a collision is a
// programming error, not a runtime condition.
func (o *Registry) Set(tag string, fcn BuilderFunc) {
	if _, ok := o.builders[tag]; ok {
		chk.Panic("registry: %s builder for tag %q already registered", o.name, tag)
	}
	o.builders[tag] = fcn
}

// tagOnly decodes just the "type" field of a raw JSON object
type tagOnly struct {
	Type string `json:"type"`
}

// Build peeks raw's "type" field and dispatches to the registered builder
func (o *Registry) Build(raw json.RawMessage) (interface{}, error) {
	var t tagOnly
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, chk.Err("registry: %s: cannot read type tag: %v", o.name, err)
	}
	if t.Type == "" {
		return nil, chk.Err("registry: %s: missing \"type\" field", o.name)
	}
	fcn, ok := o.builders[t.Type]
	if !ok {
		return nil, chk.Err("registry: %s: unknown type tag %q", o.name, t.Type)
	}
	return fcn(raw)
}
