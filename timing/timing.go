// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package timing wraps time.Now/time.Since pairs into atomic nanosecond
// counters, one per assembly phase (spec.md §4.15), grounded on
// original_source/src/tools/timing.cpp's atomic<long> phase counters
// (time_compute_structure, time_eval_bases, ...): the "run" subcommand
// reports these the same way runTest.cpp's -l log row does.
package timing

import (
	"sync/atomic"
	"time"
)

// Counters accumulates the elapsed time of every phase "igasf run" can
// report, one field per original_source counter. Track adds with
// atomic.AddInt64, so one Counters value may be shared across goroutines.
// "igasf run" records EvalBases, EvalCoef, GeoTransform and Assemble;
// nothing records ComputeStructure, GeoCompute, MacroSetup or AddMacro,
// so those stay zero.
type Counters struct {
	ComputeStructure int64 // building Dims/Sparsity
	EvalBases        int64 // BasisValues.EvaluateBatch + ApplyWeights
	EvalCoef         int64 // model.EqCoefs decomposition into Parts
	GeoCompute       int64 // GeoMap.Evaluate/Jacobian
	GeoTransform     int64 // geometry.TransformCoefs pushforward
	Assemble         int64 // assemble.Assemble / macro.AssembleParallel
	MacroSetup       int64 // per-macro local basis/knot restriction
	AddMacro         int64 // scatterAdd into the global matrix
}

// Track runs fn and adds its elapsed wall-clock time to *counter.
func Track(counter *int64, fn func()) {
	start := time.Now()
	fn()
	atomic.AddInt64(counter, time.Since(start).Nanoseconds())
}

// Seconds converts a nanosecond counter to fractional seconds for display.
func Seconds(counter int64) float64 {
	return float64(counter) / 1e9
}
