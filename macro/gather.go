// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package macro

// gatherBox extracts the sub-box [starts[i],ends[i]) of every direction i
// from a flat tensor stored inner-first (direction 0 fastest, the same
// convention as tensor.CartesianGrid.ToPoints and Part.Coefs), returning a
// new flat array in the same inner-first order over the smaller shape.
func gatherBox(full []float64, fullShape, starts, ends []int) []float64 {
	dim := len(fullShape)
	localShape := make([]int, dim)
	total := 1
	for i := range localShape {
		localShape[i] = ends[i] - starts[i]
		total *= localShape[i]
	}
	out := make([]float64, total)
	idx := make([]int, dim)
	for flat := 0; flat < total; flat++ {
		rem := flat
		for i := 0; i < dim; i++ {
			idx[i] = rem % localShape[i]
			rem /= localShape[i]
		}
		fullFlat := 0
		stride := 1
		for i := 0; i < dim; i++ {
			fullFlat += (starts[i] + idx[i]) * stride
			stride *= fullShape[i]
		}
		out[flat] = full[fullFlat]
	}
	return out
}
