// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package assemble implements the sum-factorization core: the recursive
// n-D assembler, its 1-D inner kernel, and the matrix-free Kronecker
// application. This is the hot path described in spec.md §4.6-§4.8.
package assemble

// Performance-intent bounds from spec.md §4.6: point-block size, and the
// (informal) active-count / point-count bounds the nested loops are sized
// for. MaxTmp bounds how many quadrature points are folded into one
// recursion block; it must not be exceeded by any per-axis scratch buffer.
const (
	MaxTmp = 10
	MaxTst = 10
	MaxTrl = 10
	MaxPt  = 10
)
