// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assemble

import (
	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/bspline"
	"github.com/IgASF/IgASF/sparsity"
)

// Dims precomputes everything the recursion shares across Parts: the
// per-direction bilinear sparsities S[i], the cumulative Kronecker
// sparsities K[i] (K[0]=S[0], K[i]=Kronecker(S[i],K[i-1])), the
// element-boundary partition per direction, and the scratch buffers M[i]
// (spec.md §5 Ownership: sized by K[i-1].NNZ()*MaxTmp, allocated once per
// assembly call, reused -- and zeroed -- across blocks and Parts).
type Dims struct {
	D       int
	Test    []*bspline.BasisValues
	Trial   []*bspline.BasisValues
	S       []*sparsity.Sparsity
	K       []*sparsity.Sparsity
	Bounds  [][]int
	scratch [][][]float64 // [axis][0..MaxTmp)[K[axis-1].NNZ()], valid for axis>=1
}

// NewDims builds the shared per-direction sparsity/scratch structures.
// test[i]/trial[i] must be the BasisValues along direction i, already
// evaluated with every derivative order any Part will request there and,
// on the test side, pre-weighted by quadrature (spec.md §4.4).
func NewDims(test, trial []*bspline.BasisValues, elementBounds [][]int) (*Dims, error) {
	D := len(test)
	if len(trial) != D || len(elementBounds) != D {
		chk.Panic("assemble: test/trial/elementBounds dimension mismatch (%d/%d/%d)", D, len(trial), len(elementBounds))
	}
	S := make([]*sparsity.Sparsity, D)
	K := make([]*sparsity.Sparsity, D)
	for i := 0; i < D; i++ {
		s, err := sparsity.Bilinear(test[i].Pattern, trial[i].Pattern)
		if err != nil {
			return nil, err
		}
		S[i] = s
		if i == 0 {
			K[0] = S[0]
		} else {
			K[i] = sparsity.Kronecker(S[i], K[i-1])
		}
	}
	scratch := make([][][]float64, D)
	for a := 1; a < D; a++ {
		buf := make([][]float64, MaxTmp)
		for t := range buf {
			buf[t] = make([]float64, K[a-1].NNZ())
		}
		scratch[a] = buf
	}
	return &Dims{D: D, Test: test, Trial: trial, S: S, K: K, Bounds: elementBounds, scratch: scratch}, nil
}

// Output returns the final Kronecker sparsity: the pattern of the
// assembled MMatrix.
func (o *Dims) Output() *sparsity.Sparsity { return o.K[o.D-1] }

// blocksFor partitions [0,Q) into runs of at most MaxTmp points that never
// cross an element boundary (spec.md §4.6 edge policy).
func blocksFor(Q int, bounds []int) [][2]int {
	var blocks [][2]int
	q0 := 0
	for q0 < Q {
		next := Q
		for _, b := range bounds {
			if b > q0 {
				next = b
				break
			}
		}
		end := q0 + MaxTmp
		if end > next {
			end = next
		}
		if end > Q {
			end = Q
		}
		blocks = append(blocks, [2]int{q0, end})
		q0 = end
	}
	return blocks
}
