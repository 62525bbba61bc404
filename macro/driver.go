// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package macro

import (
	"sync"

	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/assemble"
	"github.com/IgASF/IgASF/bspline"
	"github.com/IgASF/IgASF/model"
	"github.com/IgASF/IgASF/quadrature"
	"github.com/IgASF/IgASF/sparsity"
	"github.com/IgASF/IgASF/workpool"
)

// AssembleParallel implements the macro-element parallel driver (spec.md
// §4.10): it assembles the global Sparsity once, then for each of the 2^D
// coloring classes enqueues every macro whose index vector matches that
// color onto a fixed-size worker pool and waits for the class to finish
// before moving to the next (spec.md §8 property 7: macro == global).
//
// Each macro restricts both test and trial to a LOCAL knot vector
// spanning only its own elements (localKnots, below) before assembling,
// so the per-macro MMatrix is genuinely macro-sized -- Bilinear/Kronecker
// never scan the global column range. scatterAdd then shifts each local
// index back into the global basis numbering before the positional add.
func AssembleParallel(testBasis, trialBasis []*bspline.Bspline, testDers, trialDers [][]int, quad *quadrature.TensorQuadrature, parts []*model.Part, macroSizes []int, threads int) (*sparsity.Matrix, error) {
	dim := len(testBasis)
	if len(trialBasis) != dim || len(testDers) != dim || len(trialDers) != dim || len(quad.Components) != dim || len(macroSizes) != dim {
		chk.Panic("macro: dimension mismatch among test/trial/quadrature/macroSizes")
	}

	testFull := make([]*bspline.BasisValues, dim)
	trialFull := make([]*bspline.BasisValues, dim)
	fullShape := make([]int, dim)
	boundsFull := make([][]int, dim)
	globalTestSize := make([]int, dim)
	globalTrialSize := make([]int, dim)
	for i := 0; i < dim; i++ {
		eq := quad.Components[i]
		tv := testBasis[i].EvaluateBatch(eq.Points, testDers[i])
		tv.ApplyWeights(eq.Weights)
		testFull[i] = tv
		trialFull[i] = trialBasis[i].EvaluateBatch(eq.Points, trialDers[i])
		fullShape[i] = len(eq.Points)
		boundsFull[i] = eq.Bounds
		globalTestSize[i] = testBasis[i].NumBasis()
		globalTrialSize[i] = trialBasis[i].NumBasis()
	}

	dm, err := assemble.NewDims(testFull, trialFull, boundsFull)
	if err != nil {
		return nil, err
	}
	global := sparsity.NewMatrix(dm.Output())

	axes := make([]*axisPartition, dim)
	for i := 0; i < dim; i++ {
		axes[i] = partitionAxis(len(boundsFull[i])-1, macroSizes[i])
	}

	pool := workpool.New(threads)
	defer pool.Close()

	colors := 1 << uint(dim)
	var errMu sync.Mutex
	var spawnErr error
	for color := 0; color < colors; color++ {
		forEachMacro(axes, color, func(idx []int) {
			macroIdx := idx
			pool.Enqueue(func() {
				local, shift, localTestSize, localTrialSize, err := assembleMacro(testBasis, trialBasis, testDers, trialDers, quad, parts, fullShape, boundsFull, axes, macroIdx)
				if err != nil {
					errMu.Lock()
					spawnErr = err
					errMu.Unlock()
					return
				}
				scatterAdd(global, local, shift, localTestSize, localTrialSize, globalTestSize, globalTrialSize)
			})
		})
		pool.WaitAll()
	}
	if spawnErr != nil {
		return nil, spawnErr
	}
	return global, nil
}

// localKnots returns the restricted knot vector for the elements
// [e0,e1) of basis b: B-spline evaluation at a point in span s only ever
// reads the knot window [s-d,s+d+1] (bspline.go's dersBasisFuns), and
// element e's span is always d+e (spec.md §4.2's one-element-per-span
// convention), so slicing the global knot vector to
// [e0, e1+2d] leaves every value dersBasisFuns/findSpan reads for a point
// inside the macro untouched -- the restricted basis reproduces the
// global one exactly, just reindexed from global function e0+r to local
// function r.
func localKnots(b *bspline.Bspline, e0, e1 int) *bspline.Bspline {
	d := b.Degree
	return bspline.New(d, append([]float64(nil), b.Knots[e0:e1+2*d+1]...))
}

// assembleMacro restricts test/trial to macro `idx`'s own knot window
// (spec.md §4.10 (i)), assembles it alone, and returns the per-direction
// index shift (iii) the caller uses to scatter local indices into the
// global basis numbering, along with the local per-direction basis sizes
// needed to decompose the flattened local row/column index.
func assembleMacro(testBasis, trialBasis []*bspline.Bspline, testDers, trialDers [][]int, quad *quadrature.TensorQuadrature, parts []*model.Part, fullShape []int, boundsFull [][]int, axes []*axisPartition, idx []int) (local *sparsity.Matrix, shift, localTestSize, localTrialSize []int, err error) {
	dim := len(testBasis)
	localTest := make([]*bspline.BasisValues, dim)
	localTrial := make([]*bspline.BasisValues, dim)
	localBounds := make([][]int, dim)
	starts := make([]int, dim)
	ends := make([]int, dim)
	shift = make([]int, dim)
	localTestSize = make([]int, dim)
	localTrialSize = make([]int, dim)

	for i := 0; i < dim; i++ {
		eq := quad.Components[i]
		r := axes[i].ranges[idx[i]]
		e0, e1 := r[0], r[1]
		pStart, pEnd := boundsFull[i][e0], boundsFull[i][e1]
		starts[i], ends[i] = pStart, pEnd
		shift[i] = e0

		localPoints := eq.Points[pStart:pEnd]
		localWeights := eq.Weights[pStart:pEnd]

		localTestBasis := localKnots(testBasis[i], e0, e1)
		localTrialBasis := localKnots(trialBasis[i], e0, e1)

		lt := localTestBasis.EvaluateBatch(localPoints, testDers[i])
		lt.ApplyWeights(localWeights)
		localTest[i] = lt
		localTrial[i] = localTrialBasis.EvaluateBatch(localPoints, trialDers[i])
		localTestSize[i] = localTestBasis.NumBasis()
		localTrialSize[i] = localTrialBasis.NumBasis()

		lb := make([]int, e1-e0+1)
		for k := range lb {
			lb[k] = boundsFull[i][e0+k] - pStart
		}
		localBounds[i] = lb
	}

	localParts := make([]*model.Part, len(parts))
	for p, part := range parts {
		localParts[p] = &model.Part{Test: part.Test, Trial: part.Trial, Coefs: gatherBox(part.Coefs, fullShape, starts, ends)}
	}

	local, err = assemble.Assemble(localTest, localTrial, localBounds, localParts)
	return local, shift, localTestSize, localTrialSize, err
}

// decomposeIndex inverts the inner-first flattening (direction 0
// fastest, spec.md §4.3): flat -> per-direction indices.
func decomposeIndex(flat int, sizes []int) []int {
	idx := make([]int, len(sizes))
	for i, s := range sizes {
		idx[i] = flat % s
		flat /= s
	}
	return idx
}

// composeIndex applies the inner-first flattening to per-direction indices.
func composeIndex(idx, sizes []int) int {
	flat := 0
	mult := 1
	for i, s := range sizes {
		flat += idx[i] * mult
		mult *= s
	}
	return flat
}

// scatterAdd accumulates every nonzero of local into global, translating
// local row/column indices to the global basis numbering via shift
// (spec.md §4.10 (iii)) before the positional add. Safe without a lock
// only across macros of the same coloring class, per the caller's
// invariant.
func scatterAdd(global, local *sparsity.Matrix, shift, localTestSize, localTrialSize, globalTestSize, globalTrialSize []int) {
	rows := local.Pattern.Rows()
	for r := 0; r < rows; r++ {
		if local.Pattern.NnzRow(r) == 0 {
			continue
		}
		testIdx := decomposeIndex(r, localTestSize)
		for i := range testIdx {
			testIdx[i] += shift[i]
		}
		gr := composeIndex(testIdx, globalTestSize)

		start := local.Pattern.Start(r)
		for p, c := range local.Pattern.Row(r) {
			trialIdx := decomposeIndex(c, localTrialSize)
			for i := range trialIdx {
				trialIdx[i] += shift[i]
			}
			gc := composeIndex(trialIdx, globalTrialSize)

			gp := global.Pattern.PosOf(gr, gc)
			if gp < 0 {
				chk.Panic("macro: scatter target (%d,%d) not present in global sparsity", gr, gc)
			}
			global.Values[global.Pattern.Start(gr)+gp] += local.Values[start+p]
		}
	}
}
