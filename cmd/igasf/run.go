// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/IgASF/IgASF/assemble"
	"github.com/IgASF/IgASF/bspline"
	"github.com/IgASF/IgASF/format"
	"github.com/IgASF/IgASF/geometry"
	"github.com/IgASF/IgASF/logx"
	"github.com/IgASF/IgASF/macro"
	"github.com/IgASF/IgASF/model"
	"github.com/IgASF/IgASF/sparsity"
	"github.com/IgASF/IgASF/timing"
)

// cmdRun implements "igasf run" (spec.md §6, grounded on
// original_source/src/bin/runTest.cpp): read a problem-description file,
// assemble it by the requested method, and optionally write the resulting
// matrix and a tab-separated timing row. Accepts the same -m method names
// as the original tool: global (default), element, macroS, macroN,
// macroR, or "macro s1 ... sd" / "macro s" for an explicit per-direction
// macro size (-1 meaning "use this direction's spline degree").
func cmdRun(args []string) error {
	var testFile, output, method, logFile string
	threads := 1
	method = "global"

	i := 0
	if i < len(args) && !strings.HasPrefix(args[i], "-") {
		testFile = args[i]
		i++
	}
	var macroSizes []int
	for i < len(args) {
		switch strings.ToLower(args[i]) {
		case "-o":
			i++
			output = args[i]
			i++
		case "-l":
			i++
			logFile = args[i]
			i++
		case "-m":
			i++
			method = args[i]
			i++
			if method == "macro" {
				for i < len(args) {
					n, err := strconv.Atoi(args[i])
					if err != nil {
						break
					}
					macroSizes = append(macroSizes, n)
					i++
				}
				if len(macroSizes) == 0 {
					chk.Panic("igasf run: -m macro requires at least one size")
				}
			}
		case "-threads":
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 1 {
				chk.Panic("igasf run: -threads needs an integer >= 1")
			}
			threads = n
			i++
		default:
			chk.Panic("igasf run: unknown option %q", args[i])
		}
	}
	if testFile == "" {
		chk.Panic("igasf run: a test file is required")
	}
	if threads > 1 && method != "macroS" && method != "macro" {
		chk.Panic("igasf run: parallel execution (-threads > 1) is only available for \"macroS\" or an explicit \"macro\" size")
	}

	pd, err := format.ReadProblem(testFile)
	if err != nil {
		return err
	}

	realStart := time.Now()
	var counters timing.Counters

	dim := pd.Test.Dim()
	grid := pd.Quadrature.Grid()
	ders := fullDerRequest(dim)

	var testVals, trialVals []*bspline.BasisValues
	timing.Track(&counters.EvalBases, func() {
		testVals = pd.Test.EvaluateComponents(ders, grid)
		trialVals = pd.Trial.EvaluateComponents(ders, grid)
		for i := range testVals {
			testVals[i].ApplyWeights(pd.Quadrature.Components[i].Weights)
		}
	})

	var parts []*model.Part
	timing.Track(&counters.EvalCoef, func() {
		if pd.Geometry == nil {
			parts = pd.EqCoefs.DecomposeConstant(grid.NumPoints())
			return
		}
		target := pd.Geometry.Target()
		a := pd.EqCoefs.A
		if !pd.EqCoefs.HasA {
			a = make([][]float64, target)
			for r := range a {
				a[r] = make([]float64, target)
			}
		}
		b := pd.EqCoefs.B
		if !pd.EqCoefs.HasB {
			b = make([]float64, target)
		}
		var tA, tB [][]float64
		var tC []float64
		timing.Track(&counters.GeoTransform, func() {
			tA, tB, tC = geometry.TransformCoefs(pd.Geometry, grid, a, b, pd.EqCoefs.C)
		})
		parts = model.DecomposeTransformed(dim, tA, tB, tC)
	})

	bounds := pd.Quadrature.ElementBounds()

	var res *sparsity.Matrix
	timing.Track(&counters.Assemble, func() {
		if method == "global" {
			res, err = assemble.Assemble(testVals, trialVals, bounds, parts)
		} else {
			sizes := macroSizesFor(method, macroSizes, pd.Test.Components, pd.Trial.Components)
			res, err = macro.AssembleParallel(pd.Test.Components, pd.Trial.Components, ders, ders, pd.Quadrature, parts, sizes, threads)
		}
	})
	if err != nil {
		return err
	}
	realTime := time.Since(realStart)

	logx.Done("Assembled a %dx%d matrix using method %q in %v.\n", res.Pattern.Rows(), res.Pattern.Cols, method, realTime)
	io.Pf("    bases-eval:  %.6fs\n", timing.Seconds(counters.EvalBases))
	io.Pf("    coefs-eval:  %.6fs\n", timing.Seconds(counters.EvalCoef))
	io.Pf("     geo-tran:   %.6fs\n", timing.Seconds(counters.GeoTransform))
	io.Pf("    assemble:    %.6fs\n", timing.Seconds(counters.Assemble))

	if output != "" {
		if err := format.WriteMatrix(res, output); err != nil {
			return err
		}
	}

	if logFile != "" {
		if err := appendTimingLog(logFile, testFile, method, realTime, &counters); err != nil {
			return err
		}
	}
	return nil
}

// appendTimingLog appends one tab-separated timing row to logFile,
// writing the header first if the file does not exist yet (spec.md §6
// "-l LOG", grounded on runTest.cpp's log-file append behavior).
func appendTimingLog(logFile, testFile, method string, realTime time.Duration, c *timing.Counters) error {
	_, statErr := os.Stat(logFile)
	exists := statErr == nil

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return chk.Err("igasf run: cannot open log file %q: %v", logFile, err)
	}
	defer f.Close()

	if !exists {
		if _, err := fmt.Fprint(f, "TestName\tMethod\tTotalClockTime\tPartialBases\tPartialCoefficients\tPartialGeometry\tPartialSumFactorization\n"); err != nil {
			return chk.Err("igasf run: cannot write log header: %v", err)
		}
	}
	_, err = fmt.Fprintf(f, "%s\t%s\t%v\t%.6f\t%.6f\t%.6f\t%.6f\n",
		testFile, method, realTime.Seconds(),
		timing.Seconds(c.EvalBases), timing.Seconds(c.EvalCoef),
		timing.Seconds(c.GeoTransform), timing.Seconds(c.Assemble))
	if err != nil {
		return chk.Err("igasf run: cannot write log row: %v", err)
	}
	return nil
}

// fullDerRequest asks for derivative orders 0 and 1 in every direction,
// enough for any second-order scalar term (spec.md §4.2).
func fullDerRequest(dim int) [][]int {
	out := make([][]int, dim)
	for i := range out {
		out[i] = []int{0, 1}
	}
	return out
}

// macroSizesFor resolves the -m method name into a per-direction macro
// element count, following runTest.cpp's method table: element=1
// everywhere, macroS=degree everywhere, macroN=degree except the last
// direction (1), macroR=degree except the first direction (1); an
// explicit "macro s1 ... sd" (or single "macro s") overrides all of this.
func macroSizesFor(method string, explicit []int, testComp, trialComp []*bspline.Bspline) []int {
	dim := len(testComp)
	degreeAt := func(i int) int {
		d := testComp[i].Degree
		if trialComp[i].Degree > d {
			d = trialComp[i].Degree
		}
		return d
	}
	if len(explicit) > 0 {
		if len(explicit) == 1 {
			sizes := make([]int, dim)
			for i := range sizes {
				sizes[i] = resolveSize(explicit[0], degreeAt(i))
			}
			return sizes
		}
		if len(explicit) != dim {
			chk.Panic("igasf run: -m macro needs 1 or %d sizes, got %d", dim, len(explicit))
		}
		sizes := make([]int, dim)
		for i, s := range explicit {
			sizes[i] = resolveSize(s, degreeAt(i))
		}
		return sizes
	}
	sizes := make([]int, dim)
	switch method {
	case "element":
		for i := range sizes {
			sizes[i] = 1
		}
	case "macroS":
		for i := range sizes {
			sizes[i] = degreeAt(i)
		}
	case "macroN":
		for i := range sizes {
			sizes[i] = degreeAt(i)
		}
		sizes[dim-1] = 1
	case "macroR":
		for i := range sizes {
			sizes[i] = degreeAt(i)
		}
		sizes[0] = 1
	default:
		chk.Panic("igasf run: unknown method %q", method)
	}
	return sizes
}

// resolveSize maps a -1 placeholder to the direction's spline degree.
func resolveSize(s, degree int) int {
	if s < 0 {
		return degree
	}
	return s
}
