// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/cpmech/gosl/chk"

// gaussLegendre returns the n-point Gauss-Legendre rule on [-1,1].
// Gauss node/weight generation is explicitly out of scope for the
// assembler library itself (spec.md §1: "the reference rule ... is always
// supplied by the caller"); this table exists only so the "generate"
// subcommand can emit a default rule without the caller needing to
// supply one. Rules with more than 6 points are not tabulated here, so
// "generate" (which asks for degree+1 points) supports degrees up to 5.
func gaussLegendre(n int) ([]float64, []float64) {
	switch n {
	case 1:
		return []float64{0}, []float64{2}
	case 2:
		const g = 0.5773502691896257
		return []float64{-g, g}, []float64{1, 1}
	case 3:
		const g = 0.7745966692414834
		return []float64{-g, 0, g}, []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
	case 4:
		return []float64{-0.8611363115940526, -0.3399810435848563, 0.3399810435848563, 0.8611363115940526},
			[]float64{0.3478548451374538, 0.6521451548625461, 0.6521451548625461, 0.3478548451374538}
	case 5:
		return []float64{-0.9061798459386640, -0.5384693101056831, 0, 0.5384693101056831, 0.9061798459386640},
			[]float64{0.2369268850561891, 0.4786286704993665, 0.5688888888888889, 0.4786286704993665, 0.2369268850561891}
	case 6:
		return []float64{-0.9324695142031521, -0.6612093864662645, -0.2386191860831969, 0.2386191860831969, 0.6612093864662645, 0.9324695142031521},
			[]float64{0.1713244923791704, 0.3607615730481386, 0.4679139345726910, 0.4679139345726910, 0.3607615730481386, 0.1713244923791704}
	}
	chk.Panic("igasf: no tabulated Gauss-Legendre rule with %d points (supported: 1..6)", n)
	return nil, nil
}
