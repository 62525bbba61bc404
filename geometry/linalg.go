// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// invDet inverts a square n×n matrix via Gauss-Jordan elimination with
// partial pivoting, returning the inverse and det(a). No pack example
// exercises dense matrix inversion (gosl/la's exported API covers
// allocation, not factorization), so this is hand-rolled on top of
// la.MatAlloc for allocation consistency with the rest of the
// codebase; see DESIGN.md.
func invDet(a [][]float64) (ai [][]float64, det float64) {
	n := len(a)
	m := la.MatAlloc(n, 2*n)
	for i := 0; i < n; i++ {
		copy(m[i][:n], a[i])
		m[i][n+i] = 1
	}
	det = 1
	for col := 0; col < n; col++ {
		piv := col
		best := math.Abs(m[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(m[r][col]); v > best {
				piv, best = r, v
			}
		}
		if best < 1e-14 {
			chk.Panic("geometry: singular Jacobian (pivot magnitude %g)", best)
		}
		if piv != col {
			m[col], m[piv] = m[piv], m[col]
			det = -det
		}
		pivVal := m[col][col]
		det *= pivVal
		for j := 0; j < 2*n; j++ {
			m[col][j] /= pivVal
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f := m[r][col]
			if f == 0 {
				continue
			}
			for j := 0; j < 2*n; j++ {
				m[r][j] -= f * m[col][j]
			}
		}
	}
	ai = la.MatAlloc(n, n)
	for i := 0; i < n; i++ {
		copy(ai[i], m[i][n:])
	}
	return
}

// matMul returns a·b for a m×k, b k×n
func matMul(a, b [][]float64) [][]float64 {
	m, k, n := len(a), len(b), len(b[0])
	out := la.MatAlloc(m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			s := 0.0
			for p := 0; p < k; p++ {
				s += a[i][p] * b[p][j]
			}
			out[i][j] = s
		}
	}
	return out
}

// transpose returns aᵀ
func transpose(a [][]float64) [][]float64 {
	m := len(a)
	n := len(a[0])
	out := la.MatAlloc(n, m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			out[j][i] = a[i][j]
		}
	}
	return out
}

// matVec returns a·v for a m×n, v length n
func matVec(a [][]float64, v []float64) []float64 {
	m := len(a)
	out := make([]float64, m)
	for i := 0; i < m; i++ {
		s := 0.0
		for j, vj := range v {
			s += a[i][j] * vj
		}
		out[i] = s
	}
	return out
}
