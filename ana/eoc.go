// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Eoc estimates the order of convergence from mesh sizes hs and the
// corresponding errors, by least-squares fitting the slope of log(err)
// against log(h)
func Eoc(hs, errs []float64) float64 {
	lh := make([]float64, len(hs))
	le := make([]float64, len(errs))
	for i := range hs {
		lh[i] = math.Log(hs[i])
		le[i] = math.Log(errs[i])
	}
	_, slope := stat.LinearRegression(lh, le, nil, false)
	return slope
}

// EocPairwise returns the orders estimated from successive refinements:
//  p_i = log(e_i/e_{i+1}) / log(h_i/h_{i+1})
func EocPairwise(hs, errs []float64) []float64 {
	p := make([]float64, len(hs)-1)
	for i := 0; i < len(hs)-1; i++ {
		p[i] = math.Log(errs[i]/errs[i+1]) / math.Log(hs[i]/hs[i+1])
	}
	return p
}

// MaxErr returns the largest absolute entry of the difference a - b
func MaxErr(a, b []float64) (m float64) {
	for i := range a {
		m = math.Max(m, math.Abs(a[i]-b[i]))
	}
	return
}

// MeanRadius returns the average Euclidean norm of the given points
func MeanRadius(points [][]float64) float64 {
	rs := make([]float64, len(points))
	for i, p := range points {
		rs[i] = floats.Norm(p, 2)
	}
	return stat.Mean(rs, nil)
}
