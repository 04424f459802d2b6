// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	r := []float64{0, 0, 0}
	for n := 0; n < shape.Nverts; n++ {

		// natural coordinates @ vertex
		for i := 0; i < shape.Gndim; i++ {
			r[i] = shape.NatCoords[i][n]
		}

		// compute function
		shape.Func(shape.S, shape.DSdR, r, false)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckPartitionOfUnity checks that shape functions sum to 1.0 at given point
func CheckPartitionOfUnity(tst *testing.T, shape *Shape, r []float64, tol float64) {
	shape.Func(shape.S, shape.DSdR, r, false)
	sum := 0.0
	for m := 0; m < shape.Nverts; m++ {
		sum += shape.S[m]
	}
	if math.Abs(sum-1.0) > tol {
		tst.Errorf("%s failed: sum(S) = %.17f\n", shape.Type, sum)
	}
}

// CheckDSdR checks dSdR derivatives of shape structures against numerical derivatives
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {

	// auxiliary
	r_tmp := make([]float64, len(r))
	S_tmp := make([]float64, shape.Nverts)

	// analytical
	shape.Func(shape.S, shape.DSdR, r, true)

	// numerical
	for n := 0; n < shape.Nverts; n++ {
		for i := 0; i < shape.Gndim; i++ {
			dSndRi, _ := num.DerivCentral(func(t float64, args ...interface{}) (Sn float64) {
				copy(r_tmp, r)
				r_tmp[i] = t
				shape.Func(S_tmp, nil, r_tmp, false)
				Sn = S_tmp[n]
				return
			}, r[i], 1e-1)
			if verbose {
				io.Pfgrey2("  dS%ddR%d @ %5.2f = %v (num: %v)\n", n, i, r, shape.DSdR[n][i], dSndRi)
			}
			if math.Abs(shape.DSdR[n][i]-dSndRi) > tol {
				tst.Errorf("%s dS%ddR%d failed with err = %g\n", shape.Type, n, i, math.Abs(shape.DSdR[n][i]-dSndRi))
				return
			}
		}
	}
}
