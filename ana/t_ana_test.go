// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_poisson01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("poisson01. manufactured solution is consistent")

	var sol PoissonSine
	sol.Init(2, 1)

	// u vanishes on the boundary
	chk.Scalar(tst, "u(0,y)", 1e-15, sol.U([]float64{0, 0.3}), 0)
	chk.Scalar(tst, "u(lx,y)", 1e-14, sol.U([]float64{2, 0.3}), 0)
	chk.Scalar(tst, "u(x,0)", 1e-15, sol.U([]float64{0.7, 0}), 0)
	chk.Scalar(tst, "u(x,ly)", 1e-14, sol.U([]float64{0.7, 1}), 0)

	// f = -lap(u) by central differences
	x := []float64{0.6, 0.4}
	h := 1e-4
	lap := 0.0
	for i := 0; i < 2; i++ {
		xp := []float64{x[0], x[1]}
		xm := []float64{x[0], x[1]}
		xp[i] += h
		xm[i] -= h
		lap += (sol.U(xp) - 2*sol.U(x) + sol.U(xm)) / (h * h)
	}
	chk.Scalar(tst, "f == -lap(u)", 1e-6, sol.F(x), -lap)
}

func Test_poisson02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("poisson02. nodal check against exact values")

	var sol PoissonSine
	sol.Init(1, 1)

	pts := [][]float64{{0, 0}, {0.5, 0.5}, {0.25, 0.5}, {1, 1}}
	u := make([]float64, len(pts))
	for i, x := range pts {
		u[i] = sol.U(x)
	}

	// exact values give zero error
	chk.Scalar(tst, "emax exact", 1e-15, sol.CheckNodal(pts, u, 1e-14, chk.Verbose), 0)

	// a perturbed entry dominates the error
	u[2] += 1e-3
	chk.Scalar(tst, "emax perturbed", 1e-15, sol.CheckNodal(pts, u, 1e-2, chk.Verbose), 1e-3)
}

func Test_flow01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flow01. shrinking sphere and circle radii")

	sph := ShrinkingSphere{R0: 2}
	chk.Scalar(tst, "R(0)", 1e-15, sph.Radius(0), 2)
	chk.Scalar(tst, "extinction", 1e-15, sph.ExtinctionTime(), 1)
	chk.Scalar(tst, "R(text)", 1e-15, sph.Radius(sph.ExtinctionTime()), 0)

	// dR/dt = -2/R
	t, h := 0.3, 1e-6
	drdt := (sph.Radius(t+h) - sph.Radius(t-h)) / (2 * h)
	chk.Scalar(tst, "dR/dt", 1e-8, drdt, -2.0/sph.Radius(t))

	cir := ShrinkingCircle{R0: 1}
	chk.Scalar(tst, "extinction", 1e-15, cir.ExtinctionTime(), 0.5)
	drdt = (cir.Radius(t+h) - cir.Radius(t-h)) / (2 * h)
	chk.Scalar(tst, "dR/dt", 1e-8, drdt, -1.0/cir.Radius(t))
}

func Test_eoc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eoc01. order estimation from synthetic errors")

	// e = 3 h^2 exactly
	hs := []float64{0.4, 0.2, 0.1, 0.05}
	errs := make([]float64, len(hs))
	for i, h := range hs {
		errs[i] = 3 * h * h
	}
	chk.Scalar(tst, "fitted order", 1e-12, Eoc(hs, errs), 2)
	for _, p := range EocPairwise(hs, errs) {
		chk.Scalar(tst, "pairwise order", 1e-12, p, 2)
	}
}

func Test_radius01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("radius01. mean radius of points")

	pts := [][]float64{{1, 0}, {0, 2}, {-3, 0}}
	chk.Scalar(tst, "mean", 1e-15, MeanRadius(pts), 2)
	chk.Scalar(tst, "max err", 1e-15, MaxErr([]float64{1, 2}, []float64{0.5, 3}), 1)
}
