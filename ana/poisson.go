// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// PoissonSine implements the manufactured solution of the Poisson problem
//  -Δu = f   in (0,lx)×(0,ly)
//    u = 0   on the boundary
// with u = sin(πx/lx)⋅sin(πy/ly)
type PoissonSine struct {
	Lx float64 // domain size along x
	Ly float64 // domain size along y

	// derived
	kx float64 // π/lx
	ky float64 // π/ly
}

// Init initialises this structure for a lx × ly rectangle
func (o *PoissonSine) Init(lx, ly float64) {
	o.Lx, o.Ly = lx, ly
	o.kx = math.Pi / lx
	o.ky = math.Pi / ly
}

// U returns the exact solution at x
func (o *PoissonSine) U(x []float64) float64 {
	return math.Sin(o.kx*x[0]) * math.Sin(o.ky*x[1])
}

// F returns the source term at x
func (o *PoissonSine) F(x []float64) float64 {
	return (o.kx*o.kx + o.ky*o.ky) * o.U(x)
}

// CheckNodal compares computed nodal values u against the exact solution at
// the given points
//  Output:
//   emax -- the largest absolute nodal error
func (o *PoissonSine) CheckNodal(points [][]float64, u []float64, tol float64, verbose bool) (emax float64) {
	for i, x := range points {
		ua := o.U(x)
		if verbose {
			chk.PrintAnaNum(io.Sf("u(%g,%g)", x[0], x[1]), tol, ua, u[i], verbose)
		}
		e := math.Abs(ua - u[i])
		if e > emax {
			emax = e
		}
	}
	return
}
