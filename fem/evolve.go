// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// driver states
const (
	EvolveInitialized = iota // ready, no step taken yet
	EvolveEvolving           // surface moving, t < tEnd
	EvolveExtinct            // reached the caller-supplied end time
)

// SurfaceEvolutionDriver moves a closed discrete surface by mean curvature
// using Dziuk's semi-implicit scheme: each step reassembles mass and
// stiffness on the current (deformed) geometry with tangential gradients and
// solves
//  (M_t + τ⋅A_t)⋅Xₙ₊₁ = M_t⋅Xₙ
// for the new vertex position field. The problem is closed so all dofs are
// free. The driver stops at the caller-supplied end time; it performs no
// automatic extinction detection, so the caller must bound Tend below the
// geometric extinction time (a degenerate cell during reassembly surfaces as
// SingularJacobianError)
type SurfaceEvolutionDriver struct {
	X     *FieldVector // current position field (one component per ambient dimension)
	D     *FieldVector // deformation: current minus reference positions
	Tau   float64      // time step size
	Tend  float64      // caller-supplied end time
	T     float64      // current time
	State int          // EvolveInitialized, EvolveEvolving or EvolveExtinct

	asm  *Assembler // reassembles on deformed geometry via D
	sol  *LinSolver // refactorized each step
	l    []float64  // right-hand side M_t⋅Xₙ
	xref []float64  // reference positions
}

// NewSurfaceEvolutionDriver creates a driver over the manifold mesh of space
// s, which must be an order-1 vector space with one component per ambient
// dimension and no constrained dofs. nworkers sets the number of parallel
// assembly workers; values below 1 mean serial
func NewSurfaceEvolutionDriver(s *FunctionSpace, tau, tEnd float64, solname string, nworkers int) (*SurfaceEvolutionDriver, error) {
	if tau <= 0 {
		return nil, chk.Err("time step must be positive. tau=%g is invalid", tau)
	}
	ndim := s.Msh.Ndim
	if s.Ncomp != ndim {
		return nil, &DimensionMismatchError{"position components", s.Ncomp, ndim}
	}
	if s.Order != 1 {
		return nil, &DimensionMismatchError{"position space order", s.Order, 1}
	}
	if s.NumFree() != s.Ndofs() {
		return nil, &DimensionMismatchError{"free dofs on closed surface", s.NumFree(), s.Ndofs()}
	}

	// position field starts at the reference configuration
	o := &SurfaceEvolutionDriver{Tau: tau, Tend: tEnd, State: EvolveInitialized}
	o.X = NewFieldVector(s)
	if err := o.X.SetFromVecFunc(func(x []float64) []float64 { return x }); err != nil {
		return nil, err
	}
	o.xref = make([]float64, s.Ndofs())
	copy(o.xref, o.X.V)
	o.D = NewFieldVector(s)
	if nworkers < 1 {
		nworkers = 1
	}
	o.asm = &Assembler{Space: s, Deform: o.D, Nworkers: nworkers}
	o.sol = NewLinSolver(s, solname, true)
	o.l = make([]float64, s.Ndofs())
	return o, nil
}

// Step advances the surface by one time increment, reassembling both
// operators on the current geometry
func (o *SurfaceEvolutionDriver) Step() error {
	if o.State == EvolveExtinct {
		return chk.Err("driver is finished. t=%g has reached tEnd=%g", o.T, o.Tend)
	}

	// operators on the deformed surface
	M, err := o.asm.AssembleMatrix(MassForm())
	if err != nil {
		return err
	}
	A, err := o.asm.AssembleMatrix(StiffForm(1))
	if err != nil {
		return err
	}
	Mstar, err := M.CombineNew(o.Tau, A)
	if err != nil {
		return err
	}

	// l := M_t ⋅ Xₙ
	la.VecFill(o.l, 0)
	la.SpMatVecMulAdd(o.l, 1, M.ToCCMatrix(), o.X.V)

	// solve for the new positions and refresh the deformation
	if err := o.sol.Update(Mstar); err != nil {
		return err
	}
	if err := o.sol.Solve(o.X.V, o.l); err != nil {
		return err
	}
	for i, x := range o.X.V {
		o.D.V[i] = x - o.xref[i]
	}

	o.T += o.Tau
	if o.T >= o.Tend-o.Tau/2.0 {
		o.State = EvolveExtinct
	} else {
		o.State = EvolveEvolving
	}
	return nil
}

// Run steps until the end time, reporting progress when io.Verbose
func (o *SurfaceEvolutionDriver) Run() error {
	for o.State != EvolveExtinct {
		if err := o.Step(); err != nil {
			return err
		}
		if io.Verbose {
			io.PfWhite("%30.15f\r", o.T)
		}
	}
	return nil
}

// Clean releases the linear solver data
func (o *SurfaceEvolutionDriver) Clean() {
	o.sol.Clean()
}
