// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// stepper states
const (
	StepInitialized = iota // ready, no step taken yet
	StepStepping           // at least one step taken, t < tEnd
	StepFinished           // t reached tEnd
)

// TimeStepper marches the semi-discrete problem
//  M⋅du/dt + A⋅u = F
// with the implicit Euler scheme. M, A and F are assembled once at
// construction; the iteration matrix M + Δt⋅A is factorized once and reused
// by every step, which solves
//  (M + Δt⋅A)⋅δ = Δt⋅(F − A⋅uₙ),   uₙ₊₁ = uₙ + δ
// Constrained dofs keep the values stored in U throughout
type TimeStepper struct {
	U     *FieldVector // current solution (also holds boundary values)
	Dt    float64      // time step size
	Tend  float64      // final time
	T     float64      // current time
	State int          // StepInitialized, StepStepping or StepFinished

	// output
	Out func(t float64, u *FieldVector) error // optional observer called by Run at output times

	// operators
	mm  *Matrix      // mass matrix, kept for refactorization on SetDt
	aa  *Matrix      // spatial operator, kept for refactorization on SetDt
	acc *la.CCMatrix // A in compressed-column format for products
	fv  []float64    // assembled load
	sol *LinSolver   // factorized M + Δt⋅A

	// workspaces
	r []float64 // right-hand side of one step
	δ []float64 // solution increment
}

// NewTimeStepper assembles the operators of the problem defined by op (the
// spatial bilinear form) and load (nil means zero), builds and factorizes the
// iteration matrix and returns a stepper starting from U = u0 at t = 0
func NewTimeStepper(a *Assembler, op *BilinearForm, load *LinearForm, u0 *FieldVector, dt, tEnd float64, solname string, symmetric bool) (*TimeStepper, error) {
	if dt <= 0 {
		return nil, chk.Err("time step must be positive. dt=%g is invalid", dt)
	}
	s := a.Space
	if u0.Space != s {
		return nil, &DimensionMismatchError{"initial condition length", u0.Space.Ndofs(), s.Ndofs()}
	}

	// operators
	M, err := a.AssembleMatrix(MassForm())
	if err != nil {
		return nil, err
	}
	A, err := a.AssembleMatrix(op)
	if err != nil {
		return nil, err
	}
	fv := make([]float64, s.Ndofs())
	if load != nil {
		if fv, err = a.AssembleVector(load); err != nil {
			return nil, err
		}
	}

	// iteration matrix
	Mstar, err := M.CombineNew(dt, A)
	if err != nil {
		return nil, err
	}
	sol := NewLinSolver(s, solname, symmetric)
	if err := sol.Update(Mstar); err != nil {
		return nil, err
	}

	n := s.Ndofs()
	return &TimeStepper{
		U: u0, Dt: dt, Tend: tEnd, State: StepInitialized,
		mm: M, aa: A, acc: A.ToCCMatrix(), fv: fv, sol: sol,
		r: make([]float64, n), δ: make([]float64, n),
	}, nil
}

// SetDt changes the time step size, recombining and refactorizing the
// iteration matrix from the retained operators
func (o *TimeStepper) SetDt(dt float64) error {
	if dt <= 0 {
		return chk.Err("time step must be positive. dt=%g is invalid", dt)
	}
	if dt == o.Dt {
		return nil
	}
	Mstar, err := o.mm.CombineNew(dt, o.aa)
	if err != nil {
		return err
	}
	if err := o.sol.Update(Mstar); err != nil {
		return err
	}
	o.Dt = dt
	return nil
}

// Step advances the solution by one time increment
func (o *TimeStepper) Step() error {
	if o.State == StepFinished {
		return chk.Err("stepper is finished. t=%g has reached tEnd=%g", o.T, o.Tend)
	}

	// r := Δt⋅(F − A⋅uₙ)
	for i, f := range o.fv {
		o.r[i] = o.Dt * f
	}
	la.SpMatVecMulAdd(o.r, -o.Dt, o.acc, o.U.V)

	// solve and update. δ is zero on constrained dofs so boundary values stay
	la.VecFill(o.δ, 0)
	if err := o.sol.Solve(o.δ, o.r); err != nil {
		return err
	}
	for i, d := range o.δ {
		o.U.V[i] += d
	}

	// advance time; the half-step guard absorbs roundoff in t accumulation
	o.T += o.Dt
	if o.T >= o.Tend-o.Dt/2.0 {
		o.State = StepFinished
	} else {
		o.State = StepStepping
	}
	return nil
}

// Run steps until tEnd, reporting progress when io.Verbose. dtFunc gives the
// step size as a function of time and dtoFunc the output increment driving
// the Out observer; nil dtFunc means the constant Dt and nil dtoFunc falls
// back to dtFunc. The observer also fires once at the initial time
func (o *TimeStepper) Run(dtFunc, dtoFunc fun.Func) error {
	if dtFunc == nil {
		dtFunc = &fun.Cte{C: o.Dt}
	}
	if dtoFunc == nil {
		dtoFunc = dtFunc
	}
	tout := o.T + dtoFunc.F(o.T, nil)
	if err := o.output(); err != nil {
		return err
	}
	for o.State != StepFinished {
		if err := o.SetDt(dtFunc.F(o.T, nil)); err != nil {
			return err
		}
		if err := o.Step(); err != nil {
			return err
		}
		if io.Verbose {
			io.PfWhite("%30.15f\r", o.T)
		}
		if o.T >= tout-o.Dt/2.0 || o.State == StepFinished {
			if err := o.output(); err != nil {
				return err
			}
			tout += dtoFunc.F(o.T, nil)
		}
	}
	return nil
}

func (o *TimeStepper) output() error {
	if o.Out == nil {
		return nil
	}
	return o.Out(o.T, o.U)
}

// Clean releases the linear solver data
func (o *TimeStepper) Clean() {
	o.sol.Clean()
}
