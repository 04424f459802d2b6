// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func Test_stepper01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stepper01. zero data stays exactly zero")

	m := testSquare(tst)
	if m == nil {
		return
	}
	s, err := NewFunctionSpace(m, 1, 1, allBoundaries)
	if err != nil {
		tst.Errorf("space construction failed: %v\n", err)
		return
	}
	a := NewAssembler(s)
	u := NewFieldVector(s)
	st, err := NewTimeStepper(a, StiffForm(1), nil, u, 0.1, 1.0, "umfpack", true)
	if err != nil {
		tst.Errorf("stepper construction failed: %v\n", err)
		return
	}
	defer st.Clean()
	chk.IntAssert(st.State, StepInitialized)
	if err := st.Run(nil, nil); err != nil {
		tst.Errorf("run failed: %v\n", err)
		return
	}
	chk.IntAssert(st.State, StepFinished)
	for i, v := range u.V {
		if v != 0 {
			tst.Errorf("u[%d]=%g must remain exactly zero\n", i, v)
			return
		}
	}
}

func Test_stepper02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stepper02. half-step guard yields the exact step count")

	m := testSquare(tst)
	if m == nil {
		return
	}
	s, err := NewFunctionSpace(m, 1, 1, allBoundaries)
	if err != nil {
		tst.Errorf("space construction failed: %v\n", err)
		return
	}
	a := NewAssembler(s)
	u := NewFieldVector(s)

	// dt = 0.1 accumulates roundoff; 10 steps must still be taken, not 11
	st, err := NewTimeStepper(a, StiffForm(1), nil, u, 0.1, 1.0, "umfpack", true)
	if err != nil {
		tst.Errorf("stepper construction failed: %v\n", err)
		return
	}
	defer st.Clean()
	nsteps := 0
	for st.State != StepFinished {
		if err := st.Step(); err != nil {
			tst.Errorf("step failed: %v\n", err)
			return
		}
		nsteps++
		if nsteps > 1 && st.State != StepStepping && st.State != StepFinished {
			tst.Errorf("unexpected state %d\n", st.State)
			return
		}
	}
	chk.IntAssert(nsteps, 10)

	// stepping past the end fails
	if err := st.Step(); err == nil {
		tst.Errorf("expected failure after tEnd\n")
	}
}

func Test_stepper03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stepper03. steady state of heat equation with source")

	m := testSquare(tst)
	if m == nil {
		return
	}
	s, err := NewFunctionSpace(m, 1, 1, allBoundaries)
	if err != nil {
		tst.Errorf("space construction failed: %v\n", err)
		return
	}
	a := NewAssembler(s)

	// march du/dt - lap(u) = 1 far past the diffusive time scale
	u := NewFieldVector(s)
	st, err := NewTimeStepper(a, StiffForm(1), &LinearForm{Source: Cte(1)}, u, 0.25, 50.0, "umfpack", true)
	if err != nil {
		tst.Errorf("stepper construction failed: %v\n", err)
		return
	}
	defer st.Clean()
	if err := st.Run(nil, nil); err != nil {
		tst.Errorf("run failed: %v\n", err)
		return
	}

	// compare with the steady solve of -lap(u) = 1
	A, err := a.AssembleMatrix(StiffForm(1))
	if err != nil {
		tst.Errorf("assembly failed: %v\n", err)
		return
	}
	b, err := a.AssembleVector(&LinearForm{Source: Cte(1)})
	if err != nil {
		tst.Errorf("assembly failed: %v\n", err)
		return
	}
	sol := NewLinSolver(s, "umfpack", true)
	defer sol.Clean()
	if err := sol.Update(A); err != nil {
		tst.Errorf("factorization failed: %v\n", err)
		return
	}
	uss := NewFieldVector(s)
	if err := sol.Solve(uss.V, b); err != nil {
		tst.Errorf("solve failed: %v\n", err)
		return
	}
	chk.Vector(tst, "steady state", 1e-8, u.V, uss.V)
}

func Test_stepper04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stepper04. output function and step size changes")

	m := testSquare(tst)
	if m == nil {
		return
	}
	s, err := NewFunctionSpace(m, 1, 1, allBoundaries)
	if err != nil {
		tst.Errorf("space construction failed: %v\n", err)
		return
	}
	a := NewAssembler(s)
	u := NewFieldVector(s)
	st, err := NewTimeStepper(a, StiffForm(1), &LinearForm{Source: Cte(1)}, u, 0.1, 1.0, "umfpack", true)
	if err != nil {
		tst.Errorf("stepper construction failed: %v\n", err)
		return
	}
	defer st.Clean()

	// dt = 0.1 with output every 0.2 fires at t = 0, 0.2, 0.4, 0.6, 0.8, 1
	touts := []float64{}
	st.Out = func(t float64, uu *FieldVector) error {
		touts = append(touts, t)
		if uu != st.U {
			return chk.Err("observer must receive the stepper solution")
		}
		return nil
	}
	if err := st.Run(nil, &fun.Cte{C: 0.2}); err != nil {
		tst.Errorf("run failed: %v\n", err)
		return
	}
	chk.IntAssert(len(touts), 6)
	chk.Vector(tst, "output times", 1e-12, touts, []float64{0, 0.2, 0.4, 0.6, 0.8, 1})

	// changing the step size refactorizes and still reaches the same steady
	// state as small fixed steps
	u2 := NewFieldVector(s)
	st2, err := NewTimeStepper(a, StiffForm(1), &LinearForm{Source: Cte(1)}, u2, 0.1, 50.0, "umfpack", true)
	if err != nil {
		tst.Errorf("stepper construction failed: %v\n", err)
		return
	}
	defer st2.Clean()
	if err := st2.SetDt(0.25); err != nil {
		tst.Errorf("step size change failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "dt after change", 1e-15, st2.Dt, 0.25)
	if err := st2.Run(&fun.Cte{C: 0.25}, nil); err != nil {
		tst.Errorf("run failed: %v\n", err)
		return
	}
	chk.IntAssert(st2.State, StepFinished)
	chk.Vector(tst, "steady state", 1e-6, u2.V, u.V)
}
