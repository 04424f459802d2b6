// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_sparse01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparse01. pattern structure and lookup")

	m := testSquare(tst)
	if m == nil {
		return
	}
	s, err := NewFunctionSpace(m, 1, 1, nil)
	if err != nil {
		tst.Errorf("space construction failed: %v\n", err)
		return
	}
	pat := s.Pattern()
	chk.IntAssert(pat.N, s.Ndofs())

	// pattern is shared
	if s.Pattern() != pat {
		tst.Errorf("pattern must be cached\n")
		return
	}

	// diagonal is present and every cell coupling is found
	for i := 0; i < pat.N; i++ {
		if pat.Find(i, i) < 0 {
			tst.Errorf("diagonal entry (%d,%d) missing\n", i, i)
			return
		}
	}
	for _, dofs := range s.Cell2Dofs {
		for _, i := range dofs {
			for _, j := range dofs {
				if pat.Find(i, j) < 0 {
					tst.Errorf("coupling (%d,%d) missing\n", i, j)
					return
				}
			}
		}
	}

	// unconnected vertices are not coupled: vert 0 is a corner, the opposite
	// corner is the last vertex
	if pat.Find(0, len(m.Verts)-1) >= 0 {
		tst.Errorf("opposite corners must not be coupled\n")
	}
}

func Test_sparse02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparse02. entrywise combination equals combined-form assembly")

	m := testSquare(tst)
	if m == nil {
		return
	}
	s, err := NewFunctionSpace(m, 1, 1, nil)
	if err != nil {
		tst.Errorf("space construction failed: %v\n", err)
		return
	}
	a := NewAssembler(s)

	// assemble M and A separately, then combine
	M, err := a.AssembleMatrix(MassForm())
	if err != nil {
		tst.Errorf("assembly failed: %v\n", err)
		return
	}
	A, err := a.AssembleMatrix(StiffForm(1))
	if err != nil {
		tst.Errorf("assembly failed: %v\n", err)
		return
	}
	dt := 0.1
	C, err := M.CombineNew(dt, A)
	if err != nil {
		tst.Errorf("combination failed: %v\n", err)
		return
	}

	// assemble the combined form directly
	D, err := a.AssembleMatrix(&BilinearForm{Mass: Cte(1), Diffusion: Cte(dt)})
	if err != nil {
		tst.Errorf("assembly failed: %v\n", err)
		return
	}
	chk.Vector(tst, "M + dt*A", 1e-14, C.Vals, D.Vals)

	// in-place version
	if err := M.Combine(dt, A); err != nil {
		tst.Errorf("combination failed: %v\n", err)
		return
	}
	chk.Vector(tst, "in-place", 1e-14, M.Vals, D.Vals)
}

func Test_sparse03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparse03. foreign patterns cannot be combined")

	m := testSquare(tst)
	if m == nil {
		return
	}
	s1, _ := NewFunctionSpace(m, 1, 1, nil)
	s2, _ := NewFunctionSpace(m, 1, 1, nil)
	a := NewMatrix(s1)
	b := NewMatrix(s2)
	if err := a.Combine(1, b); err == nil {
		tst.Errorf("expected failure for matrices of different spaces\n")
	}
}
