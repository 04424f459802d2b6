// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/la"
)

// LinSolver solves restricted linear systems K⋅u = b where only the free dofs
// of the space are unknowns. Constrained rows and columns are excluded from
// the factorized system; their contribution to the right-hand side must be
// folded in by the caller (or be zero, as for homogeneous Dirichlet data).
// The solver keeps its symbolic factorization across Update calls since the
// sparsity pattern of a space never changes
type LinSolver struct {
	Space     *FunctionSpace // defines free/constrained partition
	Name      string         // linear solver kind; e.g. "umfpack"
	Symmetric bool           // assume symmetric system

	// derived
	f2p []int // [Ndofs] global dof => packed equation; -1 if constrained
	p2f []int // [NumFree] packed equation => global dof

	// solver data
	t      la.Triplet // free-free block in triplet format
	sol    la.LinSol  // direct solver
	ready  bool       // symbolic phase done
	packed []float64  // rhs/solution workspace
}

// NewLinSolver creates a solver over the free dofs of space s
func NewLinSolver(s *FunctionSpace, name string, symmetric bool) *LinSolver {
	o := &LinSolver{Space: s, Name: name, Symmetric: symmetric}
	n := s.Ndofs()
	o.f2p = make([]int, n)
	o.p2f = make([]int, 0, n)
	for i := 0; i < n; i++ {
		if s.Free[i] {
			o.f2p[i] = len(o.p2f)
			o.p2f = append(o.p2f, i)
		} else {
			o.f2p[i] = -1
		}
	}
	o.t.Init(len(o.p2f), len(o.p2f), s.Pattern().Nnz())
	o.packed = make([]float64, len(o.p2f))
	return o
}

// Update refactorizes the solver with the current values of K. The symbolic
// analysis runs once, on the first call; subsequent calls only redo the
// numeric factorization
func (o *LinSolver) Update(K *Matrix) error {
	if K.Pat != o.Space.Pattern() {
		return &DimensionMismatchError{"matrix pattern size", K.Pat.N, o.Space.Ndofs()}
	}

	// free-free block
	o.t.Start()
	for i := 0; i < K.Pat.N; i++ {
		I := o.f2p[i]
		if I < 0 {
			continue
		}
		for k := K.Pat.RowPtr[i]; k < K.Pat.RowPtr[i+1]; k++ {
			if J := o.f2p[K.Pat.Cols[k]]; J >= 0 {
				o.t.Put(I, J, K.Vals[k])
			}
		}
	}

	// initialize and factorize
	if !o.ready {
		o.sol = la.GetSolver(o.Name)
		if err := o.sol.InitR(&o.t, o.Symmetric, false, false); err != nil {
			return &SingularSystemError{err.Error()}
		}
		o.ready = true
	}
	if err := o.sol.Fact(); err != nil {
		return &SingularSystemError{err.Error()}
	}
	return nil
}

// Solve computes u such that K⋅u = b on the free dofs, with K as given to the
// last Update. Constrained entries of u are left untouched; constrained
// entries of b are ignored
func (o *LinSolver) Solve(u, b []float64) error {
	if !o.ready {
		return &SingularSystemError{"solver must be updated with a matrix before solving"}
	}
	if len(u) != o.Space.Ndofs() {
		return &DimensionMismatchError{"solution vector length", len(u), o.Space.Ndofs()}
	}
	if len(b) != o.Space.Ndofs() {
		return &DimensionMismatchError{"right-hand side length", len(b), o.Space.Ndofs()}
	}
	x := make([]float64, len(o.p2f))
	for p, i := range o.p2f {
		o.packed[p] = b[i]
	}
	if err := o.sol.SolveR(x, o.packed, false); err != nil {
		return &SingularSystemError{err.Error()}
	}
	for p, i := range o.p2f {
		u[i] = x[p]
	}
	return nil
}

// Clean releases the factorization data
func (o *LinSolver) Clean() {
	if o.ready {
		o.sol.Clean()
		o.ready = false
	}
}
