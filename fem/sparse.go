// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Pattern holds the fixed sparsity pattern of operators assembled from one
// FunctionSpace: a compressed-sparse-row structure with sorted column indices.
// All matrices of the same space share one Pattern instance, which is what
// allows their linear combination by direct entrywise addition of value arrays
type Pattern struct {
	N      int   // matrix dimension (== space Ndofs)
	RowPtr []int // [N+1] start of each row in Cols
	Cols   []int // [nnz] column indices, sorted within each row
}

// newPattern builds the sparsity pattern of space s from its element dof maps.
// Components couple only with themselves (forms are component-diagonal), so
// vector spaces produce a block-diagonal pattern
func newPattern(s *FunctionSpace) *Pattern {

	// set of column indices per row
	n := s.Ndofs()
	rows := make([]map[int]bool, n)
	addBlock := func(dofs []int, comp int) {
		for _, i := range dofs {
			I := s.GDof(comp, i)
			if rows[I] == nil {
				rows[I] = make(map[int]bool)
			}
			for _, j := range dofs {
				rows[I][s.GDof(comp, j)] = true
			}
		}
	}
	for _, dofs := range s.Cell2Dofs {
		for c := 0; c < s.Ncomp; c++ {
			addBlock(dofs, c)
		}
	}

	// compress
	o := &Pattern{N: n, RowPtr: make([]int, n+1)}
	nnz := 0
	for i := 0; i < n; i++ {
		nnz += len(rows[i])
	}
	o.Cols = make([]int, 0, nnz)
	for i := 0; i < n; i++ {
		o.RowPtr[i] = len(o.Cols)
		start := len(o.Cols)
		for j := range rows[i] {
			o.Cols = append(o.Cols, j)
		}
		sort.Ints(o.Cols[start:])
	}
	o.RowPtr[n] = len(o.Cols)
	return o
}

// Pattern returns the sparsity pattern shared by all matrices of this space
func (o *FunctionSpace) Pattern() *Pattern {
	if o.pattern == nil {
		o.pattern = newPattern(o)
	}
	return o.pattern
}

// Nnz returns the number of (potentially) nonzero entries
func (o *Pattern) Nnz() int {
	return len(o.Cols)
}

// Find returns the position of entry (i,j) in the value array; -1 if (i,j) is
// outside the pattern
func (o *Pattern) Find(i, j int) int {
	lo, hi := o.RowPtr[i], o.RowPtr[i+1]
	k := lo + sort.SearchInts(o.Cols[lo:hi], j)
	if k < hi && o.Cols[k] == j {
		return k
	}
	return -1
}

// Matrix is a global sparse operator with a fixed Pattern and mutable values
type Matrix struct {
	Pat  *Pattern  // fixed sparsity pattern (shared)
	Vals []float64 // [nnz] numeric entries
}

// NewMatrix creates a zeroed matrix over the pattern of space s
func NewMatrix(s *FunctionSpace) *Matrix {
	pat := s.Pattern()
	return &Matrix{Pat: pat, Vals: make([]float64, pat.Nnz())}
}

// Put adds v to entry (i,j)
//  Note: (i,j) must belong to the pattern; this is a programming error
//  otherwise since patterns are derived from the same element maps used to
//  scatter
func (o *Matrix) Put(i, j int, v float64) {
	k := o.Pat.Find(i, j)
	if k < 0 {
		chk.Panic("entry (%d,%d) is outside the sparsity pattern", i, j)
	}
	o.Vals[k] += v
}

// Fill sets all values to v
func (o *Matrix) Fill(v float64) {
	la.VecFill(o.Vals, v)
}

// Combine adds α times matrix a, entry-for-entry: o += α*a. Both matrices
// must share the same Pattern instance (i.e. come from the same FunctionSpace)
func (o *Matrix) Combine(α float64, a *Matrix) error {
	if a.Pat != o.Pat {
		return &DimensionMismatchError{"matrix with foreign sparsity pattern", a.Pat.Nnz(), o.Pat.Nnz()}
	}
	for k, v := range a.Vals {
		o.Vals[k] += α * v
	}
	return nil
}

// CombineNew returns c = o + α*a as a new matrix sharing the same Pattern
func (o *Matrix) CombineNew(α float64, a *Matrix) (*Matrix, error) {
	if a.Pat != o.Pat {
		return nil, &DimensionMismatchError{"matrix with foreign sparsity pattern", a.Pat.Nnz(), o.Pat.Nnz()}
	}
	c := &Matrix{Pat: o.Pat, Vals: make([]float64, len(o.Vals))}
	for k, v := range o.Vals {
		c.Vals[k] = v + α*a.Vals[k]
	}
	return c, nil
}

// ToTriplet copies this matrix into a gosl sparse triplet
func (o *Matrix) ToTriplet() *la.Triplet {
	t := new(la.Triplet)
	t.Init(o.Pat.N, o.Pat.N, o.Pat.Nnz())
	for i := 0; i < o.Pat.N; i++ {
		for k := o.Pat.RowPtr[i]; k < o.Pat.RowPtr[i+1]; k++ {
			t.Put(i, o.Pat.Cols[k], o.Vals[k])
		}
	}
	return t
}

// ToCCMatrix converts this matrix to compressed-column format for
// matrix-vector products via la.SpMatVecMulAdd
func (o *Matrix) ToCCMatrix() *la.CCMatrix {
	return o.ToTriplet().ToMatrix(nil)
}
