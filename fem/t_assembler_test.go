// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofea/msh"
	"github.com/cpmech/gofea/shp"
)

func Test_assembler01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembler01. mass matrix entries sum to the domain area")

	m, err := msh.GenGrid2D(2, 1, 0.25, "tri3")
	if err != nil {
		tst.Errorf("mesh generation failed: %v\n", err)
		return
	}
	for _, order := range []int{1, 2} {
		s, err := NewFunctionSpace(m, order, 1, nil)
		if err != nil {
			tst.Errorf("space construction failed: %v\n", err)
			return
		}
		a := NewAssembler(s)
		M, err := a.AssembleMatrix(MassForm())
		if err != nil {
			tst.Errorf("assembly failed: %v\n", err)
			return
		}
		sum := 0.0
		for _, v := range M.Vals {
			sum += v
		}
		chk.Scalar(tst, "sum(M) == area", 1e-12, sum, 2.0)

		// load vector of the unit source also integrates to the area
		b, err := a.AssembleVector(&LinearForm{Source: Cte(1)})
		if err != nil {
			tst.Errorf("assembly failed: %v\n", err)
			return
		}
		sum = 0.0
		for _, v := range b {
			sum += v
		}
		chk.Scalar(tst, "sum(b) == area", 1e-12, sum, 2.0)
	}
}

func Test_assembler02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembler02. stiffness rows sum to zero; advection term")

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
	A, err := a.AssembleMatrix(StiffForm(1))
	if err != nil {
		tst.Errorf("assembly failed: %v\n", err)
		return
	}

	// gradients annihilate constants
	for i := 0; i < A.Pat.N; i++ {
		sum := 0.0
		for k := A.Pat.RowPtr[i]; k < A.Pat.RowPtr[i+1]; k++ {
			sum += A.Vals[k]
		}
		chk.Scalar(tst, "row sum", 1e-12, sum, 0)
	}

	// advection of a constant also vanishes column-wise:
	// sum_n B[m][n] = ∫ S[m] b⋅∇(1) = 0
	B, err := a.AssembleMatrix(&BilinearForm{Advection: func(x []float64) []float64 {
		return []float64{1, 2}
	}})
	if err != nil {
		tst.Errorf("assembly failed: %v\n", err)
		return
	}
	for i := 0; i < B.Pat.N; i++ {
		sum := 0.0
		for k := B.Pat.RowPtr[i]; k < B.Pat.RowPtr[i+1]; k++ {
			sum += B.Vals[k]
		}
		chk.Scalar(tst, "advection row sum", 1e-12, sum, 0)
	}
}

func Test_assembler03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembler03. parallel assembly equals serial")

	m, err := msh.GenGrid2D(1, 1, 0.1, "tri3")
	if err != nil {
		tst.Errorf("mesh generation failed: %v\n", err)
		return
	}
	s, err := NewFunctionSpace(m, 1, 1, nil)
	if err != nil {
		tst.Errorf("space construction failed: %v\n", err)
		return
	}
	form := &BilinearForm{Mass: Cte(3), Diffusion: func(x []float64) float64 { return 1 + x[0]*x[1] }}

	serial := NewAssembler(s)
	K1, err := serial.AssembleMatrix(form)
	if err != nil {
		tst.Errorf("assembly failed: %v\n", err)
		return
	}
	parallel := &Assembler{Space: s, Nworkers: 4}
	K2, err := parallel.AssembleMatrix(form)
	if err != nil {
		tst.Errorf("assembly failed: %v\n", err)
		return
	}
	chk.Vector(tst, "serial == parallel", 1e-13, K1.Vals, K2.Vals)
}

func Test_assembler04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembler04. deformation overlay changes the integration domain")

	m := testSquare(tst)
	if m == nil {
		return
	}
	s, err := NewFunctionSpace(m, 1, 1, nil)
	if err != nil {
		tst.Errorf("space construction failed: %v\n", err)
		return
	}

	// stretch the square by 2 along x: area doubles
	d, err := NewFunctionSpace(m, 1, 2, nil)
	if err != nil {
		tst.Errorf("space construction failed: %v\n", err)
		return
	}
	def := NewFieldVector(d)
	if err := def.SetFromVecFunc(func(x []float64) []float64 {
		return []float64{x[0], 0}
	}); err != nil {
		tst.Errorf("interpolation failed: %v\n", err)
		return
	}
	a := &Assembler{Space: s, Deform: def, Nworkers: 1}
	M, err := a.AssembleMatrix(MassForm())
	if err != nil {
		tst.Errorf("assembly failed: %v\n", err)
		return
	}
	sum := 0.0
	for _, v := range M.Vals {
		sum += v
	}
	chk.Scalar(tst, "deformed area", 1e-12, sum, 2.0)
}

func Test_assembler05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembler05. degenerate cells are reported")

	m := testSquare(tst)
	if m == nil {
		return
	}
	s, err := NewFunctionSpace(m, 1, 1, nil)
	if err != nil {
		tst.Errorf("space construction failed: %v\n", err)
		return
	}

	// collapse everything onto the line y = 0
	d, _ := NewFunctionSpace(m, 1, 2, nil)
	def := NewFieldVector(d)
	def.SetFromVecFunc(func(x []float64) []float64 {
		return []float64{0, -x[1]}
	})
	a := &Assembler{Space: s, Deform: def, Nworkers: 1}
	_, err = a.AssembleMatrix(MassForm())
	if err == nil {
		tst.Errorf("expected failure for collapsed cells\n")
		return
	}
	if _, ok := err.(*SingularJacobianError); !ok {
		tst.Errorf("expected SingularJacobianError. got %v\n", err)
	}
}

func Test_assembler06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembler06. tangential assembly on a circle")

	m, err := msh.GenCircle(1, 64)
	if err != nil {
		tst.Errorf("mesh generation failed: %v\n", err)
		return
	}
	s, err := NewFunctionSpace(m, 1, 1, nil)
	if err != nil {
		tst.Errorf("space construction failed: %v\n", err)
		return
	}
	a := NewAssembler(s)
	M, err := a.AssembleMatrix(MassForm())
	if err != nil {
		tst.Errorf("assembly failed: %v\n", err)
		return
	}
	sum := 0.0
	for _, v := range M.Vals {
		sum += v
	}

	// perimeter of the inscribed polygon
	perim := 128.0 * math.Sin(math.Pi/64.0)
	chk.Scalar(tst, "sum(M) == perimeter", 1e-12, sum, perim)
}

func Test_assembler07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembler07. workers reuse shape scratchpads across cells")

	m, err := msh.GenGrid2D(1, 1, 0.5, "tri3")
	if err != nil {
		tst.Errorf("mesh generation failed: %v\n", err)
		return
	}
	s, err := NewFunctionSpace(m, 2, 1, nil)
	if err != nil {
		tst.Errorf("space construction failed: %v\n", err)
		return
	}

	sc := newShapeCache(s, 2)
	g0, b0 := sc.get(m.Cells[0])
	g1, b1 := sc.get(m.Cells[1])
	if g0 != g1 || b0 != b1 {
		tst.Errorf("cache returned different scratchpads for cells of the same type\n")
		return
	}
	if g0 == b0 {
		tst.Errorf("order 2 basis must use its own scratchpad\n")
		return
	}
	if g0 == shp.Get(m.Cells[0].Type, 0) {
		tst.Errorf("worker scratchpad must be private, not the factory instance\n")
		return
	}

	// at order 1 the basis shares the geometry scratchpad
	s1, err := NewFunctionSpace(m, 1, 1, nil)
	if err != nil {
		tst.Errorf("space construction failed: %v\n", err)
		return
	}
	sc1 := newShapeCache(s1, 1)
	g, b := sc1.get(m.Cells[0])
	if g != b {
		tst.Errorf("order 1 basis must share the geometry scratchpad\n")
		return
	}
}
