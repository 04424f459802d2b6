// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/la"
)

// FieldVector holds nodal coefficients of a finite element field over one
// FunctionSpace; scalar fields have len(V) == Nscalar entries, vector fields
// store component blocks back-to-back
type FieldVector struct {
	Space *FunctionSpace // underlying space
	V     []float64      // [Ndofs] coefficients
}

// NewFieldVector creates a zero field over space s
func NewFieldVector(s *FunctionSpace) *FieldVector {
	return &FieldVector{Space: s, V: make([]float64, s.Ndofs())}
}

// Fill sets all coefficients to v
func (o *FieldVector) Fill(v float64) {
	la.VecFill(o.V, v)
}

// Get returns the coefficient of component comp at scalar dof sdof
func (o *FieldVector) Get(comp, sdof int) float64 {
	return o.V[o.Space.GDof(comp, sdof)]
}

// Set assigns the coefficient of component comp at scalar dof sdof
func (o *FieldVector) Set(comp, sdof int, v float64) {
	o.V[o.Space.GDof(comp, sdof)] = v
}

// SetFromFunc sets the coefficients of a scalar field by evaluating f at the
// dof sites (vertices, plus edge midpoints for second order spaces). For the
// nodal bases used here this is the standard interpolation of f
func (o *FieldVector) SetFromFunc(f func(x []float64) float64) error {
	if o.Space.Ncomp != 1 {
		return &DimensionMismatchError{"number of components for scalar interpolation", o.Space.Ncomp, 1}
	}
	for i, x := range o.Space.Xdof {
		o.V[i] = f(x)
	}
	return nil
}

// SetFromVecFunc sets the coefficients of a vector field by evaluating f,
// component by component, at the dof sites
func (o *FieldVector) SetFromVecFunc(f func(x []float64) []float64) error {
	for i, x := range o.Space.Xdof {
		v := f(x)
		if len(v) != o.Space.Ncomp {
			return &DimensionMismatchError{"number of components returned by field function", len(v), o.Space.Ncomp}
		}
		for c := 0; c < o.Space.Ncomp; c++ {
			o.V[o.Space.GDof(c, i)] = v[c]
		}
	}
	return nil
}

// SetConstrainedFromFunc overwrites the constrained (Dirichlet) coefficients
// only, leaving free dofs untouched. Used to impose boundary values before a
// solve
func (o *FieldVector) SetConstrainedFromFunc(f func(x []float64) float64) error {
	if o.Space.Ncomp != 1 {
		return &DimensionMismatchError{"number of components for scalar interpolation", o.Space.Ncomp, 1}
	}
	for i, x := range o.Space.Xdof {
		if !o.Space.Free[i] {
			o.V[i] = f(x)
		}
	}
	return nil
}

// Copy returns an independent copy of this field
func (o *FieldVector) Copy() *FieldVector {
	c := NewFieldVector(o.Space)
	copy(c.V, o.V)
	return c
}
