// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// ScalarField is a space-dependent scalar coefficient
type ScalarField func(x []float64) float64

// VectorField is a space-dependent vector coefficient; the returned slice
// must have ndim entries
type VectorField func(x []float64) []float64

// Cte returns the constant scalar field x ↦ c
func Cte(c float64) ScalarField {
	return func(x []float64) float64 { return c }
}

// BilinearForm collects the coefficients of the generic second order form
//  a(u,v) = ∫ mass⋅u⋅v + diffusion⋅∇u⋅∇v + (advection⋅∇u)⋅v
// over the mesh; nil entries are omitted. On manifold meshes ∇ is the
// tangential gradient
type BilinearForm struct {
	Mass      ScalarField // coefficient of u⋅v
	Diffusion ScalarField // coefficient of ∇u⋅∇v
	Advection VectorField // coefficient of (b⋅∇u)⋅v
}

// LinearForm collects the coefficients of the right-hand side functional
//  l(v) = ∫ source⋅v
// For vector-valued spaces SourceVec supplies one source per component
type LinearForm struct {
	Source    ScalarField // scalar source
	SourceVec VectorField // per-component sources (vector spaces)
}

// MassForm returns the form a(u,v) = ∫ u⋅v
func MassForm() *BilinearForm {
	return &BilinearForm{Mass: Cte(1)}
}

// StiffForm returns the form a(u,v) = κ ∫ ∇u⋅∇v
func StiffForm(κ float64) *BilinearForm {
	return &BilinearForm{Diffusion: Cte(κ)}
}
