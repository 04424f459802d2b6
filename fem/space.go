// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gofea/msh"
	"github.com/cpmech/gofea/shp"

	"github.com/cpmech/gosl/chk"
)

// order2basis maps (linear) geometry types to the sub-parametric basis type
// implementing order 2
var order2basis = map[string]string{
	"lin2": "lin3",
	"tri3": "tri6",
}

// FunctionSpace maps a mesh to a set of degrees of freedom (dofs) and basis
// functions, and classifies dofs as free or constrained.
//
// Scalar layout: vertex dofs first (dof == vertex id), then edge dofs for
// order 2. Vector-valued spaces (Ncomp > 1) replicate the scalar layout in
// Ncomp consecutive blocks: global dof of (component c, scalar dof i) is
// c*Nscalar + i. Assembler and LinSolver rely on this layout.
//
// The dof count and the free/constrained partition are fixed at construction;
// the partition is total and disjoint.
type FunctionSpace struct {

	// essential
	Msh     *msh.Mesh // the mesh
	Order   int       // polynomial order: 1 or 2
	Ncomp   int       // number of components: 1 = scalar field, ndim = vector field
	Nscalar int       // number of scalar dofs (per component)

	// dof data
	Free      []bool      // [Ndofs] free/constrained classification
	Cell2Dofs [][]int     // [ncells][nbasis] scalar dof of each local basis function
	Xdof      [][]float64 // [nscalar][ndim] reference coordinates of dof sites

	// derived
	pattern *Pattern // lazily built sparsity pattern shared by all matrices of this space
}

// NewFunctionSpace creates a function space over mesh m with given polynomial
// order and number of components. The dofs supported by facets of the named
// dirichlet regions are classified as constrained; all others are free.
func NewFunctionSpace(m *msh.Mesh, order, ncomp int, dirichlet []string) (*FunctionSpace, error) {

	// check
	if order < 1 || order > 2 {
		return nil, chk.Err("polynomial order must be 1 or 2. order=%d is invalid", order)
	}
	if ncomp < 1 {
		return nil, chk.Err("number of components must be at least 1. ncomp=%d is invalid", ncomp)
	}

	// new space
	o := &FunctionSpace{Msh: m, Order: order, Ncomp: ncomp}

	// vertex dofs
	nverts := len(m.Verts)
	o.Nscalar = nverts
	o.Cell2Dofs = make([][]int, len(m.Cells))

	// order 1: dofs are the vertices
	if order == 1 {
		for i, c := range m.Cells {
			dofs := make([]int, len(c.Verts))
			copy(dofs, c.Verts)
			o.Cell2Dofs[i] = dofs
		}
	}

	// order 2: vertex dofs plus one dof per edge
	edge2dof := make(map[[2]int]int)
	if order == 2 {
		for i, c := range m.Cells {
			if _, ok := order2basis[c.Type]; !ok {
				return nil, chk.Err("order=2 is not available for %q cells", c.Type)
			}
			dofs := make([]int, 0, c.Shp.Nverts+3)
			dofs = append(dofs, c.Verts...)
			for _, pair := range cellEdges(c) {
				key := edgeKey(c.Verts[pair[0]], c.Verts[pair[1]])
				dof, ok := edge2dof[key]
				if !ok {
					dof = o.Nscalar
					edge2dof[key] = dof
					o.Nscalar++
				}
				dofs = append(dofs, dof)
			}
			o.Cell2Dofs[i] = dofs
		}
	}

	// dof site coordinates
	o.Xdof = make([][]float64, o.Nscalar)
	for _, v := range m.Verts {
		c := make([]float64, m.Ndim)
		copy(c, v.C)
		o.Xdof[v.Id] = c
	}
	for key, dof := range edge2dof {
		a, b := m.Verts[key[0]], m.Verts[key[1]]
		c := make([]float64, m.Ndim)
		for i := 0; i < m.Ndim; i++ {
			c[i] = (a.C[i] + b.C[i]) / 2.0
		}
		o.Xdof[dof] = c
	}

	// free/constrained classification
	o.Free = make([]bool, o.Ndofs())
	for i := range o.Free {
		o.Free[i] = true
	}
	for _, name := range dirichlet {
		ftag, ok := m.FaceTagOfRegion(name)
		if !ok {
			return nil, &InvalidRegionError{name}
		}
		for _, pair := range m.FaceTag2cells[ftag] {
			c := pair.C
			lverts := c.Shp.FaceLocalVerts[pair.Fid]
			for _, l := range lverts {
				o.constrain(c.Verts[l])
			}
			if order == 2 && len(lverts) == 2 {
				key := edgeKey(c.Verts[lverts[0]], c.Verts[lverts[1]])
				o.constrain(edge2dof[key])
			}
		}
	}
	return o, nil
}

// Ndofs returns the total number of dofs (all components)
func (o *FunctionSpace) Ndofs() int {
	return o.Ncomp * o.Nscalar
}

// GDof returns the global dof index of (component, scalar dof)
func (o *FunctionSpace) GDof(comp, sdof int) int {
	return comp*o.Nscalar + sdof
}

// NumFree returns the number of free dofs
func (o *FunctionSpace) NumFree() (n int) {
	for _, f := range o.Free {
		if f {
			n++
		}
	}
	return
}

// BasisShape returns the shape structure implementing the basis functions of
// this space over cell c. Use goroutineId > 0 to get private scratchpads for
// concurrent assembly
func (o *FunctionSpace) BasisShape(c *msh.Cell, goroutineId int) *shp.Shape {
	if o.Order == 1 {
		return shp.Get(c.Type, goroutineId)
	}
	return shp.Get(order2basis[c.Type], goroutineId)
}

// QuadratureDegree returns the polynomial degree the quadrature rule must
// integrate exactly for bilinear forms of this space
func (o *FunctionSpace) QuadratureDegree() int {
	return 2*o.Order + 1
}

// constrain marks all components of scalar dof sdof as constrained
func (o *FunctionSpace) constrain(sdof int) {
	for c := 0; c < o.Ncomp; c++ {
		o.Free[o.GDof(c, sdof)] = false
	}
}

// cellEdges returns the local vertex pairs defining the edges of cell c
func cellEdges(c *msh.Cell) [][]int {
	if c.Shp.Gndim == 1 {
		return [][]int{{0, 1}}
	}
	return c.Shp.FaceLocalVerts
}

// edgeKey builds a canonical (sorted) key for the edge joining vertices a and b
func edgeKey(a, b int) [2]int {
	if a > b {
		return [2]int{b, a}
	}
	return [2]int{a, b}
}
