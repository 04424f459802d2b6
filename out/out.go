// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements readouts and a minimal scalar field dump
package out

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gofea/fem"
	"github.com/cpmech/gofea/shp"
)

// NodalValues returns the coefficients of component comp at all dof sites
func NodalValues(f *fem.FieldVector, comp int) []float64 {
	s := f.Space
	vals := make([]float64, s.Nscalar)
	for i := 0; i < s.Nscalar; i++ {
		vals[i] = f.Get(comp, i)
	}
	return vals
}

// Points returns the vector value of f at every dof site, one slice per site
func Points(f *fem.FieldVector) [][]float64 {
	s := f.Space
	pts := make([][]float64, s.Nscalar)
	for i := 0; i < s.Nscalar; i++ {
		p := make([]float64, s.Ncomp)
		for c := 0; c < s.Ncomp; c++ {
			p[c] = f.Get(c, i)
		}
		pts[i] = p
	}
	return pts
}

// ErrorRms returns the root-mean-square difference between the nodal values
// of scalar field f and the exact solution evaluated at the dof sites
func ErrorRms(f *fem.FieldVector, exact func(x []float64) float64) float64 {
	s := f.Space
	u := make([]float64, s.Nscalar)
	for i, x := range s.Xdof {
		u[i] = exact(x)
	}
	return la.VecRmsError(f.V[:s.Nscalar], u, 1, 0, u)
}

// ErrorL2 returns the L2 norm of the difference between scalar field f and
// the exact solution, integrated with the quadrature rule of the space
func ErrorL2(f *fem.FieldVector, exact func(x []float64) float64) (nrm float64, err error) {
	s := f.Space
	ndim := s.Msh.Ndim
	for _, c := range s.Msh.Cells {
		x := s.Msh.CoordsMatrix(c)
		g := c.Shp
		b := s.BasisShape(c, 0)
		ips, e := shp.IpsForDegree(c.Type, s.QuadratureDegree())
		if e != nil {
			return 0, e
		}
		dofs := s.Cell2Dofs[c.Id]
		for _, ip := range ips {
			if e := g.CalcAtIp(x, ip, true); e != nil {
				return 0, e
			}
			if b != g {
				g.CalcBasis(b, ip, ndim, false)
			}
			uh, y := 0.0, make([]float64, ndim)
			for m, i := range dofs {
				uh += b.S[m] * f.V[i]
			}
			for i := 0; i < ndim; i++ {
				for m := 0; m < g.Nverts; m++ {
					y[i] += g.S[m] * x[i][m]
				}
			}
			d := uh - exact(y)
			nrm += g.J * ip[3] * d * d
		}
	}
	return math.Sqrt(nrm), nil
}

// scalarDump is the serialized form of a scalar field over a mesh
type scalarDump struct {
	Verts  [][]float64 `json:"verts"`  // vertex coordinates
	Cells  [][]int     `json:"cells"`  // cell connectivities
	Values []float64   `json:"values"` // one value per vertex
}

// SaveScalarField writes the vertex values of scalar field f and the mesh
// geometry as json to dir/fnkey.json
func SaveScalarField(dir, fnkey string, f *fem.FieldVector) error {
	s := f.Space
	if s.Ncomp != 1 {
		return chk.Err("scalar field dump needs a one component space. ncomp=%d is invalid", s.Ncomp)
	}
	d := scalarDump{Values: NodalValues(f, 0)[:len(s.Msh.Verts)]}
	for _, v := range s.Msh.Verts {
		d.Verts = append(d.Verts, v.C)
	}
	for _, c := range s.Msh.Cells {
		d.Cells = append(d.Cells, c.Verts)
	}
	raw, err := json.Marshal(&d)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	buf.Write(raw)
	io.WriteFileVD(dir, fnkey+".json", &buf)
	return nil
}
