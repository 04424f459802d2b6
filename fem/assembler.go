// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sync"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gofea/msh"
	"github.com/cpmech/gofea/shp"
)

// Assembler computes global operators by looping cells, integrating local
// blocks with Gauss quadrature and scattering them into shared-pattern sparse
// matrices. An optional deformation field moves the geometry: integration then
// happens over the deformed configuration while the connectivity and dof
// numbering stay fixed
type Assembler struct {
	Space    *FunctionSpace // trial == test space
	Deform   *FieldVector   // optional vertex displacements added to reference coordinates
	Nworkers int            // number of parallel workers; <= 1 means serial
}

// NewAssembler returns an assembler over space s with serial execution
func NewAssembler(s *FunctionSpace) *Assembler {
	return &Assembler{Space: s, Nworkers: 1}
}

// checkDeform validates the deformation field against the geometry
func (o *Assembler) checkDeform() error {
	if o.Deform == nil {
		return nil
	}
	d := o.Deform.Space
	ndim := o.Space.Msh.Ndim
	if d.Msh != o.Space.Msh {
		return &DimensionMismatchError{"deformation mesh cells", len(d.Msh.Cells), len(o.Space.Msh.Cells)}
	}
	if d.Order != 1 {
		return &DimensionMismatchError{"deformation space order", d.Order, 1}
	}
	if d.Ncomp != ndim {
		return &DimensionMismatchError{"deformation components", d.Ncomp, ndim}
	}
	return nil
}

// coords builds the coordinates matrix of cell c, overlaying the deformation
// field if present. x must be [ndim][nverts]
func (o *Assembler) coords(c *msh.Cell, x [][]float64) {
	ndim := o.Space.Msh.Ndim
	for i := 0; i < ndim; i++ {
		for m, v := range c.Verts {
			x[i][m] = o.Space.Msh.Verts[v].C[i]
			if o.Deform != nil {
				x[i][m] += o.Deform.Get(i, v)
			}
		}
	}
}

// shapeCache holds one worker's private geometry and basis shapes, one copy
// per cell type, reused across all cells the worker visits
type shapeCache struct {
	space *FunctionSpace
	gid   int
	geom  map[string]*shp.Shape
	basis map[string]*shp.Shape
}

func newShapeCache(s *FunctionSpace, gid int) *shapeCache {
	return &shapeCache{
		space: s, gid: gid,
		geom:  make(map[string]*shp.Shape),
		basis: make(map[string]*shp.Shape),
	}
}

// get returns the geometry and basis shapes of cell c. At order 1 the basis
// is the geometry map itself so both share one scratchpad
func (o *shapeCache) get(c *msh.Cell) (s, b *shp.Shape) {
	s, ok := o.geom[c.Type]
	if !ok {
		s = shp.Get(c.Type, o.gid)
		o.geom[c.Type] = s
	}
	if o.space.Order == 1 {
		return s, s
	}
	b, ok = o.basis[c.Type]
	if !ok {
		b = o.space.BasisShape(c, o.gid)
		o.basis[c.Type] = b
	}
	return s, b
}

// cellMatrix integrates the local block of form f over cell c into k
//  k[nbasis][nbasis] and x[ndim][maxnverts] are caller-owned scratchpads;
//  s and b are the worker's geometry and basis shapes for this cell type
func (o *Assembler) cellMatrix(c *msh.Cell, f *BilinearForm, s, b *shp.Shape, x, k [][]float64) error {
	ndim := o.Space.Msh.Ndim
	ips, err := shp.IpsForDegree(c.Type, o.Space.QuadratureDegree())
	if err != nil {
		return err
	}
	o.coords(c, x[:ndim])
	la.MatFill(k, 0)
	for _, ip := range ips {
		if err := s.CalcAtIp(x[:ndim], ip, true); err != nil {
			return &SingularJacobianError{c.Id, err.Error()}
		}
		if b != s {
			s.CalcBasis(b, ip, ndim, true)
		}
		xip := ipCoords(s, x[:ndim])
		coef := s.J * ip[3]
		var ρ, κ float64
		var β []float64
		if f.Mass != nil {
			ρ = f.Mass(xip) * coef
		}
		if f.Diffusion != nil {
			κ = f.Diffusion(xip) * coef
		}
		if f.Advection != nil {
			β = f.Advection(xip)
		}
		for m := 0; m < b.Nverts; m++ {
			for n := 0; n < b.Nverts; n++ {
				v := 0.0
				if f.Mass != nil {
					v += ρ * b.S[m] * b.S[n]
				}
				if f.Diffusion != nil {
					for i := 0; i < ndim; i++ {
						v += κ * b.G[m][i] * b.G[n][i]
					}
				}
				if f.Advection != nil {
					for i := 0; i < ndim; i++ {
						v += coef * b.S[m] * β[i] * b.G[n][i]
					}
				}
				k[m][n] += v
			}
		}
	}
	return nil
}

// scatterMatrix adds the local block k of cell c into K, per component
func (o *Assembler) scatterMatrix(K *Matrix, c *msh.Cell, k [][]float64) {
	dofs := o.Space.Cell2Dofs[c.Id]
	for comp := 0; comp < o.Space.Ncomp; comp++ {
		for m, i := range dofs {
			I := o.Space.GDof(comp, i)
			for n, j := range dofs {
				K.Put(I, o.Space.GDof(comp, j), k[m][n])
			}
		}
	}
}

// AssembleMatrix integrates the bilinear form f over the (possibly deformed)
// mesh and returns the global matrix, sharing the sparsity pattern of all
// matrices of this space
func (o *Assembler) AssembleMatrix(f *BilinearForm) (*Matrix, error) {
	if err := o.checkDeform(); err != nil {
		return nil, err
	}
	K := NewMatrix(o.Space)
	cells := o.Space.Msh.Cells

	// serial
	nw := o.Nworkers
	if nw < 1 {
		nw = 1
	}
	if nw == 1 {
		sc := newShapeCache(o.Space, 0)
		x := la.MatAlloc(3, maxNverts(cells))
		k := la.MatAlloc(maxNbasis(o.Space), maxNbasis(o.Space))
		for _, c := range cells {
			s, b := sc.get(c)
			if err := o.cellMatrix(c, f, s, b, x, k); err != nil {
				return nil, err
			}
			o.scatterMatrix(K, c, k)
		}
		return K, nil
	}

	// parallel: one private matrix and shape cache per worker, combined at
	// the end
	parts := make([]*Matrix, nw)
	errs := make([]error, nw)
	var wg sync.WaitGroup
	for w := 0; w < nw; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			sc := newShapeCache(o.Space, w+1)
			part := NewMatrix(o.Space)
			x := la.MatAlloc(3, maxNverts(cells))
			k := la.MatAlloc(maxNbasis(o.Space), maxNbasis(o.Space))
			for ic := w; ic < len(cells); ic += nw {
				c := cells[ic]
				s, b := sc.get(c)
				if err := o.cellMatrix(c, f, s, b, x, k); err != nil {
					errs[w] = err
					return
				}
				o.scatterMatrix(part, c, k)
			}
			parts[w] = part
		}(w)
	}
	wg.Wait()
	for w := 0; w < nw; w++ {
		if errs[w] != nil {
			return nil, errs[w]
		}
		if err := K.Combine(1, parts[w]); err != nil {
			return nil, err
		}
	}
	return K, nil
}

// cellVector integrates the local load of form f over cell c into fe
func (o *Assembler) cellVector(c *msh.Cell, f *LinearForm, s, b *shp.Shape, x, fe [][]float64) error {
	ndim := o.Space.Msh.Ndim
	ips, err := shp.IpsForDegree(c.Type, o.Space.QuadratureDegree())
	if err != nil {
		return err
	}
	o.coords(c, x[:ndim])
	la.MatFill(fe, 0)
	for _, ip := range ips {
		// derivatives are needed for the area/length scale
		if err := s.CalcAtIp(x[:ndim], ip, true); err != nil {
			return &SingularJacobianError{c.Id, err.Error()}
		}
		if b != s {
			s.CalcBasis(b, ip, ndim, false)
		}
		xip := ipCoords(s, x[:ndim])
		coef := s.J * ip[3]
		if f.Source != nil {
			v := f.Source(xip) * coef
			for m := 0; m < b.Nverts; m++ {
				fe[0][m] += v * b.S[m]
			}
		}
		if f.SourceVec != nil {
			src := f.SourceVec(xip)
			for comp := 0; comp < o.Space.Ncomp; comp++ {
				for m := 0; m < b.Nverts; m++ {
					fe[comp][m] += src[comp] * coef * b.S[m]
				}
			}
		}
	}
	return nil
}

// AssembleVector integrates the linear form f over the (possibly deformed)
// mesh and returns the global load vector with Ndofs entries
func (o *Assembler) AssembleVector(f *LinearForm) ([]float64, error) {
	if err := o.checkDeform(); err != nil {
		return nil, err
	}
	F := make([]float64, o.Space.Ndofs())
	sc := newShapeCache(o.Space, 0)
	x := la.MatAlloc(3, maxNverts(o.Space.Msh.Cells))
	fe := la.MatAlloc(o.Space.Ncomp, maxNbasis(o.Space))
	for _, c := range o.Space.Msh.Cells {
		s, b := sc.get(c)
		if err := o.cellVector(c, f, s, b, x, fe); err != nil {
			return nil, err
		}
		dofs := o.Space.Cell2Dofs[c.Id]
		for comp := 0; comp < o.Space.Ncomp; comp++ {
			for m, i := range dofs {
				F[o.Space.GDof(comp, i)] += fe[comp][m]
			}
		}
	}
	return F, nil
}

// ipCoords returns the real coordinates of the current integration point from
// the already computed shape values
func ipCoords(s *shp.Shape, x [][]float64) []float64 {
	ndim := len(x)
	y := make([]float64, ndim)
	for i := 0; i < ndim; i++ {
		for m := 0; m < s.Nverts; m++ {
			y[i] += s.S[m] * x[i][m]
		}
	}
	return y
}

// maxNverts returns the largest number of geometry vertices among cells
func maxNverts(cells []*msh.Cell) (n int) {
	for _, c := range cells {
		if c.Shp.Nverts > n {
			n = c.Shp.Nverts
		}
	}
	return
}

// maxNbasis returns the largest number of basis functions among cells of s
func maxNbasis(s *FunctionSpace) (n int) {
	for _, c := range s.Msh.Cells {
		if nb := s.BasisShape(c, 0).Nverts; nb > n {
			n = nb
		}
	}
	return
}
