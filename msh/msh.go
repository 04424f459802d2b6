// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh holds the topological and geometric description of meshes consumed
// by the finite-element core. Meshes are immutable after loading: geometry only
// changes through deformation overlays owned by the evolution drivers.
package msh

import (
	"encoding/json"
	"math"
	"path/filepath"

	"github.com/cpmech/gofea/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// constants
const Ztol = 1e-7

// Vert holds vertex data
type Vert struct {
	Id  int       `json:"id"`  // id
	Tag int       `json:"tag"` // tag
	C   []float64 `json:"c"`   // coordinates (size==2 or 3)
}

// Cell holds cell data
type Cell struct {

	// input data
	Id    int    `json:"id"`    // id
	Tag   int    `json:"tag"`   // tag
	Type  string `json:"type"`  // geometry type; e.g. "tri3"
	Verts []int  `json:"verts"` // vertices
	FTags []int  `json:"ftags"` // edge (2D) or face (3D) tags

	// derived
	Shp *shp.Shape `json:"-"` // shape structure
}

// CellFaceId holds a cell and local face id pair
type CellFaceId struct {
	C   *Cell // cell
	Fid int   // face id
}

// Mesh holds a mesh for FE analyses
type Mesh struct {

	// from JSON
	Verts   []*Vert        `json:"verts"`   // vertices
	Cells   []*Cell        `json:"cells"`   // cells
	Regions map[string]int `json:"regions"` // boundary region name => (negative) face tag

	// derived
	FnamePath  string  // complete filename path
	Ndim       int     // space dimension
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate
	Zmin, Zmax float64 // min and max z-coordinate

	// derived: maps
	VertTag2verts map[int][]*Vert      // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell      // cell tag => set of cells
	FaceTag2cells map[int][]CellFaceId // face tag => set of cells
	FaceTag2verts map[int][]int        // face tag => vertices on tagged faces
}

// ReadMsh reads a mesh from a JSON file
func ReadMsh(dir, fn string) (*Mesh, error) {

	// new mesh
	var o Mesh

	// read file
	o.FnamePath = filepath.Join(dir, fn)
	b, err := io.ReadFile(o.FnamePath)
	if err != nil {
		return nil, chk.Err("cannot read mesh file:\n%v", err)
	}

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		return nil, chk.Err("cannot parse mesh file %q:\n%v", o.FnamePath, err)
	}

	// derived data
	err = o.CalcDerived()
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// CalcDerived computes dimensions, limits and auxiliary maps.
// It also validates the element-to-vertex indices.
func (o *Mesh) CalcDerived() (err error) {

	// check
	if len(o.Verts) < 2 {
		return chk.Err("at least 2 vertices are required. %d is invalid", len(o.Verts))
	}
	if len(o.Cells) < 1 {
		return chk.Err("at least 1 cell is required. %d is invalid", len(o.Cells))
	}

	// vertex related derived data
	o.Ndim = 2
	o.Xmin = o.Verts[0].C[0]
	o.Ymin = o.Verts[0].C[1]
	if len(o.Verts[0].C) > 2 {
		o.Zmin = o.Verts[0].C[2]
	}
	o.Xmax = o.Xmin
	o.Ymax = o.Ymin
	o.Zmax = o.Zmin
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {

		// check vertex id
		if v.Id != i {
			return chk.Err("vertex ids must coincide with order in list. %d != %d", v.Id, i)
		}

		// ndim
		nd := len(v.C)
		if nd < 2 || nd > 3 {
			return chk.Err("number of coordinates of vertex %d is invalid: %d", v.Id, nd)
		}
		if nd == 3 {
			if math.Abs(v.C[2]) > Ztol {
				o.Ndim = 3
			}
		}

		// tags
		if v.Tag < 0 {
			verts := o.VertTag2verts[v.Tag]
			o.VertTag2verts[v.Tag] = append(verts, v)
		}

		// limits
		o.Xmin = utl.Min(o.Xmin, v.C[0])
		o.Xmax = utl.Max(o.Xmax, v.C[0])
		o.Ymin = utl.Min(o.Ymin, v.C[1])
		o.Ymax = utl.Max(o.Ymax, v.C[1])
		if nd > 2 {
			o.Zmin = utl.Min(o.Zmin, v.C[2])
			o.Zmax = utl.Max(o.Zmax, v.C[2])
		}
	}

	// cell related derived data
	o.CellTag2cells = make(map[int][]*Cell)
	o.FaceTag2cells = make(map[int][]CellFaceId)
	o.FaceTag2verts = make(map[int][]int)
	for i, c := range o.Cells {

		// check id
		if c.Id != i {
			return chk.Err("cell ids must coincide with order in list. %d != %d", c.Id, i)
		}

		// get shape structure
		c.Shp = shp.Get(c.Type, 0)
		if c.Shp == nil {
			return chk.Err("cannot find shape structure for cell type %q", c.Type)
		}
		if len(c.Verts) != c.Shp.Nverts {
			return chk.Err("cell %d (%s) has %d vertices. %d is required", c.Id, c.Type, len(c.Verts), c.Shp.Nverts)
		}

		// check vertex indices
		for _, v := range c.Verts {
			if v < 0 || v >= len(o.Verts) {
				return chk.Err("cell %d references invalid vertex %d", c.Id, v)
			}
		}

		// cell tags
		cells := o.CellTag2cells[c.Tag]
		o.CellTag2cells[c.Tag] = append(cells, c)

		// face tags
		for j, ftag := range c.FTags {
			if ftag < 0 {
				pairs := o.FaceTag2cells[ftag]
				o.FaceTag2cells[ftag] = append(pairs, CellFaceId{c, j})
				for _, l := range c.Shp.FaceLocalVerts[j] {
					utl.IntIntsMapAppend(&o.FaceTag2verts, ftag, o.Verts[c.Verts[l]].Id)
				}
			}
		}
	}

	// remove duplicates
	for ftag, verts := range o.FaceTag2verts {
		o.FaceTag2verts[ftag] = utl.IntUnique(verts)
	}
	return
}

// FaceTagOfRegion returns the face tag of a named boundary region
func (o *Mesh) FaceTagOfRegion(name string) (ftag int, ok bool) {
	ftag, ok = o.Regions[name]
	return
}

// CoordsMatrix returns the coordinates matrix of a particular cell [ndim][nverts]
func (o *Mesh) CoordsMatrix(c *Cell) (x [][]float64) {
	x = make([][]float64, o.Ndim)
	for i := 0; i < o.Ndim; i++ {
		x[i] = make([]float64, len(c.Verts))
		for j, v := range c.Verts {
			x[i][j] = o.Verts[v].C[i]
		}
	}
	return
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := io.Sf("{\"id\":%4d, \"tag\":%6d, \"c\":[", o.Id, o.Tag)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Cell
func (o *Cell) String() string {
	l := io.Sf("{\"id\":%d, \"tag\":%d, \"type\":%q, \"verts\":[", o.Id, o.Tag, o.Type)
	for i, x := range o.Verts {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "], \"ftags\":["
	for i, x := range o.FTags {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "] }"
	return l
}
