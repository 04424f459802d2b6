// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// face tags of structured grids
const (
	TagLeft   = -10
	TagRight  = -11
	TagBottom = -12
	TagTop    = -13
)

// GenGrid2D generates a structured grid over the rectangle [0,lx] x [0,ly] with
// cell sizes not greater than maxh. ctype may be "tri3" or "qua4". The four
// sides become the named boundary regions "left", "right", "bottom" and "top".
//  Note: this is a trivial stand-in for an external mesh provider; no
//  unstructured generation is performed here
func GenGrid2D(lx, ly, maxh float64, ctype string) (*Mesh, error) {

	// check
	if lx <= 0 || ly <= 0 || maxh <= 0 {
		return nil, chk.Err("lx, ly and maxh must be positive. lx=%g, ly=%g, maxh=%g are invalid", lx, ly, maxh)
	}
	nx := int(math.Ceil(lx / maxh))
	ny := int(math.Ceil(ly / maxh))
	dx := lx / float64(nx)
	dy := ly / float64(ny)

	// vertices
	var o Mesh
	o.Verts = make([]*Vert, (nx+1)*(ny+1))
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			id := j*(nx+1) + i
			o.Verts[id] = &Vert{Id: id, C: []float64{float64(i) * dx, float64(j) * dy}}
		}
	}

	// cells
	cid := 0
	newcell := func(verts, ftags []int) {
		o.Cells = append(o.Cells, &Cell{Id: cid, Tag: -1, Type: ctype, Verts: verts, FTags: ftags})
		cid++
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {

			// corners of this quad, counter-clockwise
			a := j*(nx+1) + i
			b := a + 1
			c := b + nx + 1
			d := a + nx + 1

			// boundary tags of the quad sides
			bot, rig, top, lef := 0, 0, 0, 0
			if j == 0 {
				bot = TagBottom
			}
			if i == nx-1 {
				rig = TagRight
			}
			if j == ny-1 {
				top = TagTop
			}
			if i == 0 {
				lef = TagLeft
			}

			switch ctype {
			case "qua4":
				newcell([]int{a, b, c, d}, []int{bot, rig, top, lef})
			case "tri3":
				newcell([]int{a, b, c}, []int{bot, rig, 0})
				newcell([]int{a, c, d}, []int{0, top, lef})
			default:
				return nil, chk.Err("cell type %q is not available in GenGrid2D", ctype)
			}
		}
	}

	// named regions
	o.Regions = map[string]int{
		"left":   TagLeft,
		"right":  TagRight,
		"bottom": TagBottom,
		"top":    TagTop,
	}

	// derived data
	err := o.CalcDerived()
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GenCircle generates a closed polygonal circle of radius r0 centred at the
// origin, discretised with n "lin2" manifold cells in the 2D plane
func GenCircle(r0 float64, n int) (*Mesh, error) {

	// check
	if r0 <= 0 || n < 3 {
		return nil, chk.Err("r0 must be positive and n must be at least 3. r0=%g, n=%d are invalid", r0, n)
	}

	// vertices on circle
	var o Mesh
	o.Verts = make([]*Vert, n)
	for i := 0; i < n; i++ {
		α := 2.0 * math.Pi * float64(i) / float64(n)
		o.Verts[i] = &Vert{Id: i, C: []float64{r0 * math.Cos(α), r0 * math.Sin(α)}}
	}

	// segments
	o.Cells = make([]*Cell, n)
	for i := 0; i < n; i++ {
		o.Cells[i] = &Cell{Id: i, Tag: -1, Type: "lin2", Verts: []int{i, (i + 1) % n}}
	}

	// derived data
	err := o.CalcDerived()
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GenSphere generates a triangulated sphere surface of radius r0 centred at the
// origin by subdividing an octahedron nref times and projecting new vertices
// onto the sphere. Cells are "tri3" manifold cells in 3D; the surface is closed
// (no boundary facets)
func GenSphere(r0 float64, nref int) (*Mesh, error) {

	// check
	if r0 <= 0 || nref < 0 {
		return nil, chk.Err("r0 must be positive and nref non-negative. r0=%g, nref=%d are invalid", r0, nref)
	}

	// octahedron
	verts := [][]float64{
		{r0, 0, 0}, {-r0, 0, 0},
		{0, r0, 0}, {0, -r0, 0},
		{0, 0, r0}, {0, 0, -r0},
	}
	tris := [][]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}

	// refine: split each triangle into 4; midpoints pushed onto the sphere
	for k := 0; k < nref; k++ {
		edge2mid := make(map[[2]int]int)
		midpoint := func(a, b int) int {
			key := [2]int{a, b}
			if a > b {
				key = [2]int{b, a}
			}
			if m, ok := edge2mid[key]; ok {
				return m
			}
			c := []float64{
				(verts[a][0] + verts[b][0]) / 2.0,
				(verts[a][1] + verts[b][1]) / 2.0,
				(verts[a][2] + verts[b][2]) / 2.0,
			}
			d := math.Sqrt(c[0]*c[0] + c[1]*c[1] + c[2]*c[2])
			for i := 0; i < 3; i++ {
				c[i] *= r0 / d
			}
			verts = append(verts, c)
			m := len(verts) - 1
			edge2mid[key] = m
			return m
		}
		var newtris [][]int
		for _, t := range tris {
			a, b, c := t[0], t[1], t[2]
			ab := midpoint(a, b)
			bc := midpoint(b, c)
			ca := midpoint(c, a)
			newtris = append(newtris,
				[]int{a, ab, ca},
				[]int{ab, b, bc},
				[]int{ca, bc, c},
				[]int{ab, bc, ca},
			)
		}
		tris = newtris
	}

	// mesh
	var o Mesh
	o.Verts = make([]*Vert, len(verts))
	for i, c := range verts {
		o.Verts[i] = &Vert{Id: i, C: c}
	}
	o.Cells = make([]*Cell, len(tris))
	for i, t := range tris {
		o.Cells[i] = &Cell{Id: i, Tag: -1, Type: "tri3", Verts: t}
	}

	// derived data
	err := o.CalcDerived()
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GenLine1D generates a line mesh over the interval [0,lx] with "lin2" cells
// of size not greater than maxh. The endpoints become the named boundary
// regions "left" and "right"
func GenLine1D(lx, maxh float64) (*Mesh, error) {

	// check
	if lx <= 0 || maxh <= 0 {
		return nil, chk.Err("lx and maxh must be positive. lx=%g, maxh=%g are invalid", lx, maxh)
	}
	n := int(math.Ceil(lx / maxh))
	dx := lx / float64(n)

	// vertices on the x-axis
	var o Mesh
	o.Verts = make([]*Vert, n+1)
	for i := 0; i <= n; i++ {
		o.Verts[i] = &Vert{Id: i, C: []float64{float64(i) * dx, 0}}
	}

	// segments; outer faces of the end cells are tagged
	o.Cells = make([]*Cell, n)
	for i := 0; i < n; i++ {
		lef, rig := 0, 0
		if i == 0 {
			lef = TagLeft
		}
		if i == n-1 {
			rig = TagRight
		}
		o.Cells[i] = &Cell{Id: i, Tag: -1, Type: "lin2", Verts: []int{i, i + 1}, FTags: []int{lef, rig}}
	}

	// named regions
	o.Regions = map[string]int{
		"left":  TagLeft,
		"right": TagRight,
	}

	// derived data
	err := o.CalcDerived()
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Refine returns a uniformly refined copy of mesh m: each "lin2" cell is
// bisected and each "tri3" cell is split into four by its edge midpoints.
// Boundary face tags are inherited by the child faces lying on the parent
// face. Other cell types are not supported
func Refine(m *Mesh) (*Mesh, error) {

	// copy vertices; midpoints are appended on demand, shared between cells
	var o Mesh
	o.Verts = make([]*Vert, len(m.Verts))
	for i, v := range m.Verts {
		c := make([]float64, len(v.C))
		copy(c, v.C)
		o.Verts[i] = &Vert{Id: v.Id, Tag: v.Tag, C: c}
	}
	edge2mid := make(map[[2]int]int)
	midpoint := func(a, b int) int {
		key := [2]int{a, b}
		if a > b {
			key = [2]int{b, a}
		}
		if mid, ok := edge2mid[key]; ok {
			return mid
		}
		ca, cb := m.Verts[a].C, m.Verts[b].C
		c := make([]float64, len(ca))
		for i := range c {
			c[i] = (ca[i] + cb[i]) / 2.0
		}
		mid := len(o.Verts)
		o.Verts = append(o.Verts, &Vert{Id: mid, C: c})
		edge2mid[key] = mid
		return mid
	}

	// split cells
	cid := 0
	newcell := func(tag int, ctype string, verts, ftags []int) {
		o.Cells = append(o.Cells, &Cell{Id: cid, Tag: tag, Type: ctype, Verts: verts, FTags: ftags})
		cid++
	}
	ftag := func(c *Cell, j int) int {
		if j < len(c.FTags) {
			return c.FTags[j]
		}
		return 0
	}
	for _, c := range m.Cells {
		switch c.Type {
		case "lin2":
			a, b := c.Verts[0], c.Verts[1]
			mab := midpoint(a, b)
			newcell(c.Tag, "lin2", []int{a, mab}, []int{ftag(c, 0), 0})
			newcell(c.Tag, "lin2", []int{mab, b}, []int{0, ftag(c, 1)})
		case "tri3":
			a, b, d := c.Verts[0], c.Verts[1], c.Verts[2]
			mab := midpoint(a, b)
			mbd := midpoint(b, d)
			mda := midpoint(d, a)
			f0, f1, f2 := ftag(c, 0), ftag(c, 1), ftag(c, 2)
			newcell(c.Tag, "tri3", []int{a, mab, mda}, []int{f0, 0, f2})
			newcell(c.Tag, "tri3", []int{mab, b, mbd}, []int{f0, f1, 0})
			newcell(c.Tag, "tri3", []int{mda, mbd, d}, []int{0, f1, f2})
			newcell(c.Tag, "tri3", []int{mab, mbd, mda}, []int{0, 0, 0})
		default:
			return nil, chk.Err("cell type %q is not available in Refine", c.Type)
		}
	}

	// named regions
	if m.Regions != nil {
		o.Regions = make(map[string]int)
		for name, tag := range m.Regions {
			o.Regions[name] = tag
		}
	}

	// derived data
	err := o.CalcDerived()
	if err != nil {
		return nil, err
	}
	return &o, nil
}
