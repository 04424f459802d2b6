// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape functions, geometric maps and quadrature rules
package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// constants
const MINDET = 1.0e-14 // minimum determinant allowed for dxdR

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds geometry data
//  Notes: 1) the scratchpad is not goroutine-safe; use Get with goroutineId > 0
//            to obtain a private copy for concurrent element loops
//         2) cells may live on a manifold of co-dimension one (e.g. "lin2" in 2D,
//            "tri3" in 3D); CalcAtIp then computes surface quantities
type Shape struct {

	// geometry
	Type           string      // name; e.g. "tri3"
	Func           ShpFunc     // shape/derivs callback function
	BasicType      string      // geometry of basic element; e.g. "tri6" => "tri3"
	FaceType       string      // geometry of face; e.g. "tri3" => "lin2"
	Gndim          int         // intrinsic dimension of shape; e.g. "tri3" => 2 (even in 3D space)
	Nverts         int         // number of vertices in cell; e.g. "tri6" => 6
	VtkCode        int         // VTK code
	FaceLocalVerts [][]int     // face local vertices [nfaces][...]
	NatCoords      [][]float64 // natural coordinates [gndim][nverts]

	// scratchpad: volume/surface
	S    []float64   // [nverts] shape functions
	G    [][]float64 // [nverts][ndim] G == dSdx. gradient of shape function (ambient components)
	J    float64     // Jacobian: determinant of dxdR (or area/length scale on manifolds)
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR [][]float64 // [ndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	DRdx [][]float64 // [gndim][gndim] dRdx == inverse(dxdR)

	// scratchpad: manifold (first fundamental form)
	Gmat [][]float64 // [gndim][gndim] metric dxdR^T * dxdR
	Ginv [][]float64 // [gndim][gndim] inverse of metric
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {
	var p Shape
	p.Type = o.Type
	p.Func = o.Func
	p.BasicType = o.BasicType
	p.FaceType = o.FaceType
	p.Gndim = o.Gndim
	p.Nverts = o.Nverts
	p.VtkCode = o.VtkCode
	p.FaceLocalVerts = o.FaceLocalVerts
	p.NatCoords = o.NatCoords
	p.init_scratchpad()
	return &p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure
//  Note: 1) returns nil on errors
//        2) use goroutineId > 0 to get a copy
func Get(geoType string, goroutineId int) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if goroutineId > 0 {
		return s.GetCopy()
	}
	return s
}

// Registered returns the names of all registered shapes
func Registered() (names []string) {
	for name := range factory {
		names = append(names, name)
	}
	return
}

// GetNverts returns the number of vertices of given cell type; -1 on errors
func GetNverts(geoType string) int {
	s, ok := factory[geoType]
	if !ok {
		return -1
	}
	return s.Nverts
}

// GetFaceLocalVerts returns the local indices of vertices on face idxface
func GetFaceLocalVerts(geoType string, idxface int) []int {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	return s.FaceLocalVerts[idxface]
}

// IpRealCoords returns the real coordinates (y) of an integration point
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip, false)
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// CalcAtIp calculates S, G and J at the natural coordinates of an integration point
//  Input:
//   x[ndim][nverts] -- coordinates matrix of element
//   ip              -- integration point (or any natural coordinates)
//  Output:
//   S, DSdR, DxdR, J and, if derivs, G
//  Notes: when ndim > Gndim the element lives on a manifold; J is then the
//  area/length scale sqrt(det(dxdR^T*dxdR)) and G holds the surface gradient:
//  the ambient gradient projected onto the tangent space spanned by the columns
//  of dxdR (the normal component is discarded)
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip, derivs)
	if !derivs {
		return
	}

	// check ambient dimension
	ndim := len(x)
	if ndim < o.Gndim {
		return chk.Err("ambient dimension (%d) must not be smaller than intrinsic dimension (%d) of %q", ndim, o.Gndim, o.Type)
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < ndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
		}
	}

	// manifold cell: metric, area scale and surface gradient
	if ndim > o.Gndim {
		return o.calcSurface(ndim)
	}

	// dRdx := inv(dxdR)
	o.J, err = la.MatInv(o.DRdx, o.DxdR[:o.Gndim], MINDET)
	if err != nil {
		return
	}

	// G == dSdx := dSdR * dRdx  =>  dS^m/dx_j := sum_i dS^m/dR_i * dR_i/dx_j
	for m := 0; m < o.Nverts; m++ {
		for j := 0; j < ndim; j++ {
			o.G[m][j] = 0.0
			for i := 0; i < o.Gndim; i++ {
				o.G[m][j] += o.DSdR[m][i] * o.DRdx[i][j]
			}
		}
	}
	return
}

// calcSurface computes J and the tangential gradient for manifold cells
//  Note: must be called right after DxdR has been computed
func (o *Shape) calcSurface(ndim int) (err error) {

	// metric: Gmat := dxdR^T * dxdR
	for i := 0; i < o.Gndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			o.Gmat[i][j] = 0.0
			for k := 0; k < ndim; k++ {
				o.Gmat[i][j] += o.DxdR[k][i] * o.DxdR[k][j]
			}
		}
	}

	// determinant of metric and area/length scale
	var det float64
	switch o.Gndim {
	case 1:
		det = o.Gmat[0][0]
	case 2:
		det = o.Gmat[0][0]*o.Gmat[1][1] - o.Gmat[0][1]*o.Gmat[1][0]
	default:
		return chk.Err("manifold cells with gndim=%d are not available", o.Gndim)
	}
	if det < MINDET*MINDET {
		return chk.Err("degenerate %q cell: det(metric) = %g is too small", o.Type, det)
	}
	o.J = math.Sqrt(det)

	// inverse of metric
	switch o.Gndim {
	case 1:
		o.Ginv[0][0] = 1.0 / det
	case 2:
		o.Ginv[0][0] = o.Gmat[1][1] / det
		o.Ginv[1][1] = o.Gmat[0][0] / det
		o.Ginv[0][1] = -o.Gmat[0][1] / det
		o.Ginv[1][0] = -o.Gmat[1][0] / det
	}

	// surface gradient: G[m] := dxdR * Ginv * dSdR[m]  (tangential; normal part dropped)
	for m := 0; m < o.Nverts; m++ {
		for i := 0; i < ndim; i++ {
			o.G[m][i] = 0.0
			for j := 0; j < o.Gndim; j++ {
				for k := 0; k < o.Gndim; k++ {
					o.G[m][i] += o.DxdR[i][j] * o.Ginv[j][k] * o.DSdR[m][k]
				}
			}
		}
	}
	return
}

// CalcBasis evaluates the shape functions of basis b at the same natural
// coordinates of the geometric map previously computed by o.CalcAtIp, and, if
// derivs, computes b.G using o's Jacobian data. This serves sub-parametric
// interpolation: b shares o's natural coordinate system (same BasicType) but
// may carry more nodes; e.g. "tri6" basis over "tri3" geometry
func (o *Shape) CalcBasis(b *Shape, ip Ipoint, ndim int, derivs bool) {
	b.Func(b.S, b.DSdR, ip, derivs)
	if !derivs {
		return
	}
	if ndim > o.Gndim {
		// surface gradient via o's metric
		for m := 0; m < b.Nverts; m++ {
			for i := 0; i < ndim; i++ {
				b.G[m][i] = 0.0
				for j := 0; j < o.Gndim; j++ {
					for k := 0; k < o.Gndim; k++ {
						b.G[m][i] += o.DxdR[i][j] * o.Ginv[j][k] * b.DSdR[m][k]
					}
				}
			}
		}
		return
	}
	for m := 0; m < b.Nverts; m++ {
		for j := 0; j < ndim; j++ {
			b.G[m][j] = 0.0
			for i := 0; i < o.Gndim; i++ {
				b.G[m][j] += b.DSdR[m][i] * o.DRdx[i][j]
			}
		}
	}
}

// CalcAtR calculates data at given natural coordinates R
func (o *Shape) CalcAtR(x [][]float64, R []float64, derivs bool) (err error) {
	return o.CalcAtIp(x, R, derivs)
}

// init_scratchpad initialise volume/surface data (scratchpad)
//  Note: matrices are allocated for ambient dimensions up to 3
func (o *Shape) init_scratchpad() {
	o.S = make([]float64, o.Nverts)
	o.DSdR = la.MatAlloc(o.Nverts, o.Gndim)
	o.DxdR = la.MatAlloc(3, o.Gndim)
	o.DRdx = la.MatAlloc(o.Gndim, o.Gndim)
	o.G = la.MatAlloc(o.Nverts, 3)
	o.Gmat = la.MatAlloc(o.Gndim, o.Gndim)
	o.Ginv = la.MatAlloc(o.Gndim, o.Gndim)
}
