// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// register shapes
func init() {

	// lin2
	//
	//  -1     0    +1
	//   0-----------1-->r
	//
	lin2 := &Shape{
		Type:      "lin2",
		BasicType: "lin2",
		FaceType:  "",
		Gndim:     1,
		Nverts:    2,
		VtkCode:   3,
		NatCoords: [][]float64{
			{-1, 1},
		},
		FaceLocalVerts: [][]int{
			{0}, {1},
		},
		Func: func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
			S[0] = 0.5 * (1.0 - r[0])
			S[1] = 0.5 * (1.0 + r[0])
			if !derivs {
				return
			}
			dSdR[0][0] = -0.5
			dSdR[1][0] = 0.5
		},
	}
	lin2.init_scratchpad()
	factory["lin2"] = lin2

	// lin3
	//
	//  -1     0    +1
	//   0-----2-----1-->r
	//
	lin3 := &Shape{
		Type:      "lin3",
		BasicType: "lin2",
		FaceType:  "",
		Gndim:     1,
		Nverts:    3,
		VtkCode:   21,
		NatCoords: [][]float64{
			{-1, 1, 0},
		},
		FaceLocalVerts: [][]int{
			{0}, {1},
		},
		Func: func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
			S[0] = 0.5 * r[0] * (r[0] - 1.0)
			S[1] = 0.5 * r[0] * (r[0] + 1.0)
			S[2] = 1.0 - r[0]*r[0]
			if !derivs {
				return
			}
			dSdR[0][0] = r[0] - 0.5
			dSdR[1][0] = r[0] + 0.5
			dSdR[2][0] = -2.0 * r[0]
		},
	}
	lin3.init_scratchpad()
	factory["lin3"] = lin3
}
