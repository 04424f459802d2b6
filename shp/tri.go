// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// register shapes
func init() {

	// tri3
	//
	//    s
	//    |
	//    2
	//    | \
	//    |   \
	//    |     \
	//    0-------1 --> r
	//
	tri3 := &Shape{
		Type:      "tri3",
		BasicType: "tri3",
		FaceType:  "lin2",
		Gndim:     2,
		Nverts:    3,
		VtkCode:   5,
		FaceLocalVerts: [][]int{
			{0, 1}, {1, 2}, {2, 0},
		},
		NatCoords: [][]float64{
			{0, 1, 0},
			{0, 0, 1},
		},
		Func: func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
			S[0] = 1.0 - r[0] - r[1]
			S[1] = r[0]
			S[2] = r[1]
			if !derivs {
				return
			}
			dSdR[0][0], dSdR[0][1] = -1.0, -1.0
			dSdR[1][0], dSdR[1][1] = 1.0, 0.0
			dSdR[2][0], dSdR[2][1] = 0.0, 1.0
		},
	}
	tri3.init_scratchpad()
	factory["tri3"] = tri3

	// tri6
	//
	//    s
	//    |
	//    2
	//    | \
	//    5   4
	//    |     \
	//    0---3---1 --> r
	//
	tri6 := &Shape{
		Type:      "tri6",
		BasicType: "tri3",
		FaceType:  "lin3",
		Gndim:     2,
		Nverts:    6,
		VtkCode:   22,
		FaceLocalVerts: [][]int{
			{0, 1, 3}, {1, 2, 4}, {2, 0, 5},
		},
		NatCoords: [][]float64{
			{0, 1, 0, 0.5, 0.5, 0},
			{0, 0, 1, 0, 0.5, 0.5},
		},
		Func: func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
			L0 := 1.0 - r[0] - r[1]
			L1 := r[0]
			L2 := r[1]
			S[0] = L0 * (2.0*L0 - 1.0)
			S[1] = L1 * (2.0*L1 - 1.0)
			S[2] = L2 * (2.0*L2 - 1.0)
			S[3] = 4.0 * L0 * L1
			S[4] = 4.0 * L1 * L2
			S[5] = 4.0 * L2 * L0
			if !derivs {
				return
			}
			// dL0dr = dL0ds = -1;  dL1dr = 1;  dL2ds = 1
			dSdR[0][0] = 1.0 - 4.0*L0
			dSdR[0][1] = 1.0 - 4.0*L0
			dSdR[1][0] = 4.0*L1 - 1.0
			dSdR[1][1] = 0.0
			dSdR[2][0] = 0.0
			dSdR[2][1] = 4.0*L2 - 1.0
			dSdR[3][0] = 4.0 * (L0 - L1)
			dSdR[3][1] = -4.0 * L1
			dSdR[4][0] = 4.0 * L2
			dSdR[4][1] = 4.0 * L1
			dSdR[5][0] = -4.0 * L2
			dSdR[5][1] = 4.0 * (L0 - L2)
		},
	}
	tri6.init_scratchpad()
	factory["tri6"] = tri6
}
