// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Ipoint holds integration point data: natural coordinates and weight: {r, s, t, w}
type Ipoint []float64

// Gauss-Legendre abscissae/weights on [-1,1]
var (
	gp2 = 1.0 / math.Sqrt(3.0)
	gp3 = math.Sqrt(3.0 / 5.0)
)

// integration points for "lin" shapes; nip => rule
var ipsLin = map[int][]Ipoint{
	1: {
		{0, 0, 0, 2},
	},
	2: {
		{-gp2, 0, 0, 1},
		{gp2, 0, 0, 1},
	},
	3: {
		{-gp3, 0, 0, 5.0 / 9.0},
		{0, 0, 0, 8.0 / 9.0},
		{gp3, 0, 0, 5.0 / 9.0},
	},
}

// integration points for "tri" shapes; nip => rule. weights sum to 1/2
var ipsTri = map[int][]Ipoint{
	1: {
		{1.0 / 3.0, 1.0 / 3.0, 0, 1.0 / 2.0},
	},
	3: {
		{1.0 / 6.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{2.0 / 3.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{1.0 / 6.0, 2.0 / 3.0, 0, 1.0 / 6.0},
	},
	6: {
		{0.445948490915965, 0.445948490915965, 0, 0.111690794839005},
		{0.108103018168070, 0.445948490915965, 0, 0.111690794839005},
		{0.445948490915965, 0.108103018168070, 0, 0.111690794839005},
		{0.091576213509771, 0.091576213509771, 0, 0.054975871827661},
		{0.816847572980459, 0.091576213509771, 0, 0.054975871827661},
		{0.091576213509771, 0.816847572980459, 0, 0.054975871827661},
	},
	7: {
		{1.0 / 3.0, 1.0 / 3.0, 0, 0.112500000000000},
		{0.470142064105115, 0.470142064105115, 0, 0.066197076394253},
		{0.059715871789770, 0.470142064105115, 0, 0.066197076394253},
		{0.470142064105115, 0.059715871789770, 0, 0.066197076394253},
		{0.101286507323456, 0.101286507323456, 0, 0.062969590272414},
		{0.797426985353087, 0.101286507323456, 0, 0.062969590272414},
		{0.101286507323456, 0.797426985353087, 0, 0.062969590272414},
	},
}

// exactness degree per rule size
var (
	degLin = map[int]int{1: 1, 2: 3, 3: 5}
	degTri = map[int]int{1: 1, 3: 2, 6: 4, 7: 5}
	degQua = map[int]int{1: 1, 4: 3, 9: 5} // tensorised lin rules
)

// quaRule builds a tensor-product Gauss rule for quads from a lin rule
func quaRule(n1d int) (ips []Ipoint) {
	lin := ipsLin[n1d]
	for _, q := range lin {
		for _, p := range lin {
			ips = append(ips, Ipoint{p[0], q[0], 0, p[3] * q[3]})
		}
	}
	return
}

// IpsForDegree returns the smallest quadrature rule integrating polynomials of
// the given degree exactly, for the basic geometry of geoType
func IpsForDegree(geoType string, degree int) (ips []Ipoint, err error) {
	s, ok := factory[geoType]
	if !ok {
		return nil, chk.Err("shape %q is not available", geoType)
	}
	switch s.BasicType {
	case "lin2":
		for _, nip := range []int{1, 2, 3} {
			if degLin[nip] >= degree {
				return ipsLin[nip], nil
			}
		}
		return ipsLin[3], nil
	case "tri3":
		for _, nip := range []int{1, 3, 6, 7} {
			if degTri[nip] >= degree {
				return ipsTri[nip], nil
			}
		}
		return ipsTri[7], nil
	case "qua4":
		for _, n1d := range []int{1, 2, 3} {
			if degLin[n1d] >= degree {
				return quaRule(n1d), nil
			}
		}
		return quaRule(3), nil
	}
	return nil, chk.Err("quadrature rules for %q are not available", s.BasicType)
}
