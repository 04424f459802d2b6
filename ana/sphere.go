// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
)

// ShrinkingSphere implements the exact mean curvature flow of a sphere:
// every point moves inward with speed equal to the mean curvature, so the
// radius obeys dR/dt = -2/R and
//  R(t) = sqrt(R0² - 4t)
// The sphere vanishes at t = R0²/4
type ShrinkingSphere struct {
	R0 float64 // initial radius
}

// Radius returns the exact radius at time t
func (o ShrinkingSphere) Radius(t float64) float64 {
	return math.Sqrt(o.R0*o.R0 - 4.0*t)
}

// ExtinctionTime returns the time at which the sphere vanishes
func (o ShrinkingSphere) ExtinctionTime() float64 {
	return o.R0 * o.R0 / 4.0
}

// ShrinkingCircle implements curve shortening flow of a circle in the plane:
// dR/dt = -1/R, hence
//  R(t) = sqrt(R0² - 2t)
type ShrinkingCircle struct {
	R0 float64 // initial radius
}

// Radius returns the exact radius at time t
func (o ShrinkingCircle) Radius(t float64) float64 {
	return math.Sqrt(o.R0*o.R0 - 2.0*t)
}

// ExtinctionTime returns the time at which the circle vanishes
func (o ShrinkingCircle) ExtinctionTime() float64 {
	return o.R0 * o.R0 / 2.0
}
