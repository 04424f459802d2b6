// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the finite-element assembly-and-solve core: function
// spaces, sparse operators, assemblers, direct linear solvers and the implicit
// time-stepping / surface-evolution drivers
package fem

import "github.com/cpmech/gosl/io"

// InvalidRegionError indicates that a named boundary region does not exist in
// the mesh's boundary tag set
type InvalidRegionError struct {
	Region string // name of the missing region
}

func (e *InvalidRegionError) Error() string {
	return io.Sf("boundary region %q does not exist in mesh", e.Region)
}

// SingularJacobianError indicates a degenerate element: the local geometric
// Jacobian is non-invertible
type SingularJacobianError struct {
	CellId int    // id of the degenerate cell
	Reason string // underlying cause
}

func (e *SingularJacobianError) Error() string {
	return io.Sf("singular Jacobian in cell %d: %s", e.CellId, e.Reason)
}

// SingularSystemError indicates that the free-free block of the linear system
// could not be factorized
type SingularSystemError struct {
	Reason string // underlying cause
}

func (e *SingularSystemError) Error() string {
	return io.Sf("singular linear system: %s", e.Reason)
}

// DimensionMismatchError indicates a FieldVector or Matrix incompatible with
// the FunctionSpace in use
type DimensionMismatchError struct {
	What      string // description of the offending object
	Got, Want int    // sizes
}

func (e *DimensionMismatchError) Error() string {
	return io.Sf("dimension mismatch: %s has size %d. %d is required", e.What, e.Got, e.Want)
}
