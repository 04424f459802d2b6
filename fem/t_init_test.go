// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofea/msh"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// testSquare returns a unit square triangulated with maxh=0.5 (8 cells)
func testSquare(tst interface {
	Errorf(format string, args ...interface{})
}) *msh.Mesh {
	m, err := msh.GenGrid2D(1, 1, 0.5, "tri3")
	if err != nil {
		tst.Errorf("mesh generation failed: %v\n", err)
		return nil
	}
	return m
}

// allBoundaries names the four sides of a generated grid
var allBoundaries = []string{"left", "right", "bottom", "top"}
