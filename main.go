// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofea/cmd"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	cmd.Execute()
}
