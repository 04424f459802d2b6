// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/cpmech/gofea/fem"
	"github.com/cpmech/gofea/msh"
	"github.com/cpmech/gofea/out"
)

// heatCmd integrates the heat equation with implicit Euler
var heatCmd = &cobra.Command{
	Use:   "heat",
	Short: "Integrate du/dt - lap(u) = f on the unit square with implicit Euler",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		src, _ := cmd.Flags().GetFloat64("source")
		dump, _ := cmd.Flags().GetString("dump")
		dtout, _ := cmd.Flags().GetFloat64("dtout")

		m, err := msh.GenGrid2D(1, 1, cfg.Maxh, "tri3")
		if err != nil {
			return err
		}
		dirichlet := cfg.Dirichlet
		if len(dirichlet) == 0 {
			dirichlet = []string{"left", "right", "bottom", "top"}
		}
		s, err := fem.NewFunctionSpace(m, cfg.Order, 1, dirichlet)
		if err != nil {
			return err
		}
		a := &fem.Assembler{Space: s, Nworkers: cfg.Nworkers}
		u := fem.NewFieldVector(s)
		st, err := fem.NewTimeStepper(a, fem.StiffForm(1), &fem.LinearForm{Source: fem.Cte(src)},
			u, cfg.Dt, cfg.Tend, cfg.LinSol.Name, true)
		if err != nil {
			return err
		}
		defer st.Clean()
		var dtoFunc fun.Func
		if dtout > 0 {
			dtoFunc = &fun.Cte{C: dtout}
			st.Out = func(t float64, uu *fem.FieldVector) error {
				io.Pf("t=%-10g max|u| = %g\n", t, maxAbs(uu.V))
				return nil
			}
		}
		if err := st.Run(nil, dtoFunc); err != nil {
			return err
		}
		io.Pf("t=%g  max|u| = %g\n", st.T, maxAbs(u.V))
		if dump != "" {
			return out.SaveScalarField(".", dump, u)
		}
		return nil
	},
}

func maxAbs(v []float64) (m float64) {
	for _, x := range v {
		if x < 0 {
			x = -x
		}
		if x > m {
			m = x
		}
	}
	return
}

func init() {
	rootCmd.AddCommand(heatCmd)
	addCommonFlags(heatCmd)
	heatCmd.Flags().Float64("source", 1, "constant heat source")
	heatCmd.Flags().String("dump", "", "filename key to dump the final state as json")
	heatCmd.Flags().Float64("dtout", 0, "output increment for progress reports; 0 disables them")
}
