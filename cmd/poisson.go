// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/cpmech/gofea/ana"
	"github.com/cpmech/gofea/fem"
	"github.com/cpmech/gofea/inp"
	"github.com/cpmech/gofea/msh"
	"github.com/cpmech/gofea/out"
)

// poissonCmd solves the Poisson equation on the unit square
var poissonCmd = &cobra.Command{
	Use:   "poisson",
	Short: "Solve -lap(u) = f on the unit square with a manufactured solution",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		nref, _ := cmd.Flags().GetInt("nref")
		dump, _ := cmd.Flags().GetString("dump")

		var sol ana.PoissonSine
		sol.Init(1, 1)
		m, err := msh.GenGrid2D(sol.Lx, sol.Ly, cfg.Maxh, "tri3")
		if err != nil {
			return err
		}
		hs := make([]float64, 0, nref+1)
		errs := make([]float64, 0, nref+1)
		h := cfg.Maxh
		for lev := 0; lev <= nref; lev++ {
			u, e, err := solvePoisson(cfg, m, &sol)
			if err != nil {
				return err
			}
			io.Pf("h=%-10g L2 error = %g\n", h, e)
			hs = append(hs, h)
			errs = append(errs, e)
			if dump != "" && lev == nref {
				if err := out.SaveScalarField(".", dump, u); err != nil {
					return err
				}
			}
			if lev < nref {
				if m, err = msh.Refine(m); err != nil {
					return err
				}
				h /= 2
			}
		}
		if nref > 0 {
			io.PfWhite("estimated order of convergence = %g\n", ana.Eoc(hs, errs))
		}
		return nil
	},
}

// solvePoisson assembles and solves one refinement level, returning the
// solution and its L2 error
func solvePoisson(cfg *inp.Config, m *msh.Mesh, sol *ana.PoissonSine) (*fem.FieldVector, float64, error) {
	s, err := fem.NewFunctionSpace(m, cfg.Order, 1, []string{"left", "right", "bottom", "top"})
	if err != nil {
		return nil, 0, err
	}
	a := &fem.Assembler{Space: s, Nworkers: cfg.Nworkers}
	A, err := a.AssembleMatrix(fem.StiffForm(1))
	if err != nil {
		return nil, 0, err
	}
	b, err := a.AssembleVector(&fem.LinearForm{Source: sol.F})
	if err != nil {
		return nil, 0, err
	}
	ls := fem.NewLinSolver(s, cfg.LinSol.Name, true)
	defer ls.Clean()
	if err := ls.Update(A); err != nil {
		return nil, 0, err
	}
	u := fem.NewFieldVector(s)
	if err := ls.Solve(u.V, b); err != nil {
		return nil, 0, err
	}
	e, err := out.ErrorL2(u, sol.U)
	return u, e, err
}

func init() {
	rootCmd.AddCommand(poissonCmd)
	addCommonFlags(poissonCmd)
	poissonCmd.Flags().Int("nref", 0, "number of mesh refinements for convergence study")
	poissonCmd.Flags().String("dump", "", "filename key to dump the finest solution as json")
}
