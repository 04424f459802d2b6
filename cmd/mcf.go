// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/cpmech/gofea/ana"
	"github.com/cpmech/gofea/fem"
	"github.com/cpmech/gofea/msh"
	"github.com/cpmech/gofea/out"
)

// mcfCmd evolves a closed surface by mean curvature flow
var mcfCmd = &cobra.Command{
	Use:   "mcf",
	Short: "Evolve a sphere or circle by mean curvature flow (Dziuk's scheme)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		shape, _ := cmd.Flags().GetString("shape")
		r0, _ := cmd.Flags().GetFloat64("radius")
		nref, _ := cmd.Flags().GetInt("nref")

		// mesh and exact radius history
		var m *msh.Mesh
		var exact func(t float64) float64
		var text float64
		switch shape {
		case "sphere":
			sph := ana.ShrinkingSphere{R0: r0}
			exact, text = sph.Radius, sph.ExtinctionTime()
			m, err = msh.GenSphere(r0, nref)
		case "circle":
			cir := ana.ShrinkingCircle{R0: r0}
			exact, text = cir.Radius, cir.ExtinctionTime()
			m, err = msh.GenCircle(r0, 32<<uint(nref))
		default:
			return chk.Err("shape must be \"sphere\" or \"circle\". %q is invalid", shape)
		}
		if err != nil {
			return err
		}
		if cfg.Tend >= text {
			return chk.Err("tend=%g is past the extinction time %g; choose a smaller end time", cfg.Tend, text)
		}

		s, err := fem.NewFunctionSpace(m, 1, m.Ndim, nil)
		if err != nil {
			return err
		}
		drv, err := fem.NewSurfaceEvolutionDriver(s, cfg.Dt, cfg.Tend, cfg.LinSol.Name, cfg.Nworkers)
		if err != nil {
			return err
		}
		defer drv.Clean()
		for drv.State != fem.EvolveExtinct {
			if err := drv.Step(); err != nil {
				return err
			}
			if io.Verbose {
				io.Pf("t=%-12g mean radius = %-12g exact = %g\n", drv.T, ana.MeanRadius(out.Points(drv.X)), exact(drv.T))
			}
		}
		io.PfWhite("t=%g  mean radius = %g  exact = %g\n", drv.T, ana.MeanRadius(out.Points(drv.X)), exact(drv.T))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcfCmd)
	addCommonFlags(mcfCmd)
	mcfCmd.Flags().String("shape", "sphere", "initial surface: sphere or circle")
	mcfCmd.Flags().Float64("radius", 1, "initial radius")
	mcfCmd.Flags().Int("nref", 2, "mesh refinement level")
}
