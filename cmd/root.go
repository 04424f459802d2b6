// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface
package cmd

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cpmech/gofea/inp"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gofea",
	Short: "Finite element assembly and solve engine",
	Long: `
Assembles and solves finite element problems on flat and manifold meshes:
steady diffusion, implicit Euler heat conduction and mean curvature flow of
closed surfaces by Dziuk's scheme`,
}

// Execute runs the root command. This is called by main.main() once
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		io.Pforan("%v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./gofea.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print progress while running")
}

// initConfig reads in the config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("gofea")
	}
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		io.Pfgrey2("using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig merges defaults, config file values and command flags
func loadConfig(cmd *cobra.Command) (*inp.Config, error) {
	cfg := inp.NewConfig()
	if viper.ConfigFileUsed() != "" {
		data, err := os.ReadFile(viper.ConfigFileUsed())
		if err != nil {
			return nil, chk.Err("cannot read config file: %v", err)
		}
		if err := cfg.Parse(data); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("maxh") {
		cfg.Maxh, _ = cmd.Flags().GetFloat64("maxh")
	}
	if cmd.Flags().Changed("order") {
		cfg.Order, _ = cmd.Flags().GetInt("order")
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt, _ = cmd.Flags().GetFloat64("dt")
	}
	if cmd.Flags().Changed("tend") {
		cfg.Tend, _ = cmd.Flags().GetFloat64("tend")
	}
	if cmd.Flags().Changed("nworkers") {
		cfg.Nworkers, _ = cmd.Flags().GetInt("nworkers")
	}
	if verb, _ := cmd.Flags().GetBool("verbose"); verb {
		io.Verbose = true
	}
	return cfg, cfg.Validate()
}

// addCommonFlags registers the flags shared by all solver commands
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("maxh", 0.25, "maximum cell size of the generated mesh")
	cmd.Flags().IntP("order", "o", 1, "polynomial order: 1 or 2")
	cmd.Flags().Float64("dt", 0.01, "time step size")
	cmd.Flags().Float64("tend", 1.0, "final time")
	cmd.Flags().IntP("nworkers", "w", 1, "parallel assembly workers")
}
