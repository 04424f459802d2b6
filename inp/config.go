// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input configuration structures
package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/ghodss/yaml"
)

// LinSolData holds the linear solver options
type LinSolData struct {
	Name      string `json:"name"`      // "umfpack" or "sparse"
	Symmetric bool   `json:"symmetric"` // assume symmetric system
}

// Config holds all parameters of one simulation
type Config struct {

	// problem
	Desc  string  `json:"desc"`  // description
	Maxh  float64 `json:"maxh"`  // maximum cell size for generated meshes
	Order int     `json:"order"` // polynomial order: 1 or 2

	// time integration
	Dt   float64 `json:"dt"`   // time step size
	Tend float64 `json:"tend"` // final time

	// boundary conditions
	Dirichlet []string `json:"dirichlet"` // names of regions with essential conditions

	// solver
	LinSol   LinSolData `json:"linsol"`   // linear solver options
	Nworkers int        `json:"nworkers"` // parallel assembly workers
}

// NewConfig returns a configuration with default values
func NewConfig() *Config {
	return &Config{
		Maxh:   0.25,
		Order:  1,
		Dt:     0.01,
		Tend:   1.0,
		LinSol: LinSolData{Name: "umfpack"},
	}
}

// Parse fills this structure from yaml (or json) data
func (o *Config) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, o); err != nil {
		return chk.Err("cannot parse configuration: %v", err)
	}
	return o.Validate()
}

// ReadConfig loads and validates a configuration file
func ReadConfig(dir, fn string) (*Config, error) {
	o := NewConfig()
	data, err := io.ReadFile(io.Sf("%s/%s", dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read configuration file %q: %v", fn, err)
	}
	if err := o.Parse(data); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate checks the parameters
func (o *Config) Validate() error {
	if o.Maxh <= 0 {
		return chk.Err("maxh must be positive. maxh=%g is invalid", o.Maxh)
	}
	if o.Order < 1 || o.Order > 2 {
		return chk.Err("order must be 1 or 2. order=%d is invalid", o.Order)
	}
	if o.Dt <= 0 {
		return chk.Err("dt must be positive. dt=%g is invalid", o.Dt)
	}
	if o.Tend < o.Dt {
		return chk.Err("tend must be at least one time step. tend=%g, dt=%g", o.Tend, o.Dt)
	}
	if o.Nworkers < 0 {
		return chk.Err("nworkers must not be negative. nworkers=%d is invalid", o.Nworkers)
	}
	if o.LinSol.Name == "" {
		o.LinSol.Name = "umfpack"
	}
	return nil
}

// String returns a yaml representation of this configuration
func (o *Config) String() string {
	raw, err := yaml.Marshal(o)
	if err != nil {
		return ""
	}
	return string(raw)
}
