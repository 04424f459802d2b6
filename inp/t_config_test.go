// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseConfig(t *testing.T) {
	data := []byte(`
desc: heat conduction on the unit square
maxh: 0.1
order: 2
dt: 0.005
tend: 2.5
dirichlet:
  - left
  - right
linsol:
  name: umfpack
  symmetric: true
nworkers: 4
`)
	cfg := NewConfig()
	err := cfg.Parse(data)
	assert.NoError(t, err)
	assert.Equal(t, 0.1, cfg.Maxh)
	assert.Equal(t, 2, cfg.Order)
	assert.Equal(t, 0.005, cfg.Dt)
	assert.Equal(t, 2.5, cfg.Tend)
	assert.Equal(t, []string{"left", "right"}, cfg.Dirichlet)
	assert.Equal(t, "umfpack", cfg.LinSol.Name)
	assert.True(t, cfg.LinSol.Symmetric)
	assert.Equal(t, 4, cfg.Nworkers)
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Order)
	assert.Equal(t, "umfpack", cfg.LinSol.Name)
	assert.Empty(t, cfg.Dirichlet)
}

func TestConfigValidation(t *testing.T) {
	bad := []string{
		"maxh: -1",
		"order: 3",
		"order: 0",
		"dt: 0",
		"{dt: 0.5, tend: 0.1}",
		"nworkers: -2",
	}
	for _, data := range bad {
		cfg := NewConfig()
		assert.Error(t, cfg.Parse([]byte(data)), "input %q must fail", data)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.Desc = "round trip"
	cfg.Dirichlet = []string{"bottom"}
	s := cfg.String()
	assert.NotEmpty(t, s)
	other := NewConfig()
	assert.NoError(t, other.Parse([]byte(s)))
	assert.Equal(t, cfg, other)
}
