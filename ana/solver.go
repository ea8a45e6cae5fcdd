// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form reference models of fluid properties. These
// models verify the unit-conversion and orchestration layers against analytical
// solutions and keep the test suite independent of the CoolProp binding. They are
// verification references, not a property engine: the production engine remains
// eos/coolprop.
package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gothermo/eos"
)

// Model answers single-property queries for one fluid, in absolute SI units
type Model interface {
	Props(output, name1 string, value1 float64, name2 string, value2 float64) (float64, error)
}

// Solver dispatches property queries to closed-form models by canonical fluid name
type Solver struct {
	Models map[string]Model
}

// add engine to factory
func init() {
	eos.Register("ana", func() eos.Solver { return NewSolver() })
}

// NewSolver returns a reference engine covering all fluids of the 'fluid' database.
// Water and R134a get the two-phase model; air, CO2 and R22 the single-phase ideal
// gas model.
func NewSolver() *Solver {
	return &Solver{
		Models: map[string]Model{
			"Water": NewWater(),
			"R134a": NewR134a(),
			"Air":   NewAir(),
			"CO2":   NewCO2(),
			"R22":   NewR22(),
		},
	}
}

// Props implements eos.Solver
func (o *Solver) Props(output, name1 string, value1 float64, name2 string, value2 float64, fluid string) (float64, error) {
	model, ok := o.Models[fluid]
	if !ok {
		return 0, chk.Err("ana: no reference model for fluid %q", fluid)
	}
	return model.Props(output, name1, value1, name2, value2)
}

// pair collects the two given property/value entries into a map for dispatching
func pair(name1 string, value1 float64, name2 string, value2 float64) map[string]float64 {
	return map[string]float64{name1: value1, name2: value2}
}
