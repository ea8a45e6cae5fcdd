// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos defines the contract with the external property engine; i.e. the
// library that actually solves the equations of state. Everything above this package
// works in engineering units (°C, kPa, kJ); everything below this interface works in
// strict absolute SI units (K, Pa, J/kg, J/(kg·K), kg/m³).
package eos

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// keys of thermodynamic quantities as requested from / reported by the engine
const (
	Temp    = "T" // temperature [K]
	Pres    = "P" // pressure [Pa]
	Enth    = "H" // specific enthalpy [J/kg]
	Entr    = "S" // specific entropy [J/(kg·K)]
	Dens    = "D" // density [kg/m³]
	Ienergy = "U" // specific internal energy [J/kg]
	Quality = "Q" // vapour mass fraction [-]
)

// Solver defines a single-property query against an equation-of-state engine.
// Implementations resolve the state fixed by the pair (name1,value1), (name2,value2)
// of the given fluid and return the quantity requested by output. All values are in
// absolute SI units following the key convention above.
type Solver interface {
	Props(output, name1 string, value1 float64, name2 string, value2 float64, fluid string) (float64, error)
}

// New returns a new property engine
func New(name string) (solver Solver, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("engine %q is not available in 'eos' database; options are %v", name, Engines())
	}
	return allocator(), nil
}

// Register adds an engine to the factory. Engines call this from their package init.
func Register(name string, allocator func() Solver) {
	allocators[name] = allocator
}

// Engines returns the sorted names of all registered engines
func Engines() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available engines
var allocators = map[string]func() Solver{}
