// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package proc implements elementary thermodynamic process analyses. Each analysis
// is a pure, single-pass composition of property queries: it resolves two or three
// states through the prop facade and combines them with a closed-form balance.
package proc

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gothermo/eos"
	"github.com/cpmech/gothermo/prop"
)

// Kind labels the direction of an isentropic process
type Kind string

// kinds of isentropic processes
const (
	Compression Kind = "compression"
	Expansion   Kind = "expansion"
)

// ArgError indicates invalid analysis arguments, detected before any property is
// solved
type ArgError struct {
	Msg string
}

// Error returns the error message
func (o *ArgError) Error() string {
	return io.Sf("invalid process arguments: %s", o.Msg)
}

// Analyzer analyses processes of one fluid. It holds no state across calls.
type Analyzer struct {
	calc *prop.Calculator
}

// New returns an analyzer for the named fluid. Unknown fluids fail here.
func New(fluidName string, engine eos.Solver) (o *Analyzer, err error) {
	calc, err := prop.New(fluidName, engine)
	if err != nil {
		return nil, err
	}
	return &Analyzer{calc: calc}, nil
}

// Calculator returns the underlying property calculator
func (o *Analyzer) Calculator() *prop.Calculator {
	return o.calc
}

// checkPressure returns an ArgError if p [kPa] is not a positive finite pressure
func checkPressure(name string, p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		return &ArgError{Msg: io.Sf("%s must be positive; got %g kPa", name, p)}
	}
	return nil
}

// checkTemp returns an ArgError if t [°C] is not a finite temperature above
// absolute zero
func checkTemp(name string, t float64) error {
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= -prop.KelvinShift {
		return &ArgError{Msg: io.Sf("%s must be above absolute zero; got %g °C", name, t)}
	}
	return nil
}
