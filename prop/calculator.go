// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prop implements the property query facade: it maps one pair of
// independent properties, given in engineering units, onto a complete and mutually
// consistent thermodynamic state by orchestrating single-property queries against
// an eos engine.
package prop

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gothermo/eos"
	"github.com/cpmech/gothermo/fluid"
)

// unit conversions at the facade boundary. The engine works in K, Pa and J; the
// facade works in °C, kPa and kJ.
const (
	KelvinShift = 273.15 // [K] offset between °C and K
	Kilo        = 1000.0 // kPa→Pa and kJ→J factor
)

// names of independent properties accepted as input parameters
const (
	KeyTemp     = "temp"     // temperature [°C]
	KeyPres     = "pressure" // pressure [kPa]
	KeyQuality  = "quality"  // vapour mass fraction [-]
	KeyEnthalpy = "enthalpy" // specific enthalpy [kJ/kg]
	KeyEntropy  = "entropy"  // specific entropy [kJ/(kg・K)]
)

// Calculator computes thermodynamic states of one fluid using one property engine.
// Calculators hold no mutable state and may be shared as long as the engine itself
// is safe for concurrent queries.
type Calculator struct {
	fl  fluid.Fluid
	eng eos.Solver
}

// New returns a calculator for the named fluid. Unknown fluids fail here, before
// any property is solved.
func New(fluidName string, engine eos.Solver) (o *Calculator, err error) {
	fl, err := fluid.Get(fluidName)
	if err != nil {
		return nil, err
	}
	if engine == nil {
		return nil, chk.Err("property engine must not be nil")
	}
	return &Calculator{fl: fl, eng: engine}, nil
}

// Fluid returns the fluid this calculator is bound to
func (o *Calculator) Fluid() fluid.Fluid {
	return o.fl
}

// Get computes the complete state fixed by exactly one of the five supported pairs
// of independent properties:
//
//	temp + pressure, temp + quality, pressure + enthalpy,
//	pressure + entropy, enthalpy + entropy
//
// The absolute temperature and pressure are resolved first (querying the engine
// when the given pair is not already temp+pressure) and all remaining properties
// are then derived from the resolved (T,P) point, so that the returned fields are
// mutually consistent.
func (o *Calculator) Get(prms dbf.Params) (sta *State, err error) {
	T, P, err := o.resolve(prms)
	if err != nil {
		return
	}
	return o.populate(T, P)
}

// GetTP computes the state at temperature [°C] and pressure [kPa]
func (o *Calculator) GetTP(temp, pressure float64) (*State, error) {
	return o.Get(dbf.Params{&dbf.P{N: KeyTemp, V: temp}, &dbf.P{N: KeyPres, V: pressure}})
}

// GetTQ computes the two-phase state at temperature [°C] and quality [-]
func (o *Calculator) GetTQ(temp, quality float64) (*State, error) {
	return o.Get(dbf.Params{&dbf.P{N: KeyTemp, V: temp}, &dbf.P{N: KeyQuality, V: quality}})
}

// GetPH computes the state at pressure [kPa] and enthalpy [kJ/kg]
func (o *Calculator) GetPH(pressure, enthalpy float64) (*State, error) {
	return o.Get(dbf.Params{&dbf.P{N: KeyPres, V: pressure}, &dbf.P{N: KeyEnthalpy, V: enthalpy}})
}

// GetPS computes the state at pressure [kPa] and entropy [kJ/(kg・K)]
func (o *Calculator) GetPS(pressure, entropy float64) (*State, error) {
	return o.Get(dbf.Params{&dbf.P{N: KeyPres, V: pressure}, &dbf.P{N: KeyEntropy, V: entropy}})
}

// GetHS computes the state at enthalpy [kJ/kg] and entropy [kJ/(kg・K)]
func (o *Calculator) GetHS(enthalpy, entropy float64) (*State, error) {
	return o.Get(dbf.Params{&dbf.P{N: KeyEnthalpy, V: enthalpy}, &dbf.P{N: KeyEntropy, V: entropy}})
}

// resolve determines the absolute temperature [K] and pressure [Pa] from the given
// independent properties
func (o *Calculator) resolve(prms dbf.Params) (T, P float64, err error) {

	// collect given parameters
	var temp, pres, qual, enth, entr float64
	var hasT, hasP, hasQ, hasH, hasS bool
	var given []string
	for _, p := range prms {
		given = append(given, p.N)
		switch p.N {
		case KeyTemp:
			temp, hasT = p.V, true
		case KeyPres:
			pres, hasP = p.V, true
		case KeyQuality:
			qual, hasQ = p.V, true
		case KeyEnthalpy:
			enth, hasH = p.V, true
		case KeyEntropy:
			entr, hasS = p.V, true
		default:
			return 0, 0, &CombinationError{Given: given}
		}
	}
	if len(prms) != 2 {
		return 0, 0, &CombinationError{Given: given}
	}

	// resolve (T,P)
	switch {
	case hasT && hasP:
		return temp + KelvinShift, pres * Kilo, nil

	case hasT && hasQ:
		T = temp + KelvinShift
		P, err = o.query(eos.Pres, eos.Temp, T, eos.Quality, qual)
		return

	case hasP && hasH:
		P = pres * Kilo
		T, err = o.query(eos.Temp, eos.Pres, P, eos.Enth, enth*Kilo)
		return

	case hasP && hasS:
		P = pres * Kilo
		T, err = o.query(eos.Temp, eos.Pres, P, eos.Entr, entr*Kilo)
		return

	case hasH && hasS:
		T, err = o.query(eos.Temp, eos.Enth, enth*Kilo, eos.Entr, entr*Kilo)
		if err != nil {
			return
		}
		P, err = o.query(eos.Pres, eos.Enth, enth*Kilo, eos.Entr, entr*Kilo)
		return
	}
	return 0, 0, &CombinationError{Given: given}
}

// populate derives all remaining properties from the resolved (T,P) point and
// converts the results back to engineering units
func (o *Calculator) populate(T, P float64) (sta *State, err error) {
	H, err := o.query(eos.Enth, eos.Temp, T, eos.Pres, P)
	if err != nil {
		return
	}
	S, err := o.query(eos.Entr, eos.Temp, T, eos.Pres, P)
	if err != nil {
		return
	}
	D, err := o.query(eos.Dens, eos.Temp, T, eos.Pres, P)
	if err != nil {
		return
	}
	U, err := o.query(eos.Ienergy, eos.Temp, T, eos.Pres, P)
	if err != nil {
		return
	}
	sta = &State{
		Temp:      T - KelvinShift,
		Pres:      P / Kilo,
		Enthalpy:  H / Kilo,
		Entropy:   S / Kilo,
		Density:   D,
		SpecVol:   1.0 / D,
		IntEnergy: U / Kilo,
	}

	// quality is best-effort: engines report single-phase states either with an
	// error or with a sentinel outside [0,1]; both mean "absent"
	if q, qerr := o.eng.Props(eos.Quality, eos.Temp, T, eos.Pres, P, o.fl.Name); qerr == nil {
		if q >= 0 && q <= 1 {
			sta.Quality = &q
		}
	}
	return
}

// query performs one engine query, normalising any engine failure into a CalcError
func (o *Calculator) query(output, name1 string, value1 float64, name2 string, value2 float64) (float64, error) {
	res, err := o.eng.Props(output, name1, value1, name2, value2, o.fl.Name)
	if err != nil {
		return 0, &CalcError{Fluid: o.fl.Key, Reason: err}
	}
	return res, nil
}
