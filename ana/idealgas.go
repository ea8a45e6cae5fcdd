// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gothermo/eos"
)

// IdealGas implements a perfect gas with constant specific heats:
//
//	ρ = P/(R・T)
//	h = cp・T                             datum: h = 0 at T = 0
//	u = (cp - R)・T
//	s = cp・ln(T/Tref) - R・ln(P/Pref)    datum: s = 0 at (Tref,Pref)
//
// All property pairs except those involving quality are analytically invertible;
// there is no two-phase region, thus quality queries return an error.
type IdealGas struct {
	R    float64 // specific gas constant [J/(kg・K)]
	Cp   float64 // specific heat at constant pressure [J/(kg・K)]
	Tref float64 // entropy datum temperature [K]
	Pref float64 // entropy datum pressure [Pa]
}

// NewAir returns the reference model of dry air
func NewAir() *IdealGas {
	return &IdealGas{R: 287.058, Cp: 1005.0, Tref: 273.15, Pref: 101325.0}
}

// NewCO2 returns the reference model of carbon dioxide
func NewCO2() *IdealGas {
	return &IdealGas{R: 188.924, Cp: 846.0, Tref: 273.15, Pref: 101325.0}
}

// NewR22 returns the reference model of refrigerant R-22 (vapour phase only)
func NewR22() *IdealGas {
	return &IdealGas{R: 96.15, Cp: 660.0, Tref: 273.15, Pref: 101325.0}
}

// Props implements the Model interface
func (o *IdealGas) Props(output, name1 string, value1 float64, name2 string, value2 float64) (float64, error) {
	T, P, err := o.resolve(pair(name1, value1, name2, value2))
	if err != nil {
		return 0, err
	}
	switch output {
	case eos.Temp:
		return T, nil
	case eos.Pres:
		return P, nil
	case eos.Enth:
		return o.Cp * T, nil
	case eos.Entr:
		return o.entropy(T, P), nil
	case eos.Dens:
		return P / (o.R * T), nil
	case eos.Ienergy:
		return (o.Cp - o.R) * T, nil
	case eos.Quality:
		return 0, chk.Err("ideal gas has no two-phase region: quality is undefined")
	}
	return 0, chk.Err("ideal gas: output %q is not available", output)
}

// resolve finds the absolute temperature and pressure fixed by the given pair
func (o *IdealGas) resolve(in map[string]float64) (T, P float64, err error) {
	t, hasT := in[eos.Temp]
	p, hasP := in[eos.Pres]
	h, hasH := in[eos.Enth]
	s, hasS := in[eos.Entr]
	switch {
	case hasT && hasP:
		return t, p, nil
	case hasP && hasH:
		return h / o.Cp, p, nil
	case hasP && hasS:
		return o.Tref * math.Exp((s+o.R*math.Log(p/o.Pref))/o.Cp), p, nil
	case hasH && hasS:
		T = h / o.Cp
		P = o.Pref * math.Exp((o.Cp*math.Log(T/o.Tref)-s)/o.R)
		return T, P, nil
	}
	return 0, 0, chk.Err("ideal gas: cannot resolve state from %v", in)
}

// entropy computes s(T,P)
func (o *IdealGas) entropy(T, P float64) float64 {
	return o.Cp*math.Log(T/o.Tref) - o.R*math.Log(P/o.Pref)
}
