// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gothermo/eos"
)

// TwoPhase implements a condensable fluid assembled from an incompressible liquid,
// a perfect-gas vapour, and a Clausius-Clapeyron saturation curve with constant
// latent heat:
//
//	Psat(T) = Pref・exp[-(hfg/Rv)・(1/T - 1/Tb)]
//	liquid:     h = cl・(T - Tref)         s = cl・ln(T/Tref)       ρ = ρl
//	two-phase:  h = hf + q・hfg            s = sf + q・hfg/Tsat     v = (1-q)・vf + q・vg
//	vapour:     h = hg(P) + cpv・(T-Tsat)  s = sg(P) + cpv・ln(T/Tsat)   ρ = P/(Rv・T)
//
// On the saturation line queried by (T,P) the state is taken at the saturated-vapour
// branch (q = 1). Single-phase quality queries return -1, the sentinel CoolProp uses.
type TwoPhase struct {
	RhoL float64 // liquid density [kg/m³]
	Cl   float64 // liquid specific heat [J/(kg・K)]
	Rv   float64 // vapour specific gas constant [J/(kg・K)]
	Cpv  float64 // vapour specific heat at constant pressure [J/(kg・K)]
	Hfg  float64 // latent heat of vaporisation, taken constant [J/kg]
	Tb   float64 // boiling temperature at Pref [K]
	Pref float64 // reference pressure [Pa]
	Tref float64 // datum temperature for h and s [K]
}

// NewWater returns the reference model of water/steam (constants near 100°C)
func NewWater() *TwoPhase {
	return &TwoPhase{
		RhoL: 958.4,     // [kg/m³]
		Cl:   4216.0,    // [J/(kg・K)]
		Rv:   461.52,    // [J/(kg・K)]
		Cpv:  1996.0,    // [J/(kg・K)]
		Hfg:  2.2564e6,  // [J/kg]
		Tb:   373.15,    // [K]
		Pref: 101325.0,  // [Pa]
		Tref: 273.15,    // [K]
	}
}

// NewR134a returns the reference model of refrigerant R-134a (constants near -26°C)
func NewR134a() *TwoPhase {
	return &TwoPhase{
		RhoL: 1294.8,   // [kg/m³]
		Cl:   1341.0,   // [J/(kg・K)]
		Rv:   81.49,    // [J/(kg・K)]
		Cpv:  851.0,    // [J/(kg・K)]
		Hfg:  2.170e5,  // [J/kg]
		Tb:   247.08,   // [K]
		Pref: 101325.0, // [Pa]
		Tref: 173.15,   // [K]
	}
}

// satTol is the relative tolerance to detect (T,P) landing on the saturation line
const satTol = 1e-9

// Psat returns the saturation pressure at T
func (o *TwoPhase) Psat(T float64) float64 {
	return o.Pref * math.Exp(-(o.Hfg/o.Rv)*(1.0/T-1.0/o.Tb))
}

// Tsat returns the saturation temperature at P
func (o *TwoPhase) Tsat(P float64) float64 {
	return 1.0 / (1.0/o.Tb - (o.Rv/o.Hfg)*math.Log(P/o.Pref))
}

// hf returns the saturated-liquid enthalpy at T
func (o *TwoPhase) hf(T float64) float64 { return o.Cl * (T - o.Tref) }

// sf returns the saturated-liquid entropy at T
func (o *TwoPhase) sf(T float64) float64 { return o.Cl * math.Log(T/o.Tref) }

// state is a resolved internal state. q < 0 flags a single-phase state.
type state struct {
	T float64 // temperature [K]
	P float64 // pressure [Pa]
	q float64 // quality [-]; -1 for single phase
}

// Props implements the Model interface
func (o *TwoPhase) Props(output, name1 string, value1 float64, name2 string, value2 float64) (float64, error) {
	sta, err := o.resolve(pair(name1, value1, name2, value2))
	if err != nil {
		return 0, err
	}
	switch output {
	case eos.Temp:
		return sta.T, nil
	case eos.Pres:
		return sta.P, nil
	case eos.Enth:
		return o.enthalpy(sta), nil
	case eos.Entr:
		return o.entropy(sta), nil
	case eos.Dens:
		return 1.0 / o.volume(sta), nil
	case eos.Ienergy:
		return o.enthalpy(sta) - sta.P*o.volume(sta), nil
	case eos.Quality:
		return sta.q, nil
	}
	return 0, chk.Err("two-phase model: output %q is not available", output)
}

// resolve finds the internal state fixed by the given pair
func (o *TwoPhase) resolve(in map[string]float64) (sta state, err error) {
	t, hasT := in[eos.Temp]
	p, hasP := in[eos.Pres]
	h, hasH := in[eos.Enth]
	s, hasS := in[eos.Entr]
	q, hasQ := in[eos.Quality]
	switch {

	// temperature and pressure
	case hasT && hasP:
		Ts := o.Tsat(p)
		if math.Abs(t-Ts) <= satTol*Ts {
			return state{T: Ts, P: p, q: 1.0}, nil // saturated-vapour branch
		}
		return state{T: t, P: p, q: -1}, nil

	// saturation line: temperature or pressure with quality
	case hasT && hasQ:
		if q < 0 || q > 1 {
			return sta, chk.Err("two-phase model: quality %g is outside [0,1]", q)
		}
		return state{T: t, P: o.Psat(t), q: q}, nil
	case hasP && hasQ:
		if q < 0 || q > 1 {
			return sta, chk.Err("two-phase model: quality %g is outside [0,1]", q)
		}
		return state{T: o.Tsat(p), P: p, q: q}, nil

	// pressure and enthalpy
	case hasP && hasH:
		Ts := o.Tsat(p)
		hfv := o.hf(Ts)
		hgv := hfv + o.Hfg
		switch {
		case h < hfv:
			return state{T: o.Tref + h/o.Cl, P: p, q: -1}, nil
		case h > hgv:
			return state{T: Ts + (h-hgv)/o.Cpv, P: p, q: -1}, nil
		}
		return state{T: Ts, P: p, q: (h - hfv) / o.Hfg}, nil

	// pressure and entropy
	case hasP && hasS:
		Ts := o.Tsat(p)
		sfv := o.sf(Ts)
		sgv := sfv + o.Hfg/Ts
		switch {
		case s < sfv:
			return state{T: o.Tref * math.Exp(s/o.Cl), P: p, q: -1}, nil
		case s > sgv:
			return state{T: Ts * math.Exp((s-sgv)/o.Cpv), P: p, q: -1}, nil
		}
		return state{T: Ts, P: p, q: (s - sfv) / (o.Hfg / Ts)}, nil
	}
	return sta, chk.Err("two-phase model: cannot resolve state from %v", in)
}

// enthalpy computes h of a resolved state
func (o *TwoPhase) enthalpy(sta state) float64 {
	Ts := o.Tsat(sta.P)
	if sta.q >= 0 {
		return o.hf(Ts) + sta.q*o.Hfg
	}
	if sta.T < Ts {
		return o.hf(sta.T)
	}
	return o.hf(Ts) + o.Hfg + o.Cpv*(sta.T-Ts)
}

// entropy computes s of a resolved state
func (o *TwoPhase) entropy(sta state) float64 {
	Ts := o.Tsat(sta.P)
	if sta.q >= 0 {
		return o.sf(Ts) + sta.q*o.Hfg/Ts
	}
	if sta.T < Ts {
		return o.sf(sta.T)
	}
	return o.sf(Ts) + o.Hfg/Ts + o.Cpv*math.Log(sta.T/Ts)
}

// volume computes the specific volume of a resolved state
func (o *TwoPhase) volume(sta state) float64 {
	Ts := o.Tsat(sta.P)
	vf := 1.0 / o.RhoL
	if sta.q >= 0 {
		vg := o.Rv * Ts / sta.P
		return (1.0-sta.q)*vf + sta.q*vg
	}
	if sta.T < Ts {
		return vf
	}
	return o.Rv * sta.T / sta.P
}
