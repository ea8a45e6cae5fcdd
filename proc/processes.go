// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proc

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gothermo/prop"
)

// IsentropicResult holds the outcome of an isentropic compression or expansion
type IsentropicResult struct {
	Kind        Kind        `json:"process_type"`      // compression or expansion
	Efficiency  float64     `json:"efficiency"`        // isentropic efficiency [-]
	Inlet       *prop.State `json:"inlet"`             // inlet state
	OutletIdeal *prop.State `json:"outlet_isentropic"` // ideal outlet at inlet entropy
	OutletReal  *prop.State `json:"outlet_actual"`     // actual outlet after efficiency
	Work        float64     `json:"work"`              // specific work = h_out,actual - h_in [kJ/kg]
}

// Isentropic analyses a compression or expansion between inletPres and outletPres
// [kPa] starting at inletTemp [°C]. The ideal outlet lies at the inlet entropy; the
// actual outlet enthalpy follows from the isentropic efficiency:
//
//	compression:  h_act = h_in + (h_ideal - h_in)/η
//	expansion:    h_act = h_in - (h_in - h_ideal)・η
//
// With η = 1 the actual outlet equals the ideal one up to engine precision. The
// kind selects the efficiency branch only; it does not change the property math.
func (o *Analyzer) Isentropic(inletTemp, inletPres, outletPres, efficiency float64, kind Kind) (res *IsentropicResult, err error) {

	// validate arguments before any property solve
	if kind != Compression && kind != Expansion {
		return nil, &ArgError{Msg: io.Sf("process kind must be %q or %q; got %q", Compression, Expansion, kind)}
	}
	if err = checkTemp("inlet temperature", inletTemp); err != nil {
		return
	}
	if err = checkPressure("inlet pressure", inletPres); err != nil {
		return
	}
	if err = checkPressure("outlet pressure", outletPres); err != nil {
		return
	}
	if math.IsNaN(efficiency) || efficiency <= 0 || efficiency > 1 {
		return nil, &ArgError{Msg: io.Sf("isentropic efficiency must be within (0,1]; got %g", efficiency)}
	}

	// inlet and ideal outlet at the same entropy
	inlet, err := o.calc.GetTP(inletTemp, inletPres)
	if err != nil {
		return
	}
	ideal, err := o.calc.GetPS(outletPres, inlet.Entropy)
	if err != nil {
		return
	}

	// actual outlet from the efficiency definition
	var hAct float64
	if kind == Compression {
		hAct = inlet.Enthalpy + (ideal.Enthalpy-inlet.Enthalpy)/efficiency
	} else {
		hAct = inlet.Enthalpy - (inlet.Enthalpy-ideal.Enthalpy)*efficiency
	}
	actual, err := o.calc.GetPH(outletPres, hAct)
	if err != nil {
		return
	}

	return &IsentropicResult{
		Kind:        kind,
		Efficiency:  efficiency,
		Inlet:       inlet,
		OutletIdeal: ideal,
		OutletReal:  actual,
		Work:        actual.Enthalpy - inlet.Enthalpy,
	}, nil
}

// IsobaricResult holds the outcome of a constant-pressure process
type IsobaricResult struct {
	Pressure float64     `json:"pressure"`      // process pressure [kPa]
	Inlet    *prop.State `json:"inlet"`         // inlet state
	Outlet   *prop.State `json:"outlet"`        // outlet state
	Heat     float64     `json:"heat_transfer"` // specific heat transfer = h_out - h_in [kJ/kg]
}

// Isobaric analyses heating or cooling at constant pressure [kPa] from inletTemp to
// outletTemp [°C]
func (o *Analyzer) Isobaric(inletTemp, pressure, outletTemp float64) (res *IsobaricResult, err error) {
	if err = checkTemp("inlet temperature", inletTemp); err != nil {
		return
	}
	if err = checkTemp("outlet temperature", outletTemp); err != nil {
		return
	}
	if err = checkPressure("pressure", pressure); err != nil {
		return
	}
	inlet, err := o.calc.GetTP(inletTemp, pressure)
	if err != nil {
		return
	}
	outlet, err := o.calc.GetTP(outletTemp, pressure)
	if err != nil {
		return
	}
	return &IsobaricResult{
		Pressure: pressure,
		Inlet:    inlet,
		Outlet:   outlet,
		Heat:     outlet.Enthalpy - inlet.Enthalpy,
	}, nil
}

// IsochoricResult holds the outcome of a constant-volume process
type IsochoricResult struct {
	SpecVol float64     `json:"specific_volume"` // inlet specific volume [m³/kg]
	Inlet   *prop.State `json:"inlet"`           // inlet state
	Outlet  *prop.State `json:"outlet"`          // outlet state
	Heat    float64     `json:"heat_transfer"`   // specific heat transfer = u_out - u_in [kJ/kg]
}

// Isochoric analyses heating or cooling at constant volume from inletTemp to
// outletTemp [°C] starting at inletPres [kPa]. The outlet pressure follows the
// ideal-gas proportionality P_out = P_in・(T_out/T_in) in absolute units; this is
// an approximation for real fluids, kept deliberately.
func (o *Analyzer) Isochoric(inletTemp, inletPres, outletTemp float64) (res *IsochoricResult, err error) {
	if err = checkTemp("inlet temperature", inletTemp); err != nil {
		return
	}
	if err = checkTemp("outlet temperature", outletTemp); err != nil {
		return
	}
	if err = checkPressure("inlet pressure", inletPres); err != nil {
		return
	}
	inlet, err := o.calc.GetTP(inletTemp, inletPres)
	if err != nil {
		return
	}
	outletPres := inletPres * (outletTemp + prop.KelvinShift) / (inletTemp + prop.KelvinShift)
	outlet, err := o.calc.GetTP(outletTemp, outletPres)
	if err != nil {
		return
	}
	return &IsochoricResult{
		SpecVol: inlet.SpecVol,
		Inlet:   inlet,
		Outlet:  outlet,
		Heat:    outlet.IntEnergy - inlet.IntEnergy,
	}, nil
}

// ThrottlingResult holds the outcome of an isenthalpic throttling process
type ThrottlingResult struct {
	Enthalpy float64     `json:"enthalpy"`         // conserved enthalpy [kJ/kg]
	Inlet    *prop.State `json:"inlet"`            // inlet state
	Outlet   *prop.State `json:"outlet"`           // outlet state
	TempDrop float64     `json:"temperature_drop"` // T_in - T_out [°C]
}

// Throttling analyses an isenthalpic expansion (valve, expansion device) from
// (inletTemp [°C], inletPres [kPa]) down to outletPres [kPa]. The outlet state lies
// at the inlet enthalpy by construction.
func (o *Analyzer) Throttling(inletTemp, inletPres, outletPres float64) (res *ThrottlingResult, err error) {
	if err = checkTemp("inlet temperature", inletTemp); err != nil {
		return
	}
	if err = checkPressure("inlet pressure", inletPres); err != nil {
		return
	}
	if err = checkPressure("outlet pressure", outletPres); err != nil {
		return
	}
	inlet, err := o.calc.GetTP(inletTemp, inletPres)
	if err != nil {
		return
	}
	outlet, err := o.calc.GetPH(outletPres, inlet.Enthalpy)
	if err != nil {
		return
	}
	return &ThrottlingResult{
		Enthalpy: inlet.Enthalpy,
		Inlet:    inlet,
		Outlet:   outlet,
		TempDrop: inlet.Temp - outlet.Temp,
	}, nil
}

// PolytropicResult holds the outcome of a polytropic process
type PolytropicResult struct {
	Index  float64     `json:"polytropic_index"` // polytropic index n [-]
	Inlet  *prop.State `json:"inlet"`            // inlet state
	Outlet *prop.State `json:"outlet"`           // outlet state
	Work   float64     `json:"work"`             // specific work [kJ/kg]
}

// isothermalTol is the band around n = 1 where the isothermal work formula is used
// to avoid the division by n - 1
const isothermalTol = 0.001

// Polytropic analyses a process following P・vⁿ = constant from (inletTemp [°C],
// inletPres [kPa]) to outletPres [kPa]. The outlet temperature follows the
// ideal-gas relation T_out = T_in・(P_out/P_in)^((n-1)/n) in absolute units; this is
// an approximation for real fluids, kept deliberately. The work is
//
//	|n-1| < 0.001:  w = P_in・v_in・ln(P_out/P_in)              (isothermal limit)
//	otherwise:      w = n/(n-1)・(P_out・v_out - P_in・v_in)
//
// with pressures in kPa and volumes in m³/kg, so that w is in kJ/kg directly.
func (o *Analyzer) Polytropic(inletTemp, inletPres, outletPres, n float64) (res *PolytropicResult, err error) {
	if err = checkTemp("inlet temperature", inletTemp); err != nil {
		return
	}
	if err = checkPressure("inlet pressure", inletPres); err != nil {
		return
	}
	if err = checkPressure("outlet pressure", outletPres); err != nil {
		return
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return nil, &ArgError{Msg: io.Sf("polytropic index must be positive; got %g", n)}
	}
	inlet, err := o.calc.GetTP(inletTemp, inletPres)
	if err != nil {
		return
	}
	ratio := math.Pow(outletPres/inletPres, (n-1.0)/n)
	outletTemp := (inletTemp+prop.KelvinShift)*ratio - prop.KelvinShift
	outlet, err := o.calc.GetTP(outletTemp, outletPres)
	if err != nil {
		return
	}
	var work float64
	if math.Abs(n-1.0) < isothermalTol {
		work = inletPres * inlet.SpecVol * math.Log(outletPres/inletPres)
	} else {
		work = n / (n - 1.0) * (outletPres*outlet.SpecVol - inletPres*inlet.SpecVol)
	}
	return &PolytropicResult{
		Index:  n,
		Inlet:  inlet,
		Outlet: outlet,
		Work:   work,
	}, nil
}
