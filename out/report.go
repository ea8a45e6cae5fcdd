// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out renders calculation results as plain-text reports
package out

import (
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gothermo/prop"
	"github.com/cpmech/gothermo/proc"
)

// row formats one property line of a report
func row(name string, value float64, unit string) string {
	return io.Sf("  %-22s%16.6g  %s\n", name, value, unit)
}

// header formats a report title with an underline
func header(title string) string {
	return io.Sf("%s\n%s\n", title, strings.Repeat("=", len(title)))
}

// StateReport renders one thermodynamic state
func StateReport(title string, sta *prop.State) string {
	var b strings.Builder
	b.WriteString(header(title))
	b.WriteString(row("temperature", sta.Temp, "°C"))
	b.WriteString(row("pressure", sta.Pres, "kPa"))
	b.WriteString(row("enthalpy", sta.Enthalpy, "kJ/kg"))
	b.WriteString(row("entropy", sta.Entropy, "kJ/(kg·K)"))
	b.WriteString(row("density", sta.Density, "kg/m³"))
	b.WriteString(row("specific volume", sta.SpecVol, "m³/kg"))
	b.WriteString(row("internal energy", sta.IntEnergy, "kJ/kg"))
	if sta.Quality != nil {
		b.WriteString(row("quality", *sta.Quality, "-"))
	}
	return b.String()
}

// SaturationReport renders saturation properties
func SaturationReport(title string, sat *prop.SatState) string {
	var b strings.Builder
	b.WriteString(header(title))
	b.WriteString(row("temperature", sat.Temp, "°C"))
	b.WriteString(row("pressure", sat.Pres, "kPa"))
	b.WriteString(row("h_f", sat.HF, "kJ/kg"))
	b.WriteString(row("h_g", sat.HG, "kJ/kg"))
	b.WriteString(row("h_fg (latent heat)", sat.HFG, "kJ/kg"))
	b.WriteString(row("s_f", sat.SF, "kJ/(kg·K)"))
	b.WriteString(row("s_g", sat.SG, "kJ/(kg·K)"))
	b.WriteString(row("s_fg", sat.SFG, "kJ/(kg·K)"))
	b.WriteString(row("v_f", sat.VF, "m³/kg"))
	b.WriteString(row("v_g", sat.VG, "m³/kg"))
	return b.String()
}

// IsentropicReport renders an isentropic process analysis
func IsentropicReport(res *proc.IsentropicResult) string {
	var b strings.Builder
	b.WriteString(header(io.Sf("isentropic %s", res.Kind)))
	b.WriteString(row("efficiency", res.Efficiency*100, "%"))
	b.WriteString(row("work", res.Work, "kJ/kg"))
	b.WriteString(row("inlet temperature", res.Inlet.Temp, "°C"))
	b.WriteString(row("outlet T (actual)", res.OutletReal.Temp, "°C"))
	b.WriteString(row("outlet T (isentropic)", res.OutletIdeal.Temp, "°C"))
	return b.String()
}

// IsobaricReport renders an isobaric process analysis
func IsobaricReport(res *proc.IsobaricResult) string {
	var b strings.Builder
	b.WriteString(header("isobaric process"))
	b.WriteString(row("pressure", res.Pressure, "kPa"))
	b.WriteString(row("heat transfer", res.Heat, "kJ/kg"))
	b.WriteString(row("inlet temperature", res.Inlet.Temp, "°C"))
	b.WriteString(row("outlet temperature", res.Outlet.Temp, "°C"))
	return b.String()
}

// IsochoricReport renders an isochoric process analysis
func IsochoricReport(res *proc.IsochoricResult) string {
	var b strings.Builder
	b.WriteString(header("isochoric process"))
	b.WriteString(row("specific volume", res.SpecVol, "m³/kg"))
	b.WriteString(row("heat transfer", res.Heat, "kJ/kg"))
	b.WriteString(row("inlet pressure", res.Inlet.Pres, "kPa"))
	b.WriteString(row("outlet pressure", res.Outlet.Pres, "kPa"))
	return b.String()
}

// ThrottlingReport renders a throttling process analysis
func ThrottlingReport(res *proc.ThrottlingResult) string {
	var b strings.Builder
	b.WriteString(header("throttling process"))
	b.WriteString(row("enthalpy", res.Enthalpy, "kJ/kg"))
	b.WriteString(row("temperature drop", res.TempDrop, "°C"))
	b.WriteString(row("inlet pressure", res.Inlet.Pres, "kPa"))
	b.WriteString(row("outlet pressure", res.Outlet.Pres, "kPa"))
	if res.Outlet.Quality != nil {
		b.WriteString(row("outlet quality", *res.Outlet.Quality, "-"))
	}
	return b.String()
}

// PolytropicReport renders a polytropic process analysis
func PolytropicReport(res *proc.PolytropicResult) string {
	var b strings.Builder
	b.WriteString(header(io.Sf("polytropic process (n = %g)", res.Index)))
	b.WriteString(row("work", res.Work, "kJ/kg"))
	b.WriteString(row("inlet temperature", res.Inlet.Temp, "°C"))
	b.WriteString(row("outlet temperature", res.Outlet.Temp, "°C"))
	return b.String()
}
