// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proc

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gothermo/ana"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_isentropic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("isentropic01. air compression: ideal and irreversible")

	an, err := New("air", ana.NewSolver())
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}

	// η = 1: actual outlet coincides with the ideal one
	res, err := an.Isentropic(25, 100, 800, 1.0, Compression)
	if err != nil {
		tst.Errorf("Isentropic failed: %v", err)
		return
	}
	io.Pforan("T_ideal = %v °C  w = %v kJ/kg\n", res.OutletIdeal.Temp, res.Work)
	chk.Float64(tst, "s conserved", 1e-9, res.OutletIdeal.Entropy, res.Inlet.Entropy)
	chk.Float64(tst, "h_act = h_ideal", 1e-9, res.OutletReal.Enthalpy, res.OutletIdeal.Enthalpy)
	chk.Float64(tst, "w = Δh", 1e-12, res.Work, res.OutletReal.Enthalpy-res.Inlet.Enthalpy)
	if res.Work <= 0 {
		tst.Errorf("compression work should be positive, got %v", res.Work)
	}
	wIdeal := res.Work

	// η = 0.85: more work in, hotter actual outlet
	res, err = an.Isentropic(25, 100, 800, 0.85, Compression)
	if err != nil {
		tst.Errorf("Isentropic failed: %v", err)
		return
	}
	chk.Float64(tst, "w = w_s/η", 1e-9, res.Work, wIdeal/0.85)
	if res.OutletReal.Temp <= res.OutletIdeal.Temp {
		tst.Errorf("actual outlet %v °C should be hotter than ideal %v °C",
			res.OutletReal.Temp, res.OutletIdeal.Temp)
	}
}

func Test_isentropic02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("isentropic02. air expansion delivers work")

	an, err := New("air", ana.NewSolver())
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	res, err := an.Isentropic(400, 500, 100, 0.9, Expansion)
	if err != nil {
		tst.Errorf("Isentropic failed: %v", err)
		return
	}
	io.Pforan("w = %v kJ/kg\n", res.Work)
	if res.Work >= 0 {
		tst.Errorf("expansion work should be negative, got %v", res.Work)
	}
	// irreversibility leaves the actual outlet above the ideal one
	if res.OutletReal.Enthalpy <= res.OutletIdeal.Enthalpy {
		tst.Errorf("actual outlet enthalpy %v should exceed ideal %v",
			res.OutletReal.Enthalpy, res.OutletIdeal.Enthalpy)
	}
}

func Test_isobaric01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("isobaric01. air heating at constant pressure")

	an, err := New("air", ana.NewSolver())
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	res, err := an.Isobaric(25, 100, 125)
	if err != nil {
		tst.Errorf("Isobaric failed: %v", err)
		return
	}
	io.Pforan("q = %v kJ/kg\n", res.Heat)
	chk.Float64(tst, "q = cp·ΔT", 1e-9, res.Heat, 100.5)
	chk.Float64(tst, "P conserved", 1e-12, res.Outlet.Pres, res.Inlet.Pres)
}

func Test_isochoric01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("isochoric01. air heating at constant volume")

	an, err := New("air", ana.NewSolver())
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	res, err := an.Isochoric(25, 100, 125)
	if err != nil {
		tst.Errorf("Isochoric failed: %v", err)
		return
	}
	io.Pforan("q = %v kJ/kg  P_out = %v kPa\n", res.Heat, res.Outlet.Pres)
	chk.Float64(tst, "q = cv·ΔT", 1e-9, res.Heat, 71.7942)
	chk.Float64(tst, "v conserved", 1e-9, res.Outlet.SpecVol, res.Inlet.SpecVol)
	chk.Float64(tst, "P ∝ T", 1e-9, res.Outlet.Pres, 100*(125+273.15)/(25+273.15))
}

func Test_throttle01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("throttle01. single-phase throttling conserves enthalpy")

	// ideal gas: no Joule-Thomson effect, temperature is unchanged
	an, err := New("air", ana.NewSolver())
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	res, err := an.Throttling(25, 800, 100)
	if err != nil {
		tst.Errorf("Throttling failed: %v", err)
		return
	}
	chk.Float64(tst, "h conserved", 1e-9, res.Outlet.Enthalpy, res.Inlet.Enthalpy)
	chk.Float64(tst, "ΔT air", 1e-9, res.TempDrop, 0)

	// superheated steam stays superheated after the drop
	an, err = New("water", ana.NewSolver())
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	res, err = an.Throttling(200, 500, 200)
	if err != nil {
		tst.Errorf("Throttling failed: %v", err)
		return
	}
	io.Pforan("T_out = %v °C\n", res.Outlet.Temp)
	chk.Float64(tst, "h conserved steam", 1e-6, res.Outlet.Enthalpy, res.Inlet.Enthalpy)
	if res.Outlet.Quality != nil {
		tst.Errorf("outlet should be superheated, got quality %v", *res.Outlet.Quality)
	}
}

func Test_throttle02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("throttle02. refrigerant flashes into the dome")

	an, err := New("r134a", ana.NewSolver())
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	res, err := an.Throttling(30, 800, 200)
	if err != nil {
		tst.Errorf("Throttling failed: %v", err)
		return
	}
	io.Pforan("T_out = %v °C  ΔT = %v\n", res.Outlet.Temp, res.TempDrop)
	if res.TempDrop <= 0 {
		tst.Errorf("flashing should cool the refrigerant, got ΔT = %v", res.TempDrop)
	}
	if res.Outlet.Quality == nil {
		tst.Errorf("outlet should lie inside the two-phase dome")
	}
	chk.Float64(tst, "h recorded", 1e-12, res.Enthalpy, res.Inlet.Enthalpy)
}

func Test_polytropic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polytropic01. air compression for several indices")

	an, err := New("air", ana.NewSolver())
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}

	// general formula
	res, err := an.Polytropic(25, 100, 300, 1.3)
	if err != nil {
		tst.Errorf("Polytropic failed: %v", err)
		return
	}
	io.Pforan("n = 1.3:    T_out = %v °C  w = %v kJ/kg\n", res.Outlet.Temp, res.Work)
	chk.Float64(tst, "w general", 1e-9, res.Work,
		1.3/0.3*(300*res.Outlet.SpecVol-100*res.Inlet.SpecVol))
	if res.Outlet.Temp <= res.Inlet.Temp {
		tst.Errorf("compression with n > 1 should heat the gas")
	}

	// the isothermal branch joins the general one continuously around n = 1
	iso, err := an.Polytropic(25, 100, 300, 1.0001)
	if err != nil {
		tst.Errorf("Polytropic failed: %v", err)
		return
	}
	gen, err := an.Polytropic(25, 100, 300, 1.002)
	if err != nil {
		tst.Errorf("Polytropic failed: %v", err)
		return
	}
	io.Pforan("n = 1.0001: w = %v kJ/kg\n", iso.Work)
	io.Pforan("n = 1.002:  w = %v kJ/kg\n", gen.Work)
	chk.Float64(tst, "w isothermal limit", 1e-6, iso.Work,
		100*iso.Inlet.SpecVol*math.Log(3.0))
	chk.Float64(tst, "branch continuity", 0.2, iso.Work, gen.Work)
}

func Test_procargs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("procargs01. argument validation")

	an, err := New("air", ana.NewSolver())
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	var aerr *ArgError
	cases := []struct {
		msg string
		err error
	}{
		{"bad kind", func() error { _, e := an.Isentropic(25, 100, 800, 1, "mixing"); return e }()},
		{"zero efficiency", func() error { _, e := an.Isentropic(25, 100, 800, 0, Compression); return e }()},
		{"efficiency above one", func() error { _, e := an.Isentropic(25, 100, 800, 1.2, Compression); return e }()},
		{"negative pressure", func() error { _, e := an.Isentropic(25, -100, 800, 1, Compression); return e }()},
		{"NaN pressure", func() error { _, e := an.Isobaric(25, math.NaN(), 125); return e }()},
		{"zero pressure", func() error { _, e := an.Throttling(25, 800, 0); return e }()},
		{"negative index", func() error { _, e := an.Polytropic(25, 100, 300, -1.3); return e }()},
		{"absolute zero inlet", func() error { _, e := an.Isochoric(-273.15, 100, 125); return e }()},
		{"below absolute zero", func() error { _, e := an.Polytropic(-300, 100, 300, 1.3); return e }()},
		{"NaN temperature", func() error { _, e := an.Isobaric(math.NaN(), 100, 125); return e }()},
		{"outlet below absolute zero", func() error { _, e := an.Isobaric(25, 100, -280); return e }()},
		{"cold isentropic inlet", func() error { _, e := an.Isentropic(-280, 100, 800, 1, Compression); return e }()},
		{"cold throttling inlet", func() error { _, e := an.Throttling(math.Inf(1), 800, 100); return e }()},
	}
	for _, c := range cases {
		if !errors.As(c.err, &aerr) {
			tst.Errorf("%s should give an ArgError, got %v", c.msg, c.err)
		}
	}
}
