// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gothermo/ana"
	"github.com/cpmech/gothermo/fluid"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_prop01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prop01. water: liquid state from temp+pressure")

	calc, err := New("water", ana.NewSolver())
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	sta, err := calc.GetTP(25, 101.325)
	if err != nil {
		tst.Errorf("GetTP failed: %v", err)
		return
	}
	io.Pforan("sta = %+v\n", sta)
	chk.Float64(tst, "T", 1e-12, sta.Temp, 25)
	chk.Float64(tst, "P", 1e-12, sta.Pres, 101.325)
	chk.Float64(tst, "h", 1e-10, sta.Enthalpy, 105.4)
	chk.Float64(tst, "ρ", 1e-10, sta.Density, 958.4)
	chk.Float64(tst, "v = 1/ρ", 1e-15, sta.SpecVol, 1.0/sta.Density)
	chk.Float64(tst, "u = h - P·v", 1e-10, sta.IntEnergy, sta.Enthalpy-sta.Pres*sta.SpecVol)
	if sta.Quality != nil {
		tst.Errorf("quality should be absent for a compressed liquid, got %v", *sta.Quality)
	}
}

func Test_prop02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prop02. water: saturated state carries quality")

	calc, err := New("water", ana.NewSolver())
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}

	// exactly on the saturation line
	sta, err := calc.GetTP(100, 101.325)
	if err != nil {
		tst.Errorf("GetTP failed: %v", err)
		return
	}
	io.Pforan("sta = %+v\n", sta)
	if sta.Quality == nil {
		tst.Errorf("quality should be present on the saturation line")
		return
	}
	chk.Float64(tst, "q", 1e-14, *sta.Quality, 1.0)
	chk.Float64(tst, "h = hg", 1e-8, sta.Enthalpy, 2678.0)

	// temp+quality resolves the saturation pressure
	sta, err = calc.GetTQ(100, 0.5)
	if err != nil {
		tst.Errorf("GetTQ failed: %v", err)
		return
	}
	chk.Float64(tst, "P from (T,q)", 1e-9, sta.Pres, 101.325)
	if sta.Quality == nil {
		tst.Errorf("quality should be present for a two-phase input")
	}
}

func Test_prop03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prop03. water: roundtrips through derived pairs")

	calc, err := New("water", ana.NewSolver())
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}

	// compressed liquid reference point
	ref, err := calc.GetTP(150, 500)
	if err != nil {
		tst.Errorf("GetTP failed: %v", err)
		return
	}
	if ref.Quality != nil {
		tst.Errorf("quality should be absent, got %v", *ref.Quality)
	}

	// pressure+enthalpy reproduces the temperature
	sta, err := calc.GetPH(500, ref.Enthalpy)
	if err != nil {
		tst.Errorf("GetPH failed: %v", err)
		return
	}
	io.Pforan("T(P,h) = %v °C\n", sta.Temp)
	chk.Float64(tst, "T from (P,h)", 1e-3, sta.Temp, 150)

	// pressure+entropy reproduces the temperature
	sta, err = calc.GetPS(500, ref.Entropy)
	if err != nil {
		tst.Errorf("GetPS failed: %v", err)
		return
	}
	chk.Float64(tst, "T from (P,s)", 1e-3, sta.Temp, 150)
}

func Test_prop04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prop04. air: enthalpy+entropy fixes the full state")

	calc, err := New("air", ana.NewSolver())
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	ref, err := calc.GetTP(25, 100)
	if err != nil {
		tst.Errorf("GetTP failed: %v", err)
		return
	}
	sta, err := calc.GetHS(ref.Enthalpy, ref.Entropy)
	if err != nil {
		tst.Errorf("GetHS failed: %v", err)
		return
	}
	io.Pforan("T = %v °C  P = %v kPa\n", sta.Temp, sta.Pres)
	chk.Float64(tst, "T from (h,s)", 1e-8, sta.Temp, 25)
	chk.Float64(tst, "P from (h,s)", 1e-6, sta.Pres, 100)
	if sta.Quality != nil {
		tst.Errorf("quality should be absent for a gas, got %v", *sta.Quality)
	}
}

func Test_prop05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prop05. input validation")

	// unknown fluids fail before any engine query
	_, err := New("helium", nil)
	if err == nil {
		tst.Errorf("New should have failed for an unsupported fluid")
		return
	}
	var uerr *fluid.UnsupportedError
	if !errors.As(err, &uerr) {
		tst.Errorf("error should be an UnsupportedError, got %v", err)
	}

	calc, err := New("water", ana.NewSolver())
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}

	// unsupported pairs
	var cerr *CombinationError
	_, err = calc.Get(dbf.Params{
		&dbf.P{N: KeyTemp, V: 100},
		&dbf.P{N: KeyEnthalpy, V: 2000},
	})
	if !errors.As(err, &cerr) {
		tst.Errorf("temp+enthalpy should give a CombinationError, got %v", err)
	}

	// too few inputs
	_, err = calc.Get(dbf.Params{&dbf.P{N: KeyTemp, V: 100}})
	if !errors.As(err, &cerr) {
		tst.Errorf("a single input should give a CombinationError, got %v", err)
	}

	// unknown parameter name
	_, err = calc.Get(dbf.Params{
		&dbf.P{N: KeyTemp, V: 100},
		&dbf.P{N: "volume", V: 1},
	})
	if !errors.As(err, &cerr) {
		tst.Errorf("an unknown input name should give a CombinationError, got %v", err)
	}
}

func Test_prop06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prop06. engine failures surface as CalcError")

	calc, err := New("air", ana.NewSolver())
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}

	// air has no two-phase region: temp+quality cannot be resolved
	_, err = calc.GetTQ(25, 0.5)
	if err == nil {
		tst.Errorf("GetTQ should have failed for air")
		return
	}
	var qerr *CalcError
	if !errors.As(err, &qerr) {
		tst.Errorf("error should be a CalcError, got %v", err)
		return
	}
	io.Pforan("err = %v\n", qerr)
	chk.String(tst, qerr.Fluid, "air")
	if qerr.Unwrap() == nil {
		tst.Errorf("CalcError should wrap the engine error")
	}
}
