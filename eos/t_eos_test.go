// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// constSolver answers every query with a fixed value
type constSolver struct {
	val float64
}

func (o *constSolver) Props(output, name1 string, value1 float64, name2 string, value2 float64, fluid string) (float64, error) {
	return o.val, nil
}

func Test_eos01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eos01. engine factory")

	Register("const", func() Solver { return &constSolver{val: 123} })
	solver, err := New("const")
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	res, err := solver.Props(Temp, Pres, 101325, Enth, 2e6, "Water")
	if err != nil {
		tst.Errorf("Props failed: %v", err)
		return
	}
	chk.Float64(tst, "res", 1e-17, res, 123)
}

func Test_eos02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eos02. unknown engine")

	_, err := New("doesnotexist")
	if err == nil {
		tst.Errorf("New should have failed")
		return
	}
	io.Pforan("err = %v\n", err)
}
