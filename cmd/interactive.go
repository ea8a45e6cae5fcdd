// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gothermo/fluid"
	"github.com/cpmech/gothermo/out"
	"github.com/cpmech/gothermo/prop"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "prompt for fluid, temperature and pressure",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		sc := bufio.NewScanner(os.Stdin)

		io.PfWhite("\n=== gothermo - interactive mode ===\n\n")
		fluidName, err := ask(sc, io.Sf("select fluid %v", fluid.List()))
		if err != nil {
			return err
		}
		calc, err := prop.New(fluidName, engine)
		if err != nil {
			return err
		}
		temp, err := askFloat(sc, "temperature [°C]")
		if err != nil {
			return err
		}
		pres, err := askFloat(sc, "pressure [kPa]")
		if err != nil {
			return err
		}

		sta, err := calc.GetTP(temp, pres)
		if err != nil {
			return err
		}
		io.Pf("\n%s", out.StateReport(io.Sf("results for %s", strings.ToUpper(fluidName)), sta))
		return nil
	},
}

// ask prompts for one line of input
func ask(sc *bufio.Scanner, prompt string) (string, error) {
	io.Pf("%s: ", prompt)
	if !sc.Scan() {
		return "", chk.Err("input aborted")
	}
	return strings.TrimSpace(sc.Text()), nil
}

// askFloat prompts for one number
func askFloat(sc *bufio.Scanner, prompt string) (float64, error) {
	txt, err := ask(sc, prompt)
	if err != nil {
		return 0, err
	}
	val, err := strconv.ParseFloat(txt, 64)
	if err != nil {
		return 0, chk.Err("cannot parse %q as a number", txt)
	}
	return val, nil
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
