// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the gothermo command line interface
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cpmech/gothermo/eos"

	// register property engines
	_ "github.com/cpmech/gothermo/ana"
	_ "github.com/cpmech/gothermo/eos/coolprop"
)

var engineName string

var rootCmd = &cobra.Command{
	Use:   "gothermo",
	Short: "thermodynamic property & process calculator",
	Long: `gothermo computes thermodynamic state properties for a small set of fluids
(water, air, r134a, r22, co2) and derives elementary process analyses from them.
The equations of state are solved by a property engine; the default engine binds
to the CoolProp library. Failures print to standard error and exit with code 1.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&engineName, "engine", "coolprop", "property engine (coolprop, ana)")
}

// Execute runs the command line interface
func Execute() error {
	return rootCmd.Execute()
}

// newEngine allocates the selected property engine
func newEngine() (eos.Solver, error) {
	return eos.New(engineName)
}
