// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gothermo/out"
	"github.com/cpmech/gothermo/prop"
)

var propertyCmd = &cobra.Command{
	Use:   "property",
	Short: "compute thermodynamic properties from one pair of independent properties",
	Long: `Compute the complete thermodynamic state of a fluid from exactly one of the
supported pairs: --temp+--pressure, --temp+--quality, --pressure+--enthalpy,
--pressure+--entropy, or --enthalpy+--entropy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fluidName, _ := cmd.Flags().GetString("fluid")
		engine, err := newEngine()
		if err != nil {
			return err
		}
		calc, err := prop.New(fluidName, engine)
		if err != nil {
			return err
		}

		// collect the flags actually given
		var prms dbf.Params
		for _, name := range []string{prop.KeyTemp, prop.KeyPres, prop.KeyQuality, prop.KeyEnthalpy, prop.KeyEntropy} {
			if cmd.Flags().Changed(name) {
				val, _ := cmd.Flags().GetFloat64(name)
				prms = append(prms, &dbf.P{N: name, V: val})
			}
		}

		sta, err := calc.Get(prms)
		if err != nil {
			return err
		}
		io.Pf("%s", out.StateReport(io.Sf("%s properties", strings.ToUpper(fluidName)), sta))
		return nil
	},
}

func init() {
	propertyCmd.Flags().String("fluid", "", "fluid: water, air, r134a, r22, co2")
	propertyCmd.Flags().Float64(prop.KeyTemp, 0, "temperature [°C]")
	propertyCmd.Flags().Float64(prop.KeyPres, 0, "pressure [kPa]")
	propertyCmd.Flags().Float64(prop.KeyQuality, 0, "quality (0-1 for two-phase) [-]")
	propertyCmd.Flags().Float64(prop.KeyEnthalpy, 0, "enthalpy [kJ/kg]")
	propertyCmd.Flags().Float64(prop.KeyEntropy, 0, "entropy [kJ/(kg·K)]")
	propertyCmd.MarkFlagRequired("fluid")
	rootCmd.AddCommand(propertyCmd)
}
