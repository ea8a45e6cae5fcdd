// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gothermo/out"
	"github.com/cpmech/gothermo/prop"
)

var saturationCmd = &cobra.Command{
	Use:   "saturation",
	Short: "compute saturation properties at a temperature or pressure",
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

		var prms dbf.Params
		for _, name := range []string{prop.KeyTemp, prop.KeyPres} {
			if cmd.Flags().Changed(name) {
				val, _ := cmd.Flags().GetFloat64(name)
				prms = append(prms, &dbf.P{N: name, V: val})
			}
		}

		sat, err := calc.GetSaturation(prms)
		if err != nil {
			return err
		}
		io.Pf("%s", out.SaturationReport(io.Sf("%s saturation properties", fluidName), sat))
		return nil
	},
}

func init() {
	saturationCmd.Flags().String("fluid", "", "fluid: water, air, r134a, r22, co2")
	saturationCmd.Flags().Float64(prop.KeyTemp, 0, "saturation temperature [°C]")
	saturationCmd.Flags().Float64(prop.KeyPres, 0, "saturation pressure [kPa]")
	saturationCmd.MarkFlagRequired("fluid")
	rootCmd.AddCommand(saturationCmd)
}
