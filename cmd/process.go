// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gothermo/out"
	"github.com/cpmech/gothermo/proc"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "analyse an isentropic compression or expansion",
	Long: `Analyse an isentropic process between two pressures. Compression versus
expansion is selected automatically by comparing outlet to inlet pressure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fluidName, _ := cmd.Flags().GetString("fluid")
		inletTemp, _ := cmd.Flags().GetFloat64("inlet-temp")
		inletPres, _ := cmd.Flags().GetFloat64("inlet-pressure")
		outletPres, _ := cmd.Flags().GetFloat64("outlet-pressure")
		efficiency, _ := cmd.Flags().GetFloat64("efficiency")

		engine, err := newEngine()
		if err != nil {
			return err
		}
		analyzer, err := proc.New(fluidName, engine)
		if err != nil {
			return err
		}

		kind := proc.Compression
		if outletPres <= inletPres {
			kind = proc.Expansion
		}
		res, err := analyzer.Isentropic(inletTemp, inletPres, outletPres, efficiency, kind)
		if err != nil {
			return err
		}
		io.Pf("%s", out.IsentropicReport(res))
		return nil
	},
}

func init() {
	processCmd.Flags().String("fluid", "", "fluid: water, air, r134a, r22, co2")
	processCmd.Flags().Float64("inlet-temp", 0, "inlet temperature [°C]")
	processCmd.Flags().Float64("inlet-pressure", 0, "inlet pressure [kPa]")
	processCmd.Flags().Float64("outlet-pressure", 0, "outlet pressure [kPa]")
	processCmd.Flags().Float64("efficiency", 1.0, "isentropic efficiency (0-1]")
	processCmd.MarkFlagRequired("fluid")
	processCmd.MarkFlagRequired("inlet-temp")
	processCmd.MarkFlagRequired("inlet-pressure")
	processCmd.MarkFlagRequired("outlet-pressure")
	rootCmd.AddCommand(processCmd)
}
