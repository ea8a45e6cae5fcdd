// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gothermo/eos"
	"github.com/cpmech/gothermo/inp"
	"github.com/cpmech/gothermo/out"
	"github.com/cpmech/gothermo/proc"
	"github.com/cpmech/gothermo/prop"
)

var batchCmd = &cobra.Command{
	Use:   "batch <scenario.ini>",
	Short: "run all jobs of a scenario file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sce, err := inp.Read(args[0])
		if err != nil {
			return err
		}
		engine, err := eos.New(sce.Engine)
		if err != nil {
			return err
		}
		for _, job := range sce.Jobs {
			report, err := runJob(sce.Fluid, engine, job)
			if err != nil {
				return chk.Err("job %q failed: %v", job.Name, err)
			}
			io.Pf("\n%s", report)
		}
		return nil
	},
}

// runJob executes one scenario job and renders its report
func runJob(fluidName string, engine eos.Solver, job *inp.Job) (report string, err error) {

	// property and saturation jobs
	switch job.Kind {
	case inp.KindProperty:
		calc, err := prop.New(fluidName, engine)
		if err != nil {
			return "", err
		}
		sta, err := calc.Get(job.Prms)
		if err != nil {
			return "", err
		}
		return out.StateReport(io.Sf("job %q: %s properties", job.Name, fluidName), sta), nil
	case inp.KindSaturation:
		calc, err := prop.New(fluidName, engine)
		if err != nil {
			return "", err
		}
		sat, err := calc.GetSaturation(job.Prms)
		if err != nil {
			return "", err
		}
		return out.SaturationReport(io.Sf("job %q: %s saturation", job.Name, fluidName), sat), nil
	}

	// process jobs
	analyzer, err := proc.New(fluidName, engine)
	if err != nil {
		return
	}
	get := func(name string) (float64, error) {
		if p := job.Prms.Find(name); p != nil {
			return p.V, nil
		}
		return 0, chk.Err("input %q is required", name)
	}
	switch job.Kind {

	case inp.KindIsentropic:
		ti, err := get("inlet_temp")
		if err != nil {
			return "", err
		}
		pi, err := get("inlet_pressure")
		if err != nil {
			return "", err
		}
		po, err := get("outlet_pressure")
		if err != nil {
			return "", err
		}
		eff := 1.0
		if p := job.Prms.Find("efficiency"); p != nil {
			eff = p.V
		}
		kind := proc.Compression
		if po <= pi {
			kind = proc.Expansion
		}
		res, err := analyzer.Isentropic(ti, pi, po, eff, kind)
		if err != nil {
			return "", err
		}
		return out.IsentropicReport(res), nil

	case inp.KindIsobaric:
		ti, err := get("inlet_temp")
		if err != nil {
			return "", err
		}
		pr, err := get("pressure")
		if err != nil {
			return "", err
		}
		to, err := get("outlet_temp")
		if err != nil {
			return "", err
		}
		res, err := analyzer.Isobaric(ti, pr, to)
		if err != nil {
			return "", err
		}
		return out.IsobaricReport(res), nil

	case inp.KindIsochoric:
		ti, err := get("inlet_temp")
		if err != nil {
			return "", err
		}
		pi, err := get("inlet_pressure")
		if err != nil {
			return "", err
		}
		to, err := get("outlet_temp")
		if err != nil {
			return "", err
		}
		res, err := analyzer.Isochoric(ti, pi, to)
		if err != nil {
			return "", err
		}
		return out.IsochoricReport(res), nil

	case inp.KindThrottling:
		ti, err := get("inlet_temp")
		if err != nil {
			return "", err
		}
		pi, err := get("inlet_pressure")
		if err != nil {
			return "", err
		}
		po, err := get("outlet_pressure")
		if err != nil {
			return "", err
		}
		res, err := analyzer.Throttling(ti, pi, po)
		if err != nil {
			return "", err
		}
		return out.ThrottlingReport(res), nil

	case inp.KindPolytropic:
		ti, err := get("inlet_temp")
		if err != nil {
			return "", err
		}
		pi, err := get("inlet_pressure")
		if err != nil {
			return "", err
		}
		po, err := get("outlet_pressure")
		if err != nil {
			return "", err
		}
		n, err := get("n")
		if err != nil {
			return "", err
		}
		res, err := analyzer.Polytropic(ti, pi, po, n)
		if err != nil {
			return "", err
		}
		return out.PolytropicReport(res), nil
	}
	return "", chk.Err("job kind %q is unknown", job.Kind)
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
