// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gothermo/eos"
)

// GetSaturation computes the saturated-liquid and saturated-vapour properties at a
// point of the saturation line fixed by exactly one of "temp" [°C] or "pressure"
// [kPa]. The missing one of the two is resolved with a saturated-liquid (quality=0)
// query first; both branches are then evaluated at the resolved pressure.
func (o *Calculator) GetSaturation(prms dbf.Params) (sat *SatState, err error) {

	// resolve saturation temperature and pressure
	var T, P float64
	pt := prms.Find(KeyTemp)
	pp := prms.Find(KeyPres)
	switch {
	case pt != nil:
		T = pt.V + KelvinShift
		P, err = o.query(eos.Pres, eos.Temp, T, eos.Quality, 0)
	case pp != nil:
		P = pp.V * Kilo
		T, err = o.query(eos.Temp, eos.Pres, P, eos.Quality, 0)
	default:
		return nil, &MissingInputError{What: "either temperature or pressure must be given for saturation properties"}
	}
	if err != nil {
		return
	}

	// saturated-liquid (q=0) and saturated-vapour (q=1) branches
	sat = &SatState{Temp: T - KelvinShift, Pres: P / Kilo}
	branch := func(q float64) (h, s, v float64, err error) {
		h, err = o.query(eos.Enth, eos.Pres, P, eos.Quality, q)
		if err != nil {
			return
		}
		s, err = o.query(eos.Entr, eos.Pres, P, eos.Quality, q)
		if err != nil {
			return
		}
		d, err := o.query(eos.Dens, eos.Pres, P, eos.Quality, q)
		if err != nil {
			return
		}
		return h / Kilo, s / Kilo, 1.0 / d, nil
	}
	sat.HF, sat.SF, sat.VF, err = branch(0)
	if err != nil {
		return nil, err
	}
	sat.HG, sat.SG, sat.VG, err = branch(1)
	if err != nil {
		return nil, err
	}

	// latent heat and entropy of vaporisation
	sat.HFG = sat.HG - sat.HF
	sat.SFG = sat.SG - sat.SF
	return
}

// GetSaturationAtTemp computes saturation properties at temperature [°C]
func (o *Calculator) GetSaturationAtTemp(temp float64) (*SatState, error) {
	return o.GetSaturation(dbf.Params{&dbf.P{N: KeyTemp, V: temp}})
}

// GetSaturationAtPres computes saturation properties at pressure [kPa]
func (o *Calculator) GetSaturationAtPres(pressure float64) (*SatState, error) {
	return o.GetSaturation(dbf.Params{&dbf.P{N: KeyPres, V: pressure}})
}
