// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

// State holds one complete thermodynamic state in engineering units. States are
// value records computed fresh per query and never mutated afterwards.
type State struct {
	Temp      float64  `json:"temperature"`     // temperature [°C]
	Pres      float64  `json:"pressure"`        // pressure [kPa]
	Enthalpy  float64  `json:"enthalpy"`        // specific enthalpy [kJ/kg]
	Entropy   float64  `json:"entropy"`         // specific entropy [kJ/(kg・K)]
	Density   float64  `json:"density"`         // density [kg/m³]
	SpecVol   float64  `json:"specific_volume"` // specific volume = 1/Density [m³/kg]
	IntEnergy float64  `json:"internal_energy"` // specific internal energy [kJ/kg]
	Quality   *float64 `json:"quality"`         // vapour mass fraction in [0,1]; nil for single phase [-]
}

// SatState holds the saturated-liquid and saturated-vapour properties at one point
// of the saturation line, in engineering units
type SatState struct {
	Temp float64 `json:"temperature"` // saturation temperature [°C]
	Pres float64 `json:"pressure"`    // saturation pressure [kPa]
	HF   float64 `json:"h_f"`         // saturated-liquid enthalpy [kJ/kg]
	SF   float64 `json:"s_f"`         // saturated-liquid entropy [kJ/(kg・K)]
	VF   float64 `json:"v_f"`         // saturated-liquid specific volume [m³/kg]
	HG   float64 `json:"h_g"`         // saturated-vapour enthalpy [kJ/kg]
	SG   float64 `json:"s_g"`         // saturated-vapour entropy [kJ/(kg・K)]
	VG   float64 `json:"v_g"`         // saturated-vapour specific volume [m³/kg]
	HFG  float64 `json:"h_fg"`        // latent heat of vaporisation = HG - HF [kJ/kg]
	SFG  float64 `json:"s_fg"`        // entropy of vaporisation = SG - SF [kJ/(kg・K)]
}
