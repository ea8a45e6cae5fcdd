// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements the database of supported working fluids
package fluid

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/io"
)

// Fluid holds the identity and reference constants of a supported working fluid
type Fluid struct {
	Key   string  // lowercase key used throughout gothermo; e.g. "r134a"
	Name  string  // canonical name expected by the property engine; e.g. "R134a"
	Title string  // human readable description
	M     float64 // molar mass [kg/mol]
	Tcrit float64 // critical temperature [K]
	Pcrit float64 // critical pressure [kPa]
}

// UnsupportedError indicates that a fluid name is not in the database
type UnsupportedError struct {
	Given string // name as given by the caller
}

// Error returns the error message
func (o *UnsupportedError) Error() string {
	return io.Sf("fluid %q is not available in 'fluid' database; options are %v", o.Given, List())
}

// fluids holds the closed set of supported fluids
var fluids = map[string]Fluid{
	"water": {Key: "water", Name: "Water", Title: "water / steam", M: 0.018015, Tcrit: 647.096, Pcrit: 22064.0},
	"air":   {Key: "air", Name: "Air", Title: "dry air", M: 0.028965, Tcrit: 132.5306, Pcrit: 3786.0},
	"r134a": {Key: "r134a", Name: "R134a", Title: "refrigerant R-134a", M: 0.102032, Tcrit: 374.21, Pcrit: 4059.28},
	"r22":   {Key: "r22", Name: "R22", Title: "refrigerant R-22", M: 0.086468, Tcrit: 369.295, Pcrit: 4990.0},
	"co2":   {Key: "co2", Name: "CO2", Title: "carbon dioxide", M: 0.0440098, Tcrit: 304.1282, Pcrit: 7377.3},
}

// Get returns the fluid corresponding to name. The lookup is case-insensitive.
func Get(name string) (Fluid, error) {
	f, ok := fluids[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Fluid{}, &UnsupportedError{Given: name}
	}
	return f, nil
}

// List returns the sorted keys of all supported fluids
func List() (keys []string) {
	for key := range fluids {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return
}
