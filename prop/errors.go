// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import "github.com/cpmech/gosl/io"

// CombinationError indicates that the set of given independent properties does not
// match any of the five supported pairs
type CombinationError struct {
	Given []string // names as given by the caller
}

// Error returns the error message
func (o *CombinationError) Error() string {
	return io.Sf("must provide exactly one supported pair of independent properties "+
		"(temp+pressure, temp+quality, pressure+enthalpy, pressure+entropy, or enthalpy+entropy); got %v", o.Given)
}

// MissingInputError indicates that a required input was not given
type MissingInputError struct {
	What string // description of what is missing
}

// Error returns the error message
func (o *MissingInputError) Error() string {
	return io.Sf("missing input: %s", o.What)
}

// CalcError wraps a failure of the property engine. The engine's native error never
// escapes the facade without this wrapper.
type CalcError struct {
	Fluid  string // fluid key
	Reason error  // underlying engine failure
}

// Error returns the error message
func (o *CalcError) Error() string {
	return io.Sf("cannot compute properties of %q: %v", o.Fluid, o.Reason)
}

// Unwrap returns the underlying engine failure
func (o *CalcError) Unwrap() error {
	return o.Reason
}
