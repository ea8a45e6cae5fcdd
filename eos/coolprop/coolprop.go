// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package coolprop implements the production property engine by binding to the
// CoolProp shared library. Building this package requires libCoolProp and its C
// header; see http://www.coolprop.org/coolprop/wrappers/SharedLibrary
package coolprop

/*
#cgo LDFLAGS: -lCoolProp
#include <stdlib.h>
#include "CoolPropLib.h"
*/
import "C"

import (
	"math"
	"unsafe"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gothermo/eos"
)

// Solver queries CoolProp's PropsSI
type Solver struct{}

// add engine to factory
func init() {
	eos.Register("coolprop", func() eos.Solver { return new(Solver) })
}

// Props returns one property of the state fixed by two property/value pairs.
// CoolProp signals failure through a non-finite result; the engine error string is
// collected with get_global_param_string.
func (o *Solver) Props(output, name1 string, value1 float64, name2 string, value2 float64, fluid string) (float64, error) {
	co := C.CString(output)
	cn1 := C.CString(name1)
	cn2 := C.CString(name2)
	cf := C.CString(fluid)
	defer C.free(unsafe.Pointer(co))
	defer C.free(unsafe.Pointer(cn1))
	defer C.free(unsafe.Pointer(cn2))
	defer C.free(unsafe.Pointer(cf))
	res := float64(C.PropsSI(co, cn1, C.double(value1), cn2, C.double(value2), cf))
	if math.IsNaN(res) || math.IsInf(res, 0) {
		return 0, chk.Err("CoolProp cannot compute %s(%s=%g, %s=%g) for %q: %s",
			output, name1, value1, name2, value2, fluid, lastError())
	}
	return res, nil
}

// lastError fetches CoolProp's global error string
func lastError() string {
	const n = 1024
	buf := (*C.char)(C.malloc(n))
	defer C.free(unsafe.Pointer(buf))
	key := C.CString("errstring")
	defer C.free(unsafe.Pointer(key))
	if C.get_global_param_string(key, buf, n) != 1 {
		return "unknown error"
	}
	return C.GoString(buf)
}
