// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp reads scenario files: INI documents declaring a working fluid, a
// property engine, server options, and a batch of property/process jobs.
package inp

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gopkg.in/ini.v1"
)

// kinds of jobs accepted in scenario files
const (
	KindProperty   = "property"
	KindSaturation = "saturation"
	KindIsentropic = "isentropic"
	KindIsobaric   = "isobaric"
	KindIsochoric  = "isochoric"
	KindThrottling = "throttling"
	KindPolytropic = "polytropic"
)

// jobPrefix marks the sections holding jobs; e.g. [job.pump]
const jobPrefix = "job."

// Server holds websocket server options
type Server struct {
	Addr     string // listen address
	ReadBuf  int    // websocket read buffer size
	WriteBuf int    // websocket write buffer size
}

// Job holds one property or process calculation request. All numeric keys of the
// job section end up in Prms; the analysis layer picks the ones it needs by name.
type Job struct {
	Name string     // job name; e.g. "pump" from [job.pump]
	Kind string     // one of the Kind... constants
	Prms dbf.Params // named numeric inputs
}

// Scenario holds the complete content of a scenario file
type Scenario struct {
	Fluid  string // working fluid key; e.g. "water"
	Engine string // property engine name; e.g. "coolprop"
	Server Server // server options
	Jobs   []*Job // jobs in file order
}

// Read reads a scenario file
func Read(path string) (sce *Scenario, err error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, chk.Err("cannot read scenario file %q: %v", path, err)
	}

	// scenario and server sections
	sce = &Scenario{
		Fluid:  file.Section("scenario").Key("fluid").MustString("water"),
		Engine: file.Section("scenario").Key("engine").MustString("coolprop"),
		Server: Server{
			Addr:     file.Section("server").Key("addr").MustString(":9000"),
			ReadBuf:  file.Section("server").Key("read_buf").MustInt(1024),
			WriteBuf: file.Section("server").Key("write_buf").MustInt(1024),
		},
	}

	// job sections
	for _, sec := range file.Sections() {
		if !strings.HasPrefix(sec.Name(), jobPrefix) {
			continue
		}
		job := &Job{Name: strings.TrimPrefix(sec.Name(), jobPrefix)}
		for _, key := range sec.Keys() {
			if key.Name() == "kind" {
				job.Kind = key.String()
				continue
			}
			val, err := key.Float64()
			if err != nil {
				return nil, chk.Err("scenario %q: job %q: key %q must be numeric: %v", path, job.Name, key.Name(), err)
			}
			job.Prms = append(job.Prms, &dbf.P{N: key.Name(), V: val})
		}
		if !validKind(job.Kind) {
			return nil, chk.Err("scenario %q: job %q: kind %q is unknown", path, job.Name, job.Kind)
		}
		sce.Jobs = append(sce.Jobs, job)
	}
	return
}

// validKind tells whether kind names a known job kind
func validKind(kind string) bool {
	switch kind {
	case KindProperty, KindSaturation, KindIsentropic, KindIsobaric, KindIsochoric, KindThrottling, KindPolytropic:
		return true
	}
	return false
}
