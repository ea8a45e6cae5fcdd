// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"encoding/json"
	"sort"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gothermo/eos"
	"github.com/cpmech/gothermo/proc"
	"github.com/cpmech/gothermo/prop"
)

// Msg is the frame exchanged with clients
type Msg struct {
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content,omitempty"`
}

// Request is the content of property, saturation and process frames
type Request struct {
	Fluid   string             `json:"fluid"`
	Process string             `json:"process,omitempty"` // required for process frames
	Inputs  map[string]float64 `json:"inputs"`
}

// Hub answers the frames of one connection
type Hub struct {
	conn   *websocket.Conn
	engine eos.Solver
	log    *logrus.Entry
	req    chan Msg
}

// newHub returns a hub bound to one connection
func newHub(conn *websocket.Conn, engine eos.Solver, log *logrus.Entry) *Hub {
	return &Hub{
		conn:   conn,
		engine: engine,
		log:    log,
		req:    make(chan Msg, 10),
	}
}

// run reads frames until the connection drops. A single worker goroutine handles
// requests and writes responses, so writes are never concurrent. When a write
// fails, the worker closes the connection to unblock the read loop and drains the
// request channel so the reader never stalls on a full buffer.
func (o *Hub) run() {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range o.req {
			reply := o.handle(msg)
			if err := o.conn.WriteJSON(&reply); err != nil {
				o.log.WithError(err).Error("write failed")
				o.conn.Close()
				for range o.req {
				}
				return
			}
		}
	}()
	for {
		var msg Msg
		if err := o.conn.ReadJSON(&msg); err != nil {
			break
		}
		o.req <- msg
	}
	close(o.req)
	<-done
}

// handle answers one frame
func (o *Hub) handle(msg Msg) Msg {
	o.log.WithField("type", msg.Type).Info("request")
	var res interface{}
	var err error
	switch msg.Type {
	case "property":
		res, err = o.property(msg.Content)
	case "saturation":
		res, err = o.saturation(msg.Content)
	case "process":
		res, err = o.process(msg.Content)
	default:
		err = chk.Err("no such request type: %q", msg.Type)
	}
	if err != nil {
		o.log.WithError(err).Warn("request failed")
		return errorMsg(err)
	}
	return resultMsg(res)
}

// property answers a property frame
func (o *Hub) property(content json.RawMessage) (interface{}, error) {
	req, err := decode(content)
	if err != nil {
		return nil, err
	}
	calc, err := prop.New(req.Fluid, o.engine)
	if err != nil {
		return nil, err
	}
	return calc.Get(params(req.Inputs))
}

// saturation answers a saturation frame
func (o *Hub) saturation(content json.RawMessage) (interface{}, error) {
	req, err := decode(content)
	if err != nil {
		return nil, err
	}
	calc, err := prop.New(req.Fluid, o.engine)
	if err != nil {
		return nil, err
	}
	return calc.GetSaturation(params(req.Inputs))
}

// process answers a process frame. Isentropic processes select compression or
// expansion automatically by comparing outlet to inlet pressure.
func (o *Hub) process(content json.RawMessage) (interface{}, error) {
	req, err := decode(content)
	if err != nil {
		return nil, err
	}
	analyzer, err := proc.New(req.Fluid, o.engine)
	if err != nil {
		return nil, err
	}
	in := req.Inputs
	switch req.Process {
	case "isentropic":
		if err := need(in, "inlet_temp", "inlet_pressure", "outlet_pressure"); err != nil {
			return nil, err
		}
		eff, ok := in["efficiency"]
		if !ok {
			eff = 1.0
		}
		kind := proc.Compression
		if in["outlet_pressure"] <= in["inlet_pressure"] {
			kind = proc.Expansion
		}
		return analyzer.Isentropic(in["inlet_temp"], in["inlet_pressure"], in["outlet_pressure"], eff, kind)
	case "isobaric":
		if err := need(in, "inlet_temp", "pressure", "outlet_temp"); err != nil {
			return nil, err
		}
		return analyzer.Isobaric(in["inlet_temp"], in["pressure"], in["outlet_temp"])
	case "isochoric":
		if err := need(in, "inlet_temp", "inlet_pressure", "outlet_temp"); err != nil {
			return nil, err
		}
		return analyzer.Isochoric(in["inlet_temp"], in["inlet_pressure"], in["outlet_temp"])
	case "throttling":
		if err := need(in, "inlet_temp", "inlet_pressure", "outlet_pressure"); err != nil {
			return nil, err
		}
		return analyzer.Throttling(in["inlet_temp"], in["inlet_pressure"], in["outlet_pressure"])
	case "polytropic":
		if err := need(in, "inlet_temp", "inlet_pressure", "outlet_pressure", "n"); err != nil {
			return nil, err
		}
		return analyzer.Polytropic(in["inlet_temp"], in["inlet_pressure"], in["outlet_pressure"], in["n"])
	}
	return nil, chk.Err("no such process: %q", req.Process)
}

// decode parses a request content
func decode(content json.RawMessage) (req Request, err error) {
	if err = json.Unmarshal(content, &req); err != nil {
		return req, chk.Err("cannot decode request: %v", err)
	}
	return
}

// need checks that all named inputs are present
func need(in map[string]float64, names ...string) error {
	for _, name := range names {
		if _, ok := in[name]; !ok {
			return chk.Err("input %q is required", name)
		}
	}
	return nil
}

// params converts request inputs to named parameters, in deterministic order
func params(in map[string]float64) (prms dbf.Params) {
	names := make([]string, 0, len(in))
	for name := range in {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		prms = append(prms, &dbf.P{N: name, V: in[name]})
	}
	return
}

// resultMsg builds a result frame
func resultMsg(res interface{}) Msg {
	content, err := json.Marshal(res)
	if err != nil {
		return errorMsg(err)
	}
	return Msg{Type: "result", Content: content}
}

// errorMsg builds an error frame
func errorMsg(err error) Msg {
	content, _ := json.Marshal(err.Error())
	return Msg{Type: "error", Content: content}
}
