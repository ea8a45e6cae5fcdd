// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package server exposes property and process calculations over a websocket
// endpoint. Each connection gets its own hub; the calculation layer itself holds no
// shared mutable state.
package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/cpmech/gothermo/eos"
)

// Server serves the /ws websocket endpoint
type Server struct {
	addr     string
	engine   eos.Solver
	upgrader websocket.Upgrader
	log      *logrus.Logger
}

// New returns a server listening on addr and answering queries with the given
// property engine
func New(addr string, engine eos.Solver) *Server {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &Server{
		addr:   addr,
		engine: engine,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

// Handler returns the http handler serving /ws
func (o *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", o.serveWs)
	return mux
}

// Serve listens and serves until the listener fails
func (o *Server) Serve() error {
	o.log.WithField("addr", o.addr).Info("gothermo server listening")
	return http.ListenAndServe(o.addr, o.Handler())
}

// serveWs upgrades one connection and runs its hub
func (o *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := o.upgrader.Upgrade(w, r, nil)
	if err != nil {
		o.log.WithError(err).Error("websocket upgrade failed")
		return
	}
	defer conn.Close()
	log := o.log.WithField("session", uuid.NewString())
	log.Info("session opened")
	hub := newHub(conn, o.engine, log)
	hub.run()
	log.Info("session closed")
}
