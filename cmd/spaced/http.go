// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"

	"github.com/diffeo/go-spacelab/restserver"
	"github.com/diffeo/go-spacelab/space"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// HTTP serves spacelab HTTP connections.
type HTTP struct {
	store       space.Store
	laddr       string
	logRequests bool
	logger      *logrus.Logger
}

// Handler builds the complete HTTP handler: request metrics, the
// optional request log, /metrics, and the REST API.
func (h *HTTP) Handler() http.Handler {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	restserver.PopulateRouter(r, h.store, h.logger)

	n := negroni.New()
	n.Use(negroni.HandlerFunc(countRequests))
	if h.logRequests {
		n.Use(restserver.NewRequestLogger(h.logger))
	}
	n.UseHandler(r)
	return n
}

// Serve runs an HTTP server on the specified local address.  This
// serves connections forever, returning only if the listener fails.
func (h *HTTP) Serve() error {
	return http.ListenAndServe(h.laddr, h.Handler())
}
