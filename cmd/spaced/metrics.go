// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-spacelab/space"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "diffeo",
		Subsystem: "spacelab",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method and response status",
	},
	[]string{
		"method",
		"code",
	},
)

var recordCount = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: "diffeo",
		Subsystem: "spacelab",
		Name:      "records",
		Help:      "Number of stored records by type",
	},
	[]string{
		"type",
	},
)

func init() {
	prometheus.MustRegister(requestCount)
	prometheus.MustRegister(recordCount)
}

// countRequests is a negroni middleware that counts every request.
func countRequests(rw http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
	next(rw, req)
	code := "unknown"
	if nrw, ok := rw.(negroni.ResponseWriter); ok {
		code = strconv.Itoa(nrw.Status())
	}
	requestCount.WithLabelValues(req.Method, code).Inc()
}

// observe updates the record count gauges once.
func observe(store space.Store) error {
	scientists, err := store.Scientists()
	if err != nil {
		return err
	}
	planets, err := store.Planets()
	if err != nil {
		return err
	}
	missions, err := store.Missions(space.MissionQuery{})
	if err != nil {
		return err
	}
	recordCount.WithLabelValues("scientist").Set(float64(len(scientists)))
	recordCount.WithLabelValues("planet").Set(float64(len(planets)))
	recordCount.WithLabelValues("mission").Set(float64(len(missions)))
	return nil
}

// observeEvery updates the record count gauges immediately and then
// on every tick of interval, until stop is closed.
func observeEvery(store space.Store, clk clock.Clock, interval time.Duration, stop <-chan struct{}) {
	ticker := clk.Ticker(interval)
	defer ticker.Stop()
	for {
		if err := observe(store); err != nil {
			logrus.WithFields(logrus.Fields{
				"err": err,
			}).Warn("Could not count records")
		}
		select {
		case <-ticker.C:
		case <-stop:
			return
		}
	}
}
