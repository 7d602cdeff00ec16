// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-spacelab/config"
	"github.com/diffeo/go-spacelab/memory"
	"github.com/diffeo/go-spacelab/space"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populate(t *testing.T, store space.Store) {
	sci, err := store.AddScientist(space.Scientist{Name: "Mel T. Valent", FieldOfStudy: "Xenobiology"})
	require.NoError(t, err)
	planet, err := store.AddPlanet(space.Planet{Name: "TauCeti e"})
	require.NoError(t, err)
	_, err = store.AddMission(space.Mission{Name: "Survey", ScientistID: sci.ID, PlanetID: planet.ID})
	require.NoError(t, err)
	_, err = store.AddPlanet(space.Planet{Name: "Mars"})
	require.NoError(t, err)
}

func TestObserve(t *testing.T) {
	store := memory.New()
	populate(t, store)

	err := observe(store)
	if assert.NoError(t, err) {
		assert.Equal(t, 1.0, testutil.ToFloat64(recordCount.WithLabelValues("scientist")))
		assert.Equal(t, 2.0, testutil.ToFloat64(recordCount.WithLabelValues("planet")))
		assert.Equal(t, 1.0, testutil.ToFloat64(recordCount.WithLabelValues("mission")))
	}
}

func TestObserveEveryStops(t *testing.T) {
	store := memory.New()
	clk := clock.NewMock()
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		observeEvery(store, clk, time.Minute, stop)
		close(done)
	}()
	close(stop)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("observeEvery did not stop")
	}
	assert.Equal(t, 0.0, testutil.ToFloat64(recordCount.WithLabelValues("scientist")))
}

func TestHandler(t *testing.T) {
	store := memory.New()
	populate(t, store)
	logger, _ := test.NewNullLogger()
	h := &HTTP{store: store, logger: logger}
	server := httptest.NewServer(h.Handler())
	defer server.Close()

	before := testutil.ToFloat64(requestCount.WithLabelValues("GET", "200"))

	resp, err := http.Get(server.URL + "/scientists")
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
	assert.Equal(t, before+1, testutil.ToFloat64(requestCount.WithLabelValues("GET", "200")))

	resp, err = http.Get(server.URL + "/metrics")
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/plain"))
		resp.Body.Close()
	}

	resp, err = http.Get(server.URL + "/nowhere")
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	}
}

func TestHandlerLogsRequests(t *testing.T) {
	logger, hook := test.NewNullLogger()
	h := &HTTP{store: memory.New(), logRequests: true, logger: logger}
	server := httptest.NewServer(h.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/planets")
	require.NoError(t, err)
	resp.Body.Close()

	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, "/planets", entry.Data["path"])
		assert.Equal(t, http.StatusOK, entry.Data["status"])
	}
}

func TestSetupLogging(t *testing.T) {
	logger := logrus.New()
	cfg := config.Default()
	cfg.LogLevel = "debug"
	cfg.LogFile = filepath.Join(t.TempDir(), "spaced.log")
	err := setupLogging(logger, cfg)
	if assert.NoError(t, err) {
		assert.Equal(t, logrus.DebugLevel, logger.Level)
		assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
	}

	cfg.LogLevel = "loud"
	assert.Error(t, setupLogging(logrus.New(), cfg))
}
