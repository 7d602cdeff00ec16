// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-spacelab/memory"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/negroni"
)

func TestRequestLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	mock := clock.NewMock()
	router := NewRouter(memory.New())

	n := negroni.New()
	n.Use(&RequestLogger{Logger: logger, Clock: mock})
	n.UseHandler(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		mock.Add(250 * time.Millisecond)
		router.ServeHTTP(rw, req)
	}))

	resp := httptest.NewRecorder()
	n.ServeHTTP(resp, httptest.NewRequest("GET", "/scientists/3", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)

	id := resp.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)

	if entry := hook.LastEntry(); assert.NotNil(t, entry) {
		assert.Equal(t, logrus.InfoLevel, entry.Level)
		assert.Equal(t, id, entry.Data["request_id"])
		assert.Equal(t, "GET", entry.Data["method"])
		assert.Equal(t, "/scientists/3", entry.Data["path"])
		assert.Equal(t, http.StatusNotFound, entry.Data["status"])
		assert.Equal(t, 250*time.Millisecond, entry.Data["latency"])
	}
}

func TestRequestLoggerKeepsID(t *testing.T) {
	logger, hook := test.NewNullLogger()
	n := negroni.New(NewRequestLogger(logger))
	n.UseHandler(NewRouter(memory.New()))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp := httptest.NewRecorder()
	n.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "abc-123", resp.Header().Get(RequestIDHeader))
	if entry := hook.LastEntry(); assert.NotNil(t, entry) {
		assert.Equal(t, "abc-123", entry.Data["request_id"])
	}
}
