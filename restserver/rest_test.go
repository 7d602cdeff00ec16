// Regression tests for rest.go.
//
// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/diffeo/go-spacelab/memory"
	"github.com/diffeo/go-spacelab/space"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

type failResponseWriter struct {
	Headers    http.Header
	StatusCode int
}

func (rw *failResponseWriter) Header() http.Header {
	if rw.Headers == nil {
		rw.Headers = make(http.Header)
	}
	return rw.Headers
}

func (rw *failResponseWriter) Write([]byte) (int, error) {
	return 0, errors.New("foo")
}

func (rw *failResponseWriter) WriteHeader(code int) {
	rw.StatusCode = code
}

// TestDoubleFault checks that, if there is an error serializing a JSON
// response, it doesn't actually panic the process.
func TestDoubleFault(t *testing.T) {
	backend := memory.New()
	sci, err := backend.AddScientist(space.Scientist{Name: "Mel", FieldOfStudy: "x"})
	if !assert.NoError(t, err) {
		return
	}

	logger, _ := test.NewNullLogger()
	r := mux.NewRouter()
	PopulateRouter(r, backend, logger)
	req := httptest.NewRequest(http.MethodGet, "/scientists/"+strconv.Itoa(sci.ID), nil)
	resp := &failResponseWriter{}
	r.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// panicStore blows up when listing scientists.
type panicStore struct {
	space.Store
}

func (panicStore) Scientists() ([]space.Scientist, error) {
	panic("boom")
}

// failStore fails when listing planets.
type failStore struct {
	space.Store
}

func (failStore) Planets() ([]space.Planet, error) {
	return nil, errors.New("disk on fire")
}

// TestPanic checks that a panicking store produces a 500 response
// and a logged stack trace.
func TestPanic(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r := mux.NewRouter()
	PopulateRouter(r, panicStore{memory.New()}, logger)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/scientists", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"panic: boom"}`, resp.Body.String())

	if entry := hook.LastEntry(); assert.NotNil(t, entry) {
		assert.Equal(t, logrus.ErrorLevel, entry.Level)
		assert.Equal(t, "boom", entry.Data["panic"])
		assert.Contains(t, entry.Data["stack"], "goroutine")
	}
}

// TestStoreFailure checks that an unclassified store error is a 500
// with its message, and is logged.
func TestStoreFailure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r := mux.NewRouter()
	PopulateRouter(r, failStore{memory.New()}, logger)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/planets", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"disk on fire"}`, resp.Body.String())
	assert.Len(t, hook.AllEntries(), 1)
}

func TestNegotiateResponse(t *testing.T) {
	for _, test := range []struct {
		Accept   string
		Expected string
		Status   int
	}{
		{"", "application/json", 0},
		{"*/*", "application/json", 0},
		{"application/*", "application/json", 0},
		{"text/*", "text/json", 0},
		{"application/json", "application/json", 0},
		{"text/html, application/vnd.diffeo.spacelab.v1+json", "application/vnd.diffeo.spacelab.v1+json", 0},
		{"application/json;q=0.5, text/json", "text/json", 0},
		{"*/*;q=0.1, application/vnd.diffeo.spacelab+json", "application/vnd.diffeo.spacelab+json", 0},
		{"text/html", "", http.StatusNotAcceptable},
		{"application/json;q=2", "", http.StatusBadRequest},
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if test.Accept != "" {
			req.Header.Set("Accept", test.Accept)
		}
		actual, err := negotiateResponse(req)
		if test.Status == 0 {
			if assert.NoError(t, err, test.Accept) {
				assert.Equal(t, test.Expected, actual, test.Accept)
			}
		} else if assert.Error(t, err, test.Accept) {
			if test.Status == http.StatusNotAcceptable {
				assert.Equal(t, errNotAcceptable{}, err)
			} else {
				assert.Equal(t, errBadAccept, err)
			}
		}
	}
}

func TestParseID(t *testing.T) {
	assert.Equal(t, 1, parseID("1"))
	assert.Equal(t, 123, parseID("123"))
	assert.Equal(t, 0, parseID("0"))
	assert.Equal(t, 0, parseID("-4"))
	assert.Equal(t, 0, parseID("abc"))
	assert.Equal(t, 0, parseID(""))
}
