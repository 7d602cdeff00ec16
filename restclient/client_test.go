// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diffeo/go-spacelab/memory"
	"github.com/diffeo/go-spacelab/restclient"
	"github.com/diffeo/go-spacelab/restserver"
	"github.com/diffeo/go-spacelab/space/spacetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic store tests through an object stack where
// the REST client code talks to the REST server code, which points
// at an in-memory backend.
type Suite struct {
	spacetest.Suite
	server *httptest.Server
}

// SetupTest starts a fresh server for each test.
func (s *Suite) SetupTest() {
	s.server = httptest.NewServer(restserver.NewRouter(memory.New()))
	store, err := restclient.New(s.server.URL)
	s.Require().NoError(err)
	s.Store = store
}

// TearDownTest stops the server.
func (s *Suite) TearDownTest() {
	s.server.Close()
}

func TestStore(t *testing.T) {
	suite.Run(t, &Suite{})
}

func TestEmptyURL(t *testing.T) {
	_, err := restclient.New("")
	assert.Error(t, err)
}

func TestNotSpacelab(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := restclient.New(server.URL)
	if assert.IsType(t, restclient.ErrorHTTP{}, err) {
		httpErr := err.(restclient.ErrorHTTP)
		assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
		assert.Equal(t, "HTTP 404 Not Found", httpErr.Error())
		assert.Contains(t, httpErr.Body, "not found")
	}
}
