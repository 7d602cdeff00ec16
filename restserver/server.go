// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"

	"github.com/diffeo/go-spacelab/restdata"
	"github.com/diffeo/go-spacelab/space"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter creates a new HTTP handler that processes all spacelab
// requests.  All resources are under the URL path root, e.g.
// /scientists/1.  For more control over this setup, create a
// mux.Router and call PopulateRouter instead.
func NewRouter(store space.Store) http.Handler {
	r := mux.NewRouter()
	PopulateRouter(r, store, nil)
	return r
}

// PopulateRouter adds spacelab routes to an existing
// github.com/gorilla/mux router object.  This can be used, for
// instance, to place the interface under a subpath:
//
//     import "github.com/diffeo/go-spacelab/memory"
//     import "github.com/gorilla/mux"
//     r := mux.NewRouter()
//     s := r.PathPrefix("/space").Subrouter()
//     PopulateRouter(s, memory.New(), nil)
//
// Unknown paths under r produce a JSON 404 response.  Panics and
// store failures are logged to logger, or to the logrus standard
// logger if it is nil.
func PopulateRouter(r *mux.Router, store space.Store, logger logrus.FieldLogger) {
	api := &restAPI{Store: store, Router: r, Logger: logger}
	api.PopulateRouter(r)
}

// restAPI holds the persistent state for the spacelab REST API.
type restAPI struct {
	Store  space.Store
	Router *mux.Router
	Logger logrus.FieldLogger
}

// handler creates a resource handler that builds its context from
// the URL and logs to the API's logger.
func (api *restAPI) handler(h resourceHandler) *resourceHandler {
	h.Context = api.Context
	h.Logger = api.Logger
	return &h
}

// PopulateRouter adds all spacelab URL paths to a router.
func (api *restAPI) PopulateRouter(r *mux.Router) {
	api.PopulateScientist(r)
	api.PopulatePlanet(r)
	api.PopulateMission(r)
	r.Path("/").Name("root").Handler(api.handler(resourceHandler{
		Get: api.RootDocument,
	}))
	r.NotFoundHandler = &resourceHandler{
		Context: func(*http.Request) (*context, error) {
			return nil, restdata.ErrNotFoundRoute
		},
		Logger: api.Logger,
	}
}

// RootDocument links to every collection and record template.
func (api *restAPI) RootDocument(ctx *context) (interface{}, error) {
	resp := restdata.RootData{}
	err := buildURLs(api.Router).
		URL(&resp.ScientistsURL, "scientists").
		Template(&resp.ScientistURL, "scientist", "scientist").
		URL(&resp.PlanetsURL, "planets").
		Template(&resp.PlanetURL, "planet", "planet").
		URL(&resp.MissionsURL, "missions").
		Template(&resp.MissionURL, "mission", "mission").
		Error
	return resp, err
}
