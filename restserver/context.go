// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/diffeo/go-spacelab/restdata"
	"github.com/diffeo/go-spacelab/space"
	"github.com/gorilla/mux"
)

// errUnmarshal is returned if the post contract is violated and a
// handler function is passed the wrong type.
var errUnmarshal = restdata.ErrBadRequest{
	Err: errors.New("Invalid input format"),
}

// context holds all of the information and objects that can be extracted
// from URL parameters.
type context struct {
	Scientist   *space.Scientist
	Planet      *space.Planet
	Mission     *space.Mission
	QueryParams url.Values
}

// parseID reads a record ID out of a URL path component.  IDs are
// positive decimal integers; anything else names no record, and is
// returned as zero.
func parseID(s string) int {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// notFound wraps missing-record errors so they produce 404 even when
// they come from the URL rather than the store.
func notFound(err error) error {
	switch err.(type) {
	case space.ErrNoSuchScientist, space.ErrNoSuchPlanet, space.ErrNoSuchMission:
		return restdata.ErrNotFound{Err: err}
	}
	return err
}

func (api *restAPI) Context(req *http.Request) (ctx *context, err error) {
	ctx = &context{}
	ctx.QueryParams = req.URL.Query()
	vars := mux.Vars(req)

	if s, present := vars["scientist"]; present && err == nil {
		var sci space.Scientist
		id := parseID(s)
		if id == 0 {
			err = space.ErrNoSuchScientist{ID: id}
		} else {
			sci, err = api.Store.Scientist(id)
		}
		if err == nil {
			ctx.Scientist = &sci
		}
		err = notFound(err)
	}

	if s, present := vars["planet"]; present && err == nil {
		var planet space.Planet
		id := parseID(s)
		if id == 0 {
			err = space.ErrNoSuchPlanet{ID: id}
		} else {
			planet, err = api.Store.Planet(id)
		}
		if err == nil {
			ctx.Planet = &planet
		}
		err = notFound(err)
	}

	if s, present := vars["mission"]; present && err == nil {
		var mission space.Mission
		id := parseID(s)
		if id == 0 {
			err = space.ErrNoSuchMission{ID: id}
		} else {
			mission, err = api.Store.Mission(id)
		}
		if err == nil {
			ctx.Mission = &mission
		}
		err = notFound(err)
	}

	return
}

// IntParam looks at ctx.QueryParams for a parameter named name.  If
// it is absent or empty, returns 0.  If it is not a positive integer,
// returns a bad-request error.
func (ctx *context) IntParam(name string) (int, error) {
	s := ctx.QueryParams.Get(name)
	if s == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(s)
	if err != nil || value <= 0 {
		return 0, restdata.ErrBadRequest{Err: errors.New(name + " must be a positive integer")}
	}
	return value, nil
}

// MissionQuery builds a mission query from the "scientist_id" and
// "planet_id" query parameters.
func (ctx *context) MissionQuery() (q space.MissionQuery, err error) {
	q.ScientistID, err = ctx.IntParam("scientist_id")
	if err == nil {
		q.PlanetID, err = ctx.IntParam("planet_id")
	}
	return
}
