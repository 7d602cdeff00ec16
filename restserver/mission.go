// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-spacelab/restdata"
	"github.com/diffeo/go-spacelab/space"
	"github.com/gorilla/mux"
)

func (api *restAPI) fillMission(mission space.Mission) (result restdata.Mission, err error) {
	result.MissionShort = restdata.FromMission(mission)
	sci, err := api.Store.Scientist(mission.ScientistID)
	if err != nil {
		return
	}
	planet, err := api.Store.Planet(mission.PlanetID)
	if err != nil {
		return
	}
	result.Scientist = restdata.FromScientist(sci)
	result.Planet = restdata.FromPlanet(planet)
	return
}

// MissionList gets the missions selected by the query string, each
// with its scientist and planet.
func (api *restAPI) MissionList(ctx *context) (interface{}, error) {
	q, err := ctx.MissionQuery()
	if err != nil {
		return nil, err
	}
	missions, err := api.Store.Missions(q)
	if err != nil {
		return nil, err
	}
	result := make([]restdata.Mission, len(missions))
	for i, mission := range missions {
		result[i], err = api.fillMission(mission)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// MissionPost creates a new mission.
func (api *restAPI) MissionPost(ctx *context, in interface{}) (interface{}, error) {
	req, valid := in.(restdata.MissionRequest)
	if !valid {
		return nil, errUnmarshal
	}
	mission, err := api.Store.AddMission(req.Mission())
	if err != nil {
		return nil, err
	}
	result, err := api.fillMission(mission)
	if err != nil {
		return nil, err
	}
	var location string
	err = buildRecordURL(api.Router, "mission", mission.ID).
		URL(&location, "mission").
		Error
	if err != nil {
		return nil, err
	}
	return responseCreated{
		Location: location,
		Body:     result,
	}, nil
}

// MissionGet retrieves a single mission.
func (api *restAPI) MissionGet(ctx *context) (interface{}, error) {
	return api.fillMission(*ctx.Mission)
}

// MissionDelete destroys a single mission.
func (api *restAPI) MissionDelete(ctx *context) (interface{}, error) {
	return nil, api.Store.DestroyMission(ctx.Mission.ID)
}

// PopulateMission adds mission-specific routes to a router.
func (api *restAPI) PopulateMission(r *mux.Router) {
	r.Path("/missions").Name("missions").Handler(api.handler(resourceHandler{
		Representation: restdata.MissionRequest{},
		Get:            api.MissionList,
		Post:           api.MissionPost,
	}))
	r.Path("/missions/{mission}").Name("mission").Handler(api.handler(resourceHandler{
		Get:    api.MissionGet,
		Delete: api.MissionDelete,
	}))
}
