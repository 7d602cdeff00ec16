// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-spacelab/restdata"
	"github.com/diffeo/go-spacelab/space"
	"github.com/gorilla/mux"
)

// fillScientist builds the full representation of a scientist, with
// each mission's planet.
func (api *restAPI) fillScientist(sci space.Scientist) (restdata.Scientist, error) {
	result := restdata.Scientist{
		ScientistShort: restdata.FromScientist(sci),
		Missions:       []restdata.ScientistMission{},
	}
	missions, err := api.Store.Missions(space.MissionQuery{ScientistID: sci.ID})
	if err != nil {
		return result, err
	}
	for _, mission := range missions {
		planet, err := api.Store.Planet(mission.PlanetID)
		if err != nil {
			return result, err
		}
		result.Missions = append(result.Missions, restdata.ScientistMission{
			MissionShort: restdata.FromMission(mission),
			Planet:       restdata.FromPlanet(planet),
		})
	}
	return result, nil
}

// ScientistList gets a list of all scientists, without their missions.
func (api *restAPI) ScientistList(ctx *context) (interface{}, error) {
	scientists, err := api.Store.Scientists()
	if err != nil {
		return nil, err
	}
	result := make([]restdata.ScientistShort, len(scientists))
	for i, sci := range scientists {
		result[i] = restdata.FromScientist(sci)
	}
	return result, nil
}

// ScientistPost creates a new scientist.
func (api *restAPI) ScientistPost(ctx *context, in interface{}) (interface{}, error) {
	req, valid := in.(restdata.ScientistRequest)
	if !valid {
		return nil, errUnmarshal
	}
	sci, err := api.Store.AddScientist(req.Scientist())
	if err != nil {
		return nil, err
	}
	result, err := api.fillScientist(sci)
	if err != nil {
		return nil, err
	}
	var location string
	err = buildRecordURL(api.Router, "scientist", sci.ID).
		URL(&location, "scientist").
		Error
	if err != nil {
		return nil, err
	}
	return responseCreated{
		Location: location,
		Body:     result,
	}, nil
}

// ScientistGet retrieves a single scientist and its missions, but not
// its field of study or the missions' planets.
func (api *restAPI) ScientistGet(ctx *context) (interface{}, error) {
	missions, err := api.Store.Missions(space.MissionQuery{ScientistID: ctx.Scientist.ID})
	if err != nil {
		return nil, err
	}
	result := restdata.ScientistDetail{
		ID:       ctx.Scientist.ID,
		Name:     ctx.Scientist.Name,
		Missions: make([]restdata.MissionShort, len(missions)),
	}
	for i, mission := range missions {
		result.Missions[i] = restdata.FromMission(mission)
	}
	return result, nil
}

// ScientistDelete destroys a scientist and its missions.
func (api *restAPI) ScientistDelete(ctx *context) (interface{}, error) {
	return nil, api.Store.DestroyScientist(ctx.Scientist.ID)
}

// PopulateScientist adds scientist-specific routes to a router.
func (api *restAPI) PopulateScientist(r *mux.Router) {
	r.Path("/scientists").Name("scientists").Handler(api.handler(resourceHandler{
		Representation: restdata.ScientistRequest{},
		Get:            api.ScientistList,
		Post:           api.ScientistPost,
	}))
	r.Path("/scientists/{scientist}").Name("scientist").Handler(api.handler(resourceHandler{
		Get:    api.ScientistGet,
		Delete: api.ScientistDelete,
	}))
}
