// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-spacelab/restdata"
	"github.com/diffeo/go-spacelab/space"
	"github.com/gorilla/mux"
)

func (api *restAPI) fillPlanet(planet space.Planet) (restdata.Planet, error) {
	result := restdata.Planet{
		PlanetShort: restdata.FromPlanet(planet),
		Missions:    []restdata.PlanetMission{},
	}
	missions, err := api.Store.Missions(space.MissionQuery{PlanetID: planet.ID})
	if err != nil {
		return result, err
	}
	for _, mission := range missions {
		sci, err := api.Store.Scientist(mission.ScientistID)
		if err != nil {
			return result, err
		}
		result.Missions = append(result.Missions, restdata.PlanetMission{
			MissionShort: restdata.FromMission(mission),
			Scientist:    restdata.FromScientist(sci),
		})
	}
	return result, nil
}

// PlanetList gets a list of all planets, without their missions.
func (api *restAPI) PlanetList(ctx *context) (interface{}, error) {
	planets, err := api.Store.Planets()
	if err != nil {
		return nil, err
	}
	result := make([]restdata.PlanetShort, len(planets))
	for i, planet := range planets {
		result[i] = restdata.FromPlanet(planet)
	}
	return result, nil
}

// PlanetPost creates a new planet.
func (api *restAPI) PlanetPost(ctx *context, in interface{}) (interface{}, error) {
	req, valid := in.(restdata.PlanetRequest)
	if !valid {
		return nil, errUnmarshal
	}
	planet, err := api.Store.AddPlanet(req.Planet())
	if err != nil {
		return nil, err
	}
	result, err := api.fillPlanet(planet)
	if err != nil {
		return nil, err
	}
	var location string
	err = buildRecordURL(api.Router, "planet", planet.ID).
		URL(&location, "planet").
		Error
	if err != nil {
		return nil, err
	}
	return responseCreated{
		Location: location,
		Body:     result,
	}, nil
}

// PlanetGet retrieves a planet with its missions and their scientists.
func (api *restAPI) PlanetGet(ctx *context) (interface{}, error) {
	return api.fillPlanet(*ctx.Planet)
}

// PlanetDelete destroys a planet and every mission to it.
func (api *restAPI) PlanetDelete(ctx *context) (interface{}, error) {
	return nil, api.Store.DestroyPlanet(ctx.Planet.ID)
}

// PopulatePlanet adds planet-specific routes to a router.
func (api *restAPI) PopulatePlanet(r *mux.Router) {
	r.Path("/planets").Name("planets").Handler(api.handler(resourceHandler{
		Representation: restdata.PlanetRequest{},
		Get:            api.PlanetList,
		Post:           api.PlanetPost,
	}))
	r.Path("/planets/{planet}").Name("planet").Handler(api.handler(resourceHandler{
		Get:    api.PlanetGet,
		Delete: api.PlanetDelete,
	}))
}
