// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restclient provides a space.Store that talks to the
// matching HTTP REST server in the "restserver" package.
//
// The server in github.com/diffeo/go-spacelab/cmd/spaced runs a
// compatible REST server.  Call New() with the base URL of that
// service; for instance,
//
//     store, err := restclient.New("http://localhost:5555/")
//
// The client only knows the URL of the root document; every other URL
// comes from the links in that document.
package restclient

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/diffeo/go-spacelab/restdata"
	"github.com/diffeo/go-spacelab/space"
)

// New creates a new space.Store that speaks to an external REST
// server.  It fetches the root document immediately, and fails if
// that does not work.
func New(baseURL string) (space.Store, error) {
	url, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	c := &restClient{endpoint: endpoint{root: url}}
	if err = c.Refresh(); err != nil {
		return nil, err
	}
	return c, nil
}

type restClient struct {
	endpoint
	Representation restdata.RootData
}

// Refresh reloads the root document.
func (c *restClient) Refresh() error {
	c.Representation = restdata.RootData{}
	return c.call(http.MethodGet, c.root, nil, &c.Representation)
}

func noVars() map[string]interface{} {
	return map[string]interface{}{}
}

func idVars(name string, id int) map[string]interface{} {
	return map[string]interface{}{name: strconv.Itoa(id)}
}

// withID fills in the record ID of a not-found error, which the wire
// format does not carry.
func withID(err error, id int) error {
	switch err.(type) {
	case space.ErrNoSuchScientist:
		return space.ErrNoSuchScientist{ID: id}
	case space.ErrNoSuchPlanet:
		return space.ErrNoSuchPlanet{ID: id}
	case space.ErrNoSuchMission:
		return space.ErrNoSuchMission{ID: id}
	}
	return err
}

func (c *restClient) Scientists() ([]space.Scientist, error) {
	var resp []restdata.ScientistShort
	err := c.do(http.MethodGet, c.Representation.ScientistsURL, noVars(), nil, &resp)
	if err != nil {
		return nil, err
	}
	result := make([]space.Scientist, len(resp))
	for i, sci := range resp {
		result[i] = sci.Scientist()
	}
	return result, nil
}

// Scientist searches the scientist list, since the single-scientist
// resource does not include the field of study.
func (c *restClient) Scientist(id int) (space.Scientist, error) {
	scientists, err := c.Scientists()
	if err != nil {
		return space.Scientist{}, err
	}
	for _, sci := range scientists {
		if sci.ID == id {
			return sci, nil
		}
	}
	return space.Scientist{}, space.ErrNoSuchScientist{ID: id}
}

func (c *restClient) AddScientist(sci space.Scientist) (space.Scientist, error) {
	req := restdata.ScientistRequest{Name: sci.Name, FieldOfStudy: sci.FieldOfStudy}
	var resp restdata.Scientist
	err := c.do(http.MethodPost, c.Representation.ScientistsURL, noVars(), req, &resp)
	if err != nil {
		return space.Scientist{}, err
	}
	return resp.ScientistShort.Scientist(), nil
}

func (c *restClient) DestroyScientist(id int) error {
	err := c.do(http.MethodDelete, c.Representation.ScientistURL, idVars("scientist", id), nil, nil)
	return withID(err, id)
}

func (c *restClient) Planets() ([]space.Planet, error) {
	var resp []restdata.PlanetShort
	err := c.do(http.MethodGet, c.Representation.PlanetsURL, noVars(), nil, &resp)
	if err != nil {
		return nil, err
	}
	result := make([]space.Planet, len(resp))
	for i, planet := range resp {
		result[i] = planet.Planet()
	}
	return result, nil
}

func (c *restClient) Planet(id int) (space.Planet, error) {
	var resp restdata.Planet
	err := c.do(http.MethodGet, c.Representation.PlanetURL, idVars("planet", id), nil, &resp)
	if err != nil {
		return space.Planet{}, withID(err, id)
	}
	return resp.PlanetShort.Planet(), nil
}

func (c *restClient) AddPlanet(planet space.Planet) (space.Planet, error) {
	req := restdata.PlanetRequest{
		Name:              planet.Name,
		DistanceFromEarth: planet.DistanceFromEarth,
		NearestStar:       planet.NearestStar,
	}
	var resp restdata.Planet
	err := c.do(http.MethodPost, c.Representation.PlanetsURL, noVars(), req, &resp)
	if err != nil {
		return space.Planet{}, err
	}
	return resp.PlanetShort.Planet(), nil
}

func (c *restClient) DestroyPlanet(id int) error {
	err := c.do(http.MethodDelete, c.Representation.PlanetURL, idVars("planet", id), nil, nil)
	return withID(err, id)
}

func (c *restClient) Missions(q space.MissionQuery) ([]space.Mission, error) {
	url, err := c.link(c.Representation.MissionsURL, noVars())
	if err != nil {
		return nil, err
	}
	params := url.Query()
	if q.ScientistID != 0 {
		params.Set("scientist_id", strconv.Itoa(q.ScientistID))
	}
	if q.PlanetID != 0 {
		params.Set("planet_id", strconv.Itoa(q.PlanetID))
	}
	url.RawQuery = params.Encode()

	var resp []restdata.Mission
	if err = c.call(http.MethodGet, url, nil, &resp); err != nil {
		return nil, err
	}
	result := make([]space.Mission, len(resp))
	for i, mission := range resp {
		result[i] = mission.MissionShort.Mission()
	}
	return result, nil
}

func (c *restClient) Mission(id int) (space.Mission, error) {
	var resp restdata.Mission
	err := c.do(http.MethodGet, c.Representation.MissionURL, idVars("mission", id), nil, &resp)
	if err != nil {
		return space.Mission{}, withID(err, id)
	}
	return resp.MissionShort.Mission(), nil
}

func (c *restClient) AddMission(mission space.Mission) (space.Mission, error) {
	req := restdata.MissionRequest{
		Name:        mission.Name,
		ScientistID: mission.ScientistID,
		PlanetID:    mission.PlanetID,
	}
	var resp restdata.Mission
	err := c.do(http.MethodPost, c.Representation.MissionsURL, noVars(), req, &resp)
	if err != nil {
		return space.Mission{}, err
	}
	return resp.MissionShort.Mission(), nil
}

func (c *restClient) DestroyMission(id int) error {
	err := c.do(http.MethodDelete, c.Representation.MissionURL, idVars("mission", id), nil, nil)
	return withID(err, id)
}
