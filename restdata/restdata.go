// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restdata defines common data structures shared between the
// restserver and restclient packages.  Generally JSON encodings of
// these are passed across the wire as the
// application/vnd.diffeo.spacelab.v1+json MIME type.
//
// API Usage
//
// HTTP GET the root document at its specified URL.  This will return
// a JSON serialization of the RootData object.  That serialization
// has links to other resources; follow these links, possibly filling
// in template values, to get to other resources.
//
// The singular URL fields are RFC 6570 URI templates, URL strings with
// a {parameter} in curly braces.  If the system is rooted at /, a JSON
// serialization of RootData will look like
//
//     {
//         "scientists_url": "/scientists",
//         "scientist_url": "/scientists/{scientist}",
//         "planets_url": "/planets",
//         "planet_url": "/planets/{planet}",
//         "missions_url": "/missions",
//         "mission_url": "/missions/{mission}"
//     }
//
// While the URL structure is predictable and formulaic, it is not
// actually part of the API contract.
//
// Representations
//
// Records refer to each other: a scientist has missions, and each
// mission has a scientist and a planet.  Rather than following these
// references indefinitely, each endpoint has its own view type that
// says exactly how far to go.  List endpoints return "short" records
// with no relations at all.  Inside a nested mission, the related
// scientist appears under the key "scientists" and the related planet
// under "planets"; each is a single object, not a list.
//
// Lists are JSON arrays, never null.
//
// HTTP Considerations
//
// Collections support GET and POST; single records support GET and
// DELETE.  A successful POST returns 201 Created with a Location:
// header and the full representation of the new record.  DELETE
// returns 204 No Content.
//
// A request body must be a single JSON value in UTF-8.  Invalid UTF-8
// is rejected rather than replaced.
//
// Errors
//
// Errors are returned as encodings of the ErrorResponse type.  Bad
// input produces 400 Bad Request with a list of problems under
// "errors"; a missing record produces 404 Not Found with a single
// message under "error", such as "Scientist not found".  Other
// failures, including server panics, produce 500 Internal Server
// Error with a message under "error".
package restdata

import (
	"github.com/diffeo/go-spacelab/space"
)

// V1JSONMediaType is the preferred, most specific MIME type for the
// JSON representation of this content.
const V1JSONMediaType = "application/vnd.diffeo.spacelab.v1+json"

// JSONMediaType requests the most recent version of the JSON
// representation of this content.
const JSONMediaType = "application/vnd.diffeo.spacelab+json"

// RootData is returned by the root path.
type RootData struct {
	// ScientistsURL points at the scientist list.  This endpoint
	// supports HTTP GET to return a list of ScientistShort, and
	// HTTP POST of a ScientistRequest to create a new scientist,
	// returning a Scientist.
	ScientistsURL string `json:"scientists_url"`

	// ScientistURL points at a single scientist.  This endpoint
	// supports HTTP GET, returning a ScientistDetail, and HTTP
	// DELETE.  This is a URI template with a single parameter,
	// "scientist", the scientist's ID.
	ScientistURL string `json:"scientist_url"`

	// PlanetsURL points at the planet list.  HTTP GET returns a
	// list of PlanetShort; HTTP POST of a PlanetRequest returns a
	// Planet.
	PlanetsURL string `json:"planets_url"`

	// PlanetURL points at a single planet, supporting HTTP GET
	// (returning a Planet) and DELETE.  Its template parameter is
	// "planet".
	PlanetURL string `json:"planet_url"`

	// MissionsURL points at the mission list.  HTTP GET returns a
	// list of Mission, and accepts "scientist_id" and "planet_id"
	// query parameters to filter it; HTTP POST of a MissionRequest
	// returns a Mission.
	MissionsURL string `json:"missions_url"`

	// MissionURL points at a single mission, supporting HTTP GET
	// and DELETE.  Its template parameter is "mission".
	MissionURL string `json:"mission_url"`
}

// ScientistShort is a scientist with no relations.
type ScientistShort struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	FieldOfStudy string `json:"field_of_study"`
}

// ScientistMission is one of a scientist's missions, including where
// it went.
type ScientistMission struct {
	MissionShort
	Planet PlanetShort `json:"planets"`
}

// Scientist is the full representation of a newly created scientist.
type Scientist struct {
	ScientistShort
	Missions []ScientistMission `json:"missions"`
}

// ScientistDetail is returned when retrieving a single scientist.
// It lists the scientist's missions but not their planets.
type ScientistDetail struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Missions []MissionShort `json:"missions"`
}

// ScientistRequest is posted to create a scientist.
type ScientistRequest struct {
	Name         string `json:"name"`
	FieldOfStudy string `json:"field_of_study"`
}

// PlanetShort is a planet with no relations.
type PlanetShort struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	DistanceFromEarth int    `json:"distance_from_earth"`
	NearestStar       string `json:"nearest_star"`
}

// PlanetMission is one of a planet's missions, including who went.
type PlanetMission struct {
	MissionShort
	Scientist ScientistShort `json:"scientists"`
}

// Planet is the full representation of a planet.
type Planet struct {
	PlanetShort
	Missions []PlanetMission `json:"missions"`
}

// PlanetRequest is posted to create a planet.
type PlanetRequest struct {
	Name              string `json:"name"`
	DistanceFromEarth int    `json:"distance_from_earth"`
	NearestStar       string `json:"nearest_star"`
}

// MissionShort is a mission with only the IDs of its scientist and
// planet.
type MissionShort struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ScientistID int    `json:"scientist_id"`
	PlanetID    int    `json:"planet_id"`
}

// Mission is the full representation of a mission.
type Mission struct {
	MissionShort
	Scientist ScientistShort `json:"scientists"`
	Planet    PlanetShort    `json:"planets"`
}

// MissionRequest is posted to create a mission.
type MissionRequest struct {
	Name        string `json:"name"`
	ScientistID int    `json:"scientist_id"`
	PlanetID    int    `json:"planet_id"`
}

// ErrorResponse is the body of every failed request.  Exactly one of
// its fields is set.
type ErrorResponse struct {
	// Error is a single human-readable message.
	Error string `json:"error,omitempty"`

	// Errors lists every problem with the request input.
	Errors []string `json:"errors,omitempty"`
}

// FromScientist builds the short form of a scientist.
func FromScientist(sci space.Scientist) ScientistShort {
	return ScientistShort{
		ID:           sci.ID,
		Name:         sci.Name,
		FieldOfStudy: sci.FieldOfStudy,
	}
}

// Scientist converts the short form back to a scientist record.
func (s ScientistShort) Scientist() space.Scientist {
	return space.Scientist{
		ID:           s.ID,
		Name:         s.Name,
		FieldOfStudy: s.FieldOfStudy,
	}
}

// Scientist converts a request to an unsaved scientist record.
func (r ScientistRequest) Scientist() space.Scientist {
	return space.Scientist{Name: r.Name, FieldOfStudy: r.FieldOfStudy}
}

// FromPlanet builds the short form of a planet.
func FromPlanet(planet space.Planet) PlanetShort {
	return PlanetShort{
		ID:                planet.ID,
		Name:              planet.Name,
		DistanceFromEarth: planet.DistanceFromEarth,
		NearestStar:       planet.NearestStar,
	}
}

// Planet converts the short form back to a planet record.
func (p PlanetShort) Planet() space.Planet {
	return space.Planet{
		ID:                p.ID,
		Name:              p.Name,
		DistanceFromEarth: p.DistanceFromEarth,
		NearestStar:       p.NearestStar,
	}
}

// Planet converts a request to an unsaved planet record.
func (r PlanetRequest) Planet() space.Planet {
	return space.Planet{
		Name:              r.Name,
		DistanceFromEarth: r.DistanceFromEarth,
		NearestStar:       r.NearestStar,
	}
}

// FromMission builds the short form of a mission.
func FromMission(mission space.Mission) MissionShort {
	return MissionShort{
		ID:          mission.ID,
		Name:        mission.Name,
		ScientistID: mission.ScientistID,
		PlanetID:    mission.PlanetID,
	}
}

// Mission converts the short form back to a mission record.
func (m MissionShort) Mission() space.Mission {
	return space.Mission{
		ID:          m.ID,
		Name:        m.Name,
		ScientistID: m.ScientistID,
		PlanetID:    m.PlanetID,
	}
}

// Mission converts a request to an unsaved mission record.
func (r MissionRequest) Mission() space.Mission {
	return space.Mission{
		Name:        r.Name,
		ScientistID: r.ScientistID,
		PlanetID:    r.PlanetID,
	}
}
