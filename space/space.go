// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package space defines the abstract data model and storage API for
// the spacelab service.
//
// There are three record types.  A Scientist and a Planet stand on
// their own; a Mission joins exactly one Scientist to exactly one
// Planet.  Deleting a Scientist or a Planet deletes every Mission that
// refers to it, and a Mission can never be created that refers to a
// record that does not exist.
//
// Applications get a Store from some specific implementation, such as
// the memory or sqldb packages, usually by way of the backend
// package.  Records are plain values; changing a returned record does
// not change the store.
package space

// Scientist is a person who can be sent on missions.
type Scientist struct {
	// ID is assigned by the store when the scientist is added.
	ID int

	// Name is the scientist's name.  It is never empty.
	Name string

	// FieldOfStudy is the scientist's discipline.  It is never
	// empty.
	FieldOfStudy string
}

// Planet is a destination for missions.
type Planet struct {
	// ID is assigned by the store when the planet is added.
	ID int

	Name              string
	DistanceFromEarth int
	NearestStar       string
}

// Mission is the join record sending one Scientist to one Planet.
type Mission struct {
	// ID is assigned by the store when the mission is added.
	ID int

	// Name is the mission's name.  It is never empty.
	Name string

	// ScientistID is the ID of an existing Scientist.
	ScientistID int

	// PlanetID is the ID of an existing Planet.
	PlanetID int
}

// MissionQuery selects a subset of missions.  Zero-valued fields
// match anything, so the zero MissionQuery selects every mission.
type MissionQuery struct {
	// ScientistID, if non-zero, selects only missions for this
	// scientist.
	ScientistID int

	// PlanetID, if non-zero, selects only missions to this planet.
	PlanetID int
}

// Matches determines whether a mission is selected by this query.
func (q MissionQuery) Matches(m Mission) bool {
	if q.ScientistID != 0 && q.ScientistID != m.ScientistID {
		return false
	}
	if q.PlanetID != 0 && q.PlanetID != m.PlanetID {
		return false
	}
	return true
}

// Store is the principal interface to persisted spacelab data.
// Implementations provide a specific database backend.  Every method
// is a single unit of work: it either completely succeeds or leaves
// the store unchanged.
//
// Lists are always returned in ascending ID order.  A list with no
// records is an empty, non-nil slice.
type Store interface {
	// Scientists returns every scientist.
	Scientists() ([]Scientist, error)

	// Scientist retrieves a single scientist by ID.  If there is
	// no such scientist, returns ErrNoSuchScientist.
	Scientist(id int) (Scientist, error)

	// AddScientist validates and stores a new scientist.  Any ID
	// in s is ignored.  Returns the stored record with its new ID,
	// or a ValidationError if s is not valid.
	AddScientist(s Scientist) (Scientist, error)

	// DestroyScientist deletes a scientist and all of its
	// missions.  If there is no such scientist, returns
	// ErrNoSuchScientist.
	DestroyScientist(id int) error

	// Planets returns every planet.
	Planets() ([]Planet, error)

	// Planet retrieves a single planet by ID.  If there is no
	// such planet, returns ErrNoSuchPlanet.
	Planet(id int) (Planet, error)

	// AddPlanet stores a new planet.  Any ID in p is ignored.
	AddPlanet(p Planet) (Planet, error)

	// DestroyPlanet deletes a planet and all missions to it.  If
	// there is no such planet, returns ErrNoSuchPlanet.
	DestroyPlanet(id int) error

	// Missions returns the missions matching a query.
	Missions(q MissionQuery) ([]Mission, error)

	// Mission retrieves a single mission by ID.  If there is no
	// such mission, returns ErrNoSuchMission.
	Mission(id int) (Mission, error)

	// AddMission validates and stores a new mission.  Any ID in m
	// is ignored.  Returns a ValidationError if m is not valid or
	// if its scientist or planet does not exist.
	AddMission(m Mission) (Mission, error)

	// DestroyMission deletes a single mission.  If there is no
	// such mission, returns ErrNoSuchMission.
	DestroyMission(id int) error
}
