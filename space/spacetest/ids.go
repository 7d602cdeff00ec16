// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package spacetest

import (
	"github.com/diffeo/go-spacelab/space"
)

// farID is far beyond any ID a test creates, and beyond 32 bits.
const farID = 1 << 40

// TestIDsPerType checks that each record type numbers its records
// independently.
func (s *Suite) TestIDsPerType() {
	first := s.AddScientist("A")
	planet := s.AddPlanet("Mars")
	second := s.AddScientist("B")
	s.Equal(first.ID+1, second.ID)

	mission := s.AddMission("one", second, planet)
	other := s.AddPlanet("Venus")
	next := s.AddMission("two", first, other)
	s.Equal(planet.ID+1, other.ID)
	s.Equal(mission.ID+1, next.ID)
}

// TestFarIDs checks that IDs too large for a 32-bit integer are
// simply absent, not errors.
func (s *Suite) TestFarIDs() {
	sci := s.AddScientist("Mel T. Valent")
	planet := s.AddPlanet("TauCeti e")

	_, err := s.Store.Scientist(farID)
	s.Equal(space.ErrNoSuchScientist{ID: farID}, err)
	_, err = s.Store.Planet(farID)
	s.Equal(space.ErrNoSuchPlanet{ID: farID}, err)
	_, err = s.Store.Mission(farID)
	s.Equal(space.ErrNoSuchMission{ID: farID}, err)

	s.Equal(space.ErrNoSuchScientist{ID: farID}, s.Store.DestroyScientist(farID))
	s.Equal(space.ErrNoSuchPlanet{ID: farID}, s.Store.DestroyPlanet(farID))
	s.Equal(space.ErrNoSuchMission{ID: farID}, s.Store.DestroyMission(farID))

	s.Empty(s.MissionIDs(space.MissionQuery{ScientistID: farID}))
	s.Empty(s.MissionIDs(space.MissionQuery{PlanetID: farID}))

	_, err = s.Store.AddMission(space.Mission{
		Name:        "nobody",
		ScientistID: farID,
		PlanetID:    planet.ID,
	})
	s.Equal(space.MissingScientist(farID), err)

	_, err = s.Store.AddMission(space.Mission{
		Name:        "nowhere",
		ScientistID: sci.ID,
		PlanetID:    farID,
	})
	s.Equal(space.MissingPlanet(farID), err)
}

// TestPlanetFarDistance checks that distances need not fit in 32 bits.
func (s *Suite) TestPlanetFarDistance() {
	planet, err := s.Store.AddPlanet(space.Planet{
		Name:              "GN-z11 b",
		DistanceFromEarth: farID,
	})
	s.Require().NoError(err)
	got, err := s.Store.Planet(planet.ID)
	if s.NoError(err) {
		s.Equal(farID, got.DistanceFromEarth)
	}
}
