// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package spacetest

import (
	"github.com/diffeo/go-spacelab/space"
)

// TestMissionCreateDestroy performs basic mission lifetime tests.
func (s *Suite) TestMissionCreateDestroy() {
	missions, err := s.Store.Missions(space.MissionQuery{})
	if s.NoError(err) {
		s.NotNil(missions)
		s.Empty(missions)
	}

	sci := s.AddScientist("Mel T. Valent")
	planet := s.AddPlanet("TauCeti e")

	mission, err := s.Store.AddMission(space.Mission{
		Name:        "Explore Planet X",
		ScientistID: sci.ID,
		PlanetID:    planet.ID,
	})
	s.Require().NoError(err)
	s.True(mission.ID > 0)
	s.Equal("Explore Planet X", mission.Name)
	s.Equal(sci.ID, mission.ScientistID)
	s.Equal(planet.ID, mission.PlanetID)

	got, err := s.Store.Mission(mission.ID)
	if s.NoError(err) {
		s.Equal(mission, got)
	}

	err = s.Store.DestroyMission(mission.ID)
	s.NoError(err)

	_, err = s.Store.Mission(mission.ID)
	s.Equal(space.ErrNoSuchMission{ID: mission.ID}, err)

	err = s.Store.DestroyMission(mission.ID)
	s.Equal(space.ErrNoSuchMission{ID: mission.ID}, err)

	// Destroying the mission leaves both ends alone
	_, err = s.Store.Scientist(sci.ID)
	s.NoError(err)
	_, err = s.Store.Planet(planet.ID)
	s.NoError(err)
}

// TestMissionValidation checks that missions missing required fields
// are rejected.
func (s *Suite) TestMissionValidation() {
	sci := s.AddScientist("Mel T. Valent")
	planet := s.AddPlanet("TauCeti e")

	_, err := s.Store.AddMission(space.Mission{
		ScientistID: sci.ID,
		PlanetID:    planet.ID,
	})
	s.Equal(space.ValidationError{Problems: []string{
		"name must not be empty",
	}}, err)

	_, err = s.Store.AddMission(space.Mission{Name: "x"})
	if s.IsType(space.ValidationError{}, err) {
		s.Len(err.(space.ValidationError).Problems, 2)
	}

	s.Empty(s.MissionIDs(space.MissionQuery{}))
}

// TestMissionReferences checks that a mission cannot refer to a
// scientist or planet that does not exist.
func (s *Suite) TestMissionReferences() {
	sci := s.AddScientist("Mel T. Valent")
	planet := s.AddPlanet("TauCeti e")

	_, err := s.Store.AddMission(space.Mission{
		Name:        "nowhere",
		ScientistID: sci.ID,
		PlanetID:    planet.ID + 100,
	})
	s.Equal(space.MissingPlanet(planet.ID+100), err)

	_, err = s.Store.AddMission(space.Mission{
		Name:        "nobody",
		ScientistID: sci.ID + 100,
		PlanetID:    planet.ID,
	})
	s.Equal(space.MissingScientist(sci.ID+100), err)

	s.Require().NoError(s.Store.DestroyScientist(sci.ID))
	_, err = s.Store.AddMission(space.Mission{
		Name:        "too late",
		ScientistID: sci.ID,
		PlanetID:    planet.ID,
	})
	s.Equal(space.MissingScientist(sci.ID), err)

	s.Empty(s.MissionIDs(space.MissionQuery{}))
}

// TestMissionQuery checks filtering missions by scientist and planet.
func (s *Suite) TestMissionQuery() {
	mars := s.AddPlanet("Mars")
	venus := s.AddPlanet("Venus")
	a := s.AddScientist("A")
	b := s.AddScientist("B")
	m1 := s.AddMission("one", a, mars)
	m2 := s.AddMission("two", a, venus)
	m3 := s.AddMission("three", b, mars)

	s.Equal([]int{m1.ID, m2.ID, m3.ID}, s.MissionIDs(space.MissionQuery{}))
	s.Equal([]int{m1.ID, m2.ID}, s.MissionIDs(space.MissionQuery{ScientistID: a.ID}))
	s.Equal([]int{m3.ID}, s.MissionIDs(space.MissionQuery{ScientistID: b.ID}))
	s.Equal([]int{m1.ID, m3.ID}, s.MissionIDs(space.MissionQuery{PlanetID: mars.ID}))
	s.Equal([]int{m2.ID}, s.MissionIDs(space.MissionQuery{ScientistID: a.ID, PlanetID: venus.ID}))
	s.Empty(s.MissionIDs(space.MissionQuery{ScientistID: b.ID, PlanetID: venus.ID}))
}
