// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package spacetest

import (
	"github.com/diffeo/go-spacelab/space"
)

// TestPlanetCreateDestroy performs basic planet lifetime tests.
func (s *Suite) TestPlanetCreateDestroy() {
	planets, err := s.Store.Planets()
	if s.NoError(err) {
		s.NotNil(planets)
		s.Empty(planets)
	}

	planet, err := s.Store.AddPlanet(space.Planet{
		Name:              "TauCeti e",
		DistanceFromEarth: 1234567,
		NearestStar:       "TauCeti",
	})
	s.Require().NoError(err)
	s.True(planet.ID > 0)
	s.Equal("TauCeti e", planet.Name)
	s.Equal(1234567, planet.DistanceFromEarth)
	s.Equal("TauCeti", planet.NearestStar)

	got, err := s.Store.Planet(planet.ID)
	if s.NoError(err) {
		s.Equal(planet, got)
	}

	err = s.Store.DestroyPlanet(planet.ID)
	s.NoError(err)

	_, err = s.Store.Planet(planet.ID)
	s.Equal(space.ErrNoSuchPlanet{ID: planet.ID}, err)

	err = s.Store.DestroyPlanet(planet.ID)
	s.Equal(space.ErrNoSuchPlanet{ID: planet.ID}, err)
}

// TestPlanetEmptyFields checks that planets have no required fields.
func (s *Suite) TestPlanetEmptyFields() {
	planet, err := s.Store.AddPlanet(space.Planet{})
	s.Require().NoError(err)

	got, err := s.Store.Planet(planet.ID)
	if s.NoError(err) {
		s.Equal(space.Planet{ID: planet.ID}, got)
	}
}

// TestDestroyPlanetCascades checks that deleting a planet deletes the
// missions to it, and only those missions.
func (s *Suite) TestDestroyPlanetCascades() {
	mars := s.AddPlanet("Mars")
	venus := s.AddPlanet("Venus")
	a := s.AddScientist("A")
	b := s.AddScientist("B")
	s.AddMission("one", a, mars)
	m2 := s.AddMission("two", a, venus)
	s.AddMission("three", b, mars)

	s.Require().NoError(s.Store.DestroyPlanet(mars.ID))

	s.Equal([]int{m2.ID}, s.MissionIDs(space.MissionQuery{}))

	scientists, err := s.Store.Scientists()
	if s.NoError(err) {
		s.Equal([]space.Scientist{a, b}, scientists)
	}
}
