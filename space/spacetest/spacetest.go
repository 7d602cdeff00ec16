// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package spacetest provides generic functional tests for the space
// Store interface.  A typical backend test module embeds Suite and
// creates a fresh store before every test:
//
//     package mybackend
//
//     import (
//             "testing"
//             "github.com/diffeo/go-spacelab/space/spacetest"
//             "github.com/stretchr/testify/suite"
//     )
//
//     // Suite is the per-backend generic test suite.
//     type Suite struct{
//             spacetest.Suite
//     }
//
//     // SetupTest creates an empty store for each test.
//     func (s *Suite) SetupTest() {
//             s.Store = New()
//     }
//
//     // TestStore runs the space generic tests.
//     func TestStore(t *testing.T) {
//             suite.Run(t, &Suite{})
//     }
package spacetest

import (
	"github.com/diffeo/go-spacelab/space"
	"github.com/stretchr/testify/suite"
)

// Suite is the generic Store backend test suite.
type Suite struct {
	suite.Suite

	// Store contains the interface to the backend under test.  It
	// must be empty at the start of every test, and is set by
	// importing packages.
	Store space.Store
}

// AddScientist adds a scientist with the given name and a fixed field
// of study, failing the test immediately if that does not work.
func (s *Suite) AddScientist(name string) space.Scientist {
	sci, err := s.Store.AddScientist(space.Scientist{
		Name:         name,
		FieldOfStudy: "astrophysics",
	})
	s.Require().NoError(err)
	return sci
}

// AddPlanet adds a planet with the given name, failing the test
// immediately if that does not work.
func (s *Suite) AddPlanet(name string) space.Planet {
	planet, err := s.Store.AddPlanet(space.Planet{
		Name:              name,
		DistanceFromEarth: 42,
		NearestStar:       "Sol",
	})
	s.Require().NoError(err)
	return planet
}

// AddMission sends a scientist to a planet, failing the test
// immediately if that does not work.
func (s *Suite) AddMission(name string, sci space.Scientist, planet space.Planet) space.Mission {
	mission, err := s.Store.AddMission(space.Mission{
		Name:        name,
		ScientistID: sci.ID,
		PlanetID:    planet.ID,
	})
	s.Require().NoError(err)
	return mission
}

// MissionIDs returns the IDs of the missions matching a query.
func (s *Suite) MissionIDs(q space.MissionQuery) []int {
	missions, err := s.Store.Missions(q)
	s.Require().NoError(err)
	ids := make([]int, len(missions))
	for i, m := range missions {
		ids[i] = m.ID
	}
	return ids
}
