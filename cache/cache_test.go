// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cache_test

import (
	"testing"

	"github.com/diffeo/go-spacelab/cache"
	"github.com/diffeo/go-spacelab/memory"
	"github.com/diffeo/go-spacelab/space"
	"github.com/diffeo/go-spacelab/space/spacetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic store tests through a cache.
type Suite struct {
	spacetest.Suite
}

// SetupTest creates a small cache over an empty memory store, small
// enough that the generic tests force evictions.
func (s *Suite) SetupTest() {
	s.Store = cache.New(memory.New(), 2)
}

func TestCache(t *testing.T) {
	suite.Run(t, &Suite{})
}

// countingStore counts single-record fetches against a real store.
type countingStore struct {
	space.Store
	fetches int
}

func (c *countingStore) Scientist(id int) (space.Scientist, error) {
	c.fetches++
	return c.Store.Scientist(id)
}

func (c *countingStore) Mission(id int) (space.Mission, error) {
	c.fetches++
	return c.Store.Mission(id)
}

// TestCacheHits checks that a cached scientist is not refetched.
func TestCacheHits(t *testing.T) {
	backend := &countingStore{Store: memory.New()}
	c := cache.New(backend, 8)

	sci, err := c.AddScientist(space.Scientist{Name: "Mel", FieldOfStudy: "xenobiology"})
	if !assert.NoError(t, err) {
		return
	}

	for i := 0; i < 3; i++ {
		got, err := c.Scientist(sci.ID)
		if assert.NoError(t, err) {
			assert.Equal(t, sci, got)
		}
	}
	assert.Equal(t, 0, backend.fetches)

	// Misses go to the backend every time
	for i := 0; i < 2; i++ {
		_, err = c.Scientist(sci.ID + 1)
		assert.Equal(t, space.ErrNoSuchScientist{ID: sci.ID + 1}, err)
	}
	assert.Equal(t, 2, backend.fetches)
}

// TestCacheCascade checks that destroying a planet drops its cached
// missions.
func TestCacheCascade(t *testing.T) {
	backend := &countingStore{Store: memory.New()}
	c := cache.New(backend, 8)

	sci, err := c.AddScientist(space.Scientist{Name: "Mel", FieldOfStudy: "xenobiology"})
	assert.NoError(t, err)
	planet, err := c.AddPlanet(space.Planet{Name: "Mars"})
	assert.NoError(t, err)
	mission, err := c.AddMission(space.Mission{
		Name:        "dig",
		ScientistID: sci.ID,
		PlanetID:    planet.ID,
	})
	if !assert.NoError(t, err) {
		return
	}

	_, err = c.Mission(mission.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, backend.fetches)

	assert.NoError(t, c.DestroyPlanet(planet.ID))

	_, err = c.Planet(planet.ID)
	assert.Equal(t, space.ErrNoSuchPlanet{ID: planet.ID}, err)
	_, err = c.Mission(mission.ID)
	assert.Equal(t, space.ErrNoSuchMission{ID: mission.ID}, err)
	assert.Equal(t, 1, backend.fetches)

	// The scientist is still there, and still cached
	_, err = c.Scientist(sci.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, backend.fetches)
}
