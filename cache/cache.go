// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package cache provides ID-based caching of space records.  The cache
// wraps some other Store.  List operations simply pass through to the
// underlying store, but fetching a single scientist, planet, or
// mission by ID will return a cached copy if one is available.
//
// Caveats
//
// The cache only sees changes made through itself.  If several
// processes share one database, a record destroyed by another process
// may still be returned from this cache until it is evicted.  Run one
// cached server per database, or none at all.
//
// Destroying a scientist or planet removes every cached mission that
// referred to it, matching the cascade in the underlying store.
package cache

import (
	"github.com/diffeo/go-spacelab/space"
)

// DefaultSize is the number of records of each type kept by a cache
// created with a non-positive size.
const DefaultSize = 1024

// New creates a new Store that caches records from another Store,
// keeping at most size records of each type.
func New(store space.Store, size int) space.Store {
	if size <= 0 {
		size = DefaultSize
	}
	return &cache{
		store:      store,
		scientists: newLRU(size),
		planets:    newLRU(size),
		missions:   newLRU(size),
	}
}

type cache struct {
	store      space.Store
	scientists *lru
	planets    *lru
	missions   *lru
}

func (c *cache) Scientists() ([]space.Scientist, error) {
	return c.store.Scientists()
}

func (c *cache) Scientist(id int) (space.Scientist, error) {
	item, err := c.scientists.Get(id, func(id int) (interface{}, error) {
		return c.store.Scientist(id)
	})
	if err != nil {
		return space.Scientist{}, err
	}
	return item.(space.Scientist), nil
}

func (c *cache) AddScientist(sci space.Scientist) (space.Scientist, error) {
	sci, err := c.store.AddScientist(sci)
	if err == nil {
		c.scientists.Put(sci.ID, sci)
	}
	return sci, err
}

func (c *cache) DestroyScientist(id int) error {
	err := c.store.DestroyScientist(id)
	c.scientists.Remove(id)
	c.missions.RemoveIf(func(item interface{}) bool {
		return item.(space.Mission).ScientistID == id
	})
	return err
}

func (c *cache) Planets() ([]space.Planet, error) {
	return c.store.Planets()
}

func (c *cache) Planet(id int) (space.Planet, error) {
	item, err := c.planets.Get(id, func(id int) (interface{}, error) {
		return c.store.Planet(id)
	})
	if err != nil {
		return space.Planet{}, err
	}
	return item.(space.Planet), nil
}

func (c *cache) AddPlanet(planet space.Planet) (space.Planet, error) {
	planet, err := c.store.AddPlanet(planet)
	if err == nil {
		c.planets.Put(planet.ID, planet)
	}
	return planet, err
}

func (c *cache) DestroyPlanet(id int) error {
	err := c.store.DestroyPlanet(id)
	c.planets.Remove(id)
	c.missions.RemoveIf(func(item interface{}) bool {
		return item.(space.Mission).PlanetID == id
	})
	return err
}

func (c *cache) Missions(q space.MissionQuery) ([]space.Mission, error) {
	return c.store.Missions(q)
}

func (c *cache) Mission(id int) (space.Mission, error) {
	item, err := c.missions.Get(id, func(id int) (interface{}, error) {
		return c.store.Mission(id)
	})
	if err != nil {
		return space.Mission{}, err
	}
	return item.(space.Mission), nil
}

func (c *cache) AddMission(mission space.Mission) (space.Mission, error) {
	mission, err := c.store.AddMission(mission)
	if err == nil {
		c.missions.Put(mission.ID, mission)
	}
	return mission, err
}

func (c *cache) DestroyMission(id int) error {
	err := c.store.DestroyMission(id)
	c.missions.Remove(id)
	return err
}
