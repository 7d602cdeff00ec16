// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package memory provides an in-process, in-memory implementation of
// the space Store.  There is no persistence on this store, nor is
// there any automatic sharing.  The entire system is behind a single
// global mutex to protect against concurrent updates.
//
// This is mostly intended as a simple reference implementation that
// can be used for testing, including in-process testing of the REST
// server.  It is tuned for correctness, not performance.
package memory

import (
	"sort"
	"sync"

	"github.com/diffeo/go-spacelab/space"
)

// This is the only external entry point to this package:

// New creates a new Store that operates purely in memory.
func New() space.Store {
	return &memStore{
		scientists: make(map[int]space.Scientist),
		planets:    make(map[int]space.Planet),
		missions:   make(map[int]space.Mission),
	}
}

type memStore struct {
	sem        sync.Mutex
	lastID     struct{ scientist, planet, mission int }
	scientists map[int]space.Scientist
	planets    map[int]space.Planet
	missions   map[int]space.Mission
}

// do runs f under the global lock.  Pair every exported method with
// exactly one call to this.
func (s *memStore) do(f func() error) error {
	s.sem.Lock()
	defer s.sem.Unlock()
	return f()
}

// nextID allocates a new ID from one of the per-type counters in
// lastID.  It expects to run within the global lock.
func nextID(last *int) int {
	*last++
	return *last
}

// sortedIDs returns the keys of an ID-keyed map in ascending order.
func sortedIDs(n int, each func(func(int))) []int {
	ids := make([]int, 0, n)
	each(func(id int) { ids = append(ids, id) })
	sort.Ints(ids)
	return ids
}

// destroyMissions removes all missions matching a query.  It expects
// to run within the global lock.
func (s *memStore) destroyMissions(q space.MissionQuery) {
	for id, m := range s.missions {
		if q.Matches(m) {
			delete(s.missions, id)
		}
	}
}

// space.Store interface, scientists:

func (s *memStore) Scientists() (result []space.Scientist, err error) {
	err = s.do(func() error {
		ids := sortedIDs(len(s.scientists), func(f func(int)) {
			for id := range s.scientists {
				f(id)
			}
		})
		result = make([]space.Scientist, len(ids))
		for i, id := range ids {
			result[i] = s.scientists[id]
		}
		return nil
	})
	return
}

func (s *memStore) Scientist(id int) (sci space.Scientist, err error) {
	err = s.do(func() error {
		var present bool
		sci, present = s.scientists[id]
		if !present {
			return space.ErrNoSuchScientist{ID: id}
		}
		return nil
	})
	return
}

func (s *memStore) AddScientist(sci space.Scientist) (space.Scientist, error) {
	if err := sci.Validate(); err != nil {
		return space.Scientist{}, err
	}
	err := s.do(func() error {
		sci.ID = nextID(&s.lastID.scientist)
		s.scientists[sci.ID] = sci
		return nil
	})
	return sci, err
}

func (s *memStore) DestroyScientist(id int) error {
	return s.do(func() error {
		if _, present := s.scientists[id]; !present {
			return space.ErrNoSuchScientist{ID: id}
		}
		s.destroyMissions(space.MissionQuery{ScientistID: id})
		delete(s.scientists, id)
		return nil
	})
}

// space.Store interface, planets:

func (s *memStore) Planets() (result []space.Planet, err error) {
	err = s.do(func() error {
		ids := sortedIDs(len(s.planets), func(f func(int)) {
			for id := range s.planets {
				f(id)
			}
		})
		result = make([]space.Planet, len(ids))
		for i, id := range ids {
			result[i] = s.planets[id]
		}
		return nil
	})
	return
}

func (s *memStore) Planet(id int) (planet space.Planet, err error) {
	err = s.do(func() error {
		var present bool
		planet, present = s.planets[id]
		if !present {
			return space.ErrNoSuchPlanet{ID: id}
		}
		return nil
	})
	return
}

func (s *memStore) AddPlanet(planet space.Planet) (space.Planet, error) {
	err := s.do(func() error {
		planet.ID = nextID(&s.lastID.planet)
		s.planets[planet.ID] = planet
		return nil
	})
	return planet, err
}

func (s *memStore) DestroyPlanet(id int) error {
	return s.do(func() error {
		if _, present := s.planets[id]; !present {
			return space.ErrNoSuchPlanet{ID: id}
		}
		s.destroyMissions(space.MissionQuery{PlanetID: id})
		delete(s.planets, id)
		return nil
	})
}

// space.Store interface, missions:

func (s *memStore) Missions(q space.MissionQuery) (result []space.Mission, err error) {
	err = s.do(func() error {
		ids := sortedIDs(len(s.missions), func(f func(int)) {
			for id, m := range s.missions {
				if q.Matches(m) {
					f(id)
				}
			}
		})
		result = make([]space.Mission, len(ids))
		for i, id := range ids {
			result[i] = s.missions[id]
		}
		return nil
	})
	return
}

func (s *memStore) Mission(id int) (mission space.Mission, err error) {
	err = s.do(func() error {
		var present bool
		mission, present = s.missions[id]
		if !present {
			return space.ErrNoSuchMission{ID: id}
		}
		return nil
	})
	return
}

func (s *memStore) AddMission(mission space.Mission) (space.Mission, error) {
	if err := mission.Validate(); err != nil {
		return space.Mission{}, err
	}
	err := s.do(func() error {
		if _, present := s.scientists[mission.ScientistID]; !present {
			return space.MissingScientist(mission.ScientistID)
		}
		if _, present := s.planets[mission.PlanetID]; !present {
			return space.MissingPlanet(mission.PlanetID)
		}
		mission.ID = nextID(&s.lastID.mission)
		s.missions[mission.ID] = mission
		return nil
	})
	if err != nil {
		return space.Mission{}, err
	}
	return mission, nil
}

func (s *memStore) DestroyMission(id int) error {
	return s.do(func() error {
		if _, present := s.missions[id]; !present {
			return space.ErrNoSuchMission{ID: id}
		}
		delete(s.missions, id)
		return nil
	})
}
