// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package spacetest

import (
	"github.com/diffeo/go-spacelab/space"
)

// TestScientistCreateDestroy performs basic scientist lifetime tests.
func (s *Suite) TestScientistCreateDestroy() {
	scientists, err := s.Store.Scientists()
	if s.NoError(err) {
		s.NotNil(scientists)
		s.Empty(scientists)
	}

	_, err = s.Store.Scientist(1)
	s.Equal(space.ErrNoSuchScientist{ID: 1}, err)

	sci, err := s.Store.AddScientist(space.Scientist{
		ID:           17,
		Name:         "Mel T. Valent",
		FieldOfStudy: "xenobiology",
	})
	s.Require().NoError(err)
	s.NotEqual(17, sci.ID, "caller-provided ID should be ignored")
	s.True(sci.ID > 0)
	s.Equal("Mel T. Valent", sci.Name)
	s.Equal("xenobiology", sci.FieldOfStudy)

	got, err := s.Store.Scientist(sci.ID)
	if s.NoError(err) {
		s.Equal(sci, got)
	}

	scientists, err = s.Store.Scientists()
	if s.NoError(err) {
		s.Equal([]space.Scientist{sci}, scientists)
	}

	err = s.Store.DestroyScientist(sci.ID)
	s.NoError(err)

	_, err = s.Store.Scientist(sci.ID)
	s.Equal(space.ErrNoSuchScientist{ID: sci.ID}, err)

	err = s.Store.DestroyScientist(sci.ID)
	s.Equal(space.ErrNoSuchScientist{ID: sci.ID}, err)

	scientists, err = s.Store.Scientists()
	if s.NoError(err) {
		s.Empty(scientists)
	}
}

// TestScientistValidation checks that invalid scientists are rejected
// and not stored.
func (s *Suite) TestScientistValidation() {
	_, err := s.Store.AddScientist(space.Scientist{FieldOfStudy: "geology"})
	s.Equal(space.ValidationError{Problems: []string{
		"name must not be empty",
	}}, err)

	_, err = s.Store.AddScientist(space.Scientist{Name: "Rose"})
	s.IsType(space.ValidationError{}, err)

	_, err = s.Store.AddScientist(space.Scientist{})
	if s.IsType(space.ValidationError{}, err) {
		s.Len(err.(space.ValidationError).Problems, 2)
	}

	scientists, err := s.Store.Scientists()
	if s.NoError(err) {
		s.Empty(scientists)
	}
}

// TestScientistOrdering checks that scientists are listed in creation
// order and that IDs are not reused.
func (s *Suite) TestScientistOrdering() {
	a := s.AddScientist("A")
	b := s.AddScientist("B")
	c := s.AddScientist("C")
	s.True(a.ID < b.ID)
	s.True(b.ID < c.ID)

	s.Require().NoError(s.Store.DestroyScientist(c.ID))
	d := s.AddScientist("D")
	s.True(c.ID < d.ID)

	scientists, err := s.Store.Scientists()
	if s.NoError(err) {
		s.Equal([]space.Scientist{a, b, d}, scientists)
	}
}

// TestDestroyScientistCascades checks that deleting a scientist
// deletes its missions, and only its missions.
func (s *Suite) TestDestroyScientistCascades() {
	mars := s.AddPlanet("Mars")
	venus := s.AddPlanet("Venus")
	a := s.AddScientist("A")
	b := s.AddScientist("B")
	m1 := s.AddMission("one", a, mars)
	m2 := s.AddMission("two", a, venus)
	m3 := s.AddMission("three", b, mars)

	s.Equal([]int{m1.ID, m2.ID, m3.ID}, s.MissionIDs(space.MissionQuery{}))

	s.Require().NoError(s.Store.DestroyScientist(a.ID))

	s.Equal([]int{m3.ID}, s.MissionIDs(space.MissionQuery{}))
	_, err := s.Store.Mission(m1.ID)
	s.Equal(space.ErrNoSuchMission{ID: m1.ID}, err)
	_, err = s.Store.Mission(m2.ID)
	s.Equal(space.ErrNoSuchMission{ID: m2.ID}, err)

	planets, err := s.Store.Planets()
	if s.NoError(err) {
		s.Equal([]space.Planet{mars, venus}, planets)
	}
}
