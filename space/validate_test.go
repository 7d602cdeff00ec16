// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package space

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScientistValidate(t *testing.T) {
	tests := []struct {
		Scientist Scientist
		Problems  []string
	}{
		{
			Scientist: Scientist{Name: "Mel T. Valent", FieldOfStudy: "xenobiology"},
		},
		{
			Scientist: Scientist{FieldOfStudy: "xenobiology"},
			Problems:  []string{"name must not be empty"},
		},
		{
			Scientist: Scientist{Name: "Mel T. Valent"},
			Problems:  []string{"field_of_study must not be empty"},
		},
		{
			Scientist: Scientist{},
			Problems: []string{
				"name must not be empty",
				"field_of_study must not be empty",
			},
		},
	}
	for _, test := range tests {
		err := test.Scientist.Validate()
		if test.Problems == nil {
			assert.NoError(t, err, "%+v", test.Scientist)
		} else {
			assert.Equal(t, ValidationError{Problems: test.Problems}, err,
				"%+v", test.Scientist)
		}
	}
}

func TestMissionValidate(t *testing.T) {
	assert.NoError(t, Mission{Name: "Explore", ScientistID: 1, PlanetID: 2}.Validate())

	err := Mission{}.Validate()
	if assert.IsType(t, ValidationError{}, err) {
		assert.Len(t, err.(ValidationError).Problems, 3)
	}

	err = Mission{Name: "Explore", PlanetID: 2}.Validate()
	assert.Equal(t, ValidationError{Problems: []string{"scientist_id is required"}}, err)
}

func TestMissionQueryMatches(t *testing.T) {
	m := Mission{ID: 1, Name: "Explore", ScientistID: 2, PlanetID: 3}
	assert.True(t, MissionQuery{}.Matches(m))
	assert.True(t, MissionQuery{ScientistID: 2}.Matches(m))
	assert.True(t, MissionQuery{ScientistID: 2, PlanetID: 3}.Matches(m))
	assert.False(t, MissionQuery{ScientistID: 3}.Matches(m))
	assert.False(t, MissionQuery{ScientistID: 2, PlanetID: 2}.Matches(m))
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidationError{Problems: []string{"a", "b"}}
	assert.Equal(t, "validation failed: a; b", err.Error())
	assert.EqualError(t, MissingPlanet(4),
		"validation failed: planet_id 4 does not refer to an existing planet")
}
