// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package space

import "fmt"

// Validate checks the field rules for a scientist: both the name and
// the field of study must be non-empty.  Returns nil or a
// ValidationError.
func (s Scientist) Validate() error {
	var problems []string
	if s.Name == "" {
		problems = append(problems, "name must not be empty")
	}
	if s.FieldOfStudy == "" {
		problems = append(problems, "field_of_study must not be empty")
	}
	return validation(problems)
}

// Validate checks the field rules for a mission.  The name must be
// non-empty and both foreign keys must be set.  This does not check
// that the scientist and planet exist; stores do that inside the
// same unit of work that creates the mission.
func (m Mission) Validate() error {
	var problems []string
	if m.Name == "" {
		problems = append(problems, "name must not be empty")
	}
	if m.ScientistID <= 0 {
		problems = append(problems, "scientist_id is required")
	}
	if m.PlanetID <= 0 {
		problems = append(problems, "planet_id is required")
	}
	return validation(problems)
}

// MissingScientist is the validation error for a mission whose
// scientist does not exist.
func MissingScientist(id int) error {
	return ValidationError{Problems: []string{
		fmt.Sprintf("scientist_id %v does not refer to an existing scientist", id),
	}}
}

// MissingPlanet is the validation error for a mission whose planet
// does not exist.
func MissingPlanet(id int) error {
	return ValidationError{Problems: []string{
		fmt.Sprintf("planet_id %v does not refer to an existing planet", id),
	}}
}

func validation(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return ValidationError{Problems: problems}
}
