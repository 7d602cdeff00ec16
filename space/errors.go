// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package space

import (
	"fmt"
	"strings"
)

// ErrNoSuchScientist is returned by Store.Scientist() and similar
// functions that want to look up a scientist, but cannot find it.
type ErrNoSuchScientist struct {
	ID int
}

func (err ErrNoSuchScientist) Error() string {
	return fmt.Sprintf("No such scientist %v", err.ID)
}

// ErrNoSuchPlanet is returned by Store.Planet() and similar functions
// that want to look up a planet, but cannot find it.
type ErrNoSuchPlanet struct {
	ID int
}

func (err ErrNoSuchPlanet) Error() string {
	return fmt.Sprintf("No such planet %v", err.ID)
}

// ErrNoSuchMission is returned by Store.Mission() and similar
// functions that want to look up a mission, but cannot find it.
type ErrNoSuchMission struct {
	ID int
}

func (err ErrNoSuchMission) Error() string {
	return fmt.Sprintf("No such mission %v", err.ID)
}

// ValidationError is returned when a record cannot be stored because
// it breaks one or more field rules.  Problems has one human-readable
// entry per broken rule.
type ValidationError struct {
	Problems []string
}

func (err ValidationError) Error() string {
	return "validation failed: " + strings.Join(err.Problems, "; ")
}
