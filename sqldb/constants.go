// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package sqldb

const (
	// SQL table names:
	scientistTable = "scientists"
	planetTable    = "planets"
	missionTable   = "missions"

	// SQL column names:
	scientistID           = scientistTable + ".id"
	scientistName         = scientistTable + ".name"
	scientistFieldOfStudy = scientistTable + ".field_of_study"
	planetID              = planetTable + ".id"
	planetName            = planetTable + ".name"
	planetDistance        = planetTable + ".distance_from_earth"
	planetNearestStar     = planetTable + ".nearest_star"
	missionID             = missionTable + ".id"
	missionName           = missionTable + ".name"
	missionScientist      = missionTable + ".scientist_id"
	missionPlanet         = missionTable + ".planet_id"
)

// Unqualified column names, as used in INSERT statements.
const (
	idColumn           = "id"
	nameColumn         = "name"
	fieldOfStudyColumn = "field_of_study"
	distanceColumn     = "distance_from_earth"
	nearestStarColumn  = "nearest_star"
	scientistIDColumn  = "scientist_id"
	planetIDColumn     = "planet_id"
)
