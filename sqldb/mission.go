// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package sqldb

import (
	"database/sql"

	"github.com/diffeo/go-spacelab/space"
)

var missionColumns = []string{
	missionID,
	missionName,
	missionScientist,
	missionPlanet,
}

func scanMission(row interface{ Scan(...interface{}) error }) (mission space.Mission, err error) {
	err = row.Scan(&mission.ID, &mission.Name, &mission.ScientistID, &mission.PlanetID)
	return
}

func (s *sqlStore) Missions(q space.MissionQuery) ([]space.Mission, error) {
	result := []space.Mission{}
	err := queryAndScan(s, func(params *queryParams) string {
		result = result[:0]
		var conditions []string
		if q.ScientistID != 0 {
			conditions = append(conditions, params.Equals(missionScientist, q.ScientistID))
		}
		if q.PlanetID != 0 {
			conditions = append(conditions, params.Equals(missionPlanet, q.PlanetID))
		}
		return buildSelect(missionColumns, []string{missionTable}, conditions, missionID)
	}, func(rows *sql.Rows) error {
		mission, err := scanMission(rows)
		if err == nil {
			result = append(result, mission)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *sqlStore) Mission(id int) (mission space.Mission, err error) {
	err = withTx(s, true, func(tx *sql.Tx) error {
		params := s.params()
		query := buildSelect(missionColumns, []string{missionTable},
			[]string{params.Equals(missionID, id)}, "")
		var err error
		mission, err = scanMission(tx.QueryRow(query, params.Args...))
		if err == sql.ErrNoRows {
			return space.ErrNoSuchMission{ID: id}
		}
		return err
	})
	return
}

func (s *sqlStore) AddMission(mission space.Mission) (space.Mission, error) {
	if err := mission.Validate(); err != nil {
		return space.Mission{}, err
	}
	err := withTx(s, false, func(tx *sql.Tx) error {
		ok, err := s.exists(tx, scientistTable, scientistID, mission.ScientistID)
		if err != nil {
			return err
		}
		if !ok {
			return space.MissingScientist(mission.ScientistID)
		}
		ok, err = s.exists(tx, planetTable, planetID, mission.PlanetID)
		if err != nil {
			return err
		}
		if !ok {
			return space.MissingPlanet(mission.PlanetID)
		}

		params := s.params()
		fields := fieldList{}
		fields.Add(params, nameColumn, mission.Name)
		fields.Add(params, scientistIDColumn, mission.ScientistID)
		fields.Add(params, planetIDColumn, mission.PlanetID)
		mission.ID, err = s.insert(tx, missionTable, fields, params)
		return err
	})
	if err != nil {
		return space.Mission{}, err
	}
	return mission, nil
}

func (s *sqlStore) DestroyMission(id int) error {
	return withTx(s, false, func(tx *sql.Tx) error {
		count, err := s.deleteByID(tx, missionTable, idColumn, id)
		if err == nil && count == 0 {
			err = space.ErrNoSuchMission{ID: id}
		}
		return err
	})
}
