// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package sqldb

import (
	"database/sql"

	"github.com/diffeo/go-spacelab/space"
)

var planetColumns = []string{
	planetID,
	planetName,
	planetDistance,
	planetNearestStar,
}

func scanPlanet(row interface{ Scan(...interface{}) error }) (planet space.Planet, err error) {
	err = row.Scan(&planet.ID, &planet.Name, &planet.DistanceFromEarth, &planet.NearestStar)
	return
}

func (s *sqlStore) Planets() ([]space.Planet, error) {
	result := []space.Planet{}
	err := queryAndScan(s, func(params *queryParams) string {
		result = result[:0]
		return buildSelect(planetColumns, []string{planetTable}, nil, planetID)
	}, func(rows *sql.Rows) error {
		planet, err := scanPlanet(rows)
		if err == nil {
			result = append(result, planet)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *sqlStore) Planet(id int) (planet space.Planet, err error) {
	err = withTx(s, true, func(tx *sql.Tx) error {
		params := s.params()
		query := buildSelect(planetColumns, []string{planetTable},
			[]string{params.Equals(planetID, id)}, "")
		var err error
		planet, err = scanPlanet(tx.QueryRow(query, params.Args...))
		if err == sql.ErrNoRows {
			return space.ErrNoSuchPlanet{ID: id}
		}
		return err
	})
	return
}

func (s *sqlStore) AddPlanet(planet space.Planet) (space.Planet, error) {
	err := withTx(s, false, func(tx *sql.Tx) error {
		params := s.params()
		fields := fieldList{}
		fields.Add(params, nameColumn, planet.Name)
		fields.Add(params, distanceColumn, planet.DistanceFromEarth)
		fields.Add(params, nearestStarColumn, planet.NearestStar)
		var err error
		planet.ID, err = s.insert(tx, planetTable, fields, params)
		return err
	})
	if err != nil {
		return space.Planet{}, err
	}
	return planet, nil
}

func (s *sqlStore) DestroyPlanet(id int) error {
	return withTx(s, false, func(tx *sql.Tx) error {
		_, err := s.deleteByID(tx, missionTable, planetIDColumn, id)
		if err != nil {
			return err
		}
		count, err := s.deleteByID(tx, planetTable, idColumn, id)
		if err == nil && count == 0 {
			err = space.ErrNoSuchPlanet{ID: id}
		}
		return err
	})
}
