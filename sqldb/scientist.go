// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package sqldb

import (
	"database/sql"

	"github.com/diffeo/go-spacelab/space"
)

var scientistColumns = []string{
	scientistID,
	scientistName,
	scientistFieldOfStudy,
}

func scanScientist(row interface{ Scan(...interface{}) error }) (sci space.Scientist, err error) {
	err = row.Scan(&sci.ID, &sci.Name, &sci.FieldOfStudy)
	return
}

func (s *sqlStore) Scientists() ([]space.Scientist, error) {
	result := []space.Scientist{}
	err := queryAndScan(s, func(params *queryParams) string {
		result = result[:0]
		return buildSelect(scientistColumns, []string{scientistTable}, nil, scientistID)
	}, func(rows *sql.Rows) error {
		sci, err := scanScientist(rows)
		if err == nil {
			result = append(result, sci)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *sqlStore) Scientist(id int) (sci space.Scientist, err error) {
	err = withTx(s, true, func(tx *sql.Tx) error {
		params := s.params()
		query := buildSelect(scientistColumns, []string{scientistTable},
			[]string{params.Equals(scientistID, id)}, "")
		var err error
		sci, err = scanScientist(tx.QueryRow(query, params.Args...))
		if err == sql.ErrNoRows {
			return space.ErrNoSuchScientist{ID: id}
		}
		return err
	})
	return
}

func (s *sqlStore) AddScientist(sci space.Scientist) (space.Scientist, error) {
	if err := sci.Validate(); err != nil {
		return space.Scientist{}, err
	}
	err := withTx(s, false, func(tx *sql.Tx) error {
		params := s.params()
		fields := fieldList{}
		fields.Add(params, nameColumn, sci.Name)
		fields.Add(params, fieldOfStudyColumn, sci.FieldOfStudy)
		var err error
		sci.ID, err = s.insert(tx, scientistTable, fields, params)
		return err
	})
	if err != nil {
		return space.Scientist{}, err
	}
	return sci, nil
}

func (s *sqlStore) DestroyScientist(id int) error {
	return withTx(s, false, func(tx *sql.Tx) error {
		// The schema cascades too, but SQLite only does that
		// if the connection remembered to turn foreign keys on
		_, err := s.deleteByID(tx, missionTable, scientistIDColumn, id)
		if err != nil {
			return err
		}
		count, err := s.deleteByID(tx, scientistTable, idColumn, id)
		if err == nil && count == 0 {
			err = space.ErrNoSuchScientist{ID: id}
		}
		return err
	})
}
