// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package sqldb

// This file contains extremely generic support code for SQL
// applications.  There are three main things in here:
//
// (1) Functions to help with database/sql: withTx() to do work in a
//     transaction that can be retried, and scanRows() to loop over the
//     results of a multi-row SELECT
//
// (2) Helpers to build SQL SELECT and DELETE statements (dealing
//     entirely in strings)
//
// (3) Helpers to manage query parameter lists: queryParams is a
//     parameter list that can produce $1, $2, ... (or ?1, ?2, ...)
//     out, and fieldList is an INSERT column=value list

import (
	"database/sql"
	"strconv"
	"strings"
)

// maxRetries bounds the number of times withTx will rerun a
// transaction that hit a serialization failure.
const maxRetries = 16

// withTx calls some function with a database/sql transaction object.
// If f panics or returns a non-nil error, rolls the transaction back;
// otherwise commits it before returning.  Returns the error value from
// f, or some other error related to transaction management.
func withTx(s *sqlStore, readOnly bool, f func(*sql.Tx) error) (err error) {
	var (
		tx   *sql.Tx
		done bool
	)

	// If we have a failure, roll back; and if that rollback fails
	// and we don't yet have an error, set the error
	defer func() {
		if tx != nil && !done {
			err2 := tx.Rollback()
			if err == nil {
				err = err2
			}
		}
	}()

	// Run in a loop, repeating the work on serialization errors
	for attempt := 0; ; attempt++ {
		// Create the transaction
		tx, err = s.db.Begin()
		if err != nil {
			return
		}
		err = s.dialect.begin(tx, readOnly)
		if err != nil {
			return
		}

		// Call the callback function
		err = f(tx)

		// If that succeeded, commit
		if err == nil {
			err = tx.Commit()
			done = true
		}

		// If we specifically got a serialization error,
		// retry
		if err != nil && s.dialect.retryable(err) && attempt < maxRetries {
			err = tx.Rollback()
			if err == sql.ErrTxDone {
				// We want to roll back, but we
				// can't, because we've already
				// rolled back; not an error
				err = nil
			} else if err != nil {
				return
			}
			tx = nil
			done = false
			continue
		}

		break
	}

	return
}

// scanRows runs an SQL query and calls a function for each row in the
// result.  The callback function should only call the Scan() method on
// the provided Rows object; this function will take care of advancing
// through the list of rows and closing the iterator as required.
func scanRows(rows *sql.Rows, f func() error) (err error) {
	var done bool
	defer func() {
		if !done {
			err2 := rows.Close()
			if err == nil {
				err = err2
			}
		}
	}()

	for rows.Next() {
		err = f()
		if err != nil {
			return
		}
	}
	done = true
	err = rows.Err()
	return
}

// queryAndScan establishes a read-only transaction, runs a query built
// by build on it, and calls f for each row in it.  It is the common
// case of combining withTx() and scanRows().  build is called once per
// attempt, before any call to f.
func queryAndScan(s *sqlStore, build func(*queryParams) string, f func(*sql.Rows) error) error {
	return withTx(s, true, func(tx *sql.Tx) error {
		params := s.params()
		rows, err := tx.Query(build(params), params.Args...)
		if err != nil {
			return err
		}
		return scanRows(rows, func() error {
			return f(rows)
		})
	})
}

// buildSelect constructs a simple SQL SELECT statement by string
// concatenation.  All of the conditions are ANDed together.
func buildSelect(outputs, tables, conditions []string, orderBy string) string {
	query := "SELECT "
	query += strings.Join(outputs, ", ")
	query += " FROM "
	query += strings.Join(tables, ", ")
	if len(conditions) > 0 {
		query += " WHERE "
		query += strings.Join(conditions, " AND ")
	}
	if orderBy != "" {
		query += " ORDER BY " + orderBy
	}
	return query
}

// buildDelete constructs a simple SQL DELETE statement by string
// concatenation.  All of the conditions are ANDed together.
func buildDelete(table string, conditions []string) string {
	query := "DELETE FROM " + table
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	return query
}

// queryParams wraps a list of query parameters.
type queryParams struct {
	// Prefix is prepended to each parameter's position.
	Prefix string

	// Args holds the parameter values, in order.
	Args []interface{}
}

// params creates an empty parameter list for this store's dialect.
func (s *sqlStore) params() *queryParams {
	return &queryParams{Prefix: s.dialect.param}
}

// Param adds a parameter to the query parameter list, returning its
// position as $1, $2, ...
func (qp *queryParams) Param(param interface{}) string {
	qp.Args = append(qp.Args, param)
	return qp.Prefix + strconv.Itoa(len(qp.Args))
}

// Equals produces a "field=$n" condition for a new parameter.
func (qp *queryParams) Equals(field string, value interface{}) string {
	return field + "=" + qp.Param(value)
}

// fieldPair is a pair of values in a fieldList.
type fieldPair struct {
	Field string
	Value string
}

// fieldList is a list of "field=value" pairs as appears in SQL INSERT
// statements.
type fieldList struct {
	Fields []fieldPair
}

// Add adds a name and dynamic value to the field list.
func (f *fieldList) Add(qp *queryParams, field string, value interface{}) {
	f.Fields = append(f.Fields, fieldPair{Field: field, Value: qp.Param(value)})
}

// InsertStatement produces a syntactically complete SQL INSERT statement.
func (f fieldList) InsertStatement(table string) string {
	names := make([]string, len(f.Fields))
	values := make([]string, len(f.Fields))
	for i, field := range f.Fields {
		names[i] = field.Field
		values[i] = field.Value
	}
	return "INSERT INTO " + table + "(" + strings.Join(names, ", ") + ") VALUES(" + strings.Join(values, ", ") + ")"
}

// insert runs an INSERT statement for fields and returns the
// automatically assigned ID of the new row.
func (s *sqlStore) insert(tx *sql.Tx, table string, fields fieldList, params *queryParams) (int, error) {
	query := fields.InsertStatement(table)
	if s.dialect.returning {
		var id int
		err := tx.QueryRow(query+" RETURNING id", params.Args...).Scan(&id)
		return id, err
	}
	result, err := tx.Exec(query, params.Args...)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	return int(id), err
}

// exists determines whether a row with a given ID exists.
func (s *sqlStore) exists(tx *sql.Tx, table, column string, id int) (bool, error) {
	params := s.params()
	query := buildSelect([]string{"COUNT(*)"}, []string{table},
		[]string{params.Equals(column, id)}, "")
	var count int
	err := tx.QueryRow(query, params.Args...).Scan(&count)
	return count > 0, err
}

// deleteByID deletes the rows matching a single-column condition and
// reports how many were removed.
func (s *sqlStore) deleteByID(tx *sql.Tx, table, column string, id int) (int64, error) {
	params := s.params()
	query := buildDelete(table, []string{params.Equals(column, id)})
	result, err := tx.Exec(query, params.Args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
