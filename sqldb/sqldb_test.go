// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package sqldb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/diffeo/go-spacelab/space"
	"github.com/diffeo/go-spacelab/space/spacetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// SQLiteSuite runs the generic store tests against a fresh SQLite
// file per test.
type SQLiteSuite struct {
	spacetest.Suite
}

// SetupTest creates an empty database for each test.
func (s *SQLiteSuite) SetupTest() {
	store, err := NewSQLite(filepath.Join(s.T().TempDir(), "test.db"))
	s.Require().NoError(err)
	s.Store = store
}

// TearDownTest closes the database.
func (s *SQLiteSuite) TearDownTest() {
	if store, ok := s.Store.(*sqlStore); ok {
		s.NoError(store.Close())
	}
}

func TestSQLite(t *testing.T) {
	suite.Run(t, &SQLiteSuite{})
}

// PostgresSuite runs the generic store tests against PostgreSQL,
// emptying the database before every test.
//
// This creates a PostgreSQL backend using an empty string as the
// connection string.  This means that you must set environment
// variables as described in
// http://www.postgresql.org/docs/current/static/libpq-envars.html;
// the suite is skipped if PGHOST is unset.
type PostgresSuite struct {
	spacetest.Suite
}

// SetupTest drops and recreates the schema for each test.
func (s *PostgresSuite) SetupTest() {
	store, err := NewPostgres("")
	s.Require().NoError(err)
	db := store.(*sqlStore).db
	s.Require().NoError(Drop(db, postgresDialect.migrate))
	s.Require().NoError(Upgrade(db, postgresDialect.migrate))
	s.Store = store
}

// TearDownTest closes the connection pool.
func (s *PostgresSuite) TearDownTest() {
	if store, ok := s.Store.(*sqlStore); ok {
		s.NoError(store.Close())
	}
}

func TestPostgres(t *testing.T) {
	if os.Getenv("PGHOST") == "" {
		t.Skip("PGHOST not set")
	}
	suite.Run(t, &PostgresSuite{})
}

// TestSQLitePersists checks that data survives closing and reopening
// the database file, and that reopening does not rerun migrations.
func TestSQLitePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")

	store, err := NewSQLite(path)
	require.NoError(t, err)
	sci, err := store.AddScientist(space.Scientist{Name: "Mel", FieldOfStudy: "xenobiology"})
	require.NoError(t, err)
	require.NoError(t, store.(*sqlStore).Close())

	store, err = NewSQLite(path)
	require.NoError(t, err)
	defer store.(*sqlStore).Close()
	got, err := store.Scientist(sci.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, sci, got)
	}
}

// TestSQLiteForeignKeys checks that the schema itself refuses a
// dangling mission, independent of the checks in AddMission.
func TestSQLiteForeignKeys(t *testing.T) {
	store, err := NewSQLite(filepath.Join(t.TempDir(), "fk.db"))
	require.NoError(t, err)
	s := store.(*sqlStore)
	defer s.Close()

	_, err = s.db.Exec("INSERT INTO missions(name, scientist_id, planet_id) VALUES('x', 1, 1)")
	assert.Error(t, err)
}
