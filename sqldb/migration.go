// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package sqldb

import (
	"database/sql"
	"fmt"

	"github.com/rubenv/sql-migrate"
)

// This file maintains the database migration code.  See
// https://github.com/rubenv/sql-migrate for details of what goes in
// here.  This runs "outside" the normal store flow, at initial
// startup.
//
// Constraint names follow fk_<table>_<column>_<referred table>,
// ck_<table>_<column>, and ix_<table>_<column>.

// migrations returns the schema history for a sql-migrate dialect.
// The only engine-specific parts are the integer column types; every
// integer column is 64 bits wide on both engines.
func migrations(dialectName string) (migrate.MigrationSource, error) {
	var d *dialect
	switch dialectName {
	case postgresDialect.migrate:
		d = postgresDialect
	case sqliteDialect.migrate:
		d = sqliteDialect
	default:
		return nil, fmt.Errorf("no migrations for dialect %q", dialectName)
	}
	serial, integer := d.serial, d.integer
	return &migrate.MemoryMigrationSource{
		Migrations: []*migrate.Migration{
			{
				Id: "1-initial",
				Up: []string{
					`CREATE TABLE scientists (
						id ` + serial + `,
						name TEXT NOT NULL
							CONSTRAINT ck_scientists_name CHECK (name <> ''),
						field_of_study TEXT NOT NULL
							CONSTRAINT ck_scientists_field_of_study CHECK (field_of_study <> '')
					)`,
					`CREATE TABLE planets (
						id ` + serial + `,
						name TEXT NOT NULL DEFAULT '',
						distance_from_earth ` + integer + ` NOT NULL DEFAULT 0,
						nearest_star TEXT NOT NULL DEFAULT ''
					)`,
					`CREATE TABLE missions (
						id ` + serial + `,
						name TEXT NOT NULL
							CONSTRAINT ck_missions_name CHECK (name <> ''),
						scientist_id ` + integer + ` NOT NULL
							CONSTRAINT fk_missions_scientist_id_scientists
							REFERENCES scientists(id) ON DELETE CASCADE,
						planet_id ` + integer + ` NOT NULL
							CONSTRAINT fk_missions_planet_id_planets
							REFERENCES planets(id) ON DELETE CASCADE
					)`,
					`CREATE INDEX ix_missions_scientist_id ON missions(scientist_id)`,
					`CREATE INDEX ix_missions_planet_id ON missions(planet_id)`,
				},
				Down: []string{
					`DROP TABLE missions`,
					`DROP TABLE planets`,
					`DROP TABLE scientists`,
				},
			},
		},
	}, nil
}

// Upgrade upgrades a database to the latest schema version.
// dialectName is a sql-migrate dialect, "postgres" or "sqlite3".
func Upgrade(db *sql.DB, dialectName string) error {
	source, err := migrations(dialectName)
	if err != nil {
		return err
	}
	_, err = migrate.Exec(db, dialectName, source, migrate.Up)
	return err
}

// Drop clears a database by running all of the migrations in reverse,
// ultimately resulting in dropping all of the tables.
func Drop(db *sql.DB, dialectName string) error {
	source, err := migrations(dialectName)
	if err != nil {
		return err
	}
	_, err = migrate.Exec(db, dialectName, source, migrate.Down)
	return err
}
