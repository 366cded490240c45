// Package database owns the storefront's SQL store. The database is an
// in-memory SQLite instance: orders and accounts survive for the lifetime of
// the process and reset on restart.
package database

import (
	"embed"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

var Storefront *sqlx.DB

func ConnectAndMigrate() error {
	db, err := sqlx.Open("sqlite3", "file:storefront?mode=memory&cache=shared")
	if err != nil {
		return err
	}

	// a single connection keeps the shared in-memory database alive
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return err
	}

	if err := migrateUp(db); err != nil {
		return err
	}

	Storefront = db
	return nil
}

func migrateUp(db *sqlx.DB) error {
	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	if err != nil {
		return err
	}

	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// Tx runs fn inside a transaction, committing on nil and rolling back on
// error.
func Tx(fn func(tx *sqlx.Tx) error) error {
	tx, err := Storefront.Beginx()
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logrus.WithError(rbErr).Error("failed to roll back transaction")
		}
		return err
	}
	return tx.Commit()
}

func ShutdownDatabase() error {
	return Storefront.Close()
}
