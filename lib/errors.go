package lib

import (
	"database/sql"
	"errors"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// MapSqliteError folds driver errors into the repository taxonomy.
// Unique-constraint violations become ErrConflict, missing rows become
// ErrNotFound, everything else passes through as a storage failure.
func MapSqliteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return ErrConflict
		}
	}

	// The shim can flatten driver errors into plain strings, so the
	// message marker is the fallback classifier.
	if strings.Contains(strings.ToLower(err.Error()), "unique constraint failed") {
		return ErrConflict
	}

	return err
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUniqueViolation(err error) bool {
	return errors.Is(err, ErrConflict)
}
