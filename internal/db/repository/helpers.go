package repository

import (
	"database/sql"
	"strings"

	"jdbc-bridge/internal/domain"
)

// mapDBError translates low-level SQLite errors into domain errors where the
// mapping is unambiguous; anything else passes through for %w wrapping by
// callers.
func mapDBError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return domain.ErrConflict("already exists: %s", msg)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return domain.ErrValidation("constraint violation: %s", msg)
	default:
		return err
	}
}

// nullStrFromStr converts a string to sql.NullString, treating "" as NULL.
func nullStrFromStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
