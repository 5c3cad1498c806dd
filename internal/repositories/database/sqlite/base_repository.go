package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/SscSPs/pos_shift_app/internal/apperrors"
)

// timeLayout is fixed width so lexical order of stored timestamps is chronological.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *sql.DB
}

// Ping checks that the database file is reachable.
func (r *BaseRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored timestamp %q: %w", s, err)
	}
	return t, nil
}

func parseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// sqliteErrorCode returns the extended result code of a driver error, or 0.
func sqliteErrorCode(err error) int {
	var sqlErr *sqlitedrv.Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code()
	}
	return 0
}

func isUniqueViolation(err error) bool {
	code := sqliteErrorCode(err)
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

func isPrimaryKeyViolation(err error) bool {
	return sqliteErrorCode(err) == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

func isForeignKeyViolation(err error) bool {
	return sqliteErrorCode(err) == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
}

func storageError(msg string, err error) error {
	return apperrors.NewAppError(500, msg, err)
}
