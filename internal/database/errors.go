package database

import (
	"database/sql"
	"errors"
	"regexp"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Unique-violation details look like: Key (username)=(bob) already exists.
var _rgxViolationDetail = regexp.MustCompile(`\((.*?)\)=\((.*?)\)`)

func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

// UniqueViolationColumn extracts the offending column and value from a
// unique-violation error, when the driver reports them.
func UniqueViolationColumn(err error) (column, value string, ok bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return "", "", false
	}

	matches := _rgxViolationDetail.FindStringSubmatch(pgErr.Detail)
	if len(matches) != 3 {
		return "", "", false
	}

	return matches[1], matches[2], true
}
