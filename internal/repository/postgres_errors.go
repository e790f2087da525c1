package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// on a constraint whose name contains constraintName
func isDuplicateKeyError(err error, constraintName string) bool {
	return hasPgError(err, pgUniqueViolation, constraintName)
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	return hasPgError(err, pgForeignKeyViolation, constraintName)
}

func hasPgError(err error, code, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return false
}
