// Package pgerrors classifies PostgreSQL driver errors shared by the
// repository implementations.
package pgerrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	lockNotAvailableCode = "55P03"
	uniqueViolationCode  = "23505"
)

// IsLockNotAvailable reports whether err is a failed FOR UPDATE NOWAIT lock
// acquisition. Callers treat this as retryable contention, not corruption.
func IsLockNotAvailable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == lockNotAvailableCode
}

// IsUniqueViolation reports whether err is a unique-constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
