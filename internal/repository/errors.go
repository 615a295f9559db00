// Package repository implements CRUD over Postgres with raw parameterized
// SQL. Simple lookups signal absence with a nil record and nil error; the
// sentinel errors below cover integrity violations and zero-rows-affected
// writes. The service layer decides which of these become domain errors.
package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicateEntry - a unique natural key (email, favorite pair) is taken.
var ErrDuplicateEntry = errors.New("duplicate entry")

// ErrNotFound - an update or delete affected zero rows.
var ErrNotFound = errors.New("not found")

// ErrColumnNotAllowed - a filter column is outside the allow-list. The
// query is never built, let alone executed.
var ErrColumnNotAllowed = errors.New("column not allowed")

// isUniqueViolation - Postgres unique_violation (23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
