package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres error classes surfaced to the domain. Constraint violations
// are the only database errors with a dedicated meaning; everything else
// propagates unchanged for the caller to log.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == codeUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == codeForeignKeyViolation
}
