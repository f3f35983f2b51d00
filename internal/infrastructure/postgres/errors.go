package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/job-portal-api/internal/domain/repository"
)

const (
	uniqueViolation = "23505"
	// malformed uuid in a lookup; no row can match it
	invalidTextRepresentation = "22P02"
)

// mapErr translates driver errors into repository errors.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return &repository.DuplicateError{Constraint: pgErr.ConstraintName}
		case invalidTextRepresentation:
			return repository.ErrNotFound
		}
	}
	return err
}
