package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate")
)

// DuplicateError names the constraint that rejected the write.
type DuplicateError struct {
	Constraint string
}

func (e *DuplicateError) Error() string { return fmt.Sprintf("duplicate: %s", e.Constraint) }

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// Unique constraint names shared by every storage driver.
const (
	ConstraintUserEmail      = "users_email_key"
	ConstraintUserPhone      = "users_phone_number_key"
	ConstraintCompanyName    = "companies_name_key"
	ConstraintApplicationJob = "applications_job_id_applicant_id_key"
)

// ConstraintOf returns the constraint name of a duplicate error, or "".
func ConstraintOf(err error) string {
	var de *DuplicateError
	if errors.As(err, &de) {
		return de.Constraint
	}
	return ""
}
