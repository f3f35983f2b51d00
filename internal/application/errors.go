package application

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrDuplicateIdentity    = errors.New("email or phone number already registered")
	ErrInvalidCredentials   = errors.New("incorrect email, password or role")
	ErrUnauthenticated      = errors.New("authentication required")
	ErrForbidden            = errors.New("not allowed")
	ErrNotFound             = errors.New("not found")
	ErrValidation           = errors.New("validation failed")
	ErrDuplicateApplication = errors.New("you have already applied for this job")
	ErrDuplicateCompany     = errors.New("company name already registered")
	ErrUnavailable          = errors.New("service unavailable")
)

// ValidationError lists per-field problems. It unwraps to ErrValidation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// fieldErrors collects validation problems; Err is nil when none were added.
type fieldErrors map[string]string

func (f fieldErrors) add(field, msg string) { f[field] = msg }

func (f fieldErrors) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		f[field] = "is required"
	}
}

func (f fieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

func invalid(field, msg string) error {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func notFound(what string) error {
	return fmt.Errorf("%s %w", what, ErrNotFound)
}
