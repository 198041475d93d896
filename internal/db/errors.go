package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgconn"
)

// ValidationError reports malformed or out-of-range caller input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a referenced player or session that does not exist.
type NotFoundError struct {
	What string
	ID   uint
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %d not found", e.What, e.ID) }

// ConstraintError wraps a write the store rejected (unique or foreign key
// violation). The checks in this package should make it unreachable, but when
// it happens it must propagate, not be swallowed.
type ConstraintError struct {
	Err error
}

func (e *ConstraintError) Error() string { return "constraint violated: " + e.Err.Error() }

func (e *ConstraintError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// wrapConstraint converts store-level constraint violations into
// ConstraintError and leaves every other error untouched.
func wrapConstraint(err error) error {
	if err == nil {
		return nil
	}
	if isConstraintViolation(err) {
		return &ConstraintError{Err: err}
	}
	return err
}

func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23xxx is the integrity constraint violation class.
		return strings.HasPrefix(pgErr.Code, "23")
	}
	// The embedded SQLite driver surfaces constraint failures as plain
	// errors mentioning the failed constraint.
	return strings.Contains(err.Error(), "constraint failed")
}
