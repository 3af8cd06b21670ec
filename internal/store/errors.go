package store

import (
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ConflictError marks a uniqueness or referential-integrity violation
// reported by the database. Handlers map it to HTTP 409.
type ConflictError struct {
	Err error
}

func (e *ConflictError) Error() string {
	return "constraint violation: " + e.Err.Error()
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// translateErr wraps sqlite constraint failures in ConflictError and leaves
// every other error untouched.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return &ConflictError{Err: err}
	}
	return err
}
