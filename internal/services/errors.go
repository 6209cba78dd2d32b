package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrBadDate marks a date that does not match the required layout.
	ErrBadDate = errors.New("invalid date format")
	// ErrMissingField is wrapped with the name of the absent field.
	ErrMissingField = errors.New("missing required field")
	// ErrNullField is wrapped with the names of fields sent as JSON null.
	ErrNullField = errors.New("field cannot be null")
)

// rejectNulls fails when the request set any column to null; every column
// is NOT NULL.
func rejectNulls(keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNullField, strings.Join(keys, ", "))
}
