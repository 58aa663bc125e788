package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by store operations referencing an id that is
// not in the collection. The operation aborts with no partial mutation.
var ErrNotFound = errors.New("record not found")

// ErrLastStep is returned when removing a step would leave a workflow
// with no steps. The step list is left unchanged.
var ErrLastStep = errors.New("a workflow must have at least one step")

// ValidationError reports a missing or invalid field on create/update.
// The store collection is unchanged when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
