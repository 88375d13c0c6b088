package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a retrieval succeeds but nothing matches. It is an expected
// outcome, never a store failure.
var ErrNotFound = errors.New("no matching recipes")

// InputError represents a rejected request parameter
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) error {
	return &InputError{Field: field, Message: fmt.Sprintf(format, args...)}
}
