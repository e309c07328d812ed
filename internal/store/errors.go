package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no workout matches an id.
	ErrNotFound = errors.New("not found")

	// ErrDeserialization is matched by every *DeserializationError.
	ErrDeserialization = errors.New("malformed workout snapshot")
)

// DeserializationError reports why a snapshot could not be restored.
// Index is the offending record position, or -1 when the payload itself
// is not a sequence of records.
type DeserializationError struct {
	Index int
	Err   error
}

func (e *DeserializationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", ErrDeserialization, e.Err)
	}
	return fmt.Sprintf("%s: record %d: %v", ErrDeserialization, e.Index, e.Err)
}

func (e *DeserializationError) Unwrap() []error { return []error{ErrDeserialization, e.Err} }
