package mealdb

import (
	"errors"
	"fmt"
)

// User-facing messages for the two lookup failure kinds
const (
	MessageNetwork  = "Failed to fetch food data"
	MessageNotFound = "No meals found"
)

var (
	// ErrNetwork matches any *NetworkError via errors.Is
	ErrNetwork = errors.New("meal lookup failed")

	// ErrNotFound matches any *NotFoundError via errors.Is
	ErrNotFound = errors.New("no meals found")
)

// NetworkError reports a transport failure, a non-success status or an
// unreadable response body.
type NetworkError struct {
	Op     string
	Status int // HTTP status, 0 when no response was received
	Err    error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op + ": " + ErrNetwork.Error()
	}
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrNetwork) hold for every NetworkError
func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// UserMessage returns the text shown to the user
func (e *NetworkError) UserMessage() string { return MessageNetwork }

// NotFoundError reports a well-formed response without matching records
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no meals found for id %q", e.ID)
}

// Is makes errors.Is(err, ErrNotFound) hold for every NotFoundError
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// UserMessage returns the text shown to the user
func (e *NotFoundError) UserMessage() string { return MessageNotFound }
