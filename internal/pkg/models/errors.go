package models

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the matching core. Callers classify with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrCapacityExhausted   = errors.New("capacity exhausted")
	ErrTransientDependency = errors.New("transient dependency failure")
	ErrInvalidInput        = errors.New("invalid input")

	// ErrAlreadyBooked is returned when another pairing won the trip first
	ErrAlreadyBooked = fmt.Errorf("%w: trip already booked", ErrInvalidTransition)
)

type transientError struct {
	err error
}

func (e *transientError) Error() string {
	return e.err.Error()
}

func (e *transientError) Unwrap() []error {
	return []error{ErrTransientDependency, e.err}
}

// Transient marks err as a store or queue failure that may succeed on retry
func Transient(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrTransientDependency) {
		return err
	}
	return &transientError{err: err}
}

// IsRetryable reports whether err should be retried by the intake boundary
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransientDependency)
}
