package models

import "fmt"

// FetchError is the failure of the most recent fetch of a kind.
type FetchError struct {
	Kind Kind
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to load %ss: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MutationError is the failure of a remote write. It is never retried.
type MutationError struct {
	Kind Kind
	Err  error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Kind.Op(), e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }

// ValidationError is a local precondition failure. It never reaches the
// backend and is not surfaced as mutation state.
type ValidationError struct {
	Kind   Kind
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind.Op(), e.Reason)
}
