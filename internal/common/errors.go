// Package common defines shared constants and sentinel errors used across
// client and server layers of collab. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Request validation errors.
	ErrUnknownTable   = errors.New("unknown table")
	ErrUnknownColumn  = errors.New("unknown column")
	ErrInvalidRow     = errors.New("invalid row")
	ErrReadOnlyTable  = errors.New("table is read-only")
	ErrBucketMismatch = errors.New("bucket mismatch")
	ErrEmptyKey       = errors.New("empty storage key")
)
