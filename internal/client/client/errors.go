package client

import "errors"

var (
	ErrUnavailable    = errors.New("server unavailable")
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
)
