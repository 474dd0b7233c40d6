package catalog

import "errors"

var (
	// ErrNotFound is returned when a plan does not exist.
	ErrNotFound = errors.New("plan not found")
	// ErrInvalidInput is returned for invalid caller input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidFeed is returned when a provider feed cannot be decoded.
	ErrInvalidFeed = errors.New("invalid catalog feed")
)
