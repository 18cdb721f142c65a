package cli

import "errors"

var (
	// ErrUnknownMethod is returned for a --method or job method that names no integrator.
	ErrUnknownMethod = errors.New("cli: unknown method")

	// ErrBadBound is returned when an interval bound cannot be parsed.
	ErrBadBound = errors.New("cli: invalid bound")
)
