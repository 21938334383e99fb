package errors

import "errors"

var (
	// ErrSimulatedFailure is the deliberate failure raised by the fail
	// endpoint so callers and mesh policies have something to react to.
	ErrSimulatedFailure = errors.New("simulated failure")

	ErrInvalidDelay = errors.New("invalid delay")
)
