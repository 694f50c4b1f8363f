package model

import "errors"

// Shared failure taxonomy. Every failure is a rejected request that leaves the
// store unchanged; none of these is fatal.
var (
	// ErrNotFound reports an id lookup miss.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidTransition reports a status change the lifecycle forbids.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrInvalidStatus reports a status outside the closed enumeration.
	ErrInvalidStatus = errors.New("unknown status")
	// ErrValidation reports malformed input rejected before any mutation.
	ErrValidation = errors.New("validation failed")
)
