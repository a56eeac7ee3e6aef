package entity

import "errors"

// Domain errors
var (
	// Product errors
	ErrProductNotFound = errors.New("product not found")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")

	// Generation provider errors. ErrGeneratorUnavailable is an expected
	// condition (no credential configured), not a failure: callers absorb it
	// into fallback text.
	ErrGeneratorUnavailable = errors.New("generation provider not configured")
)
