package katexify

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyContent  = errors.New("content cannot be empty")
	ErrInvalidFormat = errors.New("invalid input format")

	// Asset settings validation errors.
	ErrInvalidBaseURL = errors.New("invalid asset base URL")
)
