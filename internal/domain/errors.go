package domain

import "errors"

var (
	// ErrNotFound signals a missing intervention.
	ErrNotFound = errors.New("intervention not found")
	// ErrValidation signals an invalid request payload.
	ErrValidation = errors.New("validation failed")
	// ErrStorageUnavailable signals that the document store cannot be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
