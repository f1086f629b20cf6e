package models

import "errors"

// The four recoverable error classes of the domain. Services wrap them with
// detail text via %w; the API layer maps them to status codes with errors.Is.
var (
	ErrValidation    = errors.New("validation failed")
	ErrConflict      = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	ErrNotAuthorized = errors.New("not authorized")
)
