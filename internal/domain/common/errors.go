package common

import "errors"

// Sentinel errors. Lower layers wrap them with fmt.Errorf("...: %w", err) and
// the transport layer maps them onto status codes.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)
