package domain

import "errors"

// Sentinel errors the HTTP layer maps onto status codes. Services wrap
// these with fmt.Errorf("...: %w", Err...) so the detail survives.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid input")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
)
