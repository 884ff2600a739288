package entity

import "errors"

// Failure kinds shared by every usecase. HTTP handlers map these to status
// codes and a structured payload; storage errors never reach the caller raw.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
)
