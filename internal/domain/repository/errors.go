package repository

import "errors"

// Sentinel errors shared by all repository implementations. Handlers map
// these to HTTP statuses; anything else is an opaque store failure.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate record")
)
