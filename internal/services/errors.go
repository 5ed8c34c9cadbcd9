package services

import "errors"

// ErrNotFound is returned when a row is absent or not owned by the caller.
// Handlers translate it to a 404 without leaking whose row it was.
var ErrNotFound = errors.New("not found")
