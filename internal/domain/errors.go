package domain

import "errors"

// ErrNotFound is returned when an identifier resolves to no record within
// the caller's scope.
var ErrNotFound = errors.New("record not found")
