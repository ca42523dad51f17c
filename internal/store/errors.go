package store

import (
	"errors"
)

// ErrNotFound is returned when a single-row fetch matches no row. Callers
// are expected to wrap it with the id they were looking up.
var ErrNotFound = errors.New("record not found")
