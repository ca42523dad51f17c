package repository

import (
	"errors"
)

// ErrValidation marks a request rejected before any write occurred, such as
// a replacement payload missing a required id.
var ErrValidation = errors.New("validation failed")
