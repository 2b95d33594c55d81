package money

import (
	"errors"
)

// ErrInvalidValue is returned when an unexpected value is given to
// an Amount constructor or scanned into a ValueSubunit.
var ErrInvalidValue = errors.New("invalid value")
