package display

import (
	"errors"
)

// ErrInvalidArgument is returned when an input has the wrong type,
// is not a mathematical integer, or is outside the renderable range.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUnhandledLocale is returned when a locale carries separator
// metadata but is not wired into the renderer dispatch.
var ErrUnhandledLocale = errors.New("unhandled locale")
