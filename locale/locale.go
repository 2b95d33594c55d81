// Package locale holds the static per-locale number formatting
// conventions consulted when rendering a monetary amount for display.
//
// Locales are keyed by 2-letter lowercase region code. The table is
// independent from the renderer dispatch: a locale can carry
// separator metadata here without the renderer knowing how to lay
// out a price for it.
package locale

import (
	"errors"
	"fmt"
)

// ErrUnsupportedLocale is returned when a locale code is absent from
// the metadata table.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// Separators holds the single-character separators a locale uses
// when formatting numbers.
type Separators struct {
	// Decimal separates the integer part from the fractional part.
	Decimal string

	// Group separates base-1000 digit groups in the integer part.
	Group string
}

var separators = map[string]Separators{
	"us": {Decimal: ".", Group: ","},
	"gb": {Decimal: ".", Group: ","},
	"jp": {Decimal: ".", Group: ","},
	"nz": {Decimal: ".", Group: ","},
	"au": {Decimal: ".", Group: " "},
	"br": {Decimal: ",", Group: "."},
}

// SeparatorsFor returns the number formatting separators for the
// given 2-letter lowercase region code.
func SeparatorsFor(code string) (Separators, error) {
	s, ok := separators[code]
	if !ok {
		return Separators{}, fmt.Errorf(
			"%w: %q",
			ErrUnsupportedLocale,
			code,
		)
	}

	return s, nil
}
