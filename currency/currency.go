package currency

import (
	"fmt"
	"sort"
)

// minorUnitRule identifies how a currency renders a count of minor
// units as the fractional part of a display string.
type minorUnitRule uint8

const (
	// minorUnitNone marks a currency without a fractional component.
	minorUnitNone minorUnitRule = iota

	// minorUnitTwoDigit renders minor units as exactly two
	// zero-padded decimal digits.
	minorUnitTwoDigit
)

// symbols maps a 3-letter uppercase currency code to its
// display symbol.
var symbols = map[string]string{
	"USD": "$",
	"JPY": "¥",
	"GBP": "£",
	"EUR": "€",
	"AUD": "$",
	"CAD": "$",
	"NZD": "$",
	"BRL": "R$",
}

// minorUnitsPerMajorUnit maps a currency code to the number of minor
// units making up one major unit. The count is stored literally, so
// currencies with a non power-of-ten subdivision fit without a
// fractional exponent. A value of 1 marks a currency without a
// minor unit.
var minorUnitsPerMajorUnit = map[string]int64{
	"USD": 100,
	"JPY": 1,
	"GBP": 100,
	"EUR": 100,
	"AUD": 100,
	"CAD": 100,
	"NZD": 100,
	"BRL": 100,
}

// minorUnitRules maps a currency code to its minor-unit rendering
// rule. BRL is deliberately absent: it has a symbol and a base but
// its fractional rendering was never defined, and formatting a
// fractional BRL amount must fail rather than silently default.
var minorUnitRules = map[string]minorUnitRule{
	"USD": minorUnitTwoDigit,
	"JPY": minorUnitNone,
	"GBP": minorUnitTwoDigit,
	"EUR": minorUnitTwoDigit,
	"AUD": minorUnitTwoDigit,
	"CAD": minorUnitTwoDigit,
	"NZD": minorUnitTwoDigit,
}

// displayNames maps a currency code to its human readable name.
// The key space is wider than the other fact tables: a currency can
// be offered by name in a choice list before its formatting facts
// are defined.
var displayNames = map[string]string{
	"USD": "US Dollar",
	"JPY": "Japanese Yen",
	"GBP": "British Pound",
	"EUR": "Euro",
	"AUD": "Australian Dollar",
	"CAD": "Canadian Dollar",
	"NZD": "New Zealand Dollar",
	"BRL": "Brazilian Real",
	"CHF": "Swiss Franc",
	"CNY": "Chinese Yuan",
	"INR": "Indian Rupee",
	"MXN": "Mexican Peso",
	"SGD": "Singapore Dollar",
}

// Symbol returns the display symbol for the given 3-letter uppercase
// currency code.
func Symbol(code string) (string, error) {
	s, ok := symbols[code]
	if !ok {
		return "", fmt.Errorf(
			"%w: no symbol for %q",
			ErrUnsupportedCurrency,
			code,
		)
	}

	return s, nil
}

// Base returns the number of minor units per major unit for the given
// 3-letter uppercase currency code. A base of 1 means the currency
// has no minor unit.
func Base(code string) (int64, error) {
	b, ok := minorUnitsPerMajorUnit[code]
	if !ok {
		return 0, fmt.Errorf(
			"%w: no minor-unit base for %q",
			ErrUnsupportedCurrency,
			code,
		)
	}

	return b, nil
}

// FormatMinorUnits renders a count of minor units as the fractional
// part of a display string, according to the currency's rendering
// rule.
//
// For two-digit currencies the value must be in [0, 100).
// For currencies without a minor unit the call always fails with
// ErrNoMinorUnit; callers are expected to never reach this path for
// such currencies.
func FormatMinorUnits(code string, minorUnits int64) (string, error) {
	rule, ok := minorUnitRules[code]
	if !ok {
		return "", fmt.Errorf(
			"%w: no minor-unit rendering rule for %q",
			ErrUnsupportedCurrency,
			code,
		)
	}

	switch rule {
	case minorUnitNone:
		return "", fmt.Errorf(
			"%w: %q",
			ErrNoMinorUnit,
			code,
		)

	case minorUnitTwoDigit:
		const twoDigitBound = 100

		if minorUnits < 0 || minorUnits >= twoDigitBound {
			return "", fmt.Errorf(
				"%w: %d is not in [0, %d)",
				ErrInvalidMinorUnits,
				minorUnits,
				twoDigitBound,
			)
		}

		return fmt.Sprintf("%02d", minorUnits), nil

	default:
		return "", fmt.Errorf(
			"%w: no minor-unit rendering rule for %q",
			ErrUnsupportedCurrency,
			code,
		)
	}
}

// DisplayName returns the human readable name for the given 3-letter
// uppercase currency code.
func DisplayName(code string) (string, error) {
	n, ok := displayNames[code]
	if !ok {
		return "", fmt.Errorf(
			"%w: no display name for %q",
			ErrUnsupportedCurrency,
			code,
		)
	}

	return n, nil
}

// Name pairs a currency code with its display name.
type Name struct {
	Code        string `json:"code"`
	DisplayName string `json:"displayName"`
}

// DisplayNames returns every currency known by name, sorted by code.
func DisplayNames() []Name {
	names := make([]Name, 0, len(displayNames))

	for code, name := range displayNames {
		names = append(names, Name{
			Code:        code,
			DisplayName: name,
		})
	}

	sort.Slice(names, func(i, j int) bool {
		return names[i].Code < names[j].Code
	})

	return names
}
