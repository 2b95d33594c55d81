package currency

import (
	"errors"
)

// ErrUnsupportedCurrency is returned when a currency code is absent
// from the fact table that was consulted.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ErrNoMinorUnit is returned when minor-unit rendering is attempted
// for a currency defined to have no minor unit.
var ErrNoMinorUnit = errors.New("currency has no minor unit")

// ErrInvalidMinorUnits is returned when a minor-unit value is outside
// the range accepted by the currency's rendering rule.
var ErrInvalidMinorUnits = errors.New("invalid minor units value")
