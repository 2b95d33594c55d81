package money

import (
	"fmt"
)

// Amount represents a monetary amount as a count of minor currency
// units together with the shorthand for its currency.
//
// The sign is carried by the value: a negative Amount represents a
// refund or debit.
type Amount struct {
	// value of the amount, stored as an int, in the smallest
	// denomination of the currency.
	value *ValueSubunit

	// shorthand for the currency, eg. USD.
	currencyCode string
}

// New creates a new Amount from a *ValueSubunit value.
// The value must be not nil.
func New(
	value *ValueSubunit,
	currencyCode string,
) (*Amount, error) {
	if value == nil {
		return nil, fmt.Errorf("%w: nil value", ErrInvalidValue)
	}

	return &Amount{
		value:        value,
		currencyCode: currencyCode,
	}, nil
}

// NewFromInt64 creates a new Amount from an int64 count of
// minor units.
func NewFromInt64(
	value int64,
	currencyCode string,
) *Amount {
	return &Amount{
		value:        new(ValueSubunit).SetInt64(value),
		currencyCode: currencyCode,
	}
}

// NewFromStringValue creates a new Amount from a string value.
// The value must be not empty.
// The value must be a valid int.
func NewFromStringValue(
	valueStr string,
	currencyCode string,
) (*Amount, error) {
	if valueStr == "" {
		return nil, fmt.Errorf("%w: empty string value", ErrInvalidValue)
	}

	value, ok := new(ValueSubunit).SetString(valueStr)
	if !ok {
		return nil, fmt.Errorf(
			"%w: string value \"%s\"",
			ErrInvalidValue,
			valueStr,
		)
	}

	return &Amount{
		value:        value,
		currencyCode: currencyCode,
	}, nil
}

// Must returns Amount if err is nil and panics otherwise.
func Must(amount *Amount, err error) *Amount {
	if err != nil {
		panic(err)
	}

	return amount
}

// Value returns the amount value in its *ValueSubunit form.
func (a Amount) Value() *ValueSubunit {
	return a.value
}

// CurrencyCode returns the shorthand for the Currency Code of
// the Amount.
func (a Amount) CurrencyCode() string {
	return a.currencyCode
}
