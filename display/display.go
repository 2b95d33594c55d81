package display

import (
	"fmt"
	"math"
	"strings"

	"github.com/purposeinplay/go-moneydisplay/currency"
	"github.com/purposeinplay/go-moneydisplay/locale"
	"github.com/purposeinplay/go-moneydisplay/money"
)

const localeUS = "us"

// symbolOnlyCurrencies are rendered as symbol + amount in the us
// locale. Every other currency known to the symbol table is rendered
// as symbol + amount + " " + code.
var symbolOnlyCurrencies = map[string]bool{
	"USD": true,
	"JPY": true,
	"GBP": true,
	"EUR": true,
}

// Format renders an integer count of minor currency units as a
// display string for the given locale and currency.
//
// Codes are normalized before any lookup: the locale code to
// lowercase, the currency code to uppercase.
func Format(
	localeCode string,
	currencyCode string,
	amountMinorUnits int64,
) (string, error) {
	lc := strings.ToLower(localeCode)
	cc := strings.ToUpper(currencyCode)

	if _, err := locale.SeparatorsFor(lc); err != nil {
		return "", err
	}

	switch lc {
	case localeUS:
		return formatUS(cc, amountMinorUnits)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnhandledLocale, lc)
	}
}

// FormatValue is a Format variant for callers holding untyped
// values, eg. decoded JSON. The codes must be strings and the amount
// must be a numeric value without a fractional component; an
// integral float such as 100.0 is accepted, 100.5 is not.
func FormatValue(
	localeCode interface{},
	currencyCode interface{},
	amount interface{},
) (string, error) {
	lc, ok := localeCode.(string)
	if !ok {
		return "", fmt.Errorf(
			"%w: locale code must be a string, got %T",
			ErrInvalidArgument,
			localeCode,
		)
	}

	cc, ok := currencyCode.(string)
	if !ok {
		return "", fmt.Errorf(
			"%w: currency code must be a string, got %T",
			ErrInvalidArgument,
			currencyCode,
		)
	}

	minorUnits, err := amountToInt64(amount)
	if err != nil {
		return "", err
	}

	return Format(lc, cc, minorUnits)
}

// FormatAmount renders a money.Amount for the given locale, using
// the currency code carried by the amount.
func FormatAmount(
	localeCode string,
	a *money.Amount,
) (string, error) {
	if a == nil {
		return "", fmt.Errorf("%w: nil amount", ErrInvalidArgument)
	}

	value := a.Value()
	if value == nil || !value.IsValid() {
		return "", fmt.Errorf("%w: amount has no value", ErrInvalidArgument)
	}

	minorUnits, ok := value.Int64()
	if !ok {
		return "", fmt.Errorf(
			"%w: amount value %s does not fit in an int64",
			ErrInvalidArgument,
			value,
		)
	}

	return Format(localeCode, a.CurrencyCode(), minorUnits)
}

// formatUS lays out a price the way the us locale expects:
// an optional sign, the currency symbol, the grouped amount, and for
// currencies outside the symbol-only set a trailing currency code.
func formatUS(currencyCode string, minorUnits int64) (string, error) {
	symbol, err := currency.Symbol(currencyCode)
	if err != nil {
		return "", err
	}

	var suffix string
	if !symbolOnlyCurrencies[currencyCode] {
		suffix = " " + currencyCode
	}

	// Zero is never signed and never shows a fractional part,
	// even for two-decimal currencies.
	if minorUnits == 0 {
		return symbol + "0" + suffix, nil
	}

	var sign string

	if minorUnits < 0 {
		if minorUnits == math.MinInt64 {
			return "", fmt.Errorf(
				"%w: amount %d is out of range",
				ErrInvalidArgument,
				minorUnits,
			)
		}

		sign = "-"
		minorUnits = -minorUnits
	}

	seps, err := locale.SeparatorsFor(localeUS)
	if err != nil {
		return "", err
	}

	groups, frac, err := decompose(minorUnits, currencyCode)
	if err != nil {
		return "", err
	}

	body := symbol + strings.Join(groups, seps.Group)
	if frac != "" {
		body += seps.Decimal + frac
	}

	return sign + body + suffix, nil
}

// amountToInt64 converts an untyped amount to an int64 count of
// minor units, rejecting non-numeric types and numbers with a
// fractional component.
func amountToInt64(amount interface{}) (int64, error) {
	switch v := amount.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, fmt.Errorf(
				"%w: amount %d is out of range",
				ErrInvalidArgument,
				v,
			)
		}

		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf(
				"%w: amount %d is out of range",
				ErrInvalidArgument,
				v,
			)
		}

		return int64(v), nil
	case float32:
		return floatToInt64(float64(v))
	case float64:
		return floatToInt64(v)
	default:
		return 0, fmt.Errorf(
			"%w: amount must be an integer, got %T",
			ErrInvalidArgument,
			amount,
		)
	}
}

func floatToInt64(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, fmt.Errorf(
			"%w: amount %v is not an integer",
			ErrInvalidArgument,
			f,
		)
	}

	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf(
			"%w: amount %v is out of range",
			ErrInvalidArgument,
			f,
		)
	}

	return int64(f), nil
}
