package currency_test

import (
	"testing"

	"github.com/matryer/is"
	"github.com/pkg/errors"
	"github.com/purposeinplay/go-moneydisplay/currency"
)

func TestSymbol(t *testing.T) {
	t.Parallel()

	t.Run("Known", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		tests := map[string]string{
			"USD": "$",
			"JPY": "¥",
			"GBP": "£",
			"EUR": "€",
			"NZD": "$",
			"BRL": "R$",
		}

		for code, want := range tests {
			s, err := currency.Symbol(code)
			i.NoErr(err)
			i.Equal(want, s)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		_, err := currency.Symbol("ZZZ")

		i.True(errors.Is(err, currency.ErrUnsupportedCurrency))

		i.Equal(`unsupported currency: no symbol for "ZZZ"`, err.Error())
	})

	t.Run("NameOnlyCurrency", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		// CHF is known by name but has no symbol defined.
		_, err := currency.Symbol("CHF")

		i.True(errors.Is(err, currency.ErrUnsupportedCurrency))
	})
}

func TestBase(t *testing.T) {
	t.Parallel()

	t.Run("TwoDecimalCurrency", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		b, err := currency.Base("USD")
		i.NoErr(err)

		i.Equal(int64(100), b)
	})

	t.Run("NoMinorUnitCurrency", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		b, err := currency.Base("JPY")
		i.NoErr(err)

		i.Equal(int64(1), b)
	})

	t.Run("Unknown", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		_, err := currency.Base("ZZZ")

		i.True(errors.Is(err, currency.ErrUnsupportedCurrency))

		i.Equal(
			`unsupported currency: no minor-unit base for "ZZZ"`,
			err.Error(),
		)
	})
}

func TestFormatMinorUnits(t *testing.T) {
	t.Parallel()

	t.Run("TwoDigitPadding", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		tests := map[int64]string{
			0:  "00",
			5:  "05",
			50: "50",
			99: "99",
		}

		for minorUnits, want := range tests {
			s, err := currency.FormatMinorUnits("USD", minorUnits)
			i.NoErr(err)
			i.Equal(want, s)
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		_, err := currency.FormatMinorUnits("USD", 100)

		i.True(errors.Is(err, currency.ErrInvalidMinorUnits))

		i.Equal(
			"invalid minor units value: 100 is not in [0, 100)",
			err.Error(),
		)

		_, err = currency.FormatMinorUnits("GBP", -1)

		i.True(errors.Is(err, currency.ErrInvalidMinorUnits))
	})

	t.Run("NoMinorUnit", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		_, err := currency.FormatMinorUnits("JPY", 0)

		i.True(errors.Is(err, currency.ErrNoMinorUnit))

		i.Equal(`currency has no minor unit: "JPY"`, err.Error())
	})

	t.Run("NoRuleDefined", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		// BRL has a symbol and a base but no rendering rule.
		_, err := currency.FormatMinorUnits("BRL", 50)

		i.True(errors.Is(err, currency.ErrUnsupportedCurrency))

		i.Equal(
			`unsupported currency: no minor-unit rendering rule for "BRL"`,
			err.Error(),
		)
	})
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	t.Run("Known", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		n, err := currency.DisplayName("USD")
		i.NoErr(err)

		i.Equal("US Dollar", n)

		// Known by name only, no other facts defined.
		n, err = currency.DisplayName("CHF")
		i.NoErr(err)

		i.Equal("Swiss Franc", n)
	})

	t.Run("Unknown", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		_, err := currency.DisplayName("ZZZ")

		i.True(errors.Is(err, currency.ErrUnsupportedCurrency))

		i.Equal(
			`unsupported currency: no display name for "ZZZ"`,
			err.Error(),
		)
	})
}

func TestDisplayNames(t *testing.T) {
	t.Parallel()

	i := is.New(t)

	names := currency.DisplayNames()

	i.True(len(names) >= 13)

	for j := 1; j < len(names); j++ {
		i.True(names[j-1].Code < names[j].Code)
	}

	i.Equal("AUD", names[0].Code)
	i.Equal("Australian Dollar", names[0].DisplayName)
}
