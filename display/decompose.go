package display

import (
	"fmt"
	"strconv"

	"github.com/purposeinplay/go-moneydisplay/currency"
)

// decompose splits a nonnegative count of minor units into the
// base-1000 digit groups of the integer part and the rendered
// fractional part. The sign must already be stripped by the caller.
//
// An empty fractional part means the currency has no minor unit and
// no decimal separator must be emitted.
func decompose(
	minorUnits int64,
	currencyCode string,
) ([]string, string, error) {
	if minorUnits < 0 {
		return nil, "", fmt.Errorf(
			"%w: negative amount %d",
			ErrInvalidArgument,
			minorUnits,
		)
	}

	base, err := currency.Base(currencyCode)
	if err != nil {
		return nil, "", err
	}

	if minorUnits == 0 {
		var frac string

		if base != 1 {
			frac, err = currency.FormatMinorUnits(currencyCode, 0)
			if err != nil {
				return nil, "", err
			}
		}

		return []string{"0"}, frac, nil
	}

	if base == 1 {
		return groupThousands(minorUnits), "", nil
	}

	frac, err := currency.FormatMinorUnits(currencyCode, minorUnits%base)
	if err != nil {
		return nil, "", err
	}

	return groupThousands(minorUnits / base), frac, nil
}

// groupThousands decomposes a nonnegative integer into decimal digit
// groups of at most three digits, most significant group first.
// Every group after the first is zero-padded to exactly three
// digits, so joining with a separator yields the usual grouped form:
// 50000000 becomes ["50" "000" "000"].
func groupThousands(n int64) []string {
	const groupBase = 1000

	if n == 0 {
		return []string{"0"}
	}

	remainders := make([]int64, 0, 7)

	for n > 0 {
		remainders = append(remainders, n%groupBase)
		n /= groupBase
	}

	groups := make([]string, 0, len(remainders))

	for i := len(remainders) - 1; i >= 0; i-- {
		if i == len(remainders)-1 {
			groups = append(groups, strconv.FormatInt(remainders[i], 10))

			continue
		}

		groups = append(groups, fmt.Sprintf("%03d", remainders[i]))
	}

	return groups
}
