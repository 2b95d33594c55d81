package money

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"fmt"
	"math/big"
)

var (
	// ensure ValueSubunit implements valuer and scanner interface.
	_ sql.Scanner   = (*ValueSubunit)(nil)
	_ driver.Valuer = (*ValueSubunit)(nil)

	// ensure ValueSubunit implements text marshaller and unmarshaler interface.
	_ encoding.TextMarshaler   = (*ValueSubunit)(nil)
	_ encoding.TextUnmarshaler = (*ValueSubunit)(nil)

	// ensure ValueSubunit implements json marshaller and unmarshaler interface.
	_ json.Unmarshaler = (*ValueSubunit)(nil)
	_ json.Marshaler   = (*ValueSubunit)(nil)
)

// ValueSubunit represents a count of minor currency units,
// eg. cents for dollars.
//
// ! This is intended for storing and moving amounts through an
// order state rather than for arithmetic. Amounts larger than an
// int64 can be carried, but cannot be rendered for display.
type ValueSubunit struct {
	bigInt *big.Int
}

// IsValid returns true if the internal big.Int
// value is not nil.
func (v ValueSubunit) IsValid() bool {
	return v.bigInt != nil
}

// SetBigInt sets the internal value to i and returns v.
func (v *ValueSubunit) SetBigInt(i *big.Int) *ValueSubunit {
	v.bigInt = new(big.Int).Set(i)

	return v
}

// SetInt64 sets the internal value to i and returns v.
func (v *ValueSubunit) SetInt64(i int64) *ValueSubunit {
	v.bigInt = big.NewInt(i)

	return v
}

// SetString is a wrapper over (*big.Int).SetString.
// It interprets the s and returns a boolean indicating
// the operation success.
func (v *ValueSubunit) SetString(s string) (*ValueSubunit, bool) {
	const base = 10

	bigInt, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, false
	}

	v.bigInt = bigInt

	return v, ok
}

// Int64 returns the value as an int64 together with a boolean
// reporting whether the value is valid and fits in an int64.
func (v ValueSubunit) Int64() (int64, bool) {
	if v.bigInt == nil || !v.bigInt.IsInt64() {
		return 0, false
	}

	return v.bigInt.Int64(), true
}

// String returns the decimal representation of
// the internal big.Int.
func (v ValueSubunit) String() string {
	return v.bigInt.String()
}

// MarshalText implements the encoding.TextMarshaler interface.
func (v ValueSubunit) MarshalText() ([]byte, error) {
	return v.bigInt.MarshalText()
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (v *ValueSubunit) UnmarshalText(text []byte) error {
	i := new(big.Int)

	err := i.UnmarshalText(text)
	if err != nil {
		return err
	}

	v.bigInt = i

	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (v ValueSubunit) MarshalJSON() ([]byte, error) {
	return v.bigInt.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (v *ValueSubunit) UnmarshalJSON(data []byte) error {
	i := new(big.Int)

	err := i.UnmarshalJSON(data)
	if err != nil {
		return err
	}

	v.bigInt = i

	return nil
}

// Value defines how the value is stored in the database.
func (v ValueSubunit) Value() (driver.Value, error) {
	if v.IsValid() {
		return v.bigInt.String(), nil
	}

	return nil, nil
}

// Scan defines how the value is read from the database.
func (v *ValueSubunit) Scan(value interface{}) error {
	switch t := value.(type) {
	case int64:
		v.bigInt = new(big.Int).SetInt64(t)

	case []uint8:
		const base = 10

		var ok bool

		v.bigInt, ok = new(big.Int).SetString(string(t), base)
		if !ok {
			return fmt.Errorf(
				"%w: failed to scan value %q",
				ErrInvalidValue,
				string(t),
			)
		}

	case nil:
		v.bigInt = nil

	default:
		return fmt.Errorf(
			"%w: could not scan type %T into ValueSubunit",
			ErrInvalidValue,
			t,
		)
	}

	return nil
}
