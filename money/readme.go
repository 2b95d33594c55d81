// Package money implements the Amount type carried through an
// order or cart state before it is rendered for display.
//
// ! The value is stored in its smallest denomination of the
// currency. Example: for dollars the amount is stored in cents:
// for 97.23 dollars, the value is 9723.
//
// The number of minor units per major unit is not part of the
// Amount; it is a static fact of the currency and lives in the
// currency package.
package money
