// Package currency holds the static per-currency facts used when
// rendering a monetary amount for display:
//
// - symbol, eg. $ for USD.
//
// - minor units per major unit, eg. 100 for USD (cents),
// 1 for currencies without a fractional component such as JPY.
//
// - the minor-unit rendering rule, eg. two zero-padded digits
// for USD cents.
//
// - a human readable display name, eg. "US Dollar".
//
// ! The four facts are independent partial functions over the
// currency-code key space. A currency may define some facts and not
// others: BRL has a symbol and a base but no minor-unit rendering
// rule, and several codes only carry a display name. Each lookup
// fails on its own rather than through one all-or-nothing record.
package currency
