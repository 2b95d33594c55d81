// Package display renders integer minor-unit monetary amounts as
// locale and currency correct display strings.
//
// The entry point is Format:
//
//	display.Format("us", "USD", 123456) // "$1,234.56"
//
// Amounts are counts of minor currency units, eg. cents for USD.
// The result is built from the static fact tables in the currency
// and locale packages; Format either returns a complete string or
// fails, never a partial or best-effort rendering. Callers decide
// what to show when formatting fails.
//
// Only the us locale is wired into the renderer. Other locales carry
// separator metadata in the locale package but formatting with them
// fails with ErrUnhandledLocale until the renderer learns their
// layout.
package display
