// Package priceapi exposes the display formatting routines over a
// small JSON API.
//
// The storefront UI calls GET /v1/price with locale, currency and
// amount query parameters and shows the returned display string
// verbatim, and GET /v1/currencies to list currency choices by name.
// Formatting failures are mapped to HTTP statuses here; what to show
// the shopper when a price cannot be formatted stays a UI decision.
package priceapi
