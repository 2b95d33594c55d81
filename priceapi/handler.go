package priceapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/purposeinplay/go-moneydisplay/currency"
	"github.com/purposeinplay/go-moneydisplay/display"
	"github.com/purposeinplay/go-moneydisplay/locale"
)

const requestIDHeader = "X-Request-ID"

// priceResponse is the body returned by GET /v1/price.
type priceResponse struct {
	Display  string `json:"display"`
	Locale   string `json:"locale"`
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

// currenciesResponse is the body returned by GET /v1/currencies.
type currenciesResponse struct {
	Currencies []currency.Name `json:"currencies"`
}

// NewHandler builds the price API router.
func NewHandler(log *zap.Logger, allowedOrigins []string) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(logRequests(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
	}))

	r.Get("/v1/price", handlePrice(log))
	r.Get("/v1/currencies", handleCurrencies(log))

	return r
}

func handlePrice(log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		localeCode := query.Get("locale")
		currencyCode := query.Get("currency")
		amountStr := query.Get("amount")

		if localeCode == "" || currencyCode == "" || amountStr == "" {
			sendError(log, w, badRequestError(
				"locale, currency and amount query parameters are required",
			))

			return
		}

		amount, err := strconv.ParseInt(amountStr, 10, 64)
		if err != nil {
			sendError(log, w, badRequestError(
				"amount must be an integer number of minor units",
			))

			return
		}

		formatted, err := display.Format(localeCode, currencyCode, amount)
		if err != nil {
			sendError(log, w, formattingError(err))

			return
		}

		sendJSON(log, w, http.StatusOK, priceResponse{
			Display:  formatted,
			Locale:   localeCode,
			Currency: currencyCode,
			Amount:   amount,
		})
	}
}

func handleCurrencies(log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		sendJSON(log, w, http.StatusOK, currenciesResponse{
			Currencies: currency.DisplayNames(),
		})
	}
}

// formattingError maps the formatting error taxonomy to an HTTP
// error: malformed input is the caller's fault, a code outside the
// metadata tables is a well-formed but unprocessable request.
func formattingError(err error) *httpError {
	switch {
	case errors.Is(err, display.ErrInvalidArgument):
		return badRequestError(err.Error())

	case errors.Is(err, locale.ErrUnsupportedLocale),
		errors.Is(err, display.ErrUnhandledLocale),
		errors.Is(err, currency.ErrUnsupportedCurrency),
		errors.Is(err, currency.ErrNoMinorUnit),
		errors.Is(err, currency.ErrInvalidMinorUnits):
		return unprocessableEntityError(err.Error())

	default:
		return internalServerError("formatting failed")
	}
}

// requestID ensures every request carries an id, generating one when
// the caller did not send one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, id)

		next.ServeHTTP(w, r)
	})
}

func logRequests(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Debug(
				"request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("requestID", w.Header().Get(requestIDHeader)),
			)

			next.ServeHTTP(w, r)
		})
	}
}
