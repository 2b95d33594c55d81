package priceapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// httpError is an error response body with an HTTP status code.
type httpError struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
}

func (e *httpError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

func badRequestError(message string) *httpError {
	return &httpError{Code: http.StatusBadRequest, Message: message}
}

func unprocessableEntityError(message string) *httpError {
	return &httpError{Code: http.StatusUnprocessableEntity, Message: message}
}

func internalServerError(message string) *httpError {
	return &httpError{Code: http.StatusInternalServerError, Message: message}
}

func sendError(log *zap.Logger, w http.ResponseWriter, httpErr *httpError) {
	sendJSON(log, w, httpErr.Code, httpErr)
}

func sendJSON(
	log *zap.Logger,
	w http.ResponseWriter,
	status int,
	obj interface{},
) {
	w.Header().Set("Content-Type", "application/json")

	b, err := json.Marshal(obj)
	if err != nil {
		log.Error("encode json response", zap.Error(err))

		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	w.WriteHeader(status)

	_, err = w.Write(b)
	if err != nil {
		log.Error("write json response", zap.Error(err))
	}
}
