// Package error contains the API error schema and encoding helpers.
package error

import (
	"net/http"

	"github.com/goccy/go-json"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	ErrorID string `json:"error_id"`
}

func (e *Error) Error() string {
	return e.Message
}

func encode(w http.ResponseWriter, body Error) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(body.Status)
	return json.NewEncoder(w).Encode(body)
}

// EncodeError writes a structured error response for the given code.
func EncodeError(w http.ResponseWriter, code ErrorCode, message, requestID string) error {
	return encode(w, Error{
		Status:  code.StatusCode(),
		Code:    code.String(),
		Message: message,
		ErrorID: requestID,
	})
}

// EncodeFieldError writes a validation error scoped to a single field.
func EncodeFieldError(w http.ResponseWriter, code ErrorCode, field, message, requestID string) error {
	return encode(w, Error{
		Status:  code.StatusCode(),
		Code:    code.String(),
		Message: message,
		Field:   field,
		ErrorID: requestID,
	})
}

// EncodeInternalError writes a generic 500 response.
func EncodeInternalError(w http.ResponseWriter, requestID string) error {
	return EncodeError(w, InternalServerError, "Internal Server Error", requestID)
}
