// Package json contains utilities for handling JSON.
//
// Encoding and decoding is backed by goccy/go-json, a drop-in
// replacement for encoding/json.
package json

import (
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// DecodeJSON decodes a JSON object.
func DecodeJSON(dst any, decoder *json.Decoder) error {
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decoding json: %w", err)
	}

	// Ensure no extra tokens after decoding
	if _, err := decoder.Token(); err != io.EOF {
		return fmt.Errorf("unexpected token after JSON object: %w", err)
	}
	return nil
}

// DecodeRequest decodes a request body into dst, rejecting unknown fields
// and trailing garbage.
func DecodeRequest(r *http.Request, dst any) error {
	defer func() { _ = r.Body.Close() }()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return DecodeJSON(dst, decoder)
}

// EncodeResponse writes v as a JSON response body with the given status code.
func EncodeResponse(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encoding json response: %w", err)
	}
	return nil
}

// Marshal is re-exported so callers do not mix JSON implementations.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal is re-exported so callers do not mix JSON implementations.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
