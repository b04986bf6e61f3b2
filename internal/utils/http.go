package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it as the response body with the given
// status code and an "application/json" Content-Type. It is the single way
// handlers in this service produce JSON, so every success response carries
// the same headers.
//
// Marshaling happens before any byte reaches the wire: if data cannot be
// encoded, the caller gets a wrapped error and the client a plain 500, never
// a half-written body.
//
// Returns the number of body bytes written.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
