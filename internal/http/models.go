package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

func encode[T any](w http.ResponseWriter, _ *http.Request, status int, v T) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
