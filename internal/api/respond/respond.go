// Package respond writes the service's JSON envelopes.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody is the failure envelope shared by every non-2xx response.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes the failure envelope with a taxonomy code and a caller-safe
// message.
func Error(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, ErrorBody{Success: false, Error: code, Message: message})
}
