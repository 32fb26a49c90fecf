package handlers

import (
	"encoding/json"
	"net/http"

	"wuddevdet/internal/forms"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeSuccess(w, ErrorResponse{Error: message}, statusCode)
}

// writeValidationError answers 400 with per-field messages when err carries
// them, and with err's text otherwise.
func writeValidationError(w http.ResponseWriter, err error) {
	if fe, ok := forms.AsFieldErrors(err); ok {
		writeSuccess(w, ErrorResponse{Error: "Validation failed", Fields: fe}, http.StatusBadRequest)
		return
	}
	WriteError(w, err.Error(), http.StatusBadRequest)
}

func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
