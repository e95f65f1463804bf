package handlers

import (
	"encoding/json"
	"net/http"

	"blogql/internal/apperr"
)

// ErrorResponse - standard error payload
type ErrorResponse struct {
	Error string             `json:"error"`
	Data  []apperr.FieldError `json:"data,omitempty"`
}

// writeError - universal function for sending errors
func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// writeAppError sends a domain error with its own code; unexpected errors
// become a 500
func writeAppError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperr.CodeOf(err))
	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error(), Data: apperr.DataOf(err)})
}

// writeSuccess - function for successful responses
func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
