package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lychee-technology/minid"
)

// APIResponse is the standard error response format
type APIResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Error   string `json:"error,omitempty"`
}

// parseID decodes an identifier, requiring prefix when one is configured.
func parseID(s, prefix string) (minid.ID, error) {
	if prefix == "" {
		return minid.Decode(s)
	}
	return minid.DecodeWithPrefix(s, prefix)
}

// errorCode returns the minid error code carried by err.
func errorCode(err error) string {
	var idErr *minid.Error
	if errors.As(err, &idErr) {
		return idErr.Code
	}
	return minid.ErrCodeInvalidFormat
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, statusCode int, code, message string) error {
	return writeJSON(w, statusCode, APIResponse{
		Success: false,
		Code:    code,
		Error:   message,
	})
}

// writeSuccess writes a success response
func writeSuccess(w http.ResponseWriter, statusCode int, data any) error {
	return writeJSON(w, statusCode, data)
}

// readJSONBody reads and decodes JSON from request body
func readJSONBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
