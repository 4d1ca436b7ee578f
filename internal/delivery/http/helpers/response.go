package helpers

import (
	"encoding/json"
	"net/http"
)

// Error types for API error responses. Use these with WriteJSONError.
// Each maps to exactly one status code at the boundary.
const (
	TypeValidationError = "ValidationError"
	TypeNotFound        = "NotFound"
	TypeConflict        = "Conflict"
	TypeForbidden       = "Forbidden"
	TypeUnauthorized    = "Unauthorized"
	TypeArtifactWrite   = "ArtifactWriteError"
	TypeInternalError   = "InternalServerError"
)

// APIError is the error payload for all failed requests.
// swagger:model APIError
type APIError struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONError writes the standardized error payload
// {"error": true, "message": ..., "type": ...} with the given status code.
func WriteJSONError(w http.ResponseWriter, statusCode int, errType, message string) {
	WriteJSON(w, statusCode, APIError{
		Error:   true,
		Message: message,
		Type:    errType,
	})
}
