package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes grouped by concern
const (
	// Authentication errors (1000-1999)
	ErrInvalidCredentials = "AUTH_001" // invalid app password

	// Validation errors (2000-2999)
	ErrInvalidRequest      = "VAL_001" // malformed request
	ErrMissingRequiredData = "VAL_002" // required data absent
	ErrInvalidFormat       = "VAL_003" // invalid data format

	// Server errors (5000-5999)
	ErrInternalServer    = "SRV_001" // internal server error
	ErrDatabaseOperation = "SRV_002" // database operation failed
	ErrExternalService   = "SRV_003" // upstream connector failed
	ErrCommunication     = "SRV_004" // communication failure
)

// Error code to HTTP status mapping
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError is the standard error body for API responses
type APIError struct {
	Code    string `json:"code"`              // machine-readable error code
	Message string `json:"message,omitempty"` // human-readable message
	Details any    `json:"details,omitempty"` // optional extra context
}

// WriteError writes the standardized error to the HTTP response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError builds an APIError from a Go error
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
