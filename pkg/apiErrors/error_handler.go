package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes surfaced by the dealer reporting API
const (
	// Validation errors
	ErrInvalidRequest      = "VAL_001" // Malformed request
	ErrMissingRequiredData = "VAL_002" // Required data absent
	ErrInvalidFormat       = "VAL_003" // Field failed validation

	// Resource errors
	ErrDealerNotFound = "RES_001" // Dealer not present in the merged report
	ErrReportNotFound = "RES_002" // Unknown report id
	ErrRegionNotFound = "RES_003" // Unknown region id

	// Server errors
	ErrInternalServer = "SRV_001" // Unhandled server failure
	ErrStoreOperation = "SRV_002" // Backing store read/write failure
	ErrExternalAPI    = "SRV_003" // Upstream API (pincode lookup) failure
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrDealerNotFound:      http.StatusNotFound,
	ErrReportNotFound:      http.StatusNotFound,
	ErrRegionNotFound:      http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrStoreOperation:      http.StatusInternalServerError,
	ErrExternalAPI:         http.StatusBadGateway,
}

// APIError is the standard error payload returned to clients
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error payload to the HTTP response
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

// FromError wraps a Go error into an API error with the given code
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
