package model

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Error codes returned in ErrorResponse.Code
const (
	CodeGenericAPIError = "GENERIC_API_ERROR"
	CodeInvalidAccount  = "INVALID_ACCOUNT"
	CodeRateUnavailable = "RATE_UNAVAILABLE"
	CodeInternal        = "INTERNAL_ERROR"
)
