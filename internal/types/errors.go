package types

// Error codes carried in ErrorResponse.Code
const (
	CodeInvalidParameters = "INVALID_PARAMETERS"
	CodeInvalidParameter  = "INVALID_PARAMETER"
	CodeNotFound          = "NOT_FOUND"
	CodeNotPublished      = "NOT_PUBLISHED"
	CodeRateLimited       = "RATE_LIMITED"
	CodeInternal          = "INTERNAL_SERVER_ERROR"
)

// ErrorDetail names one offending input
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response. Error and Code carry
// the same value.
type ErrorResponse struct {
	Error     string        `json:"error"`
	Code      string        `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	RequestID string        `json:"requestId,omitempty"`
}

// NewErrorResponse builds an ErrorResponse for code
func NewErrorResponse(code, message, requestID string, details ...ErrorDetail) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
	}
}
