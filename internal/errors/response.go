package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorResponse is the wire shape every failing API call returns. The
// remote CRUD contract fixes it to a single "error" entry; the trace id
// travels in the X-Trace-ID header instead of the body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates the error envelope for a code using its default
// message.
func NewErrorResponse(code ErrorCode) *ErrorResponse {
	return &ErrorResponse{Error: GetErrorMessage(code)}
}

// NewErrorResponseWithMessage creates the error envelope with an explicit
// message, for validation details the caller wants surfaced.
func NewErrorResponseWithMessage(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}

// WrapSystemError produces a generic envelope for an internal error so
// implementation details never reach the client; the original error is
// returned for server-side logging.
func WrapSystemError(err error) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError), err
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("error: %s", er.Error)
}
