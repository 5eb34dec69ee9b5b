package error

import (
	"errors"
	"fmt"
	"net/http"
)

type DomainError interface {
	error // Embed standard error interface
	Info() string
}

type domainSentinel struct {
	errInfo string
}

func (e *domainSentinel) Error() string {
	return e.errInfo
}

func (e *domainSentinel) Info() string {
	return e.errInfo
}

// messageError attaches a client-facing message to a domain sentinel.
type messageError struct {
	sentinel DomainError
	message  string
}

func (e *messageError) Error() string {
	return e.sentinel.Error() + ": " + e.message
}

func (e *messageError) Unwrap() error {
	return e.sentinel
}

// ErrorResponse is the JSON response structure for errors
type ErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Error   string `json:"error"`   // short label
	Message string `json:"message"` // client message
}

// Common errors
var (
	domainErrorResponses = map[string]ErrorResponse{}

	// ValidationFailed indicates the request payload failed validation
	ValidationFailed = ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ERROR-001", // METHOD_ARGUMENT_NOT_VALID
		Error:   "Validation failed",
		Message: "The request is invalid.",
	}

	// InvalidRequest indicates the request format is invalid (e.g., JSON parsing error)
	InvalidRequest = ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ERROR-002", // INVALID_REQUEST
		Error:   "Invalid request",
		Message: "The request format is invalid.",
	}

	// InternalServerError indicates an unexpected server error
	InternalServerError = ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "ERROR-003", // INTERNAL_SERVER_ERROR
		Error:   "Internal server error",
		Message: "An unexpected error occurred.",
	}
)

// NewDomainError creates a sentinel error that can participate in error chains.
func NewDomainError(errInfo string) DomainError {
	return &domainSentinel{errInfo: errInfo}
}

// WithMessage wraps a sentinel with a message that replaces the registered one
// in the resolved response.
func WithMessage(sentinel DomainError, format string, args ...any) error {
	return &messageError{sentinel: sentinel, message: fmt.Sprintf(format, args...)}
}

// RegisterDomainErrorResponse registers a mapping between a domain error errInfo and a shared error response.
func RegisterDomainErrorResponse(errInfo string, resp ErrorResponse) {
	domainErrorResponses[errInfo] = resp
}

// ResolveDomainError converts a domain error into a shared error response if a mapping exists.
func ResolveDomainError(err error) (ErrorResponse, bool) {
	if err == nil {
		return ErrorResponse{}, false
	}

	var domainErr DomainError
	if !errors.As(err, &domainErr) {
		return ErrorResponse{}, false
	}

	resp, ok := domainErrorResponses[domainErr.Info()]
	if !ok {
		return ErrorResponse{}, false
	}

	var msgErr *messageError
	if errors.As(err, &msgErr) {
		resp.Message = msgErr.message
	}
	return resp, true
}
