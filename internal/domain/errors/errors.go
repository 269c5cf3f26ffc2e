package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrBadRequest    = errors.New("bad request")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
)

// RejectCode identifies why a policy validation rejected an operation.
type RejectCode string

const (
	CodeInvalidCurrency       RejectCode = "INVALID_CURRENCY"
	CodeMissingRoyaltyConfig  RejectCode = "MISSING_ROYALTY_CONFIG"
	CodeInvalidCreatorRoyalty RejectCode = "INVALID_CREATOR_ROYALTY"
	CodeInvalidArtistRoyalty  RejectCode = "INVALID_ARTIST_ROYALTY"
	CodeInvalidTotalRoyalty   RejectCode = "INVALID_TOTAL_ROYALTY"
	CodeExcessiveTotalRoyalty RejectCode = "EXCESSIVE_TOTAL_ROYALTY"
	CodeInvalidArtwork        RejectCode = "INVALID_ARTWORK"
	CodeContractNotConfigured RejectCode = "CONTRACT_NOT_CONFIGURED"
	CodeMissingCreatorAddress RejectCode = "MISSING_CREATOR_ADDRESS"
	CodeMissingUniqueURL      RejectCode = "MISSING_UNIQUE_URL"
	CodeRateLimited           RejectCode = "RATE_LIMITED"
	CodeProhibitedContent     RejectCode = "PROHIBITED_CONTENT"
	CodeSecurityCheckFailed   RejectCode = "SECURITY_CHECK_FAILED"
	CodeInternalError         RejectCode = "INTERNAL_ERROR"
)

// Rejection is a policy decision denying an operation. Validators return nil
// on allow and a *Rejection on deny; they never panic for policy violations.
type Rejection struct {
	Code    RejectCode `json:"code"`
	Message string     `json:"message"`
	Err     error      `json:"-"`
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Code, r.Message)
}

func (r *Rejection) Unwrap() error {
	return r.Err
}

// Reject creates a policy rejection with the given code.
func Reject(code RejectCode, message string) *Rejection {
	return &Rejection{Code: code, Message: message}
}

// Rejectf creates a policy rejection with a formatted message.
func Rejectf(code RejectCode, format string, args ...interface{}) *Rejection {
	return &Rejection{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected failure (store unreachable, malformed record)
// as a rejection so hosts fail closed instead of allowing the operation.
func Internal(err error) *Rejection {
	return &Rejection{Code: CodeInternalError, Message: "internal error", Err: err}
}

// AsRejection extracts a *Rejection from an error chain.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// HTTPStatus maps a rejection code to the HTTP status handlers respond with.
func (r *Rejection) HTTPStatus() int {
	switch r.Code {
	case CodeRateLimited:
		return http.StatusTooManyRequests
	case CodeInternalError:
		return http.StatusInternalServerError
	case CodeSecurityCheckFailed:
		return http.StatusForbidden
	default:
		return http.StatusUnprocessableEntity
	}
}

// AppError represents application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{Status: status, Code: code, Message: message, Err: err}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, "NOT_FOUND", message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, "BAD_REQUEST", message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, "FORBIDDEN", message, ErrForbidden)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", err)
}
