package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTransport    ErrorType = "TRANSPORT"
	ErrHTTPStatus   ErrorType = "HTTP_STATUS"
	ErrMalformed    ErrorType = "MALFORMED_RESPONSE"
	ErrNotFound     ErrorType = "NOT_FOUND"
	ErrRateLimit    ErrorType = "RATE_LIMIT"
	ErrInvalidInput ErrorType = "INVALID_INPUT"
	ErrInternal     ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type      ErrorType
	Message   string
	Cause     error
	Timestamp time.Time
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:      errType,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

func is(err error, errType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// IsTransport checks if the error is a transport-level failure
func IsTransport(err error) bool {
	return is(err, ErrTransport)
}

// IsHTTPStatus checks if the error is a non-success HTTP status error
func IsHTTPStatus(err error) bool {
	return is(err, ErrHTTPStatus)
}

// IsMalformed checks if the error is a malformed response error
func IsMalformed(err error) bool {
	return is(err, ErrMalformed)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return is(err, ErrNotFound)
}

// IsRateLimit checks if the error is a rate limit error
func IsRateLimit(err error) bool {
	return is(err, ErrRateLimit)
}

// IsInvalidInput checks if the error is an invalid input error
func IsInvalidInput(err error) bool {
	return is(err, ErrInvalidInput)
}

// IsValidationError checks if the error is a validation error
// This is an alias for IsInvalidInput since validation errors are a type of invalid input error
func IsValidationError(err error) bool {
	return IsInvalidInput(err)
}

// NewTransportError creates a new transport error
func NewTransportError(message string, err error) *AppError {
	return New(ErrTransport, message, err)
}

// NewHTTPStatusError creates a new HTTP status error
func NewHTTPStatusError(message string, err error) *AppError {
	return New(ErrHTTPStatus, message, err)
}

// NewMalformedError creates a new malformed response error
func NewMalformedError(message string, err error) *AppError {
	return New(ErrMalformed, message, err)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, err error) *AppError {
	return New(ErrNotFound, message, err)
}

// NewValidationError creates a new validation error
func NewValidationError(message string, err error) *AppError {
	return New(ErrInvalidInput, message, err)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return New(ErrInternal, message, err)
}

// RateLimitError represents a GitHub API rate limit error
type RateLimitError struct {
	ResetTime time.Time
	Limit     int
	Remaining int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, resets at %v (limit: %d, remaining: %d)",
		e.ResetTime, e.Limit, e.Remaining)
}

// NewRateLimitError creates a new RateLimitError
func NewRateLimitError(resetTime time.Time, limit, remaining int) *RateLimitError {
	return &RateLimitError{
		ResetTime: resetTime,
		Limit:     limit,
		Remaining: remaining,
	}
}

// StatusError represents a non-success response from the GitHub API
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// NewStatusError creates a new StatusError
func NewStatusError(statusCode int, url string) *StatusError {
	return &StatusError{
		StatusCode: statusCode,
		URL:        url,
	}
}

// UserNotFoundError represents a GitHub user not found error
type UserNotFoundError struct {
	Login string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user not found: %s", e.Login)
}

// NewUserNotFoundError creates a new UserNotFoundError
func NewUserNotFoundError(login string) *UserNotFoundError {
	return &UserNotFoundError{
		Login: login,
	}
}
