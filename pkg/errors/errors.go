// Package errors classifies careermap failures.
//
// A roadmap request can fail at five points: the role the user typed, the
// transport to the roadmap service, the service's own answer, building the
// graph and timeline views, and producing the printable export. Each point
// has its own [Code], so the CLI, the HTTP server and the interaction
// controller pick a notification or a status without string matching:
//
//	err := errors.New(errors.ErrCodeInvalidRole, "Please enter a job role")
//	if errors.Is(err, errors.ErrCodeInvalidRole) {
//	    notify(errors.UserMessage(err))
//	}
//
// Messages are written for people: [UserMessage] returns them without the
// code prefix, and [Backend] keeps the service's text exactly as received.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Code names a failure class.
type Code string

const (
	// What the user or a caller supplied.
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidRole    Code = "INVALID_ROLE"
	ErrCodeInvalidColor   Code = "INVALID_COLOR"
	ErrCodeInvalidRoadmap Code = "INVALID_ROADMAP"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"

	// Data that is not there.
	ErrCodeNotFound Code = "NOT_FOUND"
	ErrCodeNoSkills Code = "NO_SKILLS"

	// Reaching the roadmap service.
	ErrCodeNetwork     Code = "NETWORK_ERROR"
	ErrCodeTimeout     Code = "TIMEOUT"
	ErrCodeRateLimited Code = "RATE_LIMITED"

	// The service answered with an {"error": ...} payload.
	ErrCodeBackend Code = "BACKEND_ERROR"

	// Turning a roadmap into views or documents.
	ErrCodeRenderFailed Code = "RENDER_FAILED"
	ErrCodeExportFailed Code = "EXPORT_FAILED"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// HTTPStatus is the status the API answers with for c.
func (c Code) HTTPStatus() int {
	switch c {
	case ErrCodeInvalidInput, ErrCodeInvalidRole, ErrCodeInvalidFormat,
		ErrCodeInvalidRoadmap, ErrCodeInvalidColor:
		return http.StatusBadRequest
	case ErrCodeNotFound, ErrCodeNoSkills:
		return http.StatusNotFound
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeNetwork, ErrCodeBackend:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Error is a coded failure. Message is meant for the person using the
// roadmap; Cause keeps the technical detail.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	parts := []string{string(e.Code), e.Message}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns a coded error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is New with an underlying cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// Backend carries an error message sent by the roadmap service. The text
// is shown to the user unchanged.
func Backend(message string) *Error {
	return &Error{Code: ErrCodeBackend, Message: message}
}

// outermost returns the first *Error in err's chain.
func outermost(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the outermost coded error in err's chain has code.
func Is(err error, code Code) bool {
	e, ok := outermost(err)
	return ok && e.Code == code
}

// GetCode returns the outermost code in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := outermost(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns the message for display: the coded message when
// there is one, else err's text.
func UserMessage(err error) string {
	if e, ok := outermost(err); ok {
		return e.Message
	}
	return err.Error()
}

// RateLimitedError is the cause attached to RATE_LIMITED errors when the
// service said how long to back off.
type RateLimitedError struct {
	RetryAfter int // seconds; 0 when the service gave no hint
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter <= 0 {
		return "roadmap service is rate limiting requests"
	}
	return fmt.Sprintf("roadmap service is rate limiting requests, retry in %ds", e.RetryAfter)
}
