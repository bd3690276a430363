package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorText(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"role", New(ErrCodeInvalidRole, "job role too long (max %d characters)", 200),
			"INVALID_ROLE: job role too long (max 200 characters)"},
		{"with cause", Wrap(ErrCodeNetwork, errors.New("connection refused"), "roadmap service"),
			"NETWORK_ERROR: roadmap service: connection refused"},
		{"rate limit hint", Wrap(ErrCodeRateLimited, &RateLimitedError{RetryAfter: 30}, "roadmap service"),
			"RATE_LIMITED: roadmap service: roadmap service is rate limiting requests, retry in 30s"},
		{"rate limit no hint", Wrap(ErrCodeRateLimited, &RateLimitedError{}, "roadmap service"),
			"RATE_LIMITED: roadmap service: roadmap service is rate limiting requests"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapKeepsCauseReachable(t *testing.T) {
	limit := &RateLimitedError{RetryAfter: 5}
	err := fmt.Errorf("suggest %q: %w", "nurse", Wrap(ErrCodeRateLimited, limit, "roadmap service"))

	var got *RateLimitedError
	if !errors.As(err, &got) || got.RetryAfter != 5 {
		t.Fatalf("errors.As did not reach the rate limit cause: %v", err)
	}
	if !Is(err, ErrCodeRateLimited) {
		t.Error("code lost behind fmt.Errorf wrapping")
	}
}

func TestOutermostCodeWins(t *testing.T) {
	// An export that failed because the render failed reports the export.
	render := New(ErrCodeRenderFailed, "graph layout failed")
	export := Wrap(ErrCodeExportFailed, render, "could not build the PDF")

	if GetCode(export) != ErrCodeExportFailed {
		t.Errorf("GetCode = %s, want EXPORT_FAILED", GetCode(export))
	}
	if Is(export, ErrCodeRenderFailed) {
		t.Error("Is matched an inner code")
	}
	if UserMessage(export) != "could not build the PDF" {
		t.Errorf("UserMessage = %q", UserMessage(export))
	}
}

func TestUncodedErrors(t *testing.T) {
	plain := errors.New("disk full")
	if GetCode(plain) != "" || Is(plain, ErrCodeInternal) {
		t.Error("plain error reported a code")
	}
	if UserMessage(plain) != "disk full" {
		t.Errorf("UserMessage = %q", UserMessage(plain))
	}
	if GetCode(nil) != "" || Is(nil, ErrCodeInternal) {
		t.Error("nil error reported a code")
	}
}

func TestBackendKeepsMessageVerbatim(t *testing.T) {
	err := Backend("An error occurred while generating the roadmap: boom")
	if !Is(err, ErrCodeBackend) {
		t.Fatalf("Is(err, ErrCodeBackend) = false")
	}
	if got := UserMessage(err); got != "An error occurred while generating the roadmap: boom" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := map[Code]int{
		ErrCodeInvalidRole:    http.StatusBadRequest,
		ErrCodeInvalidInput:   http.StatusBadRequest,
		ErrCodeInvalidFormat:  http.StatusBadRequest,
		ErrCodeInvalidRoadmap: http.StatusBadRequest,
		ErrCodeInvalidColor:   http.StatusBadRequest,
		ErrCodeNotFound:       http.StatusNotFound,
		ErrCodeNoSkills:       http.StatusNotFound,
		ErrCodeRateLimited:    http.StatusTooManyRequests,
		ErrCodeTimeout:        http.StatusGatewayTimeout,
		ErrCodeNetwork:        http.StatusBadGateway,
		ErrCodeBackend:        http.StatusBadGateway,
		ErrCodeRenderFailed:   http.StatusInternalServerError,
		ErrCodeExportFailed:   http.StatusInternalServerError,
		ErrCodeInternal:       http.StatusInternalServerError,
		Code("SOMETHING_NEW"):  http.StatusInternalServerError,
	}
	for code, want := range tests {
		if got := code.HTTPStatus(); got != want {
			t.Errorf("%s.HTTPStatus() = %d, want %d", code, got, want)
		}
	}
}
