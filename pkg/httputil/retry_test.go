package httputil

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

var fast = Policy{Attempts: 3, Delay: time.Millisecond}

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fast, func() error {
		calls++
		if calls < 3 {
			return Retryable(errors.New("503"))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Retry: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRetryStopsOnPermanentError(t *testing.T) {
	perm := errors.New("404")
	calls := 0
	err := Retry(context.Background(), fast, func() error {
		calls++
		return perm
	})
	if !errors.Is(err, perm) {
		t.Errorf("err = %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRetryReturnsLastError(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fast, func() error {
		calls++
		return Retryable(fmt.Errorf("attempt %d", calls))
	})
	if err == nil || err.Error() != "attempt 3" {
		t.Errorf("err = %v, want attempt 3", err)
	}
	if !IsRetryable(err) {
		t.Error("last error lost its retryable marker")
	}
}

func TestRetryContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Retry(ctx, Policy{Attempts: 5, Delay: time.Hour}, func() error {
		calls++
		cancel()
		return Retryable(errors.New("boom"))
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestSingleAttemptDoesNotRetry(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), SingleAttempt, func() error {
		calls++
		return Retryable(errors.New("connection refused"))
	})
	if calls != 1 || !IsRetryable(err) {
		t.Errorf("calls = %d, err = %v", calls, err)
	}
}

func TestRetryZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	_ = Retry(context.Background(), Policy{}, func() error {
		calls++
		return Retryable(errors.New("x"))
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRetryable(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should be nil")
	}
	base := errors.New("base")
	wrapped := fmt.Errorf("fetch: %w", Retryable(base))
	if !IsRetryable(wrapped) {
		t.Error("IsRetryable should see through wrapping")
	}
	if !errors.Is(wrapped, base) {
		t.Error("RetryableError should unwrap to its cause")
	}
	if IsRetryable(base) {
		t.Error("plain error reported retryable")
	}
}

func TestRetryableStatus(t *testing.T) {
	for code, want := range map[int]bool{
		200: false, 400: false, 404: false,
		408: true, 429: true, 500: true, 502: true, 503: true,
	} {
		if got := RetryableStatus(code); got != want {
			t.Errorf("RetryableStatus(%d) = %v, want %v", code, got, want)
		}
	}
}
