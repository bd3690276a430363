package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matzehuels/careermap/pkg/cache"
	"github.com/matzehuels/careermap/pkg/errors"
	"github.com/matzehuels/careermap/pkg/httputil"
)

var fastRetry = httputil.Policy{Attempts: 3, Delay: time.Millisecond}

func newTestClient(t *testing.T, h http.Handler, opts Options) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	if opts.Retry.Attempts == 0 {
		opts.Retry = fastRetry
	}
	c, err := New(srv.URL, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewRejectsBadURL(t *testing.T) {
	for _, u := range []string{"", "localhost:5000", "ftp://x"} {
		if _, err := New(u, Options{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("New(%q) err = %v, want INVALID_INPUT", u, err)
		}
	}
}

func TestSuggestions(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/get-suggestions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if q := r.URL.Query().Get("query"); q != "data sci" {
			t.Errorf("query = %q", q)
		}
		json.NewEncoder(w).Encode([]string{"Data Scientist"})
	}), Options{})

	got, err := c.Suggestions(context.Background(), "  data sci ")
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	if len(got) != 1 || got[0] != "Data Scientist" {
		t.Errorf("Suggestions = %v", got)
	}
}

func TestSuggestionsBlankQuerySkipsRequest(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}), Options{})

	got, err := c.Suggestions(context.Background(), "   ")
	if err != nil || got != nil {
		t.Errorf("Suggestions = %v, %v", got, err)
	}
	if calls.Load() != 0 {
		t.Error("blank query hit the service")
	}
}

func TestSuggestionsCached(t *testing.T) {
	var calls atomic.Int32
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`["Web Developer"]`))
	}), Options{Cache: fc})

	for range 3 {
		if _, err := c.Suggestions(context.Background(), "web"); err != nil {
			t.Fatal(err)
		}
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("service called %d times, want 1", n)
	}
}

func TestRoadmap(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/get-roadmap" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q", ct)
		}
		if role := r.FormValue("role"); role != "Data Analyst" {
			t.Errorf("role = %q", role)
		}
		w.Write([]byte(`{
			"role": "Data Analyst",
			"skills": ["Python", "SQL"],
			"dependencies": {"SQL": ["Python"]},
			"progression": ["Junior Data Analyst", "Data Analyst"],
			"courses": {"SQL": [{"course_title": "SQL Basics", "platform": "Coursera", "link": "https://x"}]}
		}`))
	}), Options{})

	r, err := c.Roadmap(context.Background(), " Data Analyst ")
	if err != nil {
		t.Fatalf("Roadmap: %v", err)
	}
	if r.Role != "Data Analyst" || len(r.Skills) != 2 || r.Dependencies["SQL"][0] != "Python" {
		t.Errorf("Roadmap = %+v", r)
	}
	if got := r.Courses["SQL"][0].Title; got != "SQL Basics" {
		t.Errorf("course title = %q", got)
	}
}

func TestRoadmapEmptyRole(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}), Options{})

	_, err := c.Roadmap(context.Background(), "  ")
	if !errors.Is(err, errors.ErrCodeInvalidRole) {
		t.Errorf("err = %v, want INVALID_ROLE", err)
	}
	if errors.UserMessage(err) != "Please enter a job role" {
		t.Errorf("message = %q", errors.UserMessage(err))
	}
	if calls.Load() != 0 {
		t.Error("empty role reached the service")
	}
}

func TestRoadmapBackendError(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"error": "No skills found for this role"}`))
	}), Options{})

	_, err := c.Roadmap(context.Background(), "Astronaut")
	if !errors.Is(err, errors.ErrCodeBackend) {
		t.Fatalf("err = %v, want BACKEND_ERROR", err)
	}
	if got := errors.UserMessage(err); got != "No skills found for this role" {
		t.Errorf("message = %q", got)
	}
	if calls.Load() != 1 {
		t.Errorf("backend error was retried (%d calls)", calls.Load())
	}
}

func TestRoadmapRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"role": "X", "skills": ["Go"]}`))
	}), Options{})

	r, err := c.Roadmap(context.Background(), "X")
	if err != nil {
		t.Fatalf("Roadmap: %v", err)
	}
	if len(r.Skills) != 1 || calls.Load() != 3 {
		t.Errorf("skills=%v calls=%d", r.Skills, calls.Load())
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status    int
		code      errors.Code
		wantCalls int32
	}{
		{http.StatusNotFound, errors.ErrCodeNotFound, 1},
		{http.StatusBadRequest, errors.ErrCodeNetwork, 1},
		{http.StatusInternalServerError, errors.ErrCodeNetwork, 3},
		{http.StatusTooManyRequests, errors.ErrCodeRateLimited, 3},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var calls atomic.Int32
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				if tt.status == http.StatusTooManyRequests {
					w.Header().Set("Retry-After", "7")
				}
				w.WriteHeader(tt.status)
			}), Options{})

			_, err := c.Suggestions(context.Background(), "x")
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (err %v)", got, tt.code, err)
			}
			if calls.Load() != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls.Load(), tt.wantCalls)
			}
		})
	}
}

func TestDefaultIsSingleAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Roadmap(context.Background(), "Web Developer"); !errors.Is(err, errors.ErrCodeNetwork) {
		t.Errorf("err = %v, want NETWORK_ERROR", err)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(url, Options{Retry: httputil.Policy{Attempts: 2, Delay: time.Millisecond}})
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.Roadmap(context.Background(), "Web Developer")
	if !errors.Is(err, errors.ErrCodeNetwork) {
		t.Errorf("err = %v, want NETWORK_ERROR", err)
	}
	if !httputil.IsRetryable(err) {
		t.Error("connection failure should be marked retryable")
	}
}

func TestCustomHeaders(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Request-Source"); got != "tui" {
			t.Errorf("header = %q", got)
		}
		w.Write([]byte(`[]`))
	}), Options{Headers: map[string]string{"X-Request-Source": "tui"}})

	got, err := c.Suggestions(context.Background(), "x")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Suggestions = %#v, want empty non-nil", got)
	}
}
