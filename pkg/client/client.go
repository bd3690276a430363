package client

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/careermap/pkg/cache"
	"github.com/matzehuels/careermap/pkg/errors"
	"github.com/matzehuels/careermap/pkg/httputil"
	"github.com/matzehuels/careermap/pkg/observability"
	"github.com/matzehuels/careermap/pkg/roadmap"
)

// DefaultTimeout bounds a single HTTP attempt.
const DefaultTimeout = 30 * time.Second

// maxBody caps how much of a response is read.
const maxBody = 8 << 20

// Options configures [New]. Zero values select defaults.
type Options struct {
	HTTPClient *http.Client
	Headers    map[string]string
	// Retry bounds attempts per request. The zero value makes a single
	// attempt; batch callers pass httputil.DefaultPolicy.
	Retry  httputil.Policy
	Logger *log.Logger

	// Cache, when set, stores suggestion lists under Keyer.SuggestionKey.
	// Roadmaps are never cached client-side.
	Cache    cache.Cache
	Keyer    cache.Keyer
	CacheTTL time.Duration
}

// Client is safe for concurrent use.
type Client struct {
	base    *url.URL
	http    *http.Client
	headers map[string]string
	retry   httputil.Policy
	logger  *log.Logger
	cache   cache.Cache
	keyer   cache.Keyer
	ttl     time.Duration
}

// New returns a client for the service at baseURL.
func New(baseURL string, opts Options) (*Client, error) {
	if err := errors.ValidateURL(baseURL); err != nil {
		return nil, err
	}
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse backend URL")
	}

	c := &Client{
		base:    base,
		http:    opts.HTTPClient,
		headers: opts.Headers,
		retry:   opts.Retry,
		logger:  opts.Logger,
		cache:   opts.Cache,
		keyer:   opts.Keyer,
		ttl:     opts.CacheTTL,
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: DefaultTimeout}
	}
	if c.retry.Attempts == 0 {
		c.retry = httputil.SingleAttempt
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	if c.cache == nil {
		c.cache = cache.NewNullCache()
	}
	if c.keyer == nil {
		c.keyer = cache.NewDefaultKeyer()
	}
	if c.ttl == 0 {
		c.ttl = time.Hour
	}
	return c, nil
}

// BaseURL returns the service root.
func (c *Client) BaseURL() string { return c.base.String() }

// Suggestions returns role suggestions for query. A blank query returns no
// suggestions without contacting the service.
func (c *Client) Suggestions(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	key := c.keyer.SuggestionKey(query, 0)
	var out []string
	if hit, _ := cache.GetJSON(ctx, c.cache, key, &out); hit {
		observability.Cache().OnCacheHit(ctx, cache.KindSuggestion)
		return out, nil
	}
	observability.Cache().OnCacheMiss(ctx, cache.KindSuggestion)

	u := c.endpoint("/get-suggestions")
	u.RawQuery = url.Values{"query": {query}}.Encode()

	err := httputil.Retry(ctx, c.retry, func() error {
		body, err := c.do(ctx, http.MethodGet, u, nil, "")
		if err != nil {
			return err
		}
		out = nil
		if err := json.Unmarshal(body, &out); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode suggestions")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}

	if err := cache.SetJSON(ctx, c.cache, key, out, c.ttl); err != nil {
		c.logger.Warn("cache suggestions", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, cache.KindSuggestion, len(out))
	}
	return out, nil
}

// roadmapResponse is the union of a roadmap and an error payload.
type roadmapResponse struct {
	Error string `json:"error"`
	roadmap.Roadmap
}

// Roadmap requests the roadmap for role. The role is trimmed and validated
// locally first; an empty role never reaches the service.
func (c *Client) Roadmap(ctx context.Context, role string) (roadmap.Roadmap, error) {
	role = strings.TrimSpace(role)
	if err := errors.ValidateRole(role); err != nil {
		return roadmap.Roadmap{}, err
	}

	form := url.Values{"role": {role}}.Encode()
	u := c.endpoint("/get-roadmap")

	var resp roadmapResponse
	err := httputil.Retry(ctx, c.retry, func() error {
		body, err := c.do(ctx, http.MethodPost, u, strings.NewReader(form), "application/x-www-form-urlencoded")
		if err != nil {
			return err
		}
		resp = roadmapResponse{}
		if err := json.Unmarshal(body, &resp); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode roadmap")
		}
		return nil
	})
	if err != nil {
		return roadmap.Roadmap{}, err
	}
	if resp.Error != "" {
		return roadmap.Roadmap{}, errors.Backend(resp.Error)
	}
	c.logger.Debug("roadmap received", "role", resp.Role, "skills", len(resp.Skills))
	return resp.Roadmap, nil
}

func (c *Client) endpoint(path string) *url.URL {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	return &u
}

// do performs one attempt and returns the body of a 200 response. Transport
// errors and transient statuses come back wrapped as retryable.
func (c *Client) do(ctx context.Context, method string, u *url.URL, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	hooks.OnRequest(ctx, method, u.Host, u.Path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, method, u.Host, u.Path, err)
		if ctx.Err() != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout, ctx.Err(), "%s %s", method, u.Path)
		}
		var ue *url.Error
		if stderrors.As(err, &ue) && ue.Timeout() {
			return nil, httputil.Retryable(errors.Wrap(errors.ErrCodeTimeout, err, "%s %s", method, u.Path))
		}
		return nil, httputil.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "%s %s", method, u.Path))
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, method, u.Host, u.Path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, httputil.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "read response"))
	}
	return data, nil
}

func checkStatus(resp *http.Response) error {
	code := resp.StatusCode
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "%s not found", resp.Request.URL.Path)
	case code == http.StatusTooManyRequests:
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return httputil.Retryable(errors.Wrap(errors.ErrCodeRateLimited,
			&errors.RateLimitedError{RetryAfter: retryAfter}, "roadmap service"))
	case httputil.RetryableStatus(code):
		return httputil.Retryable(errors.New(errors.ErrCodeNetwork, "roadmap service returned status %d", code))
	default:
		return errors.New(errors.ErrCodeNetwork, "roadmap service returned status %d", code)
	}
}
