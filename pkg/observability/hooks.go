// Package observability lets the binary attach instrumentation to roadmap
// generation, caching and backend HTTP calls without the libraries importing
// any metrics or tracing backend.
//
// Libraries report events through the package-level accessors:
//
//	observability.Roadmap().OnGenerateStart(ctx, role)
//	// ... generate ...
//	observability.Roadmap().OnGenerateComplete(ctx, role, len(r.Skills), time.Since(start), err)
//
// The binary registers implementations once at startup:
//
//	observability.SetRoadmapHooks(observability.NewLogHooks(logger))
//
// Until then every accessor returns a no-op implementation.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Roadmap Hooks
// =============================================================================

// RoadmapHooks receives events from roadmap generation and export.
type RoadmapHooks interface {
	OnGenerateStart(ctx context.Context, role string)
	OnGenerateComplete(ctx context.Context, role string, skills int, duration time.Duration, err error)

	// OnExport fires once per produced artifact (svg, html, pdf, ...).
	OnExport(ctx context.Context, role, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives cache events. keyType is one of the cache key kinds
// ("roadmap", "suggest", "artifact").
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the backend client.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, host, path string)
	OnResponse(ctx context.Context, method, host, path string, status int, duration time.Duration)
	// OnError reports transport failures; no response was received.
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

type NoopRoadmapHooks struct{}

func (NoopRoadmapHooks) OnGenerateStart(context.Context, string) {}
func (NoopRoadmapHooks) OnGenerateComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopRoadmapHooks) OnExport(context.Context, string, string, int, time.Duration, error) {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string) {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {
}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error) {}

// =============================================================================
// Registry
// =============================================================================

var (
	mu           sync.RWMutex
	roadmapHooks RoadmapHooks = NoopRoadmapHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	httpHooks    HTTPHooks    = NoopHTTPHooks{}
)

// SetRoadmapHooks installs h. A nil h is ignored.
func SetRoadmapHooks(h RoadmapHooks) {
	if h == nil {
		return
	}
	mu.Lock()
	roadmapHooks = h
	mu.Unlock()
}

// SetCacheHooks installs h. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h == nil {
		return
	}
	mu.Lock()
	cacheHooks = h
	mu.Unlock()
}

// SetHTTPHooks installs h. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h == nil {
		return
	}
	mu.Lock()
	httpHooks = h
	mu.Unlock()
}

func Roadmap() RoadmapHooks {
	mu.RLock()
	defer mu.RUnlock()
	return roadmapHooks
}

func Cache() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return cacheHooks
}

func HTTP() HTTPHooks {
	mu.RLock()
	defer mu.RUnlock()
	return httpHooks
}

// Reset restores the no-op hooks. Tests use it to isolate registrations.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	roadmapHooks = NoopRoadmapHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
