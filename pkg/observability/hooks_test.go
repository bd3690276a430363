package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRoadmapHooks{}
	r.OnGenerateStart(ctx, "Data Analyst")
	r.OnGenerateComplete(ctx, "Data Analyst", 7, time.Second, nil)
	r.OnExport(ctx, "Data Analyst", "pdf", 2048, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "roadmap")
	c.OnCacheMiss(ctx, "suggest")
	c.OnCacheSet(ctx, "artifact", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "localhost:5000", "/get-roadmap")
	h.OnResponse(ctx, "POST", "localhost:5000", "/get-roadmap", 200, time.Second)
	h.OnError(ctx, "POST", "localhost:5000", "/get-roadmap", nil)
}

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Roadmap().(NoopRoadmapHooks); !ok {
		t.Error("Roadmap() default is not a no-op")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() default is not a no-op")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() default is not a no-op")
	}

	r := &recordingHooks{}
	SetRoadmapHooks(r)
	SetCacheHooks(r)
	SetHTTPHooks(r)
	if Roadmap() != RoadmapHooks(r) || Cache() != CacheHooks(r) || HTTP() != HTTPHooks(r) {
		t.Error("setters did not install hooks")
	}

	SetRoadmapHooks(nil)
	if Roadmap() != RoadmapHooks(r) {
		t.Error("SetRoadmapHooks(nil) replaced the hooks")
	}

	Roadmap().OnGenerateStart(context.Background(), "x")
	if r.starts != 1 {
		t.Errorf("starts = %d", r.starts)
	}

	Reset()
	if _, ok := Roadmap().(NoopRoadmapHooks); !ok {
		t.Error("Reset did not restore no-op hooks")
	}
}

func TestLogHooks(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	NewLogHooks(logger).Install()

	ctx := context.Background()
	Roadmap().OnGenerateComplete(ctx, "Web Developer", 6, time.Millisecond, nil)
	Roadmap().OnExport(ctx, "Web Developer", "pdf", 0, 0, errors.New("no wkhtmltopdf"))
	Cache().OnCacheMiss(ctx, "roadmap")
	HTTP().OnResponse(ctx, "GET", "example.test", "/get-suggestions", 200, time.Millisecond)

	out := buf.String()
	for _, want := range []string{"generate done", "Web Developer", "export failed", "no wkhtmltopdf", "cache miss", "http response", "/get-suggestions"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

type recordingHooks struct {
	NoopRoadmapHooks
	NoopCacheHooks
	NoopHTTPHooks
	starts int
}

func (r *recordingHooks) OnGenerateStart(context.Context, string) { r.starts++ }
