// Package cli implements the careermap command-line interface.
package cli

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/careermap/internal/config"
	"github.com/matzehuels/careermap/pkg/cache"
	"github.com/matzehuels/careermap/pkg/catalog"
	"github.com/matzehuels/careermap/pkg/client"
	"github.com/matzehuels/careermap/pkg/controller"
	"github.com/matzehuels/careermap/pkg/export"
	"github.com/matzehuels/careermap/pkg/httputil"
	"github.com/matzehuels/careermap/pkg/pipeline"
	"github.com/matzehuels/careermap/pkg/progress"
	"github.com/matzehuels/careermap/pkg/render"
)

const appName = "careermap"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogWarn  = log.WarnLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	noCache    bool
	cfg        *config.Config
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// config loads the configuration once per process.
func (c *CLI) config() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	c.Logger.Debug("loaded config", "path", c.configPath, "cache", cfg.Cache.Backend, "progress", cfg.Progress.Store)
	return cfg, nil
}

// =============================================================================
// Service Factories
// =============================================================================

// backend is what the commands need from a roadmap source: the remote
// service when backend.url is set, otherwise the catalog in-process.
//
// Interactive commands get a client that never retries; retry is the
// policy for batch commands.
type backend interface {
	controller.Backend
	pipeline.Source
}

func (c *CLI) newBackend(cfg *config.Config, ch cache.Cache, retry httputil.Policy) (backend, error) {
	if cfg.Backend.URL != "" {
		c.Logger.Debug("using remote backend", "url", cfg.Backend.URL)
		cl, err := client.New(cfg.Backend.URL, client.Options{
			HTTPClient: &http.Client{Timeout: cfg.Backend.Timeout.Duration},
			Logger:     c.Logger,
			Cache:      ch,
			Retry:      retry,
		})
		if err != nil {
			return nil, err
		}
		return cl, nil
	}
	cat, err := c.newCatalog(cfg)
	if err != nil {
		return nil, err
	}
	return cat, nil
}

func (c *CLI) newCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Data.JobSkills != "" {
		return catalog.Load(cfg.Data.JobSkills, cfg.Data.Courses, c.Logger)
	}
	return catalog.Default(c.Logger)
}

// newCache returns the configured cache. Failing to open it is not fatal;
// commands then run uncached.
func (c *CLI) newCache(ctx context.Context, cfg *config.Config) cache.Cache {
	if c.noCache || cfg.Cache.Backend == config.CacheNone {
		return cache.NewNullCache()
	}
	if cfg.Cache.Backend == config.CacheRedis {
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   appName + ":cache:",
		})
		if err != nil {
			c.Logger.Warn("redis cache unavailable, running uncached", "addr", cfg.Redis.Addr, "err", err)
			return cache.NewNullCache()
		}
		return rc
	}
	dir, err := cacheDir(cfg)
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("file cache unavailable, running uncached", "dir", dir, "err", err)
		return cache.NewNullCache()
	}
	return fc
}

func (c *CLI) newProgressStore(ctx context.Context, cfg *config.Config) (progress.Store, error) {
	switch cfg.Progress.Store {
	case config.StoreRedis:
		return progress.NewRedisStore(ctx, progress.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	case config.StoreMongo:
		return progress.NewMongoStore(ctx, progress.MongoConfig{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
	default:
		dir := cfg.Progress.Dir
		if dir == "" {
			var err error
			if dir, err = progress.DefaultDir(); err != nil {
				return nil, err
			}
		}
		return progress.NewFileStore(dir)
	}
}

func pdfRenderer(cfg *config.Config) export.PDFRenderer {
	return export.CommandRenderer{Command: cfg.Export.PDFCommand, Page: render.DefaultPageOptions}
}

// newRunner creates a pipeline runner. The returned cleanup closes the
// cache.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, backend, func(), error) {
	cfg, err := c.config()
	if err != nil {
		return nil, nil, nil, err
	}
	ch := c.newCache(ctx, cfg)
	src, err := c.newBackend(cfg, ch, httputil.DefaultPolicy)
	if err != nil {
		ch.Close()
		return nil, nil, nil, err
	}
	r := pipeline.NewRunner(src, ch, nil, c.Logger)
	r.PDF = pdfRenderer(cfg)
	r.TTL = cfg.Cache.TTL.Duration
	return r, src, func() { _ = ch.Close() }, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns cache.dir, or the per-user cache directory.
func cacheDir(cfg *config.Config) (string, error) {
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	return cache.DefaultDir()
}

// exportDir returns export.dir, else ~/Downloads when it exists, else the
// working directory.
func exportDir(cfg *config.Config) string {
	if cfg.Export.Dir != "" {
		return cfg.Export.Dir
	}
	if home, err := os.UserHomeDir(); err == nil {
		dl := filepath.Join(home, "Downloads")
		if fi, err := os.Stat(dl); err == nil && fi.IsDir() {
			return dl
		}
	}
	return "."
}
