// Package config loads careermap settings from a TOML file and CAREERMAP_*
// environment variables. Flags are applied on top by the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/careermap/pkg/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CAREERMAP_"

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Progress stores.
const (
	StoreFile  = "file"
	StoreRedis = "redis"
	StoreMongo = "mongo"
)

// Config holds all careermap configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Backend  BackendConfig  `toml:"backend"`
	Data     DataConfig     `toml:"data"`
	Cache    CacheConfig    `toml:"cache"`
	Redis    RedisConfig    `toml:"redis"`
	Progress ProgressConfig `toml:"progress"`
	Mongo    MongoConfig    `toml:"mongo"`
	Export   ExportConfig   `toml:"export"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
	// Suggestion requests allowed per second, and the burst on top.
	SuggestRate  float64  `toml:"suggest_rate"`
	SuggestBurst int      `toml:"suggest_burst"`
	CORSOrigins  []string `toml:"cors_origins"`
}

// BackendConfig points clients at a roadmap service. An empty URL means the
// embedded catalog is used in-process.
type BackendConfig struct {
	URL     string   `toml:"url"`
	Timeout Duration `toml:"timeout"`
}

// DataConfig overrides the embedded dataset.
type DataConfig struct {
	JobSkills string `toml:"job_skills"`
	Courses   string `toml:"courses"`
}

// CacheConfig selects the roadmap and artifact cache.
type CacheConfig struct {
	Backend string   `toml:"backend"`
	Dir     string   `toml:"dir"`
	TTL     Duration `toml:"ttl"`
}

// RedisConfig is shared by the redis cache and the redis progress store.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// ProgressConfig selects where saved progress lives.
type ProgressConfig struct {
	Store string `toml:"store"`
	Dir   string `toml:"dir"`
}

// MongoConfig configures the mongo progress store.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ExportConfig configures PDF export.
type ExportConfig struct {
	PDFCommand string `toml:"pdf_command"`
	Dir        string `toml:"dir"`
}

// Duration is a time.Duration written as a string such as "30s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         "127.0.0.1:5000",
			ReadTimeout:  Duration{15 * time.Second},
			WriteTimeout: Duration{60 * time.Second},
			SuggestRate:  20,
			SuggestBurst: 40,
		},
		Backend: BackendConfig{Timeout: Duration{30 * time.Second}},
		Cache:   CacheConfig{Backend: CacheFile, TTL: Duration{24 * time.Hour}},
		Redis:   RedisConfig{Addr: "localhost:6379"},
		Progress: ProgressConfig{
			Store: StoreFile,
		},
		Mongo: MongoConfig{
			URI:        "mongodb://localhost:27017",
			Database:   "careermap",
			Collection: "progress",
		},
		Export: ExportConfig{PDFCommand: "wkhtmltopdf"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/careermap/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "careermap", "config.toml"), nil
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. A missing file is not an error when path is the
// default location.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		switch {
		case err == nil:
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				return nil, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown key %q", path, undecoded[0].String())
			}
		case os.IsNotExist(err) && !explicit:
		default:
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Addr = getEnv("SERVER_ADDR", c.Server.Addr)
	c.Server.ReadTimeout.Duration = getEnvAsDuration("SERVER_READ_TIMEOUT", c.Server.ReadTimeout.Duration)
	c.Server.WriteTimeout.Duration = getEnvAsDuration("SERVER_WRITE_TIMEOUT", c.Server.WriteTimeout.Duration)
	c.Server.SuggestRate = getEnvAsFloat("SERVER_SUGGEST_RATE", c.Server.SuggestRate)
	c.Server.SuggestBurst = getEnvAsInt("SERVER_SUGGEST_BURST", c.Server.SuggestBurst)
	c.Server.CORSOrigins = getEnvAsList("SERVER_CORS_ORIGINS", c.Server.CORSOrigins)

	c.Backend.URL = getEnv("BACKEND_URL", c.Backend.URL)
	c.Backend.Timeout.Duration = getEnvAsDuration("BACKEND_TIMEOUT", c.Backend.Timeout.Duration)

	c.Data.JobSkills = getEnv("DATA_JOB_SKILLS", c.Data.JobSkills)
	c.Data.Courses = getEnv("DATA_COURSES", c.Data.Courses)

	c.Cache.Backend = getEnv("CACHE_BACKEND", c.Cache.Backend)
	c.Cache.Dir = getEnv("CACHE_DIR", c.Cache.Dir)
	c.Cache.TTL.Duration = getEnvAsDuration("CACHE_TTL", c.Cache.TTL.Duration)

	c.Redis.Addr = getEnv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvAsInt("REDIS_DB", c.Redis.DB)

	c.Progress.Store = getEnv("PROGRESS_STORE", c.Progress.Store)
	c.Progress.Dir = getEnv("PROGRESS_DIR", c.Progress.Dir)

	c.Mongo.URI = getEnv("MONGO_URI", c.Mongo.URI)
	c.Mongo.Database = getEnv("MONGO_DATABASE", c.Mongo.Database)
	c.Mongo.Collection = getEnv("MONGO_COLLECTION", c.Mongo.Collection)

	c.Export.PDFCommand = getEnv("EXPORT_PDF_COMMAND", c.Export.PDFCommand)
	c.Export.Dir = getEnv("EXPORT_DIR", c.Export.Dir)
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "server.addr is required")
	}
	if c.Server.SuggestRate <= 0 || c.Server.SuggestBurst < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "server.suggest_rate and server.suggest_burst must be positive")
	}
	if c.Backend.URL != "" {
		if err := errors.ValidateURL(c.Backend.URL); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "backend.url")
		}
	}
	switch c.Cache.Backend {
	case CacheFile, CacheRedis, CacheNone:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "cache.backend must be one of file, redis, none (got %q)", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache.ttl cannot be negative")
	}
	switch c.Progress.Store {
	case StoreFile, StoreRedis, StoreMongo:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "progress.store must be one of file, redis, mongo (got %q)", c.Progress.Store)
	}
	if c.Progress.Store == StoreMongo && c.Mongo.URI == "" {
		return errors.New(errors.ErrCodeInvalidInput, "mongo.uri is required for the mongo progress store")
	}
	if (c.Data.JobSkills == "") != (c.Data.Courses == "") {
		return errors.New(errors.ErrCodeInvalidInput, "data.job_skills and data.courses must be set together")
	}
	return nil
}

// Environment helpers. Unparseable values keep the current setting.

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(EnvPrefix + key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(EnvPrefix + key); ok {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(EnvPrefix + key); ok {
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(EnvPrefix + key); ok {
		if v, err := time.ParseDuration(value); err == nil {
			return v
		}
	}
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return fallback
	}
	var out []string
	for _, s := range strings.Split(value, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// String renders the configuration as TOML.
func (c *Config) String() string {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return b.String()
}
