// Package server exposes the roadmap service over HTTP.
//
// The two form endpoints used by the browser front-end keep their original
// contract: /get-suggestions answers with a JSON array and /get-roadmap
// always answers 200, reporting failures as {"error": "..."}. Everything
// under /api is conventional JSON with HTTP status codes.
package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/matzehuels/careermap/internal/config"
	"github.com/matzehuels/careermap/pkg/pipeline"
	"github.com/matzehuels/careermap/pkg/progress"
)

const (
	requestTimeout  = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Suggester answers autocomplete queries.
type Suggester interface {
	Suggestions(ctx context.Context, query string) ([]string, error)
}

// Deps are the services the handlers call into.
type Deps struct {
	Suggester Suggester
	Runner    *pipeline.Runner
	Progress  progress.Store
	Logger    *log.Logger
}

// Server is the HTTP front of the roadmap service.
type Server struct {
	cfg      config.ServerConfig
	deps     Deps
	logger   *log.Logger
	limiter  *rate.Limiter
	router   *chi.Mux
	progress progress.Store
}

// New builds a server. Deps.Suggester and Deps.Runner are required;
// without a progress store the /api/progress routes answer 404.
func New(cfg config.ServerConfig, deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{
		cfg:      cfg,
		deps:     deps,
		logger:   logger.WithPrefix("http"),
		limiter:  rate.NewLimiter(rate.Limit(cfg.SuggestRate), cfg.SuggestBurst),
		progress: deps.Progress,
	}
	s.setupRouter()
	return s
}

// Handler returns the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	origins := s.cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "Content-Disposition"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.With(s.rateLimit).Get("/get-suggestions", s.handleSuggestions)
	r.Post("/get-roadmap", s.handleRoadmap)

	r.Route("/api", func(r chi.Router) {
		r.Route("/roadmap/{role}", func(r chi.Router) {
			r.Get("/", s.handleRoadmapJSON)
			r.Get("/graph", s.handleGraph)
			r.Get("/timeline", s.handleTimeline)
			r.Get("/groups", s.handleGroups)
			r.Get("/export.html", s.handleExport(pipeline.FormatHTML))
			r.Get("/export.pdf", s.handleExport(pipeline.FormatPDF))
			r.Get("/render/{format}", s.handleRender)
		})
		r.Route("/progress", func(r chi.Router) {
			r.Post("/", s.handleCreateProgress)
			r.Get("/{id}", s.handleGetProgress)
			r.Put("/{id}", s.handlePutProgress)
			r.Delete("/{id}", s.handleDeleteProgress)
		})
	})

	s.router = r
}

// Run serves on cfg.Addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadTimeout:       s.cfg.ReadTimeout.Duration,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      s.cfg.WriteTimeout.Duration,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
