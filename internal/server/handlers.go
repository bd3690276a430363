package server

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/careermap/pkg/buildinfo"
	"github.com/matzehuels/careermap/pkg/errors"
	"github.com/matzehuels/careermap/pkg/pipeline"
	"github.com/matzehuels/careermap/pkg/roadmap"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}

// handleSuggestions answers with a JSON array, empty on any failure.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	items, err := s.deps.Suggester.Suggestions(r.Context(), query)
	if err != nil {
		s.logger.Warn("suggestions failed", "query", query, "err", err)
	}
	if items == nil {
		items = []string{}
	}
	respondJSON(w, http.StatusOK, items)
}

type roadmapError struct {
	Error string `json:"error"`
}

// handleRoadmap serves the browser form. Failures are reported in the body
// with status 200.
func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	role := strings.TrimSpace(r.PostFormValue("role"))
	if err := errors.ValidateRole(role); err != nil {
		respondJSON(w, http.StatusOK, roadmapError{Error: errors.UserMessage(err)})
		return
	}

	rm, _, err := s.deps.Runner.Fetch(r.Context(), role, false)
	if err != nil {
		respondJSON(w, http.StatusOK, roadmapError{Error: formMessage(err)})
		return
	}
	respondJSON(w, http.StatusOK, rm)
}

func formMessage(err error) string {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidRole, errors.ErrCodeNoSkills:
		return errors.UserMessage(err)
	default:
		return "An error occurred while generating the roadmap: " + err.Error()
	}
}

func roleParam(r *http.Request) string {
	role := chi.URLParam(r, "role")
	if u, err := url.PathUnescape(role); err == nil {
		role = u
	}
	return strings.TrimSpace(role)
}

func refreshParam(r *http.Request) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))
	return v
}

func (s *Server) execute(ctx context.Context, r *http.Request, formats ...string) (*pipeline.Result, error) {
	return s.deps.Runner.Execute(ctx, pipeline.Options{
		Role:     roleParam(r),
		Formats:  formats,
		Refresh:  refreshParam(r),
		Detailed: r.URL.Query().Has("detailed"),
		Strict:   r.URL.Query().Has("strict"),
	})
}

func (s *Server) handleRoadmapJSON(w http.ResponseWriter, r *http.Request) {
	res, err := s.execute(r.Context(), r)
	if err != nil {
		respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pipeline.Bundle{
		Roadmap:  res.Roadmap,
		Graph:    res.Graph,
		Timeline: res.Timeline,
		Groups:   res.Groups,
	})
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	res, err := s.execute(r.Context(), r)
	if err != nil {
		respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res.Graph)
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	res, err := s.execute(r.Context(), r)
	if err != nil {
		respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res.Timeline)
}

func (s *Server) handleGroups(w http.ResponseWriter, r *http.Request) {
	res, err := s.execute(r.Context(), r)
	if err != nil {
		respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res.Groups)
}

func (s *Server) handleExport(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeArtifact(w, r, format)
	}
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		respondErr(w, err)
		return
	}
	s.writeArtifact(w, r, format)
}

var contentTypes = map[string]string{
	pipeline.FormatJSON:     "application/json",
	pipeline.FormatDOT:      "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatSVG:      "image/svg+xml",
	pipeline.FormatPNG:      "image/png",
	pipeline.FormatGraphPDF: "application/pdf",
	pipeline.FormatHTML:     "text/html; charset=utf-8",
	pipeline.FormatPDF:      "application/pdf",
}

func (s *Server) writeArtifact(w http.ResponseWriter, r *http.Request, format string) {
	res, err := s.execute(r.Context(), r, format)
	if err != nil {
		respondErr(w, err)
		return
	}
	data := res.Artifacts[format]
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if format == pipeline.FormatPDF || format == pipeline.FormatGraphPDF {
		name := strings.TrimSuffix(roadmap.Filename(res.Roadmap.Role), ".pdf") + pipeline.Extension(format)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
