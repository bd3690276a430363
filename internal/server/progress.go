package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/careermap/pkg/errors"
	"github.com/matzehuels/careermap/pkg/progress"
	"github.com/matzehuels/careermap/pkg/roadmap"
)

const maxProgressBody = 1 << 20

func (s *Server) progressEnabled(w http.ResponseWriter) bool {
	if s.progress == nil {
		respondError(w, http.StatusNotFound, string(errors.ErrCodeNotFound), "progress storage is disabled")
		return false
	}
	return true
}

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	if !s.progressEnabled(w) {
		return
	}
	id := chi.URLParam(r, "id")
	p, err := s.progress.Load(r.Context(), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, string(errors.ErrCodeNotFound), "no saved progress for "+id)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (s *Server) handlePutProgress(w http.ResponseWriter, r *http.Request) {
	if !s.progressEnabled(w) {
		return
	}
	s.saveProgress(w, r, chi.URLParam(r, "id"), http.StatusOK)
}

func (s *Server) handleCreateProgress(w http.ResponseWriter, r *http.Request) {
	if !s.progressEnabled(w) {
		return
	}
	s.saveProgress(w, r, progress.NewID(), http.StatusCreated)
}

func (s *Server) saveProgress(w http.ResponseWriter, r *http.Request, id string, status int) {
	var p roadmap.Progress
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxProgressBody)).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, string(errors.ErrCodeInvalidInput), "invalid progress body")
		return
	}
	p.ID = id
	p, err := progress.Prepare(p, time.Now())
	if err != nil {
		respondErr(w, err)
		return
	}
	if err := s.progress.Save(r.Context(), p); err != nil {
		respondErr(w, err)
		return
	}
	respondJSON(w, status, p)
}

func (s *Server) handleDeleteProgress(w http.ResponseWriter, r *http.Request) {
	if !s.progressEnabled(w) {
		return
	}
	if err := s.progress.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
