// ABOUTME: HTTP handlers exposing the card commands as a JSON API.
// ABOUTME: Each handler calls one app.State command and encodes its result.

package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ImFeH2/sylvo/internal/app"
	"github.com/go-chi/chi/v5"
)

// Server holds the HTTP server dependencies
type Server struct {
	state *app.State
}

// New creates a new API server
func New(state *app.State) *Server {
	return &Server{state: state}
}

// CreateCardRequest is the request body for creating a card
type CreateCardRequest struct {
	Title   string   `json:"title"`
	Tags    []string `json:"tags"`
	Content string   `json:"content"`
}

// TitleRequest is the request body for PUT /api/cards/{id}/title
type TitleRequest struct {
	Title string `json:"title"`
}

// TagsRequest is the request body for PUT /api/cards/{id}/tags
type TagsRequest struct {
	Tags []string `json:"tags"`
}

// ContentRequest is the request body for PUT /api/cards/{id}/content
type ContentRequest struct {
	Content string `json:"content"`
}

// HealthCheck handles GET /health
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListCards handles GET /api/cards
func (s *Server) ListCards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.state.ListCards())
}

// GetCard handles GET /api/cards/{id}
func (s *Server) GetCard(w http.ResponseWriter, r *http.Request) {
	card, ok, err := s.state.GetCard(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		http.Error(w, app.ErrCardNotFound.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// CreateCard handles POST /api/cards
func (s *Server) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req CreateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	card, err := s.state.AddCard(req.Title, req.Tags, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

// DeleteCard handles DELETE /api/cards/{id}
// The body is true if the card existed, false otherwise.
func (s *Server) DeleteCard(w http.ResponseWriter, r *http.Request) {
	ok, err := s.state.DeleteCard(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ok)
}

// RenameCard handles PUT /api/cards/{id}/title
func (s *Server) RenameCard(w http.ResponseWriter, r *http.Request) {
	var req TitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeUpdate(w, func() (bool, error) {
		return s.state.RenameCard(chi.URLParam(r, "id"), req.Title)
	})
}

// RetagCard handles PUT /api/cards/{id}/tags
func (s *Server) RetagCard(w http.ResponseWriter, r *http.Request) {
	var req TagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeUpdate(w, func() (bool, error) {
		return s.state.RetagCard(chi.URLParam(r, "id"), req.Tags)
	})
}

// RecontentCard handles PUT /api/cards/{id}/content
func (s *Server) RecontentCard(w http.ResponseWriter, r *http.Request) {
	var req ContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeUpdate(w, func() (bool, error) {
		return s.state.RecontentCard(chi.URLParam(r, "id"), req.Content)
	})
}

func (s *Server) writeUpdate(w http.ResponseWriter, update func() (bool, error)) {
	ok, err := update()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ok)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "status", status, "error", err)
	}
}

// writeError maps malformed ids to 400 and everything else to 500.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, app.ErrInvalidID) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
