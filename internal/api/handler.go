// Package api provides HTTP handlers for the trainer API.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/akorchagin/procsim/internal/catalog"
	"github.com/akorchagin/procsim/internal/domain"
	"github.com/akorchagin/procsim/internal/license"
	"github.com/akorchagin/procsim/internal/sim"
	"github.com/akorchagin/procsim/internal/store"
)

// maxRequestBodySize is the maximum allowed request body size (1MB).
const maxRequestBodySize = 1 << 20

// Handler serves the negotiation trainer API.
type Handler struct {
	repo     store.Repository
	catalog  *catalog.Catalog
	engine   *sim.Engine
	verifier *license.Verifier
}

// NewHandler creates a new Handler with its dependencies.
func NewHandler(repo store.Repository, cat *catalog.Catalog, engine *sim.Engine, verifier *license.Verifier) *Handler {
	return &Handler{
		repo:     repo,
		catalog:  cat,
		engine:   engine,
		verifier: verifier,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// decodeBody decodes a size-limited JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// loadSession loads the user's session, materializing a fresh one if none is
// stored yet. New sessions start authenticated when licensing is disabled.
func (h *Handler) loadSession(ctx context.Context, userID string) (*domain.Session, error) {
	session, err := h.repo.GetSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		session = &domain.Session{
			UserID:        userID,
			Authenticated: !h.verifier.Enabled(),
			CreatedAt:     time.Now(),
		}
	}
	return session, nil
}
