package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/akorchagin/procsim/internal/catalog"
	"github.com/akorchagin/procsim/internal/domain"
	"github.com/akorchagin/procsim/internal/identity"
	"github.com/akorchagin/procsim/internal/license"
	"github.com/akorchagin/procsim/internal/llm"
	"github.com/akorchagin/procsim/internal/report"
	"github.com/akorchagin/procsim/internal/sim"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all trainer API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/config", h.GetConfig)
		r.Post("/login", h.Login)
		r.Get("/scenarios", h.ListScenarios)
		r.Get("/scenarios/{id}", h.GetScenario)
		r.Get("/session", h.GetSession)
		r.Post("/session/start", h.StartScenario)
		r.Post("/session/message", h.SendMessage)
		r.Post("/session/tip", h.RequestTip)
		r.Post("/session/assess", h.Assess)
		r.Get("/session/report", h.DownloadReport)
		r.Post("/session/reset", h.ResetSession)
	})
}

// sessionView is the client-facing session state.
type sessionView struct {
	State          domain.SessionState     `json:"state"`
	Authenticated  bool                    `json:"authenticated"`
	Scenario       *domain.ScenarioSummary `json:"scenario,omitempty"`
	Brief          string                  `json:"brief,omitempty"`
	Transcript     []domain.Turn           `json:"transcript"`
	LastTip        string                  `json:"last_tip,omitempty"`
	LastAssessment *domain.Scorecard       `json:"last_assessment,omitempty"`
}

func (h *Handler) sessionView(session *domain.Session) sessionView {
	view := sessionView{
		State:          session.State(),
		Authenticated:  session.Authenticated,
		Transcript:     session.Transcript,
		LastTip:        session.LastTip,
		LastAssessment: session.LastAssessment,
	}
	if view.Transcript == nil {
		view.Transcript = []domain.Turn{}
	}
	if session.HasScenario() {
		if sc, err := h.catalog.Get(session.ScenarioID); err == nil {
			summary := sc.Summary()
			view.Scenario = &summary
			view.Brief = sc.UserBrief
		}
	}
	return view
}

// GetConfig returns the server configuration for the frontend.
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]interface{}{
		"license_required": h.verifier.Enabled(),
	})
}

// Login verifies a license key and marks the session authenticated.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	session, err := h.loadSession(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to load session for login", "error", err, "user_id", userID)
		Error(w, http.StatusInternalServerError, "failed to load session")
		return
	}

	if !h.verifier.Enabled() {
		session.Authenticated = true
		h.saveSession(w, r, session, "login")
		return
	}

	var req struct {
		LicenseKey string `json:"license_key"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.LicenseKey) == "" {
		Error(w, http.StatusBadRequest, "license key is required")
		return
	}

	if err := h.verifier.Verify(r.Context(), req.LicenseKey); err != nil {
		switch {
		case errors.Is(err, license.ErrInvalidLicense):
			slog.Info("License rejected", "user_id", userID)
			Error(w, http.StatusUnauthorized, "invalid license key")
		default:
			slog.Error("License verification failed", "error", err, "user_id", userID)
			Error(w, http.StatusBadGateway, "license verification unavailable")
		}
		return
	}

	session.Authenticated = true
	slog.Info("License verified", "user_id", userID)
	h.saveSession(w, r, session, "login")
}

// ListScenarios returns the scenario catalog ordered by category, then title.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	if h.requireAuth(w, r) == nil {
		return
	}
	JSON(w, http.StatusOK, h.catalog.List())
}

// GetScenario returns one scenario's listing data and user brief. The hidden
// persona is never included.
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	if h.requireAuth(w, r) == nil {
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid scenario id")
		return
	}

	sc, err := h.catalog.Get(id)
	if err != nil {
		Error(w, http.StatusNotFound, "scenario not found")
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"id":         sc.ID,
		"title":      sc.Title,
		"category":   sc.Category,
		"difficulty": sc.Difficulty,
		"user_brief": sc.UserBrief,
	})
}

// GetSession returns the current session state.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	session, err := h.loadSession(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to load session", "error", err, "user_id", userID)
		Error(w, http.StatusInternalServerError, "failed to load session")
		return
	}

	JSON(w, http.StatusOK, h.sessionView(session))
}

// StartScenario begins a new scenario run, clearing prior transcript state.
func (h *Handler) StartScenario(w http.ResponseWriter, r *http.Request) {
	session := h.requireAuth(w, r)
	if session == nil {
		return
	}

	var req struct {
		ScenarioID int `json:"scenario_id"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if _, err := h.catalog.Get(req.ScenarioID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			Error(w, http.StatusNotFound, "scenario not found")
			return
		}
		Error(w, http.StatusInternalServerError, "failed to resolve scenario")
		return
	}

	session.Start(req.ScenarioID)
	slog.Info("Scenario started", "user_id", session.UserID, "scenario_id", req.ScenarioID)
	h.saveSession(w, r, session, "start scenario")
}

// SendMessage submits the user's next negotiation message and returns the
// counterparty's reply. On upstream failure the transcript is unchanged.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	session := h.requireAuth(w, r)
	if session == nil {
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		Error(w, http.StatusBadRequest, "message is required")
		return
	}

	turn, err := h.engine.Respond(r.Context(), session, req.Message)
	if err != nil {
		h.engineError(w, err, "counterparty unavailable")
		return
	}

	if !h.persistSession(w, r, session, "message") {
		return
	}
	JSON(w, http.StatusOK, map[string]interface{}{
		"turn":  turn,
		"state": session.State(),
	})
}

// RequestTip returns one tactical coaching tip for the negotiation so far.
func (h *Handler) RequestTip(w http.ResponseWriter, r *http.Request) {
	session := h.requireAuth(w, r)
	if session == nil {
		return
	}

	tip, err := h.engine.Tip(r.Context(), session)
	if err != nil {
		h.engineError(w, err, "coach unavailable")
		return
	}

	if !h.persistSession(w, r, session, "tip") {
		return
	}
	JSON(w, http.StatusOK, map[string]string{"tip": tip})
}

// Assess grades the transcript and returns the clamped scorecard.
func (h *Handler) Assess(w http.ResponseWriter, r *http.Request) {
	session := h.requireAuth(w, r)
	if session == nil {
		return
	}

	card, err := h.engine.Assess(r.Context(), session)
	if err != nil {
		h.engineError(w, err, "assessment unavailable")
		return
	}

	if !h.persistSession(w, r, session, "assess") {
		return
	}
	JSON(w, http.StatusOK, card)
}

// DownloadReport renders the after-action PDF for the current assessment.
func (h *Handler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	session := h.requireAuth(w, r)
	if session == nil {
		return
	}
	if session.LastAssessment == nil {
		Error(w, http.StatusConflict, "no assessment available")
		return
	}

	sc, err := h.catalog.Get(session.ScenarioID)
	if err != nil {
		Error(w, http.StatusConflict, "no active scenario")
		return
	}

	pdf, err := report.Render(sc.Title, sc.UserBrief, *session.LastAssessment, session.Transcript)
	if err != nil {
		slog.Error("Failed to render report", "error", err, "user_id", session.UserID)
		Error(w, http.StatusInternalServerError, "failed to render report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="AAR_Report.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	if _, err := w.Write(pdf); err != nil {
		slog.Warn("Failed to write report response", "error", err, "user_id", session.UserID)
	}
}

// ResetSession clears the transcript and active scenario, returning the
// session to idle. Authentication is kept.
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	session, err := h.loadSession(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to load session for reset", "error", err, "user_id", userID)
		Error(w, http.StatusInternalServerError, "failed to load session")
		return
	}

	session.Reset()
	slog.Info("Session reset", "user_id", userID)
	h.saveSession(w, r, session, "reset")
}

// requireAuth loads the session and enforces authentication when licensing
// is enabled. Writes the error response and returns nil on failure.
func (h *Handler) requireAuth(w http.ResponseWriter, r *http.Request) *domain.Session {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return nil
	}

	session, err := h.loadSession(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to load session", "error", err, "user_id", userID)
		Error(w, http.StatusInternalServerError, "failed to load session")
		return nil
	}

	if !session.Authenticated {
		Error(w, http.StatusUnauthorized, "license required")
		return nil
	}
	return session
}

// persistSession saves the session, writing a 500 on failure.
func (h *Handler) persistSession(w http.ResponseWriter, r *http.Request, session *domain.Session, op string) bool {
	if err := h.repo.SaveSession(r.Context(), session); err != nil {
		slog.Error("Failed to save session", "error", err, "user_id", session.UserID, "op", op)
		Error(w, http.StatusInternalServerError, "failed to save session")
		return false
	}
	return true
}

// saveSession persists and replies with the fresh session view.
func (h *Handler) saveSession(w http.ResponseWriter, r *http.Request, session *domain.Session, op string) {
	if err := h.repo.SaveSession(r.Context(), session); err != nil {
		slog.Error("Failed to save session", "error", err, "user_id", session.UserID, "op", op)
		Error(w, http.StatusInternalServerError, "failed to save session")
		return
	}
	JSON(w, http.StatusOK, h.sessionView(session))
}

// engineError maps engine failures onto HTTP responses. Upstream failures
// use the caller-supplied inline message; the session is never mutated on
// these paths.
func (h *Handler) engineError(w http.ResponseWriter, err error, unavailableMsg string) {
	switch {
	case errors.Is(err, sim.ErrNoScenario):
		Error(w, http.StatusConflict, "no active scenario")
	case errors.Is(err, catalog.ErrNotFound):
		// A persisted scenario reference can go stale when the catalog
		// changes on redeploy; a reset recovers.
		Error(w, http.StatusConflict, "scenario no longer available")
	case errors.Is(err, sim.ErrEmptyTranscript):
		Error(w, http.StatusBadRequest, "start negotiating first")
	case errors.Is(err, sim.ErrInsufficientData):
		Error(w, http.StatusBadRequest, "insufficient data: keep negotiating first")
	case errors.Is(err, llm.ErrUnavailable):
		slog.Warn("Completion service unavailable", "error", err)
		Error(w, http.StatusBadGateway, unavailableMsg)
	default:
		slog.Error("Engine failure", "error", err)
		Error(w, http.StatusInternalServerError, "internal error")
	}
}
