// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/psd1-practice-tool/backend/internal/bank"
	"github.com/psd1-practice-tool/backend/internal/domain/session"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	bank    *bank.Store
	session *session.Controller
	logger  *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(b *bank.Store, c *session.Controller, logger *slog.Logger) *Handler {
	return &Handler{
		bank:    b,
		session: c,
		logger:  logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with a human-readable message.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body into v. Returns false after writing
// a 400 response if the body is not valid JSON (caller should return).
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// handleSessionError maps controller errors to HTTP responses. Returns
// true if an error was handled (caller should return).
func (h *Handler) handleSessionError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, session.ErrInvalidJump),
		errors.Is(err, session.ErrInvalidOption),
		errors.Is(err, session.ErrUnknownQuestion):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrNoSession),
		errors.Is(err, session.ErrNoBookmarks),
		errors.Is(err, session.ErrNoResult),
		errors.Is(err, session.ErrNotExam),
		errors.Is(err, session.ErrNotPractice),
		errors.Is(err, session.ErrConfirmationRequired):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrNoQuestions):
		respondError(w, http.StatusInternalServerError, err.Error())
	default:
		h.logger.Error("session error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
