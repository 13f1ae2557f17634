package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/psd1-practice-tool/backend/internal/domain/scoring"
)

// ── Request / Response types ────────────────────────────────────────────────

type ResultExport struct {
	Version    string         `json:"version"`
	ExportedAt string         `json:"exported_at"`
	Result     scoring.Result `json:"result"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getResult returns the computed exam result. The failed_only filter is a
// projection over the cached per-question results; nothing is re-scored.
// @Summary      Get the exam result
// @Tags         Results
// @Produce      json
// @Param        failed_only  query     bool  false  "Only include incorrectly answered questions"
// @Success      200          {object}  scoring.Result
// @Failure      409          {object}  map[string]string  "no exam result available"
// @Router       /api/session/result [get]
func (h *Handler) getResult(w http.ResponseWriter, r *http.Request) {
	result, err := h.session.Result()
	if h.handleSessionError(w, err) {
		return
	}

	if r.URL.Query().Get("failed_only") == "true" {
		result.PerQuestion = scoring.FailedOnly(result.PerQuestion)
	}

	respondJSON(w, http.StatusOK, result)
}

// exportResult downloads the full exam result as a JSON attachment.
// @Summary      Export the exam result
// @Tags         Results
// @Produce      json
// @Success      200  {object}  ResultExport
// @Failure      409  {object}  map[string]string  "no exam result available"
// @Router       /api/session/result/export [get]
func (h *Handler) exportResult(w http.ResponseWriter, r *http.Request) {
	result, err := h.session.Result()
	if h.handleSessionError(w, err) {
		return
	}

	exportData := ResultExport{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Result:     result,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=exam-result.json")
	json.NewEncoder(w).Encode(exportData)
}
