package api

import (
	"net/http"
)

// getQuestions returns the loaded question bank.
// @Summary      Get all questions
// @Description  Returns the full question bank. Pass force=true to re-parse the README source and rewrite the cache.
// @Tags         Questions
// @Produce      json
// @Param        force  query     bool  false  "Force a re-parse of the source"
// @Success      200    {array}   question.Question
// @Failure      500    {object}  map[string]string
// @Router       /api/questions [get]
func (h *Handler) getQuestions(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("force") == "true" {
		questions, err := h.bank.Refresh()
		if err != nil {
			h.logger.Error("failed to refresh questions", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to reload questions: "+err.Error())
			return
		}
		w.Header().Set("Cache-Control", "no-store")
		respondJSON(w, http.StatusOK, questions)
		return
	}

	questions := h.bank.GetAll()
	if len(questions) == 0 {
		respondError(w, http.StatusInternalServerError, "question bank is empty, reload with ?force=true")
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	respondJSON(w, http.StatusOK, questions)
}
