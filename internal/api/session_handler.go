package api

import (
	"net/http"
)

// ── Request / Response types ────────────────────────────────────────────────

type NavigateRequest struct {
	Delta int `json:"delta"`
}

type JumpRequest struct {
	Number int `json:"number"` // 1-based question number
}

type SelectRequest struct {
	QuestionID  int `json:"question_id"`
	OptionIndex int `json:"option_index"` // original index, not shuffled position
}

type QuestionIDRequest struct {
	QuestionID int `json:"question_id"`
}

type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}

type BookmarkResponse struct {
	QuestionID int  `json:"question_id"`
	Bookmarked bool `json:"bookmarked"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startPractice enters practice mode over the full bank.
// @Summary      Start practice mode
// @Tags         Session
// @Produce      json
// @Success      200  {object}  session.View
// @Failure      500  {object}  map[string]string
// @Router       /api/session/practice [post]
func (h *Handler) startPractice(w http.ResponseWriter, r *http.Request) {
	if h.handleSessionError(w, h.session.StartPractice()) {
		return
	}
	h.respondView(w)
}

// startBookmarks enters bookmark review mode.
// @Summary      Start bookmark review
// @Tags         Session
// @Produce      json
// @Success      200  {object}  session.View
// @Failure      409  {object}  map[string]string  "no questions bookmarked"
// @Router       /api/session/bookmarks [post]
func (h *Handler) startBookmarks(w http.ResponseWriter, r *http.Request) {
	if h.handleSessionError(w, h.session.StartBookmarkReview()) {
		return
	}
	h.respondView(w)
}

// startExam samples exam questions and starts the countdown.
// @Summary      Start a timed exam
// @Tags         Session
// @Produce      json
// @Success      200  {object}  session.View
// @Failure      500  {object}  map[string]string
// @Router       /api/session/exam [post]
func (h *Handler) startExam(w http.ResponseWriter, r *http.Request) {
	if h.handleSessionError(w, h.session.StartExam()) {
		return
	}
	h.respondView(w)
}

// getSession returns the current session view model.
// @Summary      Current session state
// @Tags         Session
// @Produce      json
// @Success      200  {object}  session.View
// @Failure      409  {object}  map[string]string  "no active session"
// @Router       /api/session [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	h.respondView(w)
}

// navigate moves the current position by a delta. Moves past either end
// are silently ignored, never errors.
// @Summary      Navigate by delta
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      NavigateRequest  true  "Navigation delta"
// @Success      200   {object}  session.View
// @Router       /api/session/navigate [post]
func (h *Handler) navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if h.handleSessionError(w, h.session.Navigate(req.Delta)) {
		return
	}
	h.respondView(w)
}

// jump moves to a 1-based question number.
// @Summary      Jump to question
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      JumpRequest  true  "1-based question number"
// @Success      200   {object}  session.View
// @Failure      400   {object}  map[string]string  "number out of range"
// @Router       /api/session/jump [post]
func (h *Handler) jump(w http.ResponseWriter, r *http.Request) {
	var req JumpRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if h.handleSessionError(w, h.session.JumpTo(req.Number)) {
		return
	}
	h.respondView(w)
}

// selectOption records an answer selection.
// @Summary      Select an option
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      SelectRequest  true  "Question and original option index"
// @Success      200   {object}  session.View
// @Failure      400   {object}  map[string]string
// @Router       /api/session/select [post]
func (h *Handler) selectOption(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if h.handleSessionError(w, h.session.Select(req.QuestionID, req.OptionIndex)) {
		return
	}
	h.respondView(w)
}

// toggleCheck reveals or hides per-option feedback for a question.
// @Summary      Toggle answer reveal
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      QuestionIDRequest  true  "Question to reveal"
// @Success      200   {object}  session.View
// @Failure      409   {object}  map[string]string  "not in practice mode"
// @Router       /api/session/check [post]
func (h *Handler) toggleCheck(w http.ResponseWriter, r *http.Request) {
	var req QuestionIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if h.handleSessionError(w, h.session.ToggleCheck(req.QuestionID)) {
		return
	}
	h.respondView(w)
}

// toggleBookmark flips bookmark membership for a question.
// @Summary      Toggle a bookmark
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        body  body      QuestionIDRequest  true  "Question to bookmark"
// @Success      200   {object}  BookmarkResponse
// @Router       /api/session/bookmark [post]
func (h *Handler) toggleBookmark(w http.ResponseWriter, r *http.Request) {
	var req QuestionIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	bookmarked := h.session.ToggleBookmark(req.QuestionID)
	respondJSON(w, http.StatusOK, BookmarkResponse{
		QuestionID: req.QuestionID,
		Bookmarked: bookmarked,
	})
}

// submit finishes the exam. Requires confirm=true because answers become
// immutable once scored.
// @Summary      Submit the exam
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      ConfirmRequest  true  "Must confirm submission"
// @Success      200   {object}  scoring.Result
// @Failure      409   {object}  map[string]string  "confirmation required"
// @Router       /api/session/submit [post]
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.session.Submit(req.Confirm)
	if h.handleSessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// exitSession leaves the current session. Exams require confirm=true
// since exiting discards all progress.
// @Summary      Exit the session
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      ConfirmRequest  true  "Confirmation (required in exam mode)"
// @Success      204   "session discarded"
// @Failure      409   {object}  map[string]string  "confirmation required"
// @Router       /api/session/exit [post]
func (h *Handler) exitSession(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if h.handleSessionError(w, h.session.Exit(req.Confirm)) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// respondView writes the current view model.
func (h *Handler) respondView(w http.ResponseWriter) {
	view, err := h.session.View()
	if h.handleSessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, view)
}
