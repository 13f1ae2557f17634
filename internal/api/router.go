// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires every API endpoint onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Question bank
	mux.HandleFunc("GET /api/questions", h.getQuestions)

	// Session lifecycle
	mux.HandleFunc("POST /api/session/practice", h.startPractice)
	mux.HandleFunc("POST /api/session/bookmarks", h.startBookmarks)
	mux.HandleFunc("POST /api/session/exam", h.startExam)
	mux.HandleFunc("GET /api/session", h.getSession)
	mux.HandleFunc("POST /api/session/exit", h.exitSession)

	// In-session operations
	mux.HandleFunc("POST /api/session/navigate", h.navigate)
	mux.HandleFunc("POST /api/session/jump", h.jump)
	mux.HandleFunc("POST /api/session/select", h.selectOption)
	mux.HandleFunc("POST /api/session/check", h.toggleCheck)
	mux.HandleFunc("POST /api/session/bookmark", h.toggleBookmark)

	// Scoring
	mux.HandleFunc("POST /api/session/submit", h.submit)
	mux.HandleFunc("GET /api/session/result", h.getResult)
	mux.HandleFunc("GET /api/session/result/export", h.exportResult)
}
