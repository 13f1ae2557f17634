package main

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/psd1-practice-tool/backend/internal/api"
	"github.com/psd1-practice-tool/backend/internal/bank"
	"github.com/psd1-practice-tool/backend/internal/domain/bookmark"
	"github.com/psd1-practice-tool/backend/internal/domain/session"
	"github.com/psd1-practice-tool/backend/internal/infrastructure/config"
	"github.com/psd1-practice-tool/backend/internal/store"

	_ "github.com/psd1-practice-tool/backend/docs" // generated swagger docs
)

// @title           PSD1 Practice Tool API
// @version         1.0
// @description     Self-test practice tool — practice the question bank with instant feedback, review bookmarks, or take a timed 80-question exam.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	questionBank := bank.NewStore(cfg.ReadmePath, cfg.CachePath, logger)
	if err := questionBank.Load(); err != nil {
		logger.Error("failed to load question bank", "error", err)
		os.Exit(1)
	}

	bookmarks := bookmark.Load(db, logger)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	controller := session.New(questionBank, db, bookmarks, rng, session.DefaultConfig(), logger)
	handler := api.NewHandler(questionBank, controller, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Static frontend and question images
	mux.Handle("GET /images/", cached("public, max-age=86400",
		http.StripPrefix("/images/", http.FileServer(http.Dir(cfg.ImagesDir)))))
	mux.Handle("GET /", cached("public, max-age=3600",
		http.FileServer(http.Dir(cfg.PublicDir))))

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

// cached sets a Cache-Control header on static asset responses.
func cached(policy string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", policy)
		next.ServeHTTP(w, r)
	})
}
