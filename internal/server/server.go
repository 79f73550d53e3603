// Package server exposes the bookmark store over a REST-style JSON API.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/startdeck/startdeck/internal/model"
	"github.com/startdeck/startdeck/internal/storage"
)

// Server serves the store over HTTP. All handlers take s.mu, so a request
// sees a consistent store and mutations persist atomically.
type Server struct {
	mu           sync.Mutex
	store        *model.Store
	storage      storage.Storage
	settings     *storage.Settings
	settingsPath string
	logger       *log.Logger
	router       chi.Router
}

// Params holds dependencies for New.
type Params struct {
	Store        *model.Store
	Storage      storage.Storage
	Settings     *storage.Settings
	SettingsPath string
	Logger       *log.Logger
}

func New(params Params) *Server {
	logger := params.Logger
	if logger == nil {
		logger = log.Default()
	}
	settings := params.Settings
	if settings == nil {
		defaults := storage.DefaultSettings()
		settings = &defaults
	}

	s := &Server{
		store:        params.Store,
		storage:      params.Storage,
		settings:     settings,
		settingsPath: params.SettingsPath,
		logger:       logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/bookmarks", s.handleListBookmarks)
		r.Post("/bookmarks", s.handleCreateBookmark)
		r.Put("/bookmarks/{id}", s.handleUpdateBookmark)
		r.Delete("/bookmarks/{id}", s.handleDeleteBookmark)

		r.Get("/categories", s.handleListCategories)
		r.Post("/categories", s.handleCreateCategory)
		r.Put("/categories/{id}", s.handleUpdateCategory)
		r.Delete("/categories/{id}", s.handleDeleteCategory)
		r.Put("/categories/{id}/order", s.handleBookmarkOrder)

		r.Get("/pages", s.handleListPages)
		r.Post("/pages", s.handleCreatePage)
		r.Put("/pages/order", s.handlePageOrder)
		r.Put("/pages/{id}/order", s.handleCategoryOrder)

		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handlePutSettings)
	})

	s.router = r
	return s
}

// Handler returns the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

// persist writes the store through the configured backend. Callers hold s.mu.
func (s *Server) persist() error {
	if s.storage == nil {
		return nil
	}
	return s.storage.Save(s.store)
}
