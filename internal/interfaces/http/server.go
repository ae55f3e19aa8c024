package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/application"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/config"
)

// Renderer produces one dashboard view per request.
type Renderer interface {
	Render(ctx context.Context) (*application.View, error)
}

// Server is the read-only dashboard HTTP server.
type Server struct {
	router   *mux.Router
	server   *http.Server
	handlers *Handlers
}

// NewServer wires routes and middleware around a renderer. The
// metrics handler is injected so the server does not depend on the
// metrics registry directly.
func NewServer(cfg config.ServerConfig, renderer Renderer, metricsHandler http.Handler) *Server {
	router := mux.NewRouter()

	s := &Server{
		router:   router,
		handlers: NewHandlers(renderer),
	}

	router.Use(s.requestIDMiddleware)
	router.Use(s.loggingMiddleware)
	router.Use(s.corsMiddleware)

	router.HandleFunc("/", s.handlers.Page).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handlers.Health).Methods(http.MethodGet)
	router.HandleFunc("/api/dashboard", s.handlers.Dashboard).Methods(http.MethodGet)
	if metricsHandler != nil {
		router.Handle("/metrics", metricsHandler).Methods(http.MethodGet)
	}
	router.NotFoundHandler = http.HandlerFunc(s.handlers.NotFound)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
		IdleTimeout:  cfg.IdleTimeout(),
	}

	return s
}

// Router exposes the handler tree for tests.
func (s *Server) Router() http.Handler { return s.router }

// Start blocks serving requests until Shutdown.
func (s *Server) Start() error {
	log.Info().Str("addr", s.server.Addr).Msg("dashboard server listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", w.Header().Get("X-Request-ID")).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
