// Package api serves the volcano catalog and per-year activity frames over
// HTTP, so browser or remote renderers can drive the animation against the
// same core model as the terminal UI.
package api

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/delorianv/volcano-eruptions/internal/config"
	"github.com/delorianv/volcano-eruptions/internal/dataset"
	"github.com/delorianv/volcano-eruptions/internal/logging"
)

// Server implements the HTTP API over a loaded collection.
type Server struct {
	mu      sync.RWMutex
	col     *dataset.Collection
	cfg     *config.Config
	logger  *logging.Logger
	metrics *metrics
}

// NewServer creates an API server over the collection.
func NewServer(col *dataset.Collection, cfg *config.Config, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.Nop()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := &Server{
		col:     col,
		cfg:     cfg,
		logger:  logger,
		metrics: newMetrics(),
	}
	s.metrics.datasetRecords.Set(float64(col.Len()))
	return s
}

// ReplaceCollection swaps in a freshly loaded dataset, used by the file
// watcher reload.
func (s *Server) ReplaceCollection(col *dataset.Collection) {
	s.mu.Lock()
	s.col = col
	s.mu.Unlock()
	s.metrics.datasetRecords.Set(float64(col.Len()))
	s.metrics.datasetReloads.Inc()
	s.logger.Info("api", "dataset reloaded", logging.F("records", col.Len()))
}

func (s *Server) collection() *dataset.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.col
}

// Handler returns the HTTP handler with middleware and all routes mounted.
func (s *Server) Handler() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	r.Mount("/api/v1", s.apiRouter())

	return r
}

func (s *Server) apiRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.SetHeader("Content-Type", "application/json"))

	r.Get("/volcanoes", s.handleVolcanoes)
	r.Get("/frame/{year}", s.handleFrame)
	r.Get("/range", s.handleRange)
	r.Get("/stats", s.handleStats)

	return r
}
