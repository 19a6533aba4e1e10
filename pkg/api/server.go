// Package api exposes a read-only HTTP inspection service over a
// directory of QCSR container files. Authentication uses an X-API-Key
// header; metrics are served unprotected for scraping.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Server serves container file summaries over HTTP.
type Server struct {
	config  ServerConfig
	metrics *Metrics
	log     zerolog.Logger
}

// NewServer creates a server over the configured data directory.
func NewServer(config ServerConfig, metrics *Metrics, log zerolog.Logger) *Server {
	return &Server{config: config, metrics: metrics, log: log}
}

// Router builds the HTTP routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(instrument(s.metrics, s.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	// Prometheus endpoint stays unprotected for scraping.
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Use(apiKeyMiddleware(s.config.APIKey))
		r.Get("/files", s.handleListFiles)
		r.Get("/files/{name}", s.handleFileSummary)
		r.Get("/files/{name}/chunks", s.handleFileChunks)
	})

	return r
}

// Start runs the server until it fails or the process exits.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Bind, s.config.Port)
	s.log.Info().Str("addr", addr).Str("data_dir", s.config.DataDir).Msg("starting inspection server")

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}
