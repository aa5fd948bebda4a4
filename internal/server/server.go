// Package server implements the HTTP binding layer for the news gateway:
// route definitions, query validation, and the mapping of core results and
// errors to transport responses. The caching core itself lives in pkg/news.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/haythemd/news-assignment/pkg/logging"
	"github.com/haythemd/news-assignment/pkg/news"
)

// Version is the gateway version reported on the root endpoint.
const Version = "0.0.1"

// Author is the service author reported on the root endpoint.
const Author = "Haythem DRIHMI"

// Server holds the handler dependencies.
type Server struct {
	service          *news.Service
	apiKeyConfigured bool
	logger           zerolog.Logger
}

// New creates an http.Handler with all routes and middleware wired.
func New(service *news.Service, apiKeyConfigured bool) http.Handler {
	s := &Server{
		service:          service,
		apiKeyConfigured: apiKeyConfigured,
		logger:           logging.NewLogger("server"),
	}

	r := chi.NewRouter()

	r.Use(s.recovery)
	r.Use(s.requestLogger)
	r.Use(cors)

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/news", func(r chi.Router) {
		r.Get("/headlines", s.handleHeadlines)
		r.Get("/search", s.handleSearch)
		r.Get("/title/{title}", s.handleFindByTitle)
		r.Get("/author/{author}", s.handleFindByAuthor)
		r.Get("/cache/stats", s.handleCacheStats)
		r.Delete("/cache", s.handleClearCache)
	})

	return r
}
