package server

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/haythemd/news-assignment/pkg/client"
)

// Query defaults mirroring the public API contract.
const (
	defaultCount    = 10
	defaultCountry  = "us"
	defaultLanguage = "en"
	defaultSort     = "relevance"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, infoResponse{
		Message:       "Welcome to News API Service",
		Documentation: "/metrics",
		HealthCheck:   "/health",
		Version:       Version,
		Author:        Author,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := s.service.CacheStats()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:           "healthy",
		Timestamp:        time.Now(),
		CacheKeys:        stats.Keys,
		APIKeyConfigured: s.apiKeyConfigured,
	})
}

func (s *Server) handleHeadlines(w http.ResponseWriter, r *http.Request) {
	count, ok := s.queryCount(w, r)
	if !ok {
		return
	}
	country := queryDefault(r, "country", defaultCountry)
	language := queryDefault(r, "language", defaultLanguage)
	category := r.URL.Query().Get("category")

	result, err := s.service.GetTopHeadlines(r.Context(), count, language, country, category)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newArticlesResponse(result))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "q is required")
		return
	}
	count, ok := s.queryCount(w, r)
	if !ok {
		return
	}
	language := queryDefault(r, "language", defaultLanguage)
	country := queryDefault(r, "country", defaultCountry)
	sortBy := queryDefault(r, "sort_by", defaultSort)

	result, err := s.service.SearchArticles(r.Context(), query, count, language, country, sortBy)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newArticlesResponse(result))
}

func (s *Server) handleFindByTitle(w http.ResponseWriter, r *http.Request) {
	title := pathParam(r, "title")
	if title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	exact := false
	if raw := r.URL.Query().Get("exact"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "exact must be a boolean")
			return
		}
		exact = parsed
	}

	result, err := s.service.FindByTitle(r.Context(), title, exact)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newArticlesResponse(result))
}

func (s *Server) handleFindByAuthor(w http.ResponseWriter, r *http.Request) {
	author := pathParam(r, "author")
	if author == "" {
		writeError(w, http.StatusBadRequest, "author is required")
		return
	}
	count, ok := s.queryCount(w, r)
	if !ok {
		return
	}

	result, err := s.service.FindByAuthor(r.Context(), author, count)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newArticlesResponse(result))
}

func (s *Server) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.CacheStats())
}

func (s *Server) handleClearCache(w http.ResponseWriter, r *http.Request) {
	s.service.ClearCache()
	writeJSON(w, http.StatusOK, messageResponse{
		Success: true,
		Message: "Cache cleared successfully",
	})
}

// queryCount parses and validates the count query parameter (1-100). On
// failure it writes a 400 response and returns ok=false.
func (s *Server) queryCount(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("count")
	if raw == "" {
		return defaultCount, true
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 1 || count > 100 {
		writeError(w, http.StatusBadRequest, "count must be between 1 and 100")
		return 0, false
	}
	return count, true
}

// writeServiceError maps core error kinds to transport status codes:
// upstream rejections become 502, unreachable/timeout becomes 504, anything
// else is a 500.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	var upstreamErr *client.UpstreamError
	var networkErr *client.NetworkError

	switch {
	case errors.As(err, &upstreamErr):
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:          upstreamErr.Message,
			UpstreamStatus: upstreamErr.StatusCode,
		})
	case errors.As(err, &networkErr):
		writeError(w, http.StatusGatewayTimeout, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func queryDefault(r *http.Request, name, fallback string) string {
	if value := r.URL.Query().Get(name); value != "" {
		return value
	}
	return fallback
}

// pathParam returns the named chi route parameter, percent-decoded.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
