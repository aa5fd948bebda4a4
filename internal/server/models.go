package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/haythemd/news-assignment/pkg/news"
)

// articlesResponse is the envelope for all article-returning endpoints.
type articlesResponse struct {
	Success       bool           `json:"success"`
	FromCache     bool           `json:"from_cache"`
	Timestamp     time.Time      `json:"timestamp"`
	TotalArticles int            `json:"totalArticles"`
	Articles      []news.Article `json:"articles"`
}

func newArticlesResponse(result *news.Result) articlesResponse {
	articles := result.Articles
	if articles == nil {
		articles = []news.Article{}
	}
	return articlesResponse{
		Success:       true,
		FromCache:     result.FromCache,
		Timestamp:     time.Now(),
		TotalArticles: result.TotalArticles,
		Articles:      articles,
	}
}

// infoResponse is the root endpoint payload.
type infoResponse struct {
	Message       string `json:"message"`
	Documentation string `json:"documentation"`
	HealthCheck   string `json:"health_check"`
	Version       string `json:"version"`
	Author        string `json:"author"`
}

// healthResponse is the health endpoint payload.
type healthResponse struct {
	Status           string    `json:"status"`
	Timestamp        time.Time `json:"timestamp"`
	CacheKeys        int       `json:"cache_keys"`
	APIKeyConfigured bool      `json:"api_key_configured"`
}

// messageResponse is used for operations without a data payload.
type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// errorResponse is the envelope for all error replies.
type errorResponse struct {
	Success        bool   `json:"success"`
	Error          string `json:"error"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
