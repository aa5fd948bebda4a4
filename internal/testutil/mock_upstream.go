// Package testutil provides testing utilities for the news gateway.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/haythemd/news-assignment/pkg/news"
)

// MockUpstream is a configurable mock news API server for testing.
type MockUpstream struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]http.HandlerFunc

	// Tracking
	requestCount int
	lastQuery    url.Values
}

// NewMockUpstream creates a new mock news API server. Paths without a custom
// handler answer with an empty article list.
func NewMockUpstream() *MockUpstream {
	mock := &MockUpstream{
		handlers: make(map[string]http.HandlerFunc),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.requestCount++
		mock.lastQuery = r.URL.Query()
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		mock.defaultHandler(w, r)
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockUpstream) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockUpstream) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockUpstream) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount = 0
	m.lastQuery = nil
}

// RequestCount returns the number of requests received so far.
func (m *MockUpstream) RequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requestCount
}

// LastQuery returns the query parameters of the most recent request.
func (m *MockUpstream) LastQuery() url.Values {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastQuery
}

// SetHandler installs a custom handler for the given path.
func (m *MockUpstream) SetHandler(path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetArticles makes the given path answer with the given articles.
func (m *MockUpstream) SetArticles(path string, articles ...news.Article) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		writeResult(w, articles)
	})
}

// SetError makes the given path answer with an HTTP error status and a raw
// body (upstream error bodies are JSON like {"message":"..."} but tests may
// install invalid bodies on purpose).
func (m *MockUpstream) SetError(path string, status int, body string) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// defaultHandler answers any untracked path with an empty article list.
func (m *MockUpstream) defaultHandler(w http.ResponseWriter, _ *http.Request) {
	writeResult(w, nil)
}

func writeResult(w http.ResponseWriter, articles []news.Article) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(news.Result{
		TotalArticles: len(articles),
		Articles:      articles,
	})
}

// Articles builds a list of articles with the given titles, each attributed
// to the given source name. Convenience for filter tests.
func Articles(source string, titles ...string) []news.Article {
	articles := make([]news.Article, 0, len(titles))
	for _, title := range titles {
		articles = append(articles, news.Article{
			Title:       title,
			URL:         "https://example.com/" + url.PathEscape(title),
			PublishedAt: "2024-01-01T00:00:00Z",
			Source:      map[string]any{"name": source},
		})
	}
	return articles
}
