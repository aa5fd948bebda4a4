// Package news implements the request orchestration layer of the gateway:
// it builds upstream parameters per logical operation, funnels every call
// through the shared response cache, and applies local title/author filtering
// on top of the cached search results.
package news

import (
	"context"
)

// Article is an upstream article document. Fields are passed through without
// validation; only the source name is ever inspected (author filtering).
type Article struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Content     string         `json:"content,omitempty"`
	URL         string         `json:"url"`
	Image       string         `json:"image,omitempty"`
	PublishedAt string         `json:"publishedAt,omitempty"`
	Source      map[string]any `json:"source,omitempty"`
}

// SourceName returns the article's source name, or "" when the source block
// is missing or carries no name.
func (a Article) SourceName() string {
	name, _ := a.Source["name"].(string)
	return name
}

// Result is the outcome of one logical operation. FromCache is computed per
// call and never stored in the cache.
type Result struct {
	TotalArticles int       `json:"totalArticles"`
	Articles      []Article `json:"articles"`
	FromCache     bool      `json:"-"`
}

// Fetcher performs the upstream network call for one endpoint. Implemented by
// pkg/client; swapped for a stub in tests.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string, params map[string]string) (*Result, error)
}
