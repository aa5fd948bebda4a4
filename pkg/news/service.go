package news

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/haythemd/news-assignment/pkg/cache"
)

// Upstream endpoint names.
const (
	endpointHeadlines = "top-headlines"
	endpointSearch    = "search"
)

// Defaults applied when an operation does not take the value as input.
const (
	defaultLanguage = "en"
	defaultCountry  = "us"
	defaultSort     = "relevance"

	// maxUpstreamResults is the upstream per-request article limit.
	maxUpstreamResults = 100
)

// Service orchestrates news operations: parameter building, cache lookup,
// upstream fetch on miss, and local post-filtering. One instance is
// constructed at process start and shared by all requests.
type Service struct {
	store   *cache.Store[Result]
	stats   *cache.Stats
	fetcher Fetcher
	logger  zerolog.Logger
}

// NewService creates the orchestrator around an existing store, stats tracker
// and upstream fetcher.
func NewService(store *cache.Store[Result], stats *cache.Stats, fetcher Fetcher, logger zerolog.Logger) *Service {
	return &Service{
		store:   store,
		stats:   stats,
		fetcher: fetcher,
		logger:  logger,
	}
}

// cachedFetch is the single cached-call primitive all operations funnel
// through. Errors from the fetcher propagate unmodified; a failed call is
// never cached and does not count as a hit or a miss.
func (s *Service) cachedFetch(ctx context.Context, endpoint string, params map[string]string) (*Result, error) {
	key := cache.Key(endpoint, params)

	if cached, ok := s.store.Get(key); ok {
		s.stats.RecordHit()
		s.logger.Debug().Str("endpoint", endpoint).Str("key", key).Msg("Cache hit")
		cached.FromCache = true
		return &cached, nil
	}

	result, err := s.fetcher.Fetch(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	s.store.Set(key, *result)
	s.stats.RecordMiss()
	s.logger.Debug().Str("endpoint", endpoint).Str("key", key).Msg("Cache miss - stored upstream response")

	out := *result
	out.FromCache = false
	return &out, nil
}

// GetTopHeadlines fetches up to count top headlines for the given language
// and country. Category is optional; when empty it is omitted from the
// upstream request rather than sent blank.
func (s *Service) GetTopHeadlines(ctx context.Context, count int, language, country, category string) (*Result, error) {
	params := map[string]string{
		"max":     strconv.Itoa(min(count, maxUpstreamResults)),
		"country": country,
		"lang":    language,
	}
	if category != "" {
		params["category"] = category
	}

	return s.cachedFetch(ctx, endpointHeadlines, params)
}

// SearchArticles searches articles by keyword query.
func (s *Service) SearchArticles(ctx context.Context, query string, count int, language, country, sortBy string) (*Result, error) {
	params := map[string]string{
		"q":       query,
		"max":     strconv.Itoa(min(count, maxUpstreamResults)),
		"lang":    language,
		"country": country,
		"sortby":  sortBy,
	}

	return s.cachedFetch(ctx, endpointSearch, params)
}

// FindByTitle searches for articles by title. When exact is true the query is
// quoted to force upstream phrase matching and results must match the title
// case-insensitively in full; otherwise a case-insensitive substring match on
// the title is applied. The filter runs after the cache step, so repeated
// title lookups reuse the cached broad search.
func (s *Service) FindByTitle(ctx context.Context, title string, exact bool) (*Result, error) {
	query := title
	if exact {
		query = `"` + title + `"`
	}

	result, err := s.SearchArticles(ctx, query, 50, defaultLanguage, defaultCountry, defaultSort)
	if err != nil {
		return nil, err
	}

	want := strings.ToLower(title)
	filtered := make([]Article, 0, len(result.Articles))
	for _, article := range result.Articles {
		got := strings.ToLower(article.Title)
		match := got == want
		if !exact {
			match = strings.Contains(got, want)
		}
		if match {
			filtered = append(filtered, article)
		}
	}

	result.Articles = filtered
	result.TotalArticles = len(filtered)
	return result, nil
}

// FindByAuthor searches for articles whose source name contains author
// (case-insensitive), returning at most count matches in their original
// order. Articles without a source name are excluded.
func (s *Service) FindByAuthor(ctx context.Context, author string, count int) (*Result, error) {
	result, err := s.SearchArticles(ctx, author, maxUpstreamResults, defaultLanguage, defaultCountry, defaultSort)
	if err != nil {
		return nil, err
	}

	want := strings.ToLower(author)
	filtered := make([]Article, 0, count)
	for _, article := range result.Articles {
		name := article.SourceName()
		if name == "" || !strings.Contains(strings.ToLower(name), want) {
			continue
		}
		filtered = append(filtered, article)
		if len(filtered) >= count {
			break
		}
	}

	result.Articles = filtered
	result.TotalArticles = len(filtered)
	return result, nil
}

// CacheStats reports current cache occupancy and hit/miss counters.
func (s *Service) CacheStats() cache.Snapshot {
	return s.stats.Snapshot(s.store.Size())
}

// ClearCache removes all cached entries and resets the hit/miss counters.
func (s *Service) ClearCache() {
	s.store.Clear()
	s.stats.Reset()
	s.logger.Info().Msg("Cache cleared")
}
