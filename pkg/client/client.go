// Package client provides the HTTP client for the upstream news API. It owns
// the network boundary: credential injection, request timeouts, and the
// translation of transport and HTTP failures into the gateway's error kinds.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/haythemd/news-assignment/pkg/news"
)

// Prometheus metrics for upstream news API calls.
var (
	upstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "news_upstream_requests_total",
		Help: "Total upstream news API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	upstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "news_upstream_request_duration_seconds",
		Help:    "Upstream news API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
	}, []string{"endpoint"})

	upstreamErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "news_upstream_errors_total",
		Help: "Total upstream news API errors by kind",
	}, []string{"kind"})
)

const (
	// DefaultBaseURL is the production news API base URL.
	DefaultBaseURL = "https://gnews.io/api/v4"

	// DefaultTimeout bounds a single upstream request.
	DefaultTimeout = 30 * time.Second
)

// Config holds the client configuration. BaseURL, APIKey and Timeout are set
// once at startup and treated as immutable for the process lifetime.
type Config struct {
	// BaseURL is the upstream API root (no trailing slash).
	BaseURL string

	// APIKey is the upstream credential. It is appended to outgoing requests
	// at call time only and never enters cache keys or cached values.
	APIKey string

	// Timeout bounds a single request including body read.
	Timeout time.Duration
}

// DefaultConfig returns a configuration with production defaults.
func DefaultConfig(apiKey string) Config {
	return Config{
		BaseURL: DefaultBaseURL,
		APIKey:  apiKey,
		Timeout: DefaultTimeout,
	}
}

// Client performs GET requests against the upstream news API. There is no
// retry logic: a single failure is surfaced immediately.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     zerolog.Logger
}

// New creates a news API client. A missing API key is logged as a warning but
// does not prevent construction; subsequent calls will fail upstream.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	logger := log.With().Str("component", "upstream-client").Logger()
	if cfg.APIKey == "" {
		logger.Warn().Msg("News API key is not configured - upstream calls will fail")
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// errorBody is the upstream non-2xx response body.
type errorBody struct {
	Message string `json:"message"`
}

// Fetch performs GET {baseURL}/{endpoint}?{params}&apikey={credential} and
// decodes the article payload. Failures map to the three error kinds:
// *NetworkError for transport failures and timeouts, *UpstreamError for
// non-2xx statuses, *RequestError for anything else.
func (c *Client) Fetch(ctx context.Context, endpoint string, params map[string]string) (*news.Result, error) {
	startTime := time.Now()
	defer func() {
		upstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	query := url.Values{}
	for name, value := range params {
		query.Set(name, value)
	}
	query.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", c.baseURL, endpoint), nil)
	if err != nil {
		upstreamErrorsTotal.WithLabelValues("request").Inc()
		return nil, &RequestError{Err: err}
	}
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("Upstream request failed")
		upstreamErrorsTotal.WithLabelValues("network").Inc()
		upstreamRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	upstreamRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := "Unknown error"
		var body errorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&body); decodeErr == nil && body.Message != "" {
			message = body.Message
		}

		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Str("message", message).
			Msg("Upstream returned error status")
		upstreamErrorsTotal.WithLabelValues("upstream").Inc()
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: message}
	}

	var result news.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		upstreamErrorsTotal.WithLabelValues("request").Inc()
		return nil, &RequestError{Err: fmt.Errorf("decode response: %w", err)}
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("total_articles", result.TotalArticles).
		Msg("Upstream request succeeded")

	return &result, nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
