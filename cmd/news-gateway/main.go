package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/haythemd/news-assignment/internal/config"
	"github.com/haythemd/news-assignment/internal/server"
	"github.com/haythemd/news-assignment/pkg/cache"
	"github.com/haythemd/news-assignment/pkg/client"
	"github.com/haythemd/news-assignment/pkg/logging"
	"github.com/haythemd/news-assignment/pkg/news"
)

func main() {
	cfg := config.Load()

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.Log.Level),
		Pretty: cfg.Log.Pretty,
		Output: os.Stderr,
	})

	if cfg.Upstream.APIKey == "" {
		logger.Warn().Msg("GNEWS_API_KEY not found in environment variables")
	}

	upstream := client.New(client.Config{
		BaseURL: cfg.Upstream.BaseURL,
		APIKey:  cfg.Upstream.APIKey,
		Timeout: cfg.Upstream.Timeout,
	})

	store := cache.NewStore[news.Result](cfg.Cache.MaxSize, cfg.Cache.TTL)
	stats := cache.NewStats()
	service := news.NewService(store, stats, upstream, logging.NewLogger("news"))

	handler := server.New(service, cfg.Upstream.APIKey != "")

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().
			Str("addr", srv.Addr).
			Str("base_url", cfg.Upstream.BaseURL).
			Int("cache_max_size", cfg.Cache.MaxSize).
			Dur("cache_ttl", cfg.Cache.TTL).
			Msg("Starting news gateway")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
