package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	docs "stockscreener/docs"
	"stockscreener/internal/application/service/screener"
	"stockscreener/internal/config"
	"stockscreener/internal/infrastructure/eastmoney"
	infrahttp "stockscreener/internal/interfaces/http"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()

	source := eastmoney.NewClient(eastmoney.Config{
		ListURL:       cfg.Upstream.ListURL,
		DetailURL:     cfg.Upstream.DetailURL,
		Token:         cfg.Upstream.Token,
		SegmentFilter: cfg.Upstream.SegmentFilter,
		Timeout:       cfg.Upstream.Timeout(),
	}, logger)

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	service := screener.NewService(source, logger)

	defaults := screener.DefaultParams()
	defaults.Concurrency = cfg.Screen.Concurrency
	defaults.PageSize = cfg.Screen.PageSize

	handler := infrahttp.NewHandler(service, defaults, logger, infrahttp.Options{
		Cache:          redisClient,
		CacheTTL:       cfg.Cache.TTL(),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	server := &http.Server{
		Addr:    cfg.HTTP.Addr(),
		Handler: handler,
	}

	go func() {
		logger.Infof("HTTP server listening on %s", cfg.HTTP.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("http server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown error: %v", err)
	}
	logger.Info("server stopped")
}
