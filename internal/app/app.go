// Package app wires the storefront server: storage, events, stores, catalog,
// advisor, and the HTTP surface, with graceful shutdown.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/advisor"
	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/catalog"
	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/config"
	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/event"
	handler "github.com/Nwachukwuchinedu/Creative-Stitches/internal/handler/http"
	redisrepo "github.com/Nwachukwuchinedu/Creative-Stitches/internal/repository/redis"
	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/store"
	"github.com/Nwachukwuchinedu/Creative-Stitches/pkg/health"
	pkgkafka "github.com/Nwachukwuchinedu/Creative-Stitches/pkg/kafka"
	"github.com/Nwachukwuchinedu/Creative-Stitches/pkg/middleware"
)

// App holds the wired server and the resources it owns.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	server   *http.Server
	redis    *redis.Client
	producer *pkgkafka.Producer
}

// New wires the application from config. It verifies the Redis connection
// eagerly; Kafka is optional and only dialed when events are enabled.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	var producer *pkgkafka.Producer
	var events *event.Producer
	if cfg.EventsEnabled {
		producer = pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
		events = event.NewProducer(producer, logger)
	}

	repo := redisrepo.NewStateRepository(redisClient, cfg.StateTTL)
	stores := store.NewManager(repo, events, logger)

	healthHandler := health.NewHandler()
	healthHandler.Register("redis", func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})
	if producer != nil {
		healthHandler.Register("kafka", producer.Ping)
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSAllowedOrigins
	corsCfg.Environment = cfg.Environment

	router := handler.NewRouter(handler.RouterConfig{
		Stores:      stores,
		Catalog:     catalog.NewProvider(),
		Advisor:     advisor.New(cfg.AdvisorURL, cfg.AdvisorTimeout, logger),
		Health:      healthHandler,
		Logger:      logger,
		CORS:        corsCfg,
		Environment: cfg.Environment,
	})

	return &App{
		cfg:    cfg,
		logger: logger,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		redis:    redisClient,
		producer: producer,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("storefront server listening",
			slog.String("addr", a.server.Addr),
			slog.String("environment", a.cfg.Environment),
		)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http shutdown failed", slog.String("error", err.Error()))
	}

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Error("kafka producer close failed", slog.String("error", err.Error()))
		}
	}

	if err := a.redis.Close(); err != nil {
		a.logger.Error("redis close failed", slog.String("error", err.Error()))
	}

	return nil
}
