package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portal-ads/internal/adapter/analytics"
	"portal-ads/internal/adapter/http"
	"portal-ads/internal/adapter/memory"
	"portal-ads/internal/adapter/postgres"
	"portal-ads/internal/adapter/redis"
	"portal-ads/internal/adapter/usecase"
	"portal-ads/internal/config"
	"portal-ads/internal/core/popup"
	"portal-ads/internal/core/port"
	"portal-ads/internal/db"
)

// main is the entry point of the portal-ads service. It loads configuration,
// optionally runs database migrations and seeds demo data, wires the
// repositories and use cases, then starts the HTTP server. On receiving a
// termination signal it gracefully shuts down the server and flushes the
// pending ad events.
func main() {
	if err := run(); err != nil {
		slog.Error("fatal", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	out, closer := cfg.Log.Writer()
	defer closer.Close()
	logger := cfg.Log.New(out).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	loc, err := cfg.Ads.Location()
	if err != nil {
		return err
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	advertisers := postgres.NewAdvertiserRepository(pool, loc)
	news := postgres.NewContentRepository(pool)

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, advertisers, news, time.Now().In(loc)); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded")
	}

	var seen port.SeenStore
	if cfg.Redis.Enabled {
		rc, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rc.Close()
		go redis.MonitorHealth(ctx, rc, 30*time.Second, logger)
		seen = redis.NewSeenStore(rc)
		logger.Info("redis connected", slog.Int("db", rc.Options().DB))
	} else {
		store := memory.NewSeenStore()
		go store.RunSweeper(ctx, time.Minute)
		seen = store
	}

	recorder := analytics.NewRecorder(advertisers, cfg.Ads.EventBuffer, logger)
	// stopped only after the server, so requests drained by Shutdown still count
	recorderCtx, stopRecorder := context.WithCancel(context.Background())
	recorderDone := make(chan struct{})
	go func() {
		recorder.Run(recorderCtx)
		close(recorderDone)
	}()

	ads := usecase.NewAdUseCase(advertisers, recorder,
		usecase.WithLogger(logger),
		usecase.WithLocation(loc),
		usecase.WithAutoDeactivate(cfg.Ads.AutoDeactivate))
	popups := usecase.NewPopupUseCase(advertisers, popup.NewNormalizer(),
		usecase.WithSeenStore(seen, cfg.Popup.PopupFrequency(), cfg.Popup.SessionTTL),
		usecase.WithPopupClock(time.Now, loc),
		usecase.WithPopupLogger(logger))
	content := usecase.NewContentUseCase(news)

	handler := httpadapter.NewHandler(ads, popups, content, logger, cfg.HTTP.MaxBodyBytes)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err = <-serveErr:
		stop()
		if err != nil {
			logger.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	stopRecorder()
	<-recorderDone
	return err
}
