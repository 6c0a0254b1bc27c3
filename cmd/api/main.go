package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/martinborzani/Exercise-Tracker-fcc/internal/api"
	"github.com/martinborzani/Exercise-Tracker-fcc/internal/config"
	"github.com/martinborzani/Exercise-Tracker-fcc/internal/domain"
	"github.com/martinborzani/Exercise-Tracker-fcc/internal/middleware"
	"github.com/martinborzani/Exercise-Tracker-fcc/internal/store"
	httptransport "github.com/martinborzani/Exercise-Tracker-fcc/internal/transport/http"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	users := store.NewUserStore()
	exercises := store.NewExerciseStore()
	tracker := domain.NewTracker(users, exercises)

	handler := api.NewHandler(tracker)
	router := api.NewRouter(handler, cfg.PublicDir)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	limiterConfig := middleware.DefaultRateLimiterConfig()
	limiterConfig.Rate = rate.Limit(cfg.RateLimitPerSecond)
	limiterConfig.Burst = cfg.RateLimitBurst
	limiter := middleware.NewRateLimiter(limiterConfig)
	defer limiter.Stop()

	cors := middleware.NewCORSMiddleware(cfg.CORSAllowedOrigin)
	logging := middleware.NewLoggingMiddleware(logger)

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, cors(logging(limiter.Middleware()(mux))))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("exercise tracker listening", slog.String("address", cfg.HTTPAddress))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	<-shutdownCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
	}
}
