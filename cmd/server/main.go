package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/partyfavorphoto/intake/internal/api"
	"github.com/partyfavorphoto/intake/internal/commlog"
	"github.com/partyfavorphoto/intake/internal/config"
	"github.com/partyfavorphoto/intake/internal/database"
	"github.com/partyfavorphoto/intake/internal/inquiry"
	"github.com/partyfavorphoto/intake/internal/intake"
	"github.com/partyfavorphoto/intake/internal/notify"
	"github.com/partyfavorphoto/intake/internal/pricing"
	"github.com/partyfavorphoto/intake/internal/sweeper"
)

func main() {
	// A local .env is a convenience for development; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	if err := database.Migrate(cfg.DatabaseURL); err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	notifier, err := notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
	if err != nil {
		slog.Error("failed to initialize notifier", "error", err)
		os.Exit(1)
	}

	table := pricing.Default()
	inquiryRepo := inquiry.NewRepository(db.Pool())
	commsRepo := commlog.NewRepository(db.Pool())

	retention := time.Duration(cfg.QuoteRetentionHours) * time.Hour
	intakeSvc := intake.New(inquiryRepo, commsRepo, notifier, table, retention)

	router := api.NewRouter(api.RouterDeps{
		Intake:   intakeSvc,
		Pricing:  table,
		DBPinger: db,
		Version:  cfg.Version,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sweepCtx, stopSweeper := context.WithCancel(ctx)
	sweep := sweeper.New(intakeSvc, time.Duration(cfg.SweepIntervalSec)*time.Second)
	go sweep.Start(sweepCtx)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting intake server", "port", cfg.Port, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		stopSweeper()
		os.Exit(1)
	}

	stopSweeper()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
