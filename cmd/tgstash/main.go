package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tgstash/internal/config"
	"tgstash/internal/logger"
	"tgstash/internal/router"
	"tgstash/internal/setup"
)

func main() {
	var configFolder string
	var mode string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.StringVar(&mode, "mode", "polling", "update transport: polling or webhook")
	flag.Parse()

	// Optional; real deployments set TELEGRAM_BOT_TOKEN directly.
	godotenv.Load()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	if err := run(cfg, mode); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, mode string) error {
	if cfg.BotToken() == "" {
		return errors.New("no bot token: set TELEGRAM_BOT_TOKEN or bot_token in private.yaml")
	}

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		return err
	}
	defer deps.Storage.Cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch mode {
	case "polling":
		deps.Runner.StartPolling(ctx)
		return nil
	case "webhook":
		return runWebhook(ctx, cfg, deps)
	default:
		return fmt.Errorf("unknown mode %q: want polling or webhook", mode)
	}
}

func runWebhook(ctx context.Context, cfg *config.Config, deps *setup.Dependencies) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Public.HttpPort),
		Handler: router.New(deps),
	}

	// The consumer drains updates queued by the /webhook endpoint.
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		deps.Runner.StartWebhook(ctx)
	}()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("webhook server started", "addr", server.Addr)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("webhook server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "err", err)
	}

	<-consumerDone
	slog.Info("shutdown complete")
	return nil
}
