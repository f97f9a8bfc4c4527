package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/CokeFamer_Go/internal/bootstrap"
	"github.com/osse101/CokeFamer_Go/internal/config"
	"github.com/osse101/CokeFamer_Go/internal/server"
	"github.com/osse101/CokeFamer_Go/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg, tuning, err := bootstrap.LoadGame(cfg)
	if err != nil {
		slog.Error("Failed to load game data", "error", err)
		os.Exit(1)
	}

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open save storage", "error", err)
		os.Exit(1)
	}

	bus := bootstrap.InitializeEventSystem()

	sessions := session.NewManager(reg, tuning, store, bus, session.Options{
		Capacity: cfg.SessionCapacity,
		TTL:      cfg.SessionTTL,
	})

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
		RateLimit:      cfg.RateLimit,
		RateWindow:     cfg.RateWindow,
	}, sessions, sessions)

	background := bootstrap.StartAutosave(cfg.AutosaveInterval, sessions)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:     srv,
		Background: background,
		Sessions:   sessions,
		Store:      store,
	})
}
