package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CokeFamer_Go/internal/storage"
)

// Stopper is the HTTP server half of shutdown.
type Stopper interface {
	Stop(ctx context.Context) error
}

// Closer is anything that flushes state on shutdown, such as the session manager.
type Closer interface {
	Close(ctx context.Context) error
}

// BackgroundTask is a scheduler or worker pool that runs until stopped.
type BackgroundTask interface {
	Stop()
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     Stopper
	Background []BackgroundTask
	Sessions   Closer
	Store      storage.Store
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Background tasks such as autosave, in the order given
// 3. Sessions (save every open game)
// 4. Save storage
//
// Errors are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if len(components.Background) > 0 {
		slog.Info(LogMsgStoppingBackground)
		for _, task := range components.Background {
			task.Stop()
		}
	}

	if components.Sessions != nil {
		slog.Info(LogMsgFlushingSessions)
		if err := components.Sessions.Close(ctx); err != nil {
			slog.Error(LogMsgSessionsCloseFailed, "error", err)
		}
	}

	if components.Store != nil {
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStorageCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
