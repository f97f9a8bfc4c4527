package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/CokeFamer_Go/internal/config"
	"github.com/osse101/CokeFamer_Go/internal/content"
	"github.com/osse101/CokeFamer_Go/internal/database"
	"github.com/osse101/CokeFamer_Go/internal/storage"
	"github.com/osse101/CokeFamer_Go/internal/storage/memory"
	"github.com/osse101/CokeFamer_Go/internal/storage/postgres"
	"github.com/osse101/CokeFamer_Go/internal/storage/sqlite"
)

// LoadGame builds the content registry and the tuning, applying the tuning
// override file when configured.
func LoadGame(cfg *config.Config) (*content.Registry, config.Tuning, error) {
	reg, err := content.Load(content.NewLoader())
	if err != nil {
		return nil, config.Tuning{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadContent, err)
	}
	slog.Info(LogMsgContentLoaded)

	tuning := config.DefaultTuning()
	if cfg.TuningPath != "" {
		tuning, err = config.LoadTuning(cfg.TuningPath)
		if err != nil {
			return nil, config.Tuning{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadTuning, err)
		}
		slog.Info(LogMsgTuningOverride, "path", cfg.TuningPath)
	}
	return reg, tuning, nil
}

// OpenStore opens the configured save backend and migrates its schema.
func OpenStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	var (
		store storage.Store
		err   error
	)

	switch cfg.StorageBackend {
	case config.BackendMemory:
		store = memory.New()
	case config.BackendSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, DirPermission); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
			}
		}
		store, err = sqlite.Open(ctx, cfg.SQLitePath)
	case config.BackendPostgres:
		store, err = openPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnsupportedBackend, cfg.StorageBackend)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
	}

	slog.Info(LogMsgStorageOpened, "backend", cfg.StorageBackend)
	return store, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString: cfg.GetDBConnString(),
		MaxConns:   cfg.DBMaxConns,
	})
	if err != nil {
		return nil, err
	}
	store, err := postgres.New(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return store, nil
}
