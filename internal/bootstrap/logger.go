package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/CokeFamer_Go/internal/config"
	"github.com/osse101/CokeFamer_Go/internal/logger"
)

// SetupLogger installs the process logger. Output goes to stdout and, when
// cfg.LogDir is set, also to a timestamped file there. The returned closer
// releases the file and is never nil.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	var (
		out    io.Writer = os.Stdout
		closer io.Closer = nopCloser{}
	)

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}
		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat))
		logFile, err := os.OpenFile(filepath.Join(cfg.LogDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
		}
		out = io.MultiWriter(os.Stdout, logFile)
		closer = logFile
	}

	lcfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, ServiceName, cfg.Version, cfg.Environment, false)
	logger.InitLoggerWithWriter(lcfg, out)

	slog.Info(LogMsgLoggingInitialized, "level", lcfg.LogLevel(), "log_dir", cfg.LogDir)
	slog.Info(LogMsgStartingCokeFamer,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"storage", cfg.StorageBackend)
	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"session_capacity", cfg.SessionCapacity,
		"session_ttl", cfg.SessionTTL,
		"auth", cfg.APIKey != "")

	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// cleanupLogs deletes the oldest log files in dir so at most keep remain.
// Names embed their start time, so lexical order is age order.
func cleanupLogs(dir string, keep int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= keep {
		return
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
