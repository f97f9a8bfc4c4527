package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "farm_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept beside the new one
	LogFileRetentionCount = 9

	// ServiceName tags every log line
	ServiceName = "coke-famer"
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingCokeFamer   = "Starting Coke Famer"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Game Setup
// =============================================================================

const (
	LogMsgContentLoaded      = "Content loaded"
	LogMsgTuningOverride     = "Loaded tuning override"
	LogMsgStorageOpened      = "Save storage opened"
	ErrMsgFailedLoadContent  = "failed to load content"
	ErrMsgFailedLoadTuning   = "failed to load tuning"
	ErrMsgFailedOpenStorage  = "failed to open save storage"
	ErrMsgUnsupportedBackend = "unsupported storage backend"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgGameEvent                  = "Game event"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgFlushingSessions     = "Saving open sessions..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSessionsCloseFailed  = "Saving sessions failed"
	LogMsgStorageCloseFailed   = "Closing save storage failed"
	LogMsgStoppingBackground   = "Stopping background tasks..."

	// ShutdownTimeout bounds the whole shutdown sequence
	ShutdownTimeout = 15 * time.Second
)

// =============================================================================
// Autosave
// =============================================================================

const (
	AutosaveWorkers    = 1
	AutosaveQueueSize  = 4
	AutosaveMaxTimeout = 30 * time.Second

	LogMsgAutosaveScheduled = "Autosave scheduled"
	LogMsgAutosaveDisabled  = "Autosave disabled"
)
