package config

import "time"

// Storage backends
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Defaults
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "INFO"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultStorageBackend  = BackendSQLite
	DefaultSQLitePath      = "data/coke-famer.db"
	DefaultSessionTTL      = 30 * time.Minute
	DefaultSessionCapacity = 64
	DefaultDBMaxConns      = 5
	DefaultRateLimit       = 1000
	DefaultRateWindow      = 5 * time.Minute

	DefaultAutosaveInterval = 5 * time.Minute
)

// Error Messages
const (
	ErrMsgInvalidPort    = "invalid PORT value"
	ErrMsgInvalidConfig  = "invalid configuration"
	ErrMsgReadTuningFile = "failed to read tuning file"
	ErrMsgParseTuning    = "failed to parse tuning"
	ErrMsgInvalidTuning  = "invalid tuning"
)
