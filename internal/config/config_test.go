package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "LOG_LEVEL", "LOG_FORMAT", "ENVIRONMENT", "VERSION", "STORAGE_BACKEND",
	"SQLITE_PATH", "DATABASE_URL", "DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT",
	"DB_NAME", "DB_MAX_CONNS", "TUNING_PATH", "SESSION_TTL", "SESSION_CAPACITY", "AUTOSAVE_INTERVAL",
	"API_KEY", "LOG_DIR", "TRUSTED_PROXIES", "RATE_LIMIT", "RATE_WINDOW", "ENV_SCHEMA_VERSION",
}

// clearEnvVars unsets every variable Load reads and restores them after the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, v) })
		}
		os.Unsetenv(k)
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultPort, cfg.Port)
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
		assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
		assert.Equal(t, BackendSQLite, cfg.StorageBackend)
		assert.Equal(t, DefaultSQLitePath, cfg.SQLitePath)
		assert.Equal(t, DefaultSessionTTL, cfg.SessionTTL)
		assert.Equal(t, DefaultSessionCapacity, cfg.SessionCapacity)
		assert.Empty(t, cfg.APIKey)
		assert.Empty(t, cfg.TrustedProxies)
		assert.Equal(t, DefaultRateLimit, cfg.RateLimit)
		assert.Equal(t, DefaultRateWindow, cfg.RateWindow)
		assert.Equal(t, DefaultAutosaveInterval, cfg.AutosaveInterval)
	})

	t.Run("from environment", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "3000")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("STORAGE_BACKEND", "postgres")
		t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/farm")
		t.Setenv("SESSION_TTL", "5m")
		t.Setenv("SESSION_CAPACITY", "8")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1, ,10.0.0.2")
		t.Setenv("RATE_LIMIT", "50")
		t.Setenv("AUTOSAVE_INTERVAL", "0s")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, BackendPostgres, cfg.StorageBackend)
		assert.Equal(t, "postgres://u:p@db:5432/farm", cfg.GetDBConnString())
		assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
		assert.Equal(t, 8, cfg.SessionCapacity)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.Equal(t, 50, cfg.RateLimit)
		assert.Zero(t, cfg.AutosaveInterval)
	})

	t.Run("bad values fall back or fail", func(t *testing.T) {
		tests := []struct {
			name    string
			key     string
			value   string
			wantErr string
		}{
			{"non-numeric port", "PORT", "abc", ErrMsgInvalidPort},
			{"port out of range", "PORT", "70000", ErrMsgInvalidConfig},
			{"unknown backend", "STORAGE_BACKEND", "redis", ErrMsgInvalidConfig},
			{"unknown log format", "LOG_FORMAT", "xml", ErrMsgInvalidConfig},
			{"zero rate limit", "RATE_LIMIT", "0", ErrMsgInvalidConfig},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv(tt.key, tt.value)

				cfg, err := Load()

				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), tt.wantErr)
			})
		}
	})

	t.Run("sqlite requires a path", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("SQLITE_PATH", "")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unparsable duration keeps default", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("SESSION_TTL", "soon")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultSessionTTL, cfg.SessionTTL)
	})
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "1", DBName: "n"}
	assert.Equal(t, "postgres://u:p@h:1/n?sslmode=disable", cfg.GetDBConnString())
}

func TestValidateEnv(t *testing.T) {
	t.Run("schema version mismatch", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENV_SCHEMA_VERSION", "0.9")

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
	})

	t.Run("postgres needs host and name", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("STORAGE_BACKEND", BackendPostgres)

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_HOST")
		assert.Contains(t, err.Error(), "DB_NAME")
	})

	t.Run("postgres satisfied by DATABASE_URL", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("STORAGE_BACKEND", BackendPostgres)
		t.Setenv("DATABASE_URL", "postgres://x")

		assert.NoError(t, ValidateEnv())
	})

	t.Run("memory warns", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("STORAGE_BACKEND", BackendMemory)

		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "memory")
	})
}
