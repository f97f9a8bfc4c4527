package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	LogFormat   string `validate:"oneof=text json"`
	Environment string `validate:"required"`
	Version     string
	// LogDir, when set, also writes each run's log to a file there.
	LogDir string

	StorageBackend string `validate:"oneof=memory sqlite postgres"`
	SQLitePath     string `validate:"required_if=StorageBackend sqlite"`
	DatabaseURL    string
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	DBMaxConns     int `validate:"min=1"`

	// TuningPath overrides the embedded gameplay tuning when set.
	TuningPath string

	SessionTTL       time.Duration `validate:"min=0"`
	SessionCapacity  int           `validate:"min=1"`
	// AutosaveInterval of zero disables periodic saving of open sessions.
	AutosaveInterval time.Duration `validate:"min=0"`

	// APIKey, when set, is required on every API request.
	APIKey string
	// TrustedProxies may set X-Forwarded-For.
	TrustedProxies []string
	// RateLimit is the request budget per client IP per RateWindow.
	RateLimit  int           `validate:"min=1"`
	RateWindow time.Duration `validate:"min=1s"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:        getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment:      getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:          getEnv("VERSION", "dev"),
		LogDir:           getEnv("LOG_DIR", ""),
		StorageBackend:   getEnv("STORAGE_BACKEND", DefaultStorageBackend),
		SQLitePath:       getEnv("SQLITE_PATH", DefaultSQLitePath),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBName:           getEnv("DB_NAME", "cokefamer"),
		DBMaxConns:       getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		TuningPath:       getEnv("TUNING_PATH", ""),
		SessionTTL:       getEnvAsDuration("SESSION_TTL", DefaultSessionTTL),
		SessionCapacity:  getEnvAsInt("SESSION_CAPACITY", DefaultSessionCapacity),
		AutosaveInterval: getEnvAsDuration("AUTOSAVE_INTERVAL", DefaultAutosaveInterval),
		APIKey:           getEnv("API_KEY", ""),
		TrustedProxies:   getEnvAsList("TRUSTED_PROXIES"),
		RateLimit:        getEnvAsInt("RATE_LIMIT", DefaultRateLimit),
		RateWindow:       getEnvAsDuration("RATE_WINDOW", DefaultRateWindow),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma-separated variable, dropping blanks.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// GetDBConnString returns the PostgreSQL connection string. DATABASE_URL wins
// over the individual DB_* settings.
func (c *Config) GetDBConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
