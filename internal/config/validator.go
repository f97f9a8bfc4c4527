package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout version this build understands
const ExpectedEnvSchemaVersion = "1.0"

// requiredEnvVars lists the variables a backend cannot start without.
var requiredEnvVars = map[string][]string{
	BackendMemory:   nil,
	BackendSQLite:   {"SQLITE_PATH"},
	BackendPostgres: {"DB_HOST", "DB_NAME"},
}

// ValidateEnv checks the .env schema version and the variables required by
// the selected storage backend. An unset schema version is accepted.
func ValidateEnv() error {
	if v := os.Getenv("ENV_SCHEMA_VERSION"); v != "" && v != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, v)
	}

	backend := getEnv("STORAGE_BACKEND", DefaultStorageBackend)
	required, ok := requiredEnvVars[backend]
	if !ok {
		return fmt.Errorf("unknown STORAGE_BACKEND %q", backend)
	}
	if backend == BackendPostgres && os.Getenv("DATABASE_URL") != "" {
		return nil
	}

	var missing []string
	for _, key := range required {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables for %s storage: %s", backend, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and reports non-fatal problems.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if getEnv("STORAGE_BACKEND", DefaultStorageBackend) == BackendMemory {
		warnings = append(warnings, "STORAGE_BACKEND=memory keeps saves only until the process exits")
	}
	if getEnv("ENVIRONMENT", DefaultEnvironment) == "production" && os.Getenv("API_KEY") == "" {
		warnings = append(warnings, "API_KEY is empty in production - the API is unauthenticated")
	}
	return warnings, nil
}
