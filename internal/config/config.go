package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by fakegdate.
const (
	EnvFileVar  = "FAKEGDATE_ENV_FILE"
	LogLevelVar = "FAKEGDATE_LOG_LEVEL"
)

// Config holds process-wide settings. The zero value disables logging.
type Config struct {
	// LogLevel is a zap level name; empty turns diagnostic logging off.
	LogLevel string
	// EnvFile is the dotenv file that was loaded, if any.
	EnvFile string
}

// Load reads configuration from the environment after applying the dotenv
// file, if one resolves. Variables already set in the process win over the
// file.
func Load() (*Config, error) {
	path, err := ResolveEnvFile("")
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	return &Config{
		LogLevel: strings.TrimSpace(getEnv(LogLevelVar, "")),
		EnvFile:  path,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
