package config

import (
	"log/slog"
	"os"
	"path/filepath"
)

type Config struct {
	APIBaseURL string
	StateDir   string
	LogLevel   slog.Level
}

func Load() *Config {
	cfg := &Config{
		APIBaseURL: getEnv("API_BASE_URL", "http://127.0.0.1:8000/api"),
		StateDir:   getEnv("SESSION_STATE_DIR", defaultStateDir()),
		LogLevel:   parseLevel(getEnv("LOG_LEVEL", "info")),
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".julidsfashion"
	}
	return filepath.Join(base, "julidsfashion-admin")
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
