package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds display and diagnostics settings. Game rules are compiled in
// and deliberately absent here.
type Config struct {
	Title    string
	VSync    bool
	LogLevel slog.Level

	// HUD overlay; an empty FontPath disables it.
	FontPath string
	FontSize int
}

func Load() *Config {
	// A missing .env is fine, the process environment still applies.
	godotenv.Load()

	return &Config{
		Title:    getEnv("PONG_TITLE", "Pong"),
		VSync:    getEnvBool("PONG_VSYNC", true),
		LogLevel: parseLevel(getEnv("PONG_LOG_LEVEL", "info")),
		FontPath: getEnv("PONG_FONT", ""),
		FontSize: getEnvInt("PONG_FONT_SIZE", 16),
	}
}

// NewLogger returns a text logger on stderr at the configured level.
func (c *Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel}))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
