package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort  = 8080
	DefaultDBURL = "flashcards.db"
)

type Environment struct {
	IsDevelopment  bool
	Port           int
	DatabaseURL    string
	AllowedOrigins []string
	LogLevel       slog.Level
}

// LoadDotEnv loads .env when not running on the hosting platform. A missing
// file is not an error worth stopping for.
func LoadDotEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") != "" {
		return
	}
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not found, using process environment", "error", err)
	}
}

// Load reads the environment. Unset or malformed values fall back to defaults.
func Load() Environment {
	appEnv := strings.ToLower(os.Getenv("APP_ENV"))

	env := Environment{
		IsDevelopment:  appEnv == "" || appEnv == "development",
		Port:           DefaultPort,
		DatabaseURL:    DefaultDBURL,
		AllowedOrigins: []string{"http://localhost:3000"},
		LogLevel:       slog.LevelInfo,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			env.Port = port
		} else {
			slog.Warn("invalid PORT, using default", "value", portStr, "default", DefaultPort)
		}
	}

	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		env.DatabaseURL = dbURL
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		env.AllowedOrigins = splitList(origins)
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if err := env.LogLevel.UnmarshalText([]byte(level)); err != nil {
			slog.Warn("invalid LOG_LEVEL, using info", "value", level)
			env.LogLevel = slog.LevelInfo
		}
	}

	return env
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
