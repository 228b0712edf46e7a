package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	OutputPath string
	LogLevel   string

	GrouponRequirePurchased bool
	SummaryTable            bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		OutputPath: getEnv("WILLCALL_OUTPUT", "list.csv"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		GrouponRequirePurchased: getEnvBool("GROUPON_REQUIRE_PURCHASED", true),
		SummaryTable:            getEnvBool("WILLCALL_SUMMARY", true),
	}

	if strings.TrimSpace(cfg.OutputPath) == "" {
		return Config{}, fmt.Errorf("WILLCALL_OUTPUT must not be blank")
	}
	return cfg, nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required value: %s", name)
	}
	return nil
}

// SlogLevel maps LogLevel onto slog levels; unknown names fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
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

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
