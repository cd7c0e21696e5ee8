package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix prefixes every environment variable read by Config.
const envPrefix = "SHEETINSPECT"

// Config holds the CLI settings. Environment variables fill it first and
// command-line flags override them.
type Config struct {
	Input      string `envconfig:"INPUT" default:"./item/doubless/doubless.xlsx"`
	Output     string `envconfig:"OUTPUT" default:"./item/doubless/sales_data.json"`
	HeadRows   int    `envconfig:"HEAD_ROWS" default:"5"`
	DateFormat string `envconfig:"DATE_FORMAT" default:"epoch"`
	Pretty     bool   `envconfig:"PRETTY" default:"false"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"warn"`
}

// loadConfig reads Config from the environment.
func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to load config from env: %w", err)
	}
	return cfg, nil
}

// newLogger creates a text logger on w at the given level.
func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
