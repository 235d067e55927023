package env

import (
	"fmt"
	"food_wheel/internal/config"
	"log/slog"
	"os"
	"strings"
)

const logLevelEnvName = "LOG_LEVEL"

type logConfig struct {
	level slog.Level
}

func NewLogConfig() (config.LogConfig, error) {
	raw := os.Getenv(logLevelEnvName)
	if len(raw) == 0 {
		raw = "info"
	}

	level, err := parseLogLevel(raw)
	if err != nil {
		return nil, err
	}

	return &logConfig{level: level}, nil
}

func (cfg *logConfig) Level() slog.Level {
	return cfg.level
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}
