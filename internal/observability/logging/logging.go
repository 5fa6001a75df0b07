package logging

import (
	"log/slog"
	"os"
)

// Environment selects log output formatting.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// ServiceInfo identifies the running binary in log output.
type ServiceInfo struct {
	Name    string
	Version string
}

// NewLogger builds the process-wide structured logger. Dev output is text
// for readability; everything else is JSON.
func NewLogger(env Environment, level slog.Level, info ServiceInfo) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if env == EnvDev {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler).With(
		slog.String("service", info.Name),
		slog.String("version", info.Version),
	)
}
