package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"smartpack/config"
	"smartpack/internal/errors"

	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates and initializes slog.Logger writing to stdout
func New(params Params) (*slog.Logger, error) {
	return NewWithWriter(os.Stdout, params.Config.Env.Log, params.Config.Env.ServiceName)
}

// NewWithWriter builds the logger on w. Pretty selects the text handler, JSON otherwise.
func NewWithWriter(w io.Writer, cfg config.Log, serviceName string) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Pretty {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	if serviceName != "" {
		logger = logger.With(slog.String("service", serviceName))
	}

	return logger, nil
}

// parseLogLevel converts string log level to slog.Level. Empty means info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
