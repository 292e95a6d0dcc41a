package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"recipebox/config"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates and initializes slog.Logger
func New(params Params) (*slog.Logger, error) {
	return newLogger(os.Stdout, params.Config.Env.Log)
}

func newLogger(out io.Writer, cfg config.Log) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	if !cfg.Pretty {
		return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), nil
	}

	// Pretty mode still emits JSON records and lets zerolog's console writer render them.
	console := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}

	return slog.New(slog.NewJSONHandler(console, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: consoleAttrs,
	})), nil
}

// consoleAttrs renames slog's top-level keys to the ones zerolog.ConsoleWriter expects.
func consoleAttrs(groups []string, a slog.Attr) slog.Attr {
	if len(groups) != 0 {
		return a
	}

	switch a.Key {
	case slog.MessageKey:
		a.Key = zerolog.MessageFieldName
	case slog.LevelKey:
		a.Key = zerolog.LevelFieldName
		a.Value = slog.StringValue(strings.ToLower(a.Value.String()))
	case slog.TimeKey:
		a.Key = zerolog.TimestampFieldName
	}

	return a
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
