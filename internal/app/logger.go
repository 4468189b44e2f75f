package app

import (
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/heartmarshall/review-relay/internal/config"
)

const appName = "review-relay"

// NewLogger creates the process logger on os.Stderr and installs it as the
// slog default.
//
// Format "json" produces structured JSON output (production).
// Format "text" produces human-readable output with source info (development).
// Level is one of: debug, info, warn, error (case-insensitive); defaults to info.
// Every record carries the app name and build version.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   strings.EqualFold(cfg.Format, "text"),
		ReplaceAttr: redactURL,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("app", appName),
		slog.String("version", Version),
	)
}

// redactURL strips credentials, query and fragment from string attributes
// whose key ends in "_url". Workflow webhook URLs often embed tokens there.
func redactURL(_ []string, a slog.Attr) slog.Attr {
	if !strings.HasSuffix(a.Key, "_url") || a.Value.Kind() != slog.KindString {
		return a
	}
	u, err := url.Parse(a.Value.String())
	if err != nil {
		return slog.String(a.Key, "[unparseable]")
	}
	u.User = nil
	u.RawQuery = ""
	u.Fragment = ""
	return slog.String(a.Key, u.String())
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
