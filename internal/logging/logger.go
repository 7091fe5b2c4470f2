package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/austoonz/Convert/internal/config"
	"golang.org/x/exp/slog"
)

var logger atomic.Pointer[slog.Logger]

// Logger returns the library's logger. It discards everything until Configure or SetLogger is called.
func Logger() *slog.Logger {
	current := logger.Load()
	if current == nil {
		logger.CompareAndSwap(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
		current = logger.Load()
	}
	return current
}

// SetLogger replaces the library's logger. Passing nil restores the discarding logger.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func ParseLevel(level string) slog.Level {
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

// New builds a logger writing to w with the level and format named in conf
func New(w io.Writer, conf config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(conf.LogLevel)}

	if strings.EqualFold(conf.LogFormat, config.LogFormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// Configure installs a stderr logger built from conf. The host process owns stdout.
func Configure(conf config.Config) {
	SetLogger(New(os.Stderr, conf))
}
