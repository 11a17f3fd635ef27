package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

// Opts configures the application logger.
type Opts struct {
	Level     string // debug, info, warn, error
	Env       string
	SentryDSN string // Errors are also sent to Sentry when set
}

// Logger is a slog logger plus the resources it holds open.
type Logger struct {
	*slog.Logger
	closers []func() error
}

// Close flushes Sentry and closes the log file.
func (l *Logger) Close() error {
	var first error
	for _, c := range l.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// New builds a logger writing JSON lines to w through zerolog. The TUI owns
// stdout, so w is normally a file.
func New(w io.Writer, opts Opts) (*Logger, error) {
	level := ParseLevel(opts.Level)

	zl := zerolog.New(w).With().Timestamp().Logger()
	handlers := []slog.Handler{
		slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler(),
	}

	l := &Logger{}
	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryDSN,
			Environment: opts.Env,
		})
		if err != nil {
			return nil, fmt.Errorf("sentry init: %w", err)
		}
		handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		l.closers = append(l.closers, func() error {
			sentry.Flush(2 * time.Second)
			return nil
		})
	}

	l.Logger = slog.New(slogmulti.Fanout(handlers...))
	return l, nil
}

// NewFile opens (appending) path and builds a logger on it.
func NewFile(path string, opts Opts) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	l, err := New(f, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	l.closers = append(l.closers, f.Close)
	return l, nil
}

// ParseLevel maps a level name to slog, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch s {
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
