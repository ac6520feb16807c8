package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with timestamp formatting that writes to w and
// filters messages below level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// resolveLevel picks debug when verbose is set, otherwise the configured
// level. Unknown level names fall back to info.
func resolveLevel(verbose bool, configured string) log.Level {
	if verbose {
		return log.DebugLevel
	}
	level, err := log.ParseLevel(strings.TrimSpace(configured))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}
