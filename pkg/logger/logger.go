package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns the process logger for one binary (verifier-api, verifier-relay).
// level accepts any zerolog level name; unknown names fall back to info.
// pretty switches to console output for local runs.
func New(service, level string, pretty bool) zerolog.Logger {
	var w io.Writer = os.Stdout
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	return build(service, level, w).With().Caller().Logger()
}

// NewWithWriter builds a JSON logger on w. Tests use it to inspect output.
func NewWithWriter(level string, w io.Writer) zerolog.Logger {
	return build("", level, w)
}

// Component tags every event of log with the emitting component,
// e.g. "bep20_verifier" or "webhook".
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func build(service, level string, w io.Writer) zerolog.Logger {
	ctx := zerolog.New(w).Level(parseLevel(level)).With().Timestamp()
	if service != "" {
		ctx = ctx.Str("service", service)
	}
	return ctx.Logger()
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
