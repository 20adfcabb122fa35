// Package logging provides structured logging for carbonlens built on zerolog.
//
// Loggers travel on the context: commands install a configured logger once,
// and every package retrieves it with FromContext instead of holding its own
// global. Each command invocation is tagged with a ULID trace ID so related
// log lines can be correlated.
package logging

import (
	"context"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Config controls how the logger is constructed.
type Config struct {
	// Level is the minimum level to emit (trace, debug, info, warn, error).
	Level string
	// Format selects "console" (human-readable) or "json" output.
	Format string
	// Output selects "stderr", "stdout", or "file".
	Output string
	// File is the log file path when Output is "file".
	File string
	// Caller adds the caller file:line to every event.
	Caller bool
}

// Result describes the logger that NewLogger produced, including whether a
// file sink is in use so the caller can close it and print the log location.
type Result struct {
	Logger    zerolog.Logger
	UsingFile bool
	FilePath  string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *Result) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLogger builds a zerolog logger from cfg.
//
// An unparseable level falls back to info. When a file sink cannot be
// opened the logger falls back to stderr rather than failing the command;
// UsingFile reports which sink is actually active.
func NewLogger(cfg Config) Result {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer = os.Stderr
	result := Result{}

	switch cfg.Output {
	case "stdout":
		w = os.Stdout
	case "file":
		if cfg.File != "" {
			f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
			if openErr == nil {
				w = f
				result.UsingFile = true
				result.FilePath = cfg.File
				result.file = f
			}
		}
	}

	if cfg.Format == "console" && !result.UsingFile {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(w).Level(lvl).With().Timestamp()
	if cfg.Caller {
		logger = logger.Caller()
	}
	result.Logger = logger.Logger()
	return result
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger when
// none was installed. It is safe to call with a nil context.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		l := zerolog.Nop()
		return &l
	}
	return zerolog.Ctx(ctx)
}

type traceIDKey struct{}

// NewTraceID generates a ULID suitable for correlating the log lines of a
// single command invocation.
func NewTraceID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0) //nolint:gosec // trace IDs need uniqueness, not secrecy
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// ContextWithTraceID stores a trace ID on the context.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored on the context, or "".
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}
