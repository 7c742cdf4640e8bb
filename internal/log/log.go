// Package log builds the slog.Logger used by the generator.
//
// Without a log file, records below error level go to stdout and errors go to
// stderr. With a log file, console output moves entirely to stderr and every
// record is also written to the file.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LevelTrace is a custom level below Debug for per-class output.
const LevelTrace slog.Level = -8

// ParseLevel maps a level name to a slog level; unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
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

// fanout sends records to every handler that accepts them.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}

	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}

	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}

	return out
}

// levelRange passes records with min <= level < max to h.
type levelRange struct {
	min, max slog.Level
	h        slog.Handler
}

func (l levelRange) pass(level slog.Level) bool {
	return level >= l.min && level < l.max
}

func (l levelRange) Enabled(ctx context.Context, level slog.Level) bool {
	return l.pass(level) && l.h.Enabled(ctx, level)
}

func (l levelRange) Handle(ctx context.Context, r slog.Record) error {
	if !l.pass(r.Level) {
		return nil
	}

	return l.h.Handle(ctx, r)
}

func (l levelRange) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelRange{min: l.min, max: l.max, h: l.h.WithAttrs(attrs)}
}

func (l levelRange) WithGroup(name string) slog.Handler {
	return levelRange{min: l.min, max: l.max, h: l.h.WithGroup(name)}
}

const maxLevel slog.Level = 1 << 10

// SetupLogger builds a logger writing to the console and, if logFile is set,
// to that file. The returned closers must be closed on exit.
func SetupLogger(logLevel, logFile string) (*slog.Logger, []io.Closer, error) {
	return setup(logLevel, logFile, os.Stdout, os.Stderr)
}

func setup(logLevel, logFile string, stdout, stderr io.Writer) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(logLevel)
	opts := &slog.HandlerOptions{Level: level}

	if logFile == "" {
		return slog.New(fanout{
			levelRange{min: level, max: slog.LevelError, h: slog.NewTextHandler(stdout, opts)},
			levelRange{min: slog.LevelError, max: maxLevel, h: slog.NewTextHandler(stderr, opts)},
		}), nil, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(fanout{
		slog.NewTextHandler(stderr, opts),
		slog.NewTextHandler(f, opts),
	})

	return logger, []io.Closer{f}, nil
}
