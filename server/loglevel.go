package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// LogLevel controls how much the server logs.
type LogLevel int

const (
	// LogCritical only logs failures.
	LogCritical LogLevel = iota
	// LogNormal logs every request.
	LogNormal
	// LogDebug logs every request with details.
	LogDebug
	// LogOff disables server logging.
	LogOff
)

// ParseLogLevel parses critical, normal, debug or off, case-insensitively.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return LogCritical, nil
	case "normal":
		return LogNormal, nil
	case "debug":
		return LogDebug, nil
	case "off":
		return LogOff, nil
	default:
		return LogNormal, fmt.Errorf("%w: %q (valid levels: critical, normal, debug, off)", ErrInvalidLogLevel, s)
	}
}

func (l LogLevel) String() string {
	switch l {
	case LogCritical:
		return "critical"
	case LogNormal:
		return "normal"
	case LogDebug:
		return "debug"
	case LogOff:
		return "off"
	default:
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
}

// SlogLevel returns the minimum slog level emitted at l.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogCritical:
		return slog.LevelError
	case LogDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// levelHandler drops records below min before they reach the wrapped handler.
type levelHandler struct {
	min     slog.Level
	handler slog.Handler
}

func (h levelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.min && h.handler.Enabled(ctx, level)
}

func (h levelHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.handler.Handle(ctx, r)
}

func (h levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelHandler{min: h.min, handler: h.handler.WithAttrs(attrs)}
}

func (h levelHandler) WithGroup(name string) slog.Handler {
	return levelHandler{min: h.min, handler: h.handler.WithGroup(name)}
}

// logger returns base filtered to l.
func (l LogLevel) logger(base *slog.Logger) *slog.Logger {
	if l == LogOff {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(levelHandler{min: l.SlogLevel(), handler: base.Handler()})
}
