package utils

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type ctxKey struct{}

// NewLogger builds the process logger. Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// WithRequestID stores the request id so service logs can carry it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// LogEvent writes a standardized module/action line.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(ctx context.Context, l *slog.Logger, module, action, message string, args ...any) {
	if l == nil {
		l = slog.Default()
	}
	attrs := append([]any{
		"module", module,
		"action", action,
		"request_id", RequestID(ctx),
	}, args...)
	l.InfoContext(ctx, message, attrs...)
}
