// Package telemetry wires up structured logging, following
// pgaskin-ottrec-website's cmd/ottrec-website/main.go: a tint-colorized
// console handler by default, switchable to JSON for production log
// shipping.
package telemetry

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// NewLogger builds the process-wide slog.Logger. json=false gives a
// human-readable, colorized console handler (tint); json=true switches to
// slog's stock JSON handler for log aggregation.
func NewLogger(w io.Writer, level slog.Level, json bool) *slog.Logger {
	if json {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}
