package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"
)

// logLevelValue adapts slog.Level to pflag.Value so --log-level gets
// pflag's usual parse-and-validate-on-Set behavior instead of being parsed
// by hand inside RunE, following the same shape as
// pgaskin-ottrec-website/internal/pflagx's LevelP helper (a pflag.Value
// wrapping a settable log level).
type logLevelValue struct {
	level *slog.Level
}

var _ pflag.Value = (*logLevelValue)(nil)

func newLogLevelValue(level *slog.Level, defaultValue slog.Level) *logLevelValue {
	*level = defaultValue
	return &logLevelValue{level: level}
}

func (v *logLevelValue) String() string {
	if v.level == nil {
		return slog.LevelInfo.String()
	}
	return v.level.String()
}

func (v *logLevelValue) Set(s string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", s, err)
	}
	*v.level = l
	return nil
}

func (v *logLevelValue) Type() string {
	return "level"
}
