// Package dlogger builds the process-wide zap logger. The rest of the
// code returns errors; only the command layer logs.
package dlogger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Levels accepted by New, besides zap's own level names.
const (
	LevelNone = "none"
)

// New returns a console zap logger at the given level. "none"
// disables logging entirely.
func New(level string) (*zap.Logger, error) {
	if level == LevelNone {
		return zap.NewNop(), nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = ""
	return cfg.Build()
}

// MustNew is New or panic, for process start.
func MustNew(level string) *zap.Logger {
	log, err := New(level)
	if err != nil {
		panic(err)
	}
	return log
}
