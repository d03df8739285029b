// Package logger builds the zap logger used across the service.
package logger

import (
	"errors"
	"os"
	"syscall"

	"go.uber.org/zap"
)

// New returns a production JSON logger at the given level ("debug", "info", ...).
// In development mode a human-readable console encoder is used instead.
func New(level string, development bool) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = lvl

	return cfg.Build()
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func Sync(log *zap.Logger) error {
	err := log.Sync()
	if err != nil && (errors.Is(err, os.ErrInvalid) || errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL)) {
		return nil
	}
	return err
}
