package main

import (
	"go.uber.org/zap"
)

// newLogger returns a development logger with --verbose, otherwise a production
// logger that only reports warnings and errors.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
