// Package rtlog provides the structured logger shared across the
// renderer's ambient stack: a package-level *zap.Logger configured once
// at startup, used everywhere else via typed field calls.
package rtlog

import "go.uber.org/zap"

// Log is the process-wide logger. Init replaces it; until Init is called
// it defaults to a no-op logger so packages can log during tests without
// panicking.
var Log *zap.Logger = zap.NewNop()

// Init configures Log for interactive use (a human-readable console
// encoder) or for batch/CI use (a JSON encoder), and installs it as the
// package-level logger.
func Init(production bool) error {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = logger
	return nil
}

// Sync flushes any buffered log entries; call before process exit.
func Sync() {
	_ = Log.Sync()
}
