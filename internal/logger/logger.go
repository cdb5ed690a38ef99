// Package logger wraps zap construction so main packages can initialize
// structured logging with a configurable level.
package logger

import "go.uber.org/zap"

// Logger carries the application zap logger.
type Logger struct {
	// Log is the underlying zap logger; a no-op logger until Init is called.
	Log *zap.Logger
}

// New returns a Logger with a no-op zap logger installed.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init builds a production zap logger at the given level ("Debug", "Info",
// "Warn", ...) and installs it.
func (l *Logger) Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	log, err := cfg.Build()
	if err != nil {
		return err
	}
	l.Log = log
	return nil
}
