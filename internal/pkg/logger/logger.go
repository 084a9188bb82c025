// Package logger is the process-wide zap logger.
//
// One logger per process, configured once at startup from LogConfig. The
// level lives in an AtomicLevel so operators can raise verbosity on a
// running server without a restart.
package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	global *zap.Logger
	level  zap.AtomicLevel
	once   sync.Once
)

// Init builds the global logger. Level is one of debug/info/warn/error;
// format is "json" (default) or "console" for local development. Repeated
// calls are no-ops, which keeps parallel test packages safe.
func Init(logLevel, format string) error {
	var initErr error
	once.Do(func() {
		level = zap.NewAtomicLevel()
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			initErr = fmt.Errorf("parse log level %q: %w", logLevel, err)
			return
		}

		cfg := zap.NewProductionConfig()
		if format == "console" {
			cfg = zap.NewDevelopmentConfig()
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		cfg.Level = level

		l, err := cfg.Build(zap.AddCallerSkip(1))
		if err != nil {
			initErr = fmt.Errorf("build logger: %w", err)
			return
		}
		global = l
	})
	return initErr
}

// SetLevel changes the level of a running process.
func SetLevel(logLevel string) error {
	return level.UnmarshalText([]byte(logLevel))
}

// L returns the global logger. Init must run first.
func L() *zap.Logger {
	if global == nil {
		panic("logger.Init() must be called before logger.L()")
	}
	return global
}

// Debug logs at DebugLevel.
func Debug(msg string, fields ...zap.Field) { L().Debug(msg, fields...) }

// Info logs at InfoLevel.
func Info(msg string, fields ...zap.Field) { L().Info(msg, fields...) }

// Warn logs at WarnLevel.
func Warn(msg string, fields ...zap.Field) { L().Warn(msg, fields...) }

// Error logs at ErrorLevel.
func Error(msg string, fields ...zap.Field) { L().Error(msg, fields...) }

// Sync flushes buffered entries. Safe before Init.
func Sync() error {
	if global == nil {
		return nil
	}
	return global.Sync()
}
