// Package logging provides the process wide structured logger.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config describes where log lines go and how verbose they are.
type Config struct {
	// Level is one of debug, info, warn, error. Unknown levels fall back to info.
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`

	// Output is a file path or one of stdout, stderr. Defaults to stderr.
	Output string `yaml:"output"`
}

// globalLogger discards everything until Init is called, so that packages can log without any setup in tests.
var globalLogger = zap.NewNop()

// Init replaces the global logger with a console logger configured by cfg.
func Init(cfg Config) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	cfgEncoder := zap.NewProductionEncoderConfig()
	cfgEncoder.TimeKey = "timestamp"
	cfgEncoder.EncodeTime = zapcore.ISO8601TimeEncoder
	cfgEncoder.EncodeLevel = zapcore.CapitalLevelEncoder

	if cfg.Output == "" {
		cfg.Output = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    cfgEncoder,
		OutputPaths:      []string{cfg.Output},
		ErrorOutputPaths: []string{cfg.Output},
		DisableCaller:    true,
	}

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	globalLogger = logger
	return nil
}

// Logger returns the global logger for callers which want to attach fields once.
func Logger() *zap.Logger {
	return globalLogger
}

// Sync flushes buffered log lines.
func Sync() error {
	return globalLogger.Sync()
}

func Debug(msg string, fields ...zapcore.Field) {
	globalLogger.Debug(msg, fields...)
}

func Info(msg string, fields ...zapcore.Field) {
	globalLogger.Info(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	globalLogger.Warn(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	globalLogger.Error(msg, fields...)
}

func Fatal(msg string, fields ...zapcore.Field) {
	globalLogger.Fatal(msg, fields...)
}
