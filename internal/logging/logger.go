package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "ULTINOTES_LOG_LEVEL"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks ULTINOTES_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// InitializeFromEnv initializes the logger from the ULTINOTES_LOG_LEVEL
// environment variable.
func InitializeFromEnv() error {
	return Initialize("")
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until initialized so interactive prompts stay clean
		logger = zap.NewNop()
	}
	return logger
}

// SetLogger replaces the global logger. Tests use this with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// LogCommand logs the outcome of an external process invocation.
func LogCommand(l *zap.Logger, name string, args []string, exitCode int, duration time.Duration, err error) {
	fields := []zap.Field{
		zap.String("command", name),
		zap.Strings("args", args),
		zap.Int("exit_code", exitCode),
		zap.Duration("duration", duration),
	}
	if err != nil {
		l.Debug("external command failed", append(fields, zap.Error(err))...)
		return
	}
	l.Debug("external command finished", fields...)
}

// LogDiscovery logs a device discovery event
func LogDiscovery(l *zap.Logger, event, ip, mac string) {
	l.Info("Discovery event",
		zap.String("event", event),
		zap.String("ip", ip),
		zap.String("mac", mac),
	)
}

// LogTransfer logs a remote file-transfer operation
func LogTransfer(l *zap.Logger, op, host, path string, err error) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("host", host),
		zap.String("path", path),
	}
	if err != nil {
		l.Warn("Transfer operation failed", append(fields, zap.Error(err))...)
		return
	}
	l.Info("Transfer operation complete", fields...)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
