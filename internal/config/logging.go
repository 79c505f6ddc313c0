package config

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Devleaps/agent-policies/internal/constants"
)

// LogRotationConfig holds configuration for relay debug log rotation
type LogRotationConfig struct {
	MaxAge     int  // Maximum number of days to retain log files
	MaxSize    int  // Maximum size in megabytes before rotation
	MaxBackups int  // Maximum number of backup files to retain
	Compress   bool // Whether to compress rotated files
}

// DefaultLogRotationConfig returns sensible defaults for log rotation
func DefaultLogRotationConfig() LogRotationConfig {
	return LogRotationConfig{
		MaxAge:     30,   // 30 days default retention
		MaxSize:    10,   // 10MB per file
		MaxBackups: 5,    // Keep 5 backup files
		Compress:   true, // Compress old files
	}
}

// NewStderrLogger returns the console logger used for operator-facing
// warnings and errors. Hook diagnostics must go to stderr so that stdout
// stays reserved for the editor hook response.
func NewStderrLogger() zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).With().Timestamp().Logger()
}

// DebugLogEnabled reports whether relay debug logging was requested via
// the environment.
func DebugLogEnabled() bool {
	v := os.Getenv(constants.DebugLogEnvVar)
	return v == "1" || v == "true"
}

// NewRelayLogger returns a JSON logger appending to the rotating relay debug
// log under ~/.agent-policies/logs. When disabled it returns a no-op logger.
// The returned close function flushes the underlying file.
func NewRelayLogger(enabled bool, rotation LogRotationConfig) (zerolog.Logger, func()) {
	if !enabled {
		return zerolog.Nop(), func() {}
	}

	dir, err := UserConfigDir()
	if err != nil {
		return zerolog.Nop(), func() {}
	}
	logPath := filepath.Join(dir, constants.LogsSubDir, constants.ClientLogFile)
	if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err != nil {
		return zerolog.Nop(), func() {}
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    rotation.MaxSize,
		MaxBackups: rotation.MaxBackups,
		MaxAge:     rotation.MaxAge,
		Compress:   rotation.Compress,
		LocalTime:  true,
	}
	logger := zerolog.New(writer).With().Timestamp().Logger()
	return logger, func() { _ = writer.Close() }
}
