package observability

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spec-kit/shift-profile-service/internal/config"
)

// NewLogger creates a structured zap.Logger writing to stdout and a file under
// the configured log directory. The directory is created at startup; a
// non-directory path in the way is a configuration fault.
func NewLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	logPath, err := ensureLogFile(cfg)
	if err != nil {
		return nil, err
	}

	level := zapcore.InfoLevel
	if err := level.Set(strings.ToLower(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "message",
			LevelKey:   "level",
			TimeKey:    "ts",
			EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
				enc.AppendString(l.String())
			},
			EncodeTime: zapcore.ISO8601TimeEncoder,
		},
		OutputPaths:      []string{"stdout", logPath},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// ensureLogFile creates the log directory if missing and returns the log file
// path.
func ensureLogFile(cfg config.LoggerConfig) (string, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "logs"
	}
	filename := cfg.Filename
	if filename == "" {
		filename = "main.log"
	}

	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return "", fmt.Errorf("log path %s already exists and isn't a directory", dir)
		}
	case os.IsNotExist(err):
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("can't create log directory %s: %w", dir, err)
		}
	default:
		return "", fmt.Errorf("stat log directory %s: %w", dir, err)
	}

	return filepath.Join(dir, filename), nil
}
