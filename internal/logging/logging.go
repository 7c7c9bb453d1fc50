// Package logging wires the suite's zap logger: a timestamped log file per
// run plus a console echo, matching the artifact layout the reports link to.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Session is a configured logging session. Close flushes and releases the
// log file.
type Session struct {
	Logger  *zap.Logger
	LogFile string

	file *os.File
}

// NewSession creates the logs directory if needed, opens a timestamped log
// file, and builds a logger writing to both the file and stderr.
func NewSession(logsDir string) (*Session, error) {
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create logs dir: %w", err)
	}

	path := filepath.Join(logsDir,
		fmt.Sprintf("test_execution_%s.log", time.Now().Format("20060102_150405")))
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	fileCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(file),
		zapcore.DebugLevel,
	)
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(os.Stderr),
		zapcore.InfoLevel,
	)

	logger := zap.New(zapcore.NewTee(fileCore, consoleCore))
	logger.Info("test session started", zap.String("log_file", path))

	return &Session{Logger: logger, LogFile: path, file: file}, nil
}

// Close logs the session end and releases the log file.
func (s *Session) Close() {
	s.Logger.Info("test session completed")
	_ = s.Logger.Sync()
	_ = s.file.Close()
}
