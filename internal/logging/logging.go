// Package logging sets up the structured logger.
//
// The TUI owns the terminal, so log output goes to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pdxmph/todo-tui/internal/config"
	"github.com/sirupsen/logrus"
)

// Logger is the process-wide logger set by Init
var Logger = discard()

var logFile io.Closer

// Init configures Logger from cfg and returns an entry tagged with service.
// LOG_LEVEL overrides cfg.Level.
func Init(service string, cfg config.LogConfig) (*logrus.Entry, error) {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "ts",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	level := cfg.Level
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	l.SetLevel(logrus.InfoLevel)
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
		l.SetLevel(lvl)
	}

	if !cfg.Enabled || cfg.File == "" {
		l.SetOutput(io.Discard)
		Logger = l
		return Logger.WithField("service", service), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	Close()
	logFile = f
	l.SetOutput(f)
	Logger = l

	return Logger.WithField("service", service), nil
}

// Close closes the log file opened by Init, if any
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
