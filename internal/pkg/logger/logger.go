package logger

import (
	"os"
	"path/filepath"
	"time"

	"github.com/propati/propati/internal/pkg/models"
	"github.com/sirupsen/logrus"
)

// AppLogger is the application logger. It wraps logrus with the JSON field
// layout the rest of the platform expects.
type AppLogger struct {
	*logrus.Logger
	filePath string
	file     *os.File
}

// NewAppLogger creates a new application logger from config. With LOG_TYPE
// "file" output goes to the configured path, otherwise to stdout.
func NewAppLogger(config models.LoggerConfig) (*AppLogger, error) {
	l := logrus.New()

	// Set log level
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	// Set JSON formatter for structured logging
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	appLogger := &AppLogger{
		Logger:   l,
		filePath: config.FilePath,
	}

	if config.Type == "file" && config.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
			return nil, err
		}
		file, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		appLogger.file = file
		l.SetOutput(file)
	} else {
		l.SetOutput(os.Stdout)
	}

	return appLogger, nil
}

// WithService returns an entry tagged with the service name.
func (a *AppLogger) WithService(name string) *logrus.Entry {
	return a.WithField("service", name)
}

// Close releases the log file handle if one is open.
func (a *AppLogger) Close() error {
	if a.file != nil {
		return a.file.Close()
	}
	return nil
}
