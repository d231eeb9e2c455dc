package logger

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/user/gradecast/pkg/ports"
)

// LogrusLogger logs structured messages via logrus. Used when machine
// readable output is wanted, e.g. JSON logs from the CLI.
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrus creates a logrus-backed logger emitting JSON to stderr.
func NewLogrus(level ports.LogLevel) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrusLevel(level))
	return &LogrusLogger{entry: logrus.NewEntry(l)}
}

func logrusLevel(level ports.LogLevel) logrus.Level {
	switch level {
	case ports.LevelDebug:
		return logrus.DebugLevel
	case ports.LevelInfo:
		return logrus.InfoLevel
	case ports.LevelWarn:
		return logrus.WarnLevel
	case ports.LevelError:
		return logrus.ErrorLevel
	case ports.LevelQuiet:
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}

// Debug logs a debug message.
func (l *LogrusLogger) Debug(msg string, args ...interface{}) {
	l.entry.Debugf(msg, args...)
}

// Info logs an informational message.
func (l *LogrusLogger) Info(msg string, args ...interface{}) {
	l.entry.Infof(msg, args...)
}

// Warn logs a warning message.
func (l *LogrusLogger) Warn(msg string, args ...interface{}) {
	l.entry.Warnf(msg, args...)
}

// Error logs an error message.
func (l *LogrusLogger) Error(msg string, args ...interface{}) {
	l.entry.Errorf(msg, args...)
}

// WithComponent returns a logger carrying the component as a structured
// field.
func (l *LogrusLogger) WithComponent(component string) ports.Logger {
	return &LogrusLogger{entry: l.entry.WithField("component", component)}
}

// Ensure LogrusLogger implements ports.Logger
var _ ports.Logger = (*LogrusLogger)(nil)
