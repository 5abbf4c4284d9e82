package common

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Severity represents log message severity levels
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (s Severity) level() log.Level {
	switch s {
	case SeverityDebug:
		return log.DebugLevel
	case SeverityInfo:
		return log.InfoLevel
	case SeverityWarning:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}

// Logger interface defines the logging contract for the configuration layer
type Logger interface {
	// Log logs a message with the specified severity
	Log(severity Severity, msg string)

	// Logf logs a formatted message with the specified severity
	Logf(severity Severity, format string, args ...interface{})

	// Error logs an error
	Error(err error)

	// Debug logs a debug message
	Debug(msg string)

	// Info logs an info message
	Info(msg string)

	// Warning logs a warning message
	Warning(msg string)
}

// LogrusLogger implements the Logger interface on a logrus logger.
type LogrusLogger struct {
	entry *log.Entry
}

// NewLogrusLogger creates a logger writing to stderr at the given minimum severity.
func NewLogrusLogger(minLevel Severity) *LogrusLogger {
	return NewLogrusLoggerWithWriter(os.Stderr, minLevel)
}

// NewLogrusLoggerWithWriter creates a logger with a custom writer.
func NewLogrusLoggerWithWriter(w io.Writer, minLevel Severity) *LogrusLogger {
	l := log.New()
	l.SetOutput(w)
	l.SetLevel(minLevel.level())
	l.SetFormatter(&log.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return &LogrusLogger{entry: log.NewEntry(l)}
}

// WithField returns a logger that attaches key=value to every message.
func (l *LogrusLogger) WithField(key string, value interface{}) *LogrusLogger {
	return &LogrusLogger{entry: l.entry.WithField(key, value)}
}

// Log logs a message with the specified severity
func (l *LogrusLogger) Log(severity Severity, msg string) {
	l.entry.Log(severity.level(), msg)
}

// Logf logs a formatted message with the specified severity
func (l *LogrusLogger) Logf(severity Severity, format string, args ...interface{}) {
	l.Log(severity, fmt.Sprintf(format, args...))
}

// Error logs an error
func (l *LogrusLogger) Error(err error) {
	if err != nil {
		l.Log(SeverityError, err.Error())
	}
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string) {
	l.Log(SeverityDebug, msg)
}

// Info logs an info message
func (l *LogrusLogger) Info(msg string) {
	l.Log(SeverityInfo, msg)
}

// Warning logs a warning message
func (l *LogrusLogger) Warning(msg string) {
	l.Log(SeverityWarning, msg)
}

// NoOpLogger is a logger that doesn't log anything
type NoOpLogger struct{}

// NewNoOpLogger creates a new no-op logger
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Log does nothing
func (l *NoOpLogger) Log(severity Severity, msg string) {}

// Logf does nothing
func (l *NoOpLogger) Logf(severity Severity, format string, args ...interface{}) {}

// Error does nothing
func (l *NoOpLogger) Error(err error) {}

// Debug does nothing
func (l *NoOpLogger) Debug(msg string) {}

// Info does nothing
func (l *NoOpLogger) Info(msg string) {}

// Warning does nothing
func (l *NoOpLogger) Warning(msg string) {}
