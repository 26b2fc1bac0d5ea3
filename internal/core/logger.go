package core

import (
	"log"
	"strings"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a case-insensitive level name, defaulting to info.
func ParseLogLevel(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger is the leveled logging surface sims and shells accept.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

// StdLogger writes through a *log.Logger, dropping messages below its level.
type StdLogger struct {
	level LogLevel
	out   *log.Logger
}

// NewLogger creates a logger writing to the standard logger at the given level.
func NewLogger(level string) *StdLogger {
	return &StdLogger{level: ParseLogLevel(level), out: log.Default()}
}

// NewLoggerTo creates a logger writing to out.
func NewLoggerTo(out *log.Logger, level string) *StdLogger {
	return &StdLogger{level: ParseLogLevel(level), out: out}
}

// Level reports the minimum level that is written.
func (l *StdLogger) Level() LogLevel { return l.level }

func (l *StdLogger) logf(level LogLevel, format string, v ...any) {
	if level < l.level {
		return
	}
	l.out.Printf("["+strings.ToUpper(level.String())+"] "+format, v...)
}

// Debugf logs a debug message
func (l *StdLogger) Debugf(format string, v ...any) { l.logf(LogLevelDebug, format, v...) }

// Infof logs an info message
func (l *StdLogger) Infof(format string, v ...any) { l.logf(LogLevelInfo, format, v...) }

// Warnf logs a warning message
func (l *StdLogger) Warnf(format string, v ...any) { l.logf(LogLevelWarn, format, v...) }

// Errorf logs an error message
func (l *StdLogger) Errorf(format string, v ...any) { l.logf(LogLevelError, format, v...) }

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
