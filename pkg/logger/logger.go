package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// Level represents the severity of a log message
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// Color codes for different log levels
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// Logger is the main logger interface
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	WithPrefix(prefix string) Logger
}

// logger implements the Logger interface
type logger struct {
	mu       sync.Mutex
	level    Level
	writer   io.Writer
	prefix   string
	noColor  bool
	showTime bool
}

// Default logger instance
var defaultLogger = New()

// Config holds logger configuration
type Config struct {
	Level    Level
	Writer   io.Writer
	NoColor  bool
	ShowTime bool
}

// New creates a new logger with default configuration. Color is disabled
// automatically when stdout is not a terminal.
func New() Logger {
	return NewWithConfig(Config{
		Level:    InfoLevel,
		Writer:   os.Stdout,
		NoColor:  !term.IsTerminal(int(os.Stdout.Fd())),
		ShowTime: true,
	})
}

// NewWithConfig creates a new logger with custom configuration
func NewWithConfig(cfg Config) Logger {
	return &logger{
		level:    cfg.Level,
		writer:   cfg.Writer,
		noColor:  cfg.NoColor,
		showTime: cfg.ShowTime,
	}
}

// SetLevel sets the global log level
func SetLevel(level Level) {
	if l, ok := defaultLogger.(*logger); ok {
		l.mu.Lock()
		l.level = level
		l.mu.Unlock()
	}
}

// SetNoColor disables color output
func SetNoColor(noColor bool) {
	if l, ok := defaultLogger.(*logger); ok {
		l.mu.Lock()
		l.noColor = noColor
		l.mu.Unlock()
	}
}

// Helper methods for the default logger
func Debug(args ...interface{})                 { defaultLogger.Debug(args...) }
func Debugf(format string, args ...interface{}) { defaultLogger.Debugf(format, args...) }
func Info(args ...interface{})                  { defaultLogger.Info(args...) }
func Infof(format string, args ...interface{})  { defaultLogger.Infof(format, args...) }
func Warn(args ...interface{})                  { defaultLogger.Warn(args...) }
func Warnf(format string, args ...interface{})  { defaultLogger.Warnf(format, args...) }
func Error(args ...interface{})                 { defaultLogger.Error(args...) }
func Errorf(format string, args ...interface{}) { defaultLogger.Errorf(format, args...) }
func Fatal(args ...interface{})                 { defaultLogger.Fatal(args...) }
func Fatalf(format string, args ...interface{}) { defaultLogger.Fatalf(format, args...) }
func WithPrefix(prefix string) Logger           { return defaultLogger.WithPrefix(prefix) }

// Implementation of logger methods

func (l *logger) log(level Level, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()

	var parts []string

	if l.showTime {
		timestamp := time.Now().Format("15:04:05")
		if l.noColor {
			parts = append(parts, timestamp)
		} else {
			parts = append(parts, colorGray+timestamp+colorReset)
		}
	}

	levelStr, levelColor := l.getLevelString(level)
	if l.noColor {
		parts = append(parts, levelStr)
	} else {
		parts = append(parts, levelColor+levelStr+colorReset)
	}

	if l.prefix != "" {
		if l.noColor {
			parts = append(parts, "["+l.prefix+"]")
		} else {
			parts = append(parts, colorCyan+"["+l.prefix+"]"+colorReset)
		}
	}

	parts = append(parts, fmt.Sprint(args...))

	_, _ = fmt.Fprintln(l.writer, strings.Join(parts, " "))

	l.mu.Unlock()

	// Exit on fatal (after unlocking mutex)
	if level == FatalLevel {
		os.Exit(1)
	}
}

func (l *logger) logf(level Level, format string, args ...interface{}) {
	l.log(level, fmt.Sprintf(format, args...))
}

func (l *logger) getLevelString(level Level) (string, string) {
	switch level {
	case DebugLevel:
		return "DEBUG", colorGray
	case InfoLevel:
		return "INFO ", colorGreen
	case WarnLevel:
		return "WARN ", colorYellow
	case ErrorLevel:
		return "ERROR", colorRed
	case FatalLevel:
		return "FATAL", colorRed + colorBold
	default:
		return "UNKNOWN", colorReset
	}
}

// Logger interface implementation

func (l *logger) Debug(args ...interface{}) {
	l.log(DebugLevel, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.logf(DebugLevel, format, args...)
}

func (l *logger) Info(args ...interface{}) {
	l.log(InfoLevel, args...)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.logf(InfoLevel, format, args...)
}

func (l *logger) Warn(args ...interface{}) {
	l.log(WarnLevel, args...)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	l.logf(WarnLevel, format, args...)
}

func (l *logger) Error(args ...interface{}) {
	l.log(ErrorLevel, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.logf(ErrorLevel, format, args...)
}

func (l *logger) Fatal(args ...interface{}) {
	l.log(FatalLevel, args...)
}

func (l *logger) Fatalf(format string, args ...interface{}) {
	l.logf(FatalLevel, format, args...)
}

func (l *logger) WithPrefix(prefix string) Logger {
	return &logger{
		level:    l.level,
		writer:   l.writer,
		prefix:   prefix,
		noColor:  l.noColor,
		showTime: l.showTime,
	}
}

// ParseLevel parses a string log level
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "fatal":
		return FatalLevel
	default:
		return InfoLevel
	}
}
