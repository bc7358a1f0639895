package logger

import "fmt"

// Symbols used by the helper loggers
const (
	IconCheck = "✓"
	IconCross = "✗"
	IconDot   = "•"
)

// Success logs a success message with a checkmark
func Success(args ...interface{}) {
	message := fmt.Sprint(args...)
	defaultLogger.Info(IconCheck + " " + message)
}

// Successf logs a formatted success message
func Successf(format string, args ...interface{}) {
	Success(fmt.Sprintf(format, args...))
}

// Failure logs a failure message with a cross
func Failure(args ...interface{}) {
	message := fmt.Sprint(args...)
	defaultLogger.Error(IconCross + " " + message)
}

// Failuref logs a formatted failure message
func Failuref(format string, args ...interface{}) {
	Failure(fmt.Sprintf(format, args...))
}

// LogList logs a list of items with bullets
func LogList(title string, items []string) {
	Info(title)
	for _, item := range items {
		fmt.Printf("  %s %s\n", IconDot, item)
	}
}
