// Package logger provides leveled logging for text-to-cw.
//
// Progress messages go to stdout; diagnostics go to stderr. Debug
// output is off unless explicitly enabled.
package logger

import (
	"io"
	"log"
	"os"
)

var (
	// InfoLogger handles informational messages.
	InfoLogger *log.Logger
	// ErrorLogger handles error messages.
	ErrorLogger *log.Logger
	// DebugLogger handles debug messages.
	DebugLogger *log.Logger
)

// Initialize sets up the loggers. Debug messages are discarded unless
// debug is true.
func Initialize(debug bool) {
	InfoLogger = log.New(os.Stdout, "", 0)
	ErrorLogger = log.New(os.Stderr, "text-to-cw: ", 0)

	if debug {
		DebugLogger = log.New(os.Stderr, "debug: ", log.Ltime)
	} else {
		DebugLogger = log.New(io.Discard, "", 0)
	}
}

// Info logs informational messages.
func Info(message string, args ...any) {
	if InfoLogger != nil {
		InfoLogger.Printf(message, args...)
	}
}

// Error logs error messages.
func Error(message string, args ...any) {
	if ErrorLogger != nil {
		ErrorLogger.Printf(message, args...)
	}
}

// Debug logs debug messages.
func Debug(message string, args ...any) {
	if DebugLogger != nil {
		DebugLogger.Printf(message, args...)
	}
}

// Fatal logs an error message and terminates the program with a
// failure status.
func Fatal(message string, args ...any) {
	if ErrorLogger != nil {
		ErrorLogger.Printf(message, args...)
	} else {
		log.Printf(message, args...)
	}
	os.Exit(1)
}
