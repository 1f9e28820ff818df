// Package rlog provides structured, level-gated logging for the
// anonymizer core.
//
// Each entry is written as a single line with fixed-width columns:
//
//	2006-01-02 15:04:05.000 | COMPONENT     | ACTION                 | LEVEL | message
//
// Levels (lowest to highest): debug, info, warn, error, fatal. Entries
// below the configured minimum level are silently dropped.
//
// Usage:
//
//	log := rlog.New("ingest", cfg.LoggingLevel)
//	log.Info("enqueue", "accepted instance 1.2.3.4")
//	log.Errorf("anonymize", "capture_phi failed: %v", err)
package rlog

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// Level represents a log severity.
type Level int

// Log severity constants, ordered lowest to highest.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// Logger writes structured log lines for a single core component
// (ingest, retrieval, export, control, phiindex, storage, ...).
type Logger struct {
	component string
	level     Level
	out       *log.Logger
}

// New creates a Logger for the given component, gated at the given level
// string. Unrecognized level strings default to "info".
func New(component, levelStr string) *Logger {
	return &Logger{
		component: strings.ToUpper(component),
		level:     parseLevel(levelStr),
		out:       log.New(os.Stderr, "", 0),
	}
}

// SetLevel changes the minimum log level at runtime.
func (l *Logger) SetLevel(levelStr string) { l.level = parseLevel(levelStr) }

func (l *Logger) Debug(action, msg string) { l.write(LevelDebug, "DEBUG", action, msg) }
func (l *Logger) Info(action, msg string)  { l.write(LevelInfo, "INFO ", action, msg) }
func (l *Logger) Warn(action, msg string)  { l.write(LevelWarn, "WARN ", action, msg) }
func (l *Logger) Error(action, msg string) { l.write(LevelError, "ERROR", action, msg) }

func (l *Logger) Debugf(action, format string, args ...any) {
	l.Debug(action, fmt.Sprintf(format, args...))
}
func (l *Logger) Infof(action, format string, args ...any) {
	l.Info(action, fmt.Sprintf(format, args...))
}
func (l *Logger) Warnf(action, format string, args ...any) {
	l.Warn(action, fmt.Sprintf(format, args...))
}
func (l *Logger) Errorf(action, format string, args ...any) {
	l.Error(action, fmt.Sprintf(format, args...))
}

// Fatal logs at FATAL level and then calls os.Exit(1).
func (l *Logger) Fatal(action, msg string) {
	l.write(LevelFatal, "FATAL", action, msg)
	os.Exit(1)
}

// Fatalf logs a formatted message at FATAL level and then calls os.Exit(1).
func (l *Logger) Fatalf(action, format string, args ...any) {
	l.Fatal(action, fmt.Sprintf(format, args...))
}

func (l *Logger) write(level Level, levelLabel, action, msg string) {
	if level < l.level {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05.000")
	l.out.Printf("%s | %-12s | %-22s | %s | %s", ts, l.component, action, levelLabel, msg)
}

func parseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}
