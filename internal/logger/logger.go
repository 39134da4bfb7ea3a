// Package logger owns the process-wide zerolog logger.
//
// Logs always go to stderr unless redirected with SetOutput; stdout carries
// order results when running as a CLI.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	base   zerolog.Logger
	inited bool
	output io.Writer = os.Stderr
)

// Init configures the global JSON logger.
//
// Environment variables (optional):
//   - LOG_LEVEL: debug|info|warn|error|disabled (default: info)
//   - LOG_PRETTY: true|false (default: false)
func Init() {
	mu.Lock()
	defer mu.Unlock()
	initLocked()
}

func initLocked() {
	level := parseLevel(getenv("LOG_LEVEL", "info"))
	pretty := strings.EqualFold(getenv("LOG_PRETTY", "false"), "true")

	zerolog.TimeFieldFormat = time.RFC3339Nano
	w := output
	if pretty {
		w = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}
	base = zerolog.New(w).With().Timestamp().Str("app", "nbpstat").Logger().Level(level)
	inited = true
}

// SetOutput redirects the logger and re-initializes it.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	initLocked()
}

// L returns the global logger. Call Init() once on startup.
func L() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !inited {
		initLocked()
	}
	return &base
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
