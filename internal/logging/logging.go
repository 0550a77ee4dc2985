// Package logging wires the logr facade used across easelcalc to a zap backend.
package logging

import (
	"os"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels passed to logger.V().
const (
	DEBUG = 1
	TRACE = 2
)

var (
	mu  sync.RWMutex
	log = logr.Discard()
)

// Log returns the process-wide logger. It discards everything until SetLogger is called.
func Log() logr.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// SetLogger replaces the process-wide logger.
func SetLogger(l logr.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// NewLogger builds a zap-backed logr.Logger. verbosity maps to zap levels below Info,
// so V(DEBUG) lines are emitted when verbosity >= DEBUG.
func NewLogger(verbosity int, development bool) (logr.Logger, error) {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	cfg.DisableStacktrace = true

	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), err
	}
	return zapr.NewLogger(zl), nil
}

// NewTestLogger installs a development logger at TRACE verbosity and returns it.
// Test suites call it before RunSpecs.
func NewTestLogger() logr.Logger {
	zl := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		zapcore.Level(-TRACE),
	))
	l := zapr.NewLogger(zl)
	SetLogger(l)
	return l
}
