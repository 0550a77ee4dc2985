package logging

import (
	"testing"

	"github.com/go-logr/logr"
)

func TestLogDefaultsToDiscard(t *testing.T) {
	SetLogger(logr.Discard())
	if Log().Enabled() {
		t.Error("expected discard logger to be disabled")
	}
}

func TestNewLoggerVerbosity(t *testing.T) {
	l, err := NewLogger(DEBUG, false)
	if err != nil {
		t.Fatalf("NewLogger() failed: %v", err)
	}
	if !l.V(DEBUG).Enabled() {
		t.Error("expected V(DEBUG) to be enabled at DEBUG verbosity")
	}
	if l.V(TRACE).Enabled() {
		t.Error("expected V(TRACE) to be disabled at DEBUG verbosity")
	}
}

func TestNewTestLoggerInstallsGlobal(t *testing.T) {
	defer SetLogger(logr.Discard())

	l := NewTestLogger()
	if !Log().V(TRACE).Enabled() {
		t.Error("expected global logger to emit TRACE after NewTestLogger")
	}
	l.V(DEBUG).Info("test logger ready", "component", "logging")
}
