package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithConfig(&buf, "ipc", log.InfoLevel, false, false, log.TextFormatter)

	l.Debug("hidden")
	l.Info("served", "op", "query")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "ipc") || !strings.Contains(out, "served") {
		t.Errorf("output %q missing prefix or message", out)
	}
}

func TestSetup(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	Setup(true)
	if log.GetLevel() != log.DebugLevel {
		t.Errorf("Setup(true) level = %v, want debug", log.GetLevel())
	}
	Setup(false)
	if log.GetLevel() != log.WarnLevel {
		t.Errorf("Setup(false) level = %v, want warn", log.GetLevel())
	}
}
