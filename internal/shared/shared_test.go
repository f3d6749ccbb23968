package shared

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	logger.Info("opening archive", "path", "export.tar")

	out := buf.String()
	if !strings.Contains(out, "opening archive") || !strings.Contains(out, "export.tar") {
		t.Errorf("unexpected log output %q", out)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := WithLogger(NewLogger(&buf), "run", "abc123")

	logger.Warn("archived room imported as non-archived")

	if !strings.Contains(buf.String(), "abc123") {
		t.Errorf("child logger should carry bound fields, got %q", buf.String())
	}
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if a == "" || a == b {
		t.Errorf("run ids must be unique and non-empty, got %q and %q", a, b)
	}
}
