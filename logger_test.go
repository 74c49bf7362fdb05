package sdfgen

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestLoggerDefaultsToSilent(t *testing.T) {
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger must report all levels disabled")
	}

	// Must not panic or write anywhere.
	l.Info("message", "key", "value")
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	Logger().Info("atlas generated", "tiles", 7)

	if !bytes.Contains(buf.Bytes(), []byte("atlas generated")) {
		t.Errorf("log output missing message: %q", buf.String())
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)

	Logger().Info("should not appear")

	if buf.Len() != 0 {
		t.Errorf("unexpected log output after reset: %q", buf.String())
	}
}
