package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func newBufferedLogrus(buf *bytes.Buffer) *logrus.Logger {
	base := logrus.New()
	base.SetOutput(buf)
	base.SetLevel(logrus.DebugLevel)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return base
}

func TestLogrusLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogrus(newBufferedLogrus(&buf))

	log.With(Field{Key: "component", Value: "maplinks"}).Info("built view", Field{Key: "kind", Value: "place"})

	out := buf.String()
	if !strings.Contains(out, "built view") {
		t.Fatalf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "component=maplinks") {
		t.Fatalf("expected component field, got %q", out)
	}
	if !strings.Contains(out, "kind=place") {
		t.Fatalf("expected kind field, got %q", out)
	}
}

func TestLogrusLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	base := newBufferedLogrus(&buf)
	base.SetLevel(logrus.WarnLevel)
	log := NewLogrus(base)

	log.Debug("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug line to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("expected warn line, got %q", out)
	}
}

func TestLogrusLoggerWithNoFieldsReturnsSelf(t *testing.T) {
	log := NewLogrus(nil)
	if got := log.With(); got != Logger(log) {
		t.Fatalf("expected same logger when no fields are given")
	}
}
