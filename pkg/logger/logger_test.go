package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestFromContextCarriesRunID(t *testing.T) {
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(old)

	ctx := WithRunID(context.Background(), "20260101T000000Z")
	FromContext(ctx).Info("run started")

	line := buf.String()
	if !strings.Contains(line, `"run_id":"20260101T000000Z"`) {
		t.Fatalf("expected run_id attribute in log line, got %q", line)
	}
}

func TestFromContextWithoutRunID(t *testing.T) {
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(old)

	FromContext(context.Background()).Info("run started")

	if line := buf.String(); strings.Contains(line, "run_id") {
		t.Fatalf("run_id should be absent without context value, got %q", line)
	}
}
