package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"chatty", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", "json")

	logger.Debug("hidden")
	logger.Info("profile loaded", "route", "utmb", "records", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1 (debug filtered): %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if entry["msg"] != "profile loaded" || entry["route"] != "utmb" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "debug", "text").Debug("shown", "k", "v")

	if !strings.Contains(buf.String(), "msg=shown") || !strings.Contains(buf.String(), "k=v") {
		t.Errorf("unexpected text output %q", buf.String())
	}
}

func TestFromContext_RequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(New(&buf, "info", "json"))
	defer slog.SetDefault(prev)

	var ctx context.Context
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx = r.Context()
		WithFields(r.Context(), "route", "utmb").Info("hello")
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	reqID := middleware.GetReqID(ctx)
	if reqID == "" {
		t.Fatal("RequestID middleware did not set an id")
	}
	if !strings.Contains(buf.String(), `"request_id":"`+reqID+`"`) {
		t.Errorf("log missing request_id %q: %s", reqID, buf.String())
	}
	if !strings.Contains(buf.String(), `"route":"utmb"`) {
		t.Errorf("log missing extra field: %s", buf.String())
	}
}

func TestFromContext_NoRequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(New(&buf, "info", "json"))
	defer slog.SetDefault(prev)

	FromContext(context.Background()).Info("plain")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("unexpected request_id in %s", buf.String())
	}
}
