package web

import (
	"net/http"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	rl := newRateLimiter(2, time.Minute, func(http.ResponseWriter, *http.Request) {})
	defer rl.stop()
	rl.now = func() time.Time { return now }

	if !rl.allow("a") || !rl.allow("a") {
		t.Fatal("first two requests should pass")
	}
	if rl.allow("a") {
		t.Error("third request in window should be rejected")
	}
	if !rl.allow("b") {
		t.Error("other clients have their own budget")
	}

	now = now.Add(time.Minute + time.Second)
	if !rl.allow("a") {
		t.Error("budget should reset after the window")
	}
}

func TestRateLimiterEvict(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	rl := newRateLimiter(1, time.Minute, func(http.ResponseWriter, *http.Request) {})
	defer rl.stop()
	rl.now = func() time.Time { return now }

	rl.allow("stale")
	now = now.Add(90 * time.Second)
	rl.allow("fresh")
	now = now.Add(45 * time.Second)

	rl.evict()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.visitors["stale"]; ok {
		t.Error("stale visitor should be evicted")
	}
	if _, ok := rl.visitors["fresh"]; !ok {
		t.Error("fresh visitor should be kept")
	}
}

func TestRetryAfter(t *testing.T) {
	tests := []struct {
		window time.Duration
		want   string
	}{
		{time.Minute, "60"},
		{1500 * time.Millisecond, "2"},
		{time.Millisecond, "1"},
	}
	for _, tt := range tests {
		if got := retryAfter(tt.window); got != tt.want {
			t.Errorf("retryAfter(%v) = %q, want %q", tt.window, got, tt.want)
		}
	}
}

func TestRateLimiterStopIdempotent(t *testing.T) {
	rl := newRateLimiter(1, time.Minute, func(http.ResponseWriter, *http.Request) {})
	rl.stop()
	rl.stop()
}
