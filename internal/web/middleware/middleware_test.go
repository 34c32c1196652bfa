package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JonMunkholm/mmc-maps/internal/config"
	"github.com/JonMunkholm/mmc-maps/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrustedRealIP(t *testing.T) {
	tests := []struct {
		name       string
		trusted    []string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "untrusted peer keeps remote addr",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "203.0.113.7:5555",
			headers:    map[string]string{"X-Real-IP": "1.2.3.4"},
			want:       "203.0.113.7:5555",
		},
		{
			name:       "trusted proxy real ip",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "10.1.2.3:5555",
			headers:    map[string]string{"X-Real-IP": "198.51.100.9"},
			want:       "198.51.100.9",
		},
		{
			name:       "trusted proxy forwarded for first hop",
			trusted:    []string{"127.0.0.1"},
			remoteAddr: "127.0.0.1:4000",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.9, 10.0.0.1"},
			want:       "198.51.100.9",
		},
		{
			name:       "malformed header ignored",
			trusted:    []string{"127.0.0.1"},
			remoteAddr: "127.0.0.1:4000",
			headers:    map[string]string{"X-Real-IP": "not-an-ip"},
			want:       "127.0.0.1:4000",
		},
		{
			name:       "no trusted proxies",
			remoteAddr: "127.0.0.1:4000",
			headers:    map[string]string{"X-Real-IP": "198.51.100.9"},
			want:       "127.0.0.1:4000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := TrustedRealIP(tt.trusted)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.RemoteAddr
			}))

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			h.ServeHTTP(httptest.NewRecorder(), r)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTrustedProxies(t *testing.T) {
	nets := ParseTrustedProxies([]string{"10.0.0.0/8", " 192.168.1.1 ", "", "bogus", "::1"})
	require.Len(t, nets, 3)
	assert.Equal(t, "10.0.0.0/8", nets[0].String())
	assert.Equal(t, "192.168.1.1/32", nets[1].String())
	assert.Equal(t, "::1/128", nets[2].String())
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	r.RemoteAddr = "203.0.113.7:5555"
	assert.Equal(t, "203.0.113.7", ClientIP(r))

	r.RemoteAddr = "198.51.100.9"
	assert.Equal(t, "198.51.100.9", ClientIP(r))

	r.RemoteAddr = "pipe"
	assert.Equal(t, "pipe", ClientIP(r))
}

func TestAPIKeyAuth(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name    string
		cfg     config.SecurityConfig
		headers map[string]string
		want    int
	}{
		{"disabled", config.SecurityConfig{}, nil, http.StatusOK},
		{"missing key", config.SecurityConfig{RequireAPIKey: true, APIKeys: []string{"k1"}}, nil, http.StatusUnauthorized},
		{"wrong key", config.SecurityConfig{RequireAPIKey: true, APIKeys: []string{"k1"}}, map[string]string{"X-API-Key": "nope"}, http.StatusForbidden},
		{"header key", config.SecurityConfig{RequireAPIKey: true, APIKeys: []string{"k1", "k2"}}, map[string]string{"X-API-Key": "k2"}, http.StatusOK},
		{"bearer key", config.SecurityConfig{RequireAPIKey: true, APIKeys: []string{"k1"}}, map[string]string{"Authorization": "Bearer k1"}, http.StatusOK},
		{"basic auth ignored", config.SecurityConfig{RequireAPIKey: true, APIKeys: []string{"k1"}}, map[string]string{"Authorization": "Basic azE6"}, http.StatusUnauthorized},
		{"no keys configured", config.SecurityConfig{RequireAPIKey: true}, map[string]string{"X-API-Key": "k1"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			r := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			w := httptest.NewRecorder()

			APIKeyAuth(&cfg)(ok).ServeHTTP(w, r)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestLoggerAndMetrics(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(logging.New(&buf, "info", "json"))
	defer slog.SetDefault(prev)

	router := chi.NewRouter()
	router.Use(Logger, Metrics)
	router.Get("/api/routes/{routeID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("gone"))
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/routes/{routeID}", "404"))

	r := httptest.NewRequest(http.MethodGet, "/api/routes/utmb", nil)
	r.RemoteAddr = "203.0.113.7:5555"
	router.ServeHTTP(httptest.NewRecorder(), r)

	out := buf.String()
	assert.True(t, strings.Contains(out, `"route":"/api/routes/{routeID}"`), out)
	assert.True(t, strings.Contains(out, `"status":404`), out)
	assert.True(t, strings.Contains(out, `"bytes":4`), out)
	assert.True(t, strings.Contains(out, `"ip":"203.0.113.7"`), out)

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/routes/{routeID}", "404"))
	assert.Equal(t, 1.0, after-before)
}
