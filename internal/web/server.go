// Package web provides the HTTP server, pages and JSON API for route maps.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/JonMunkholm/mmc-maps/internal/config"
	"github.com/JonMunkholm/mmc-maps/internal/core"
	"github.com/JonMunkholm/mmc-maps/internal/theme"
	mw "github.com/JonMunkholm/mmc-maps/internal/web/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed static
var staticFiles embed.FS

// errRateLimited is reported when a client exceeds its request budget.
var errRateLimited = errors.New("rate limit exceeded")

// Server is the HTTP server for the route map application.
type Server struct {
	service  *core.Service
	themes   *theme.Store
	cfg      *config.Config
	router   *chi.Mux
	server   *http.Server
	limiters []*rateLimiter
}

// NewServer creates a new Server instance.
func NewServer(service *core.Service, themes *theme.Store, cfg *config.Config) *Server {
	s := &Server{
		service: service,
		themes:  themes,
		cfg:     cfg,
		router:  chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(mw.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(mw.Logger)
	if s.cfg.Metrics.Enabled {
		s.router.Use(mw.Metrics)
	}
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	if s.cfg.Server.RequestTimeout > 0 {
		s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
	}

	// Security hardening
	s.router.Use(securityHeaders(s.cfg.Security.EnableCSP))

	if s.cfg.Rate.Enabled {
		s.router.Use(s.newRateLimiter(s.cfg.Rate.RequestsPerMinute, time.Minute).middleware)
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/theme.css", s.handleThemeCSS)

	if s.cfg.Metrics.Enabled {
		s.router.With(mw.APIKeyAuth(&s.cfg.Security)).Handle("/metrics", promhttp.Handler())
	}

	// Pages
	s.router.Group(func(r chi.Router) {
		r.Use(clientHints)
		r.Get("/", s.handleHome)
		r.Get("/about", s.handleAbout)
		r.Get("/route/{routeID}", s.handleRoutePage)
	})

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		if s.cfg.Rate.Enabled {
			r.Use(s.newRateLimiter(s.cfg.Rate.APILimit, time.Minute).middleware)
		}

		r.Get("/routes", s.handleListRoutes)
		r.Get("/routes/{routeID}", s.handleGetRoute)
		r.Get("/routes/{routeID}/elevation", s.handleElevation)
		r.Get("/routes/{routeID}/geojson", s.handleGeoJSON)

		r.Get("/theme", s.handleGetTheme)
		r.Post("/theme", s.handleSetTheme)
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	sc := s.cfg.Server
	s.server = &http.Server{
		Addr:         sc.Addr(),
		Handler:      s.router,
		ReadTimeout:  sc.ReadTimeout,
		WriteTimeout: sc.WriteTimeout,
		IdleTimeout:  sc.IdleTimeout,
	}

	slog.Info("starting server", "addr", sc.Addr())
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server and its background cleanup.
func (s *Server) Shutdown(ctx context.Context) error {
	for _, rl := range s.limiters {
		rl.stop()
	}
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// newRateLimiter creates a limiter that reports rejections through respondError
// and is stopped on Shutdown.
func (s *Server) newRateLimiter(rate int, window time.Duration) *rateLimiter {
	rl := newRateLimiter(rate, window, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", retryAfter(window))
		s.respondError(w, r, errRateLimited, http.StatusTooManyRequests)
	})
	s.limiters = append(s.limiters, rl)
	return rl
}

// securityHeaders adds security headers to all responses.
func securityHeaders(enableCSP bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Prevent MIME type sniffing
			w.Header().Set("X-Content-Type-Options", "nosniff")

			// Prevent clickjacking
			w.Header().Set("X-Frame-Options", "DENY")

			// Pages are self-contained: script, styles and SVG all come from this origin.
			if enableCSP {
				w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self'; style-src 'self'; img-src 'self' data:; connect-src 'self'; frame-ancestors 'none'")
			}

			// Control referrer information
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			next.ServeHTTP(w, r)
		})
	}
}

// clientHints asks browsers for their colour-scheme preference so the first
// page render without a saved cookie can match the OS.
func clientHints(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		theme.AdvertiseClientHint(w)
		next.ServeHTTP(w, r)
	})
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
