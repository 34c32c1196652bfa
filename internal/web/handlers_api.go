package web

import (
	"fmt"
	"net/http"

	"github.com/JonMunkholm/mmc-maps/internal/assets"
	"github.com/JonMunkholm/mmc-maps/internal/core"
	"github.com/JonMunkholm/mmc-maps/internal/elevation"
	"github.com/JonMunkholm/mmc-maps/internal/logging"
	"github.com/go-chi/chi/v5"
)

// routesResponse is the body of GET /api/routes.
type routesResponse struct {
	Routes []assets.Route `json:"routes"`
	Count  int            `json:"count"`
}

// samplesResponse is the body of GET /api/routes/{routeID}/elevation?format=samples.
type samplesResponse struct {
	Route   assets.Route       `json:"route"`
	Summary elevation.Summary  `json:"summary"`
	Samples []elevation.Sample `json:"samples"`
}

// healthResponse is the body of GET /healthz.
type healthResponse struct {
	Status string             `json:"status"`
	Source string             `json:"source"`
	Loads  core.LimiterStatus `json:"loads"`
}

// handleListRoutes returns the route catalog.
func (s *Server) handleListRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := s.service.Routes(r.Context())
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, routesResponse{Routes: routes, Count: len(routes)})
}

// handleGetRoute returns one route's metadata.
func (s *Server) handleGetRoute(w http.ResponseWriter, r *http.Request) {
	route, err := s.service.Route(r.Context(), chi.URLParam(r, "routeID"))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, route)
}

// handleElevation returns the parsed elevation profile. By default records are
// returned as parsed, keyed by their CSV headers; ?format=samples returns the
// fixed typed sample shape instead.
func (s *Server) handleElevation(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "" && format != "records" && format != "samples" {
		err := fmt.Errorf("%w: unknown format %q", errBadRequest, format)
		s.respondError(w, r, err, statusFor(err))
		return
	}

	profile, err := s.service.Profile(r.Context(), chi.URLParam(r, "routeID"))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	if format == "samples" {
		writeJSON(w, samplesResponse{
			Route:   profile.Route,
			Summary: profile.Summary,
			Samples: profile.Samples(),
		})
		return
	}
	writeJSON(w, profile)
}

// handleGeoJSON serves the route geometry as stored.
func (s *Server) handleGeoJSON(w http.ResponseWriter, r *http.Request) {
	geo, err := s.service.GeoJSON(r.Context(), chi.URLParam(r, "routeID"))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	if _, err := w.Write(geo); err != nil {
		logging.FromContext(r.Context()).Debug("write geojson", "error", err)
	}
}

// handleHealth reports liveness and current load pressure.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, healthResponse{
		Status: "ok",
		Source: s.cfg.AssetSource(),
		Loads:  s.service.LimiterStatus(),
	})
}
