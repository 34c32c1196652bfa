package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/JonMunkholm/mmc-maps/internal/assets"
	"github.com/JonMunkholm/mmc-maps/internal/config"
	"github.com/JonMunkholm/mmc-maps/internal/elevation"
	"github.com/JonMunkholm/mmc-maps/internal/logging"
)

// ErrInvalidGeoJSON is returned when stored map geometry is not a GeoJSON object.
var ErrInvalidGeoJSON = errors.New("invalid geojson")

// DefaultMaxProfileBytes caps an elevation CSV when no config is given.
const DefaultMaxProfileBytes = 10 << 20

// DefaultLoadTimeout bounds a single load when no config is given.
const DefaultLoadTimeout = 15 * time.Second

// Profile is a parsed elevation profile ready for charting.
type Profile struct {
	Route   assets.Route       `json:"route"`
	Headers []string           `json:"headers"`
	Records []elevation.Record `json:"records"`
	Summary elevation.Summary  `json:"summary"`
}

// Samples returns the records as typed samples.
func (p Profile) Samples() []elevation.Sample {
	return elevation.Samples(p.Records)
}

// Service provides route lookups and profile loading on top of an asset source.
type Service struct {
	source      assets.Source
	limiter     *LoadLimiter
	maxBytes    int64
	loadTimeout time.Duration
}

// NewService creates a Service reading from source. A nil cfg uses defaults.
func NewService(source assets.Source, cfg *config.Config) *Service {
	s := &Service{
		source:      source,
		maxBytes:    DefaultMaxProfileBytes,
		loadTimeout: DefaultLoadTimeout,
	}

	var maxConcurrent int
	var maxWait time.Duration
	if cfg != nil {
		maxConcurrent = cfg.Assets.MaxConcurrent
		maxWait = cfg.Assets.MaxWaitTime
		if cfg.Assets.MaxProfileSize > 0 {
			s.maxBytes = cfg.Assets.MaxProfileSize
		}
		if cfg.Assets.LoadTimeout > 0 {
			s.loadTimeout = cfg.Assets.LoadTimeout
		}
	}
	s.limiter = NewLoadLimiter(maxConcurrent, maxWait)

	return s
}

// Routes lists the route catalog.
func (s *Service) Routes(ctx context.Context) ([]assets.Route, error) {
	ctx, cancel := context.WithTimeout(ctx, s.loadTimeout)
	defer cancel()

	routes, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	return routes, nil
}

// Route returns a single catalog entry by ID or slug.
func (s *Service) Route(ctx context.Context, id string) (assets.Route, error) {
	ctx, cancel := context.WithTimeout(ctx, s.loadTimeout)
	defer cancel()

	route, err := s.source.Route(ctx, id)
	if err != nil {
		return assets.Route{}, fmt.Errorf("get route %s: %w", id, err)
	}
	return route, nil
}

// Profile reads and parses the elevation CSV of a route. Loads share a
// limiter so only a bounded number of CSVs are held in memory at once.
func (s *Service) Profile(ctx context.Context, id string) (p Profile, err error) {
	start := time.Now()
	defer func() {
		profileLoads.WithLabelValues(outcome(err)).Inc()
		if err == nil {
			profileLoadSeconds.Observe(time.Since(start).Seconds())
			profileRecords.Observe(float64(len(p.Records)))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, s.loadTimeout)
	defer cancel()

	if err := s.limiter.Acquire(ctx); err != nil {
		return Profile{}, fmt.Errorf("load profile %s: %w", id, err)
	}
	defer s.limiter.Release()

	route, err := s.source.Route(ctx, id)
	if err != nil {
		return Profile{}, fmt.Errorf("load profile %s: %w", id, err)
	}

	rc, err := s.source.ElevationCSV(ctx, route.Slug)
	if err != nil {
		return Profile{}, fmt.Errorf("load profile %s: %w", id, err)
	}
	defer rc.Close()

	table, err := elevation.ParseReader(rc, s.maxBytes)
	if err != nil {
		return Profile{}, fmt.Errorf("load profile %s: %w", id, err)
	}

	logging.FromContext(ctx).Debug("profile loaded",
		"route", route.Slug,
		"records", len(table.Records),
		"columns", len(table.Headers),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return Profile{
		Route:   route,
		Headers: table.Headers,
		Records: table.Records,
		Summary: elevation.Summarize(table.Records),
	}, nil
}

// GeoJSON returns the map geometry of a route after checking that it is a
// JSON object with a "type" member.
func (s *Service) GeoJSON(ctx context.Context, id string) (geo json.RawMessage, err error) {
	defer func() {
		geoJSONLoads.WithLabelValues(outcome(err)).Inc()
	}()

	ctx, cancel := context.WithTimeout(ctx, s.loadTimeout)
	defer cancel()

	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("load geojson %s: %w", id, err)
	}
	defer s.limiter.Release()

	data, err := s.source.GeoJSON(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load geojson %s: %w", id, err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("load geojson %s: %w", id, elevation.ErrTooLarge)
	}

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil || head.Type == "" {
		return nil, fmt.Errorf("load geojson %s: %w", id, ErrInvalidGeoJSON)
	}

	return json.RawMessage(data), nil
}

// LimiterStatus returns the current load limiter state.
func (s *Service) LimiterStatus() LimiterStatus {
	return s.limiter.Status()
}

// WaitForLoads blocks until in-flight loads finish or ctx is done.
func (s *Service) WaitForLoads(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}
