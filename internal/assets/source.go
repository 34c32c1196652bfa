// Package assets loads route assets: the route catalog, the elevation CSV
// behind each route's profile chart and the GeoJSON line drawn on its map.
//
// Three backends implement Source. DirSource reads a directory of files and
// is what a fresh checkout serves. PostgresSource and SQLiteSource store the
// same assets in a table so a deployment can manage routes without shipping
// files; cmd/routeimport fills them from a directory with Copy.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
)

// ErrNotFound is returned when a route or one of its assets does not exist.
var ErrNotFound = errors.New("route not found")

// ErrInvalidID is returned for identifiers that can never name a route.
var ErrInvalidID = errors.New("invalid route id")

// slugPattern restricts slugs to names that are safe as file names.
var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidSlug reports whether s can be used as a route slug.
func ValidSlug(s string) bool {
	return len(s) <= 128 && slugPattern.MatchString(s)
}

// Route is one entry of the route catalog.
type Route struct {
	ID          string  `json:"id" yaml:"id"`
	Slug        string  `json:"slug" yaml:"slug"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description"`
	Difficulty  string  `json:"difficulty,omitempty" yaml:"difficulty"`
	DistanceKm  float64 `json:"distanceKm,omitempty" yaml:"distanceKm"`
}

// Source provides read access to route assets. Route identifiers are the
// route's ID or its slug.
type Source interface {
	List(ctx context.Context) ([]Route, error)
	Route(ctx context.Context, id string) (Route, error)
	ElevationCSV(ctx context.Context, id string) (io.ReadCloser, error)
	GeoJSON(ctx context.Context, id string) ([]byte, error)
}

// Writer stores route assets. Put inserts or replaces the route with the same
// slug and returns it with its stored ID.
type Writer interface {
	Put(ctx context.Context, route Route, elevationCSV, geoJSON []byte) (Route, error)
}

// Copy writes every route of src into dst and returns how many were copied.
// A route without GeoJSON is copied with an empty geometry.
func Copy(ctx context.Context, dst Writer, src Source) (int, error) {
	routes, err := src.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list routes: %w", err)
	}

	copied := 0
	for _, route := range routes {
		if err := ctx.Err(); err != nil {
			return copied, err
		}

		csv, err := readElevation(ctx, src, route.Slug)
		if err != nil {
			return copied, fmt.Errorf("route %s: %w", route.Slug, err)
		}

		geo, err := src.GeoJSON(ctx, route.Slug)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return copied, fmt.Errorf("route %s: geojson: %w", route.Slug, err)
		}

		if _, err := dst.Put(ctx, route, csv, geo); err != nil {
			return copied, fmt.Errorf("route %s: store: %w", route.Slug, err)
		}
		copied++
	}

	return copied, nil
}

func readElevation(ctx context.Context, src Source, id string) ([]byte, error) {
	rc, err := src.ElevationCSV(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("elevation csv: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("elevation csv: %w", err)
	}
	return data, nil
}
