package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PostgresSchema creates the route_assets table.
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS route_assets (
	id            UUID PRIMARY KEY,
	slug          TEXT NOT NULL UNIQUE,
	name          TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	difficulty    TEXT NOT NULL DEFAULT '',
	distance_km   DOUBLE PRECISION NOT NULL DEFAULT 0,
	elevation_csv TEXT NOT NULL,
	geojson       JSONB,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PostgresSource stores route assets in the route_assets table.
type PostgresSource struct {
	db Querier
}

// NewPostgresSource wraps a pool (or anything else satisfying Querier).
func NewPostgresSource(db Querier) *PostgresSource {
	return &PostgresSource{db: db}
}

// EnsureSchema creates the table if it does not exist.
func (s *PostgresSource) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, PostgresSchema); err != nil {
		return fmt.Errorf("create route_assets: %w", err)
	}
	return nil
}

// lookup returns the WHERE clause and argument selecting id, which may be a
// UUID or a slug.
func lookup(id string) (string, any, error) {
	if u, err := uuid.Parse(id); err == nil {
		return "id = $1::uuid", u.String(), nil
	}
	if !ValidSlug(id) {
		return "", nil, ErrInvalidID
	}
	return "slug = $1", id, nil
}

func (s *PostgresSource) List(ctx context.Context) ([]Route, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id::text, slug, name, description, difficulty, distance_km
		FROM route_assets
		ORDER BY name, slug
	`)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	defer rows.Close()

	routes := []Route{}
	for rows.Next() {
		var r Route
		if err := rows.Scan(&r.ID, &r.Slug, &r.Name, &r.Description, &r.Difficulty, &r.DistanceKm); err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		routes = append(routes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	return routes, nil
}

func (s *PostgresSource) Route(ctx context.Context, id string) (Route, error) {
	where, arg, err := lookup(id)
	if err != nil {
		return Route{}, err
	}

	var r Route
	err = s.db.QueryRow(ctx, `
		SELECT id::text, slug, name, description, difficulty, distance_km
		FROM route_assets WHERE `+where, arg).
		Scan(&r.ID, &r.Slug, &r.Name, &r.Description, &r.Difficulty, &r.DistanceKm)
	if errors.Is(err, pgx.ErrNoRows) {
		return Route{}, ErrNotFound
	}
	if err != nil {
		return Route{}, fmt.Errorf("get route: %w", err)
	}
	return r, nil
}

func (s *PostgresSource) ElevationCSV(ctx context.Context, id string) (io.ReadCloser, error) {
	where, arg, err := lookup(id)
	if err != nil {
		return nil, err
	}

	var csv string
	err = s.db.QueryRow(ctx, `SELECT elevation_csv FROM route_assets WHERE `+where, arg).Scan(&csv)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get elevation csv: %w", err)
	}
	return io.NopCloser(strings.NewReader(csv)), nil
}

func (s *PostgresSource) GeoJSON(ctx context.Context, id string) ([]byte, error) {
	where, arg, err := lookup(id)
	if err != nil {
		return nil, err
	}

	var geo *string
	err = s.db.QueryRow(ctx, `SELECT geojson::text FROM route_assets WHERE `+where, arg).Scan(&geo)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get geojson: %w", err)
	}
	if geo == nil {
		return nil, ErrNotFound
	}
	return []byte(*geo), nil
}

// Put upserts by slug. A new route gets a fresh UUID; an existing one keeps its ID.
func (s *PostgresSource) Put(ctx context.Context, route Route, elevationCSV, geoJSON []byte) (Route, error) {
	if !ValidSlug(route.Slug) {
		return Route{}, ErrInvalidID
	}
	if route.Name == "" {
		route.Name = route.Slug
	}

	var geo *string
	if len(geoJSON) > 0 {
		g := string(geoJSON)
		geo = &g
	}

	err := s.db.QueryRow(ctx, `
		INSERT INTO route_assets (id, slug, name, description, difficulty, distance_km, elevation_csv, geojson)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8::jsonb)
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			difficulty = EXCLUDED.difficulty,
			distance_km = EXCLUDED.distance_km,
			elevation_csv = EXCLUDED.elevation_csv,
			geojson = EXCLUDED.geojson,
			updated_at = NOW()
		RETURNING id::text
	`, uuid.NewString(), route.Slug, route.Name, route.Description, route.Difficulty, route.DistanceKm, string(elevationCSV), geo).
		Scan(&route.ID)
	if err != nil {
		return Route{}, fmt.Errorf("put route: %w", err)
	}
	return route, nil
}
