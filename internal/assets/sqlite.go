package assets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteSource stores route assets in a local SQLite database.
type SQLiteSource struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and migrates it.
// Use ":memory:" for a throwaway database.
func OpenSQLite(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a single connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)

	s := &SQLiteSource{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return s, nil
}

func (s *SQLiteSource) Close() error { return s.db.Close() }

func (s *SQLiteSource) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS route_assets (
			id TEXT PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			difficulty TEXT NOT NULL DEFAULT '',
			distance_km REAL NOT NULL DEFAULT 0,
			elevation_csv TEXT NOT NULL,
			geojson TEXT,
			created_at TIMESTAMP,
			updated_at TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_route_assets_name ON route_assets(name);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// sqliteLookup mirrors lookup with SQLite placeholders.
func sqliteLookup(id string) (string, string, error) {
	if u, err := uuid.Parse(id); err == nil {
		return "id = ?", u.String(), nil
	}
	if !ValidSlug(id) {
		return "", "", ErrInvalidID
	}
	return "slug = ?", id, nil
}

func (s *SQLiteSource) List(ctx context.Context) ([]Route, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, slug, name, description, difficulty, distance_km FROM route_assets ORDER BY name, slug`)
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

func (s *SQLiteSource) Route(ctx context.Context, id string) (Route, error) {
	where, arg, err := sqliteLookup(id)
	if err != nil {
		return Route{}, err
	}

	var r Route
	row := s.db.QueryRowContext(ctx, `SELECT id, slug, name, description, difficulty, distance_km FROM route_assets WHERE `+where, arg)
	switch err := row.Scan(&r.ID, &r.Slug, &r.Name, &r.Description, &r.Difficulty, &r.DistanceKm); {
	case err == nil:
		return r, nil
	case errors.Is(err, sql.ErrNoRows):
		return Route{}, ErrNotFound
	default:
		return Route{}, fmt.Errorf("get route: %w", err)
	}
}

func (s *SQLiteSource) ElevationCSV(ctx context.Context, id string) (io.ReadCloser, error) {
	where, arg, err := sqliteLookup(id)
	if err != nil {
		return nil, err
	}

	var csv string
	err = s.db.QueryRowContext(ctx, `SELECT elevation_csv FROM route_assets WHERE `+where, arg).Scan(&csv)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get elevation csv: %w", err)
	}
	return io.NopCloser(strings.NewReader(csv)), nil
}

func (s *SQLiteSource) GeoJSON(ctx context.Context, id string) ([]byte, error) {
	where, arg, err := sqliteLookup(id)
	if err != nil {
		return nil, err
	}

	var geo sql.NullString
	err = s.db.QueryRowContext(ctx, `SELECT geojson FROM route_assets WHERE `+where, arg).Scan(&geo)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get geojson: %w", err)
	}
	if !geo.Valid {
		return nil, ErrNotFound
	}
	return []byte(geo.String), nil
}

// Put upserts by slug. A new route gets a fresh UUID; an existing one keeps its ID.
func (s *SQLiteSource) Put(ctx context.Context, route Route, elevationCSV, geoJSON []byte) (Route, error) {
	if !ValidSlug(route.Slug) {
		return Route{}, ErrInvalidID
	}
	if route.Name == "" {
		route.Name = route.Slug
	}

	var geo sql.NullString
	if len(geoJSON) > 0 {
		geo = sql.NullString{String: string(geoJSON), Valid: true}
	}

	now := time.Now().UTC()
	err := s.db.QueryRowContext(ctx, `INSERT INTO route_assets(id, slug, name, description, difficulty, distance_km, elevation_csv, geojson, created_at, updated_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET name=excluded.name, description=excluded.description, difficulty=excluded.difficulty,
			distance_km=excluded.distance_km, elevation_csv=excluded.elevation_csv, geojson=excluded.geojson, updated_at=excluded.updated_at
		RETURNING id`,
		uuid.NewString(), route.Slug, route.Name, route.Description, route.Difficulty, route.DistanceKm, string(elevationCSV), geo, now, now).
		Scan(&route.ID)
	if err != nil {
		return Route{}, fmt.Errorf("put route: %w", err)
	}
	return route, nil
}
