package assets

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

const testCSV = "lat,lon,ele,time\n45.9,6.8,1035,2024-06-01T07:00:00Z\n45.91,6.81,1040,2024-06-01T07:00:05Z\n"

const testGeoJSON = `{"type":"FeatureCollection","features":[]}`

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// newTestDir lays out a two-route directory with a catalog.
func newTestDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTestFile(t, dir, CatalogFile, `
routes:
  - slug: utmb
    name: UTMB
    description: Around Mont Blanc
    difficulty: challenging
    distanceKm: 171.5
  - slug: lac-blanc
    difficulty: easy
`)
	writeTestFile(t, dir, "utmb.csv", testCSV)
	writeTestFile(t, dir, "utmb.geojson", testGeoJSON)
	writeTestFile(t, dir, "lac-blanc.csv", testCSV)
	return dir
}

func TestValidSlug(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"utmb", true},
		{"lac-blanc_2024", true},
		{"0route", true},
		{"", false},
		{"-leading", false},
		{"Upper", false},
		{"../etc/passwd", false},
		{"a/b", false},
		{"a.csv", false},
	}

	for _, tt := range tests {
		if got := ValidSlug(tt.in); got != tt.want {
			t.Errorf("ValidSlug(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewDirSourceErrors(t *testing.T) {
	if _, err := NewDirSource(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing dir")
	}

	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewDirSource(file); err == nil {
		t.Error("expected error for file path")
	}
}

func TestDirSourceList(t *testing.T) {
	src, err := NewDirSource(newTestDir(t))
	if err != nil {
		t.Fatalf("NewDirSource: %v", err)
	}

	routes, err := src.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("got %d routes, want 2", len(routes))
	}

	utmb := routes[0]
	if utmb.ID != "utmb" || utmb.Name != "UTMB" || utmb.DistanceKm != 171.5 || utmb.Difficulty != "challenging" {
		t.Errorf("unexpected first route: %+v", utmb)
	}
	if routes[1].Name != "lac-blanc" {
		t.Errorf("got name %q, want slug as default name", routes[1].Name)
	}
}

func TestDirSourceListWithoutCatalog(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "b-route.csv", testCSV)
	writeTestFile(t, dir, "a-route.csv", testCSV)
	writeTestFile(t, dir, "Bad Name.csv", testCSV)
	writeTestFile(t, dir, "notes.txt", "ignored")

	src, err := NewDirSource(dir)
	if err != nil {
		t.Fatal(err)
	}

	routes, err := src.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(routes) != 2 || routes[0].Slug != "a-route" || routes[1].Slug != "b-route" {
		t.Errorf("got %+v, want a-route and b-route", routes)
	}
}

func TestDirSourceCatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		catalog string
	}{
		{"bad yaml", "routes: [broken"},
		{"bad slug", "routes:\n  - slug: ../secret\n"},
		{"duplicate slug", "routes:\n  - slug: a\n  - slug: a\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeTestFile(t, dir, CatalogFile, tt.catalog)
			src, err := NewDirSource(dir)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := src.List(context.Background()); err == nil {
				t.Error("expected catalog error")
			}
		})
	}
}

func TestDirSourceRoute(t *testing.T) {
	src, err := NewDirSource(newTestDir(t))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	r, err := src.Route(ctx, "utmb")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if r.Description != "Around Mont Blanc" {
		t.Errorf("got description %q", r.Description)
	}

	if _, err := src.Route(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
	if _, err := src.Route(ctx, "../utmb"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("got %v, want ErrInvalidID", err)
	}
}

func TestDirSourceAssets(t *testing.T) {
	src, err := NewDirSource(newTestDir(t))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	rc, err := src.ElevationCSV(ctx, "utmb")
	if err != nil {
		t.Fatalf("ElevationCSV: %v", err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != testCSV {
		t.Errorf("got %q, want %q", data, testCSV)
	}

	geo, err := src.GeoJSON(ctx, "utmb")
	if err != nil {
		t.Fatalf("GeoJSON: %v", err)
	}
	if string(geo) != testGeoJSON {
		t.Errorf("got %q, want %q", geo, testGeoJSON)
	}

	if _, err := src.GeoJSON(ctx, "lac-blanc"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing geojson: got %v, want ErrNotFound", err)
	}
	if _, err := src.ElevationCSV(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown route: got %v, want ErrNotFound", err)
	}
}

func TestDirSourceCatalogEntryWithoutFile(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, CatalogFile, "routes:\n  - slug: ghost\n")

	src, err := NewDirSource(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := src.ElevationCSV(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
