package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// CatalogFile is the catalog read from the root of a DirSource.
const CatalogFile = "routes.yaml"

// catalog is the routes.yaml document.
type catalog struct {
	Routes []Route `yaml:"routes"`
}

// DirSource serves routes from a directory:
//
//	routes.yaml          catalog (optional)
//	<slug>.csv           elevation profile
//	<slug>.geojson       map geometry
//
// Without routes.yaml every <slug>.csv is a route named after its slug. The
// catalog is re-read on every call so edits show up without a restart.
type DirSource struct {
	dir string
}

// NewDirSource returns a source rooted at dir. The directory must exist.
func NewDirSource(dir string) (*DirSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets dir %s: not a directory", dir)
	}
	return &DirSource{dir: dir}, nil
}

// Dir returns the root directory.
func (s *DirSource) Dir() string {
	return s.dir
}

func (s *DirSource) List(ctx context.Context) ([]Route, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, CatalogFile))
	if errors.Is(err, fs.ErrNotExist) {
		return s.scan()
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	routes := make([]Route, 0, len(c.Routes))
	seen := make(map[string]bool, len(c.Routes))
	for _, r := range c.Routes {
		if !ValidSlug(r.Slug) {
			return nil, fmt.Errorf("parse catalog: %w: %q", ErrInvalidID, r.Slug)
		}
		if seen[r.Slug] {
			return nil, fmt.Errorf("parse catalog: duplicate slug %q", r.Slug)
		}
		seen[r.Slug] = true

		r.ID = r.Slug
		if r.Name == "" {
			r.Name = r.Slug
		}
		routes = append(routes, r)
	}
	return routes, nil
}

// scan lists the *.csv files when there is no catalog.
func (s *DirSource) scan() ([]Route, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.csv"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	routes := make([]Route, 0, len(matches))
	for _, m := range matches {
		slug := strings.TrimSuffix(filepath.Base(m), ".csv")
		if !ValidSlug(slug) {
			continue
		}
		routes = append(routes, Route{ID: slug, Slug: slug, Name: slug})
	}
	return routes, nil
}

func (s *DirSource) Route(ctx context.Context, id string) (Route, error) {
	if !ValidSlug(id) {
		return Route{}, ErrInvalidID
	}

	routes, err := s.List(ctx)
	if err != nil {
		return Route{}, err
	}
	for _, r := range routes {
		if r.Slug == id {
			return r, nil
		}
	}
	return Route{}, ErrNotFound
}

func (s *DirSource) ElevationCSV(ctx context.Context, id string) (io.ReadCloser, error) {
	route, err := s.Route(ctx, id)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(s.path(route.Slug, ".csv"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open elevation csv: %w", err)
	}
	return f, nil
}

func (s *DirSource) GeoJSON(ctx context.Context, id string) ([]byte, error) {
	route, err := s.Route(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(route.Slug, ".geojson"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read geojson: %w", err)
	}
	return data, nil
}

func (s *DirSource) path(slug, ext string) string {
	return filepath.Join(s.dir, slug+ext)
}
