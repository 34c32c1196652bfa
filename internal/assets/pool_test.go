package assets

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/JonMunkholm/mmc-maps/internal/config"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := newTestDir(t)

	src, closeFn, err := Open(ctx, &config.Config{Assets: config.AssetsConfig{Dir: dir}})
	if err != nil {
		t.Fatalf("Open dir: %v", err)
	}
	closeFn()
	if _, ok := src.(*DirSource); !ok {
		t.Errorf("got %T, want *DirSource", src)
	}

	dbPath := filepath.Join(t.TempDir(), "routes.db")
	src, closeFn, err = Open(ctx, &config.Config{Assets: config.AssetsConfig{Dir: dir, SQLitePath: dbPath}})
	if err != nil {
		t.Fatalf("Open sqlite: %v", err)
	}
	defer closeFn()
	if _, ok := src.(*SQLiteSource); !ok {
		t.Errorf("got %T, want *SQLiteSource", src)
	}

	if _, _, err := Open(ctx, &config.Config{Assets: config.AssetsConfig{Dir: filepath.Join(dir, "missing")}}); err == nil {
		t.Error("expected error for missing directory")
	}
	if _, _, err := Open(ctx, &config.Config{Database: config.DatabaseConfig{URL: "://bad"}}); err == nil {
		t.Error("expected error for malformed database url")
	}
}
