// Command routeimport copies a routes directory into the SQLite or Postgres
// asset store so the server can run without shipping the files.
//
// Usage:
//
//	routeimport -dir ./routes -sqlite routes.db
//	DATABASE_URL=postgres://... routeimport -dir ./routes
//
// Flags override ASSETS_DIR and ASSETS_SQLITE_PATH; the destination defaults
// to the store the server configuration selects.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JonMunkholm/mmc-maps/internal/assets"
	"github.com/JonMunkholm/mmc-maps/internal/config"
	"github.com/JonMunkholm/mmc-maps/internal/logging"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		slog.Error("import failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional here; flags cover the common case
	_ = godotenv.Overload()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dir := flag.String("dir", cfg.Assets.Dir, "routes directory with routes.yaml, *.csv and *.geojson")
	sqlitePath := flag.String("sqlite", cfg.Assets.SQLitePath, "SQLite database to import into")
	timeout := flag.Duration("timeout", 5*time.Minute, "abort the import after this long")
	flag.Parse()

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	src, err := assets.NewDirSource(*dir)
	if err != nil {
		return err
	}

	dst, closeDst, err := openWriter(ctx, cfg, *sqlitePath)
	if err != nil {
		return err
	}
	defer closeDst()

	start := time.Now()
	n, err := assets.Copy(ctx, dst, src)
	if err != nil {
		return fmt.Errorf("after %d routes: %w", n, err)
	}

	slog.Info("import complete",
		"routes", n,
		"from", *dir,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// openWriter picks the destination store. An explicit -sqlite path wins over
// DATABASE_URL.
func openWriter(ctx context.Context, cfg *config.Config, sqlitePath string) (assets.Writer, func(), error) {
	if sqlitePath != "" {
		s, err := assets.OpenSQLite(sqlitePath)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("importing into sqlite", "path", sqlitePath)
		return s, func() { s.Close() }, nil
	}

	if cfg.Database.URL == "" {
		return nil, nil, errors.New("no destination: pass -sqlite or set DATABASE_URL")
	}

	pool, err := assets.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	pg := assets.NewPostgresSource(pool)
	if err := pg.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	slog.Info("importing into postgres")
	return pg, pool.Close, nil
}
