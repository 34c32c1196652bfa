package assets

import (
	"context"
	"fmt"

	"github.com/JonMunkholm/mmc-maps/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool opens and pings a pgx pool sized from cfg. The caller closes it.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// Open returns the source cfg selects: Postgres when a database URL is set,
// then SQLite, then the routes directory. closeFn releases the backing store.
func Open(ctx context.Context, cfg *config.Config) (src Source, closeFn func(), err error) {
	switch cfg.AssetSource() {
	case "postgres":
		pool, err := NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		pg := NewPostgresSource(pool)
		if cfg.Database.AutoMigrate {
			if err := pg.EnsureSchema(ctx); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
		return pg, pool.Close, nil

	case "sqlite":
		s, err := OpenSQLite(cfg.Assets.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil

	default:
		d, err := NewDirSource(cfg.Assets.Dir)
		if err != nil {
			return nil, nil, err
		}
		return d, func() {}, nil
	}
}
