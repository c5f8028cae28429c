package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/propdex/internal/config"
	dbPostgres "github.com/kailas-cloud/propdex/internal/db/postgres"
	dbRedis "github.com/kailas-cloud/propdex/internal/db/redis"
	bannerrepo "github.com/kailas-cloud/propdex/internal/repository/banner"
	catalogrepo "github.com/kailas-cloud/propdex/internal/repository/catalog"
	"github.com/kailas-cloud/propdex/internal/repository/pgcatalog"
	healthuc "github.com/kailas-cloud/propdex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/propdex/internal/usecase/search"
	"github.com/kailas-cloud/propdex/internal/usecase/snapshot"
)

// backend is the catalog store selected by database.driver.
type backend struct {
	catalog snapshot.Loader
	banners searchuc.BannerReader
	pinger  healthuc.DBPinger
	close   func()
}

func openBackend(ctx context.Context, cfg config.Config, logger *zap.Logger) (backend, error) {
	timeout := time.Duration(cfg.Database.ReadinessTimeout) * time.Second

	switch cfg.Database.Driver {
	case config.DriverValkey, config.DriverRedis:
		// valkey-json and Redis 8 speak the same JSON commands; one rueidis driver serves both
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
		if err != nil {
			return backend{}, fmt.Errorf("create store: %w", err)
		}
		if err := store.WaitForReady(ctx, timeout); err != nil {
			store.Close()
			return backend{}, fmt.Errorf("database not ready: %w", err)
		}
		if err := store.CheckJSON(ctx); err != nil {
			store.Close()
			return backend{}, fmt.Errorf("check json module: %w", err)
		}
		return backend{
			catalog: catalogrepo.New(store, cfg.Catalog.KeyPrefix, logger),
			banners: bannerrepo.New(store, cfg.Catalog.KeyPrefix),
			pinger:  store,
			close:   store.Close,
		}, nil

	case config.DriverPostgres:
		pool, err := dbPostgres.NewPool(ctx, dbPostgres.Config{
			URL:      cfg.Database.URL,
			MaxConns: cfg.Database.MaxConns,
		})
		if err != nil {
			return backend{}, fmt.Errorf("create pool: %w", err)
		}
		if err := dbPostgres.WaitForReady(ctx, pool, timeout); err != nil {
			pool.Close()
			return backend{}, err
		}
		repo := pgcatalog.New(pool, logger)
		return backend{catalog: repo, banners: repo, pinger: pool, close: pool.Close}, nil

	default:
		return backend{}, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}
