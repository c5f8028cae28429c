// Command propdex-seed loads a YAML fixture of listings and banners into the
// configured catalog store.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/propdex/internal/config"
	dbPostgres "github.com/kailas-cloud/propdex/internal/db/postgres"
	dbRedis "github.com/kailas-cloud/propdex/internal/db/redis"
	"github.com/kailas-cloud/propdex/internal/domain/listing"
	"github.com/kailas-cloud/propdex/internal/domain/search/banner"
	logpkg "github.com/kailas-cloud/propdex/internal/logger"
	bannerrepo "github.com/kailas-cloud/propdex/internal/repository/banner"
	catalogrepo "github.com/kailas-cloud/propdex/internal/repository/catalog"
	"github.com/kailas-cloud/propdex/internal/repository/listingdoc"
	"github.com/kailas-cloud/propdex/internal/repository/pgcatalog"
)

// fixture is the seed file layout.
type fixture struct {
	Banners  map[banner.Category]fixtureBanner `yaml:"banners"`
	Listings []listingdoc.Doc                  `yaml:"listings"`
}

type fixtureBanner struct {
	Image     string `yaml:"image"`
	IntroText string `yaml:"intro_text"`
	PageTitle string `yaml:"page_title"`
}

// writer persists seed data.
type writer interface {
	SaveListings(ctx context.Context, listings []listing.Listing) error
	SaveBanners(ctx context.Context, banners map[banner.Category]banner.Content) error
}

func main() {
	path := flag.String("fixture", "fixtures/catalog.yaml", "path to the YAML fixture")
	flag.Parse()

	env := config.GetEnv()
	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	fx, err := readFixture(*path)
	if err != nil {
		logger.Fatal("Failed to read fixture", zap.String("path", *path), zap.Error(err))
	}
	listings, banners := fx.domain()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	w, closeFn, err := openWriter(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open catalog store", zap.Error(err))
	}
	defer closeFn()

	if err := w.SaveBanners(ctx, banners); err != nil {
		logger.Fatal("Failed to save banners", zap.Error(err))
	}
	if err := w.SaveListings(ctx, listings); err != nil {
		logger.Fatal("Failed to save listings", zap.Error(err))
	}

	logger.Info("Catalog seeded",
		zap.String("driver", cfg.Database.Driver),
		zap.Int("listings", len(listings)),
		zap.Int("banners", len(banners)),
	)
}

func readFixture(path string) (fixture, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fixture{}, fmt.Errorf("read %s: %w", path, err)
	}
	var fx fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return fixture{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return fx, nil
}

// domain converts the fixture, assigning random IDs to listings without one.
func (fx fixture) domain() ([]listing.Listing, map[banner.Category]banner.Content) {
	listings := make([]listing.Listing, len(fx.Listings))
	for i, d := range fx.Listings {
		if d.ID == "" {
			d.ID = uuid.NewString()
		}
		listings[i] = d.ToListing()
	}
	banners := make(map[banner.Category]banner.Content, len(fx.Banners))
	for c, b := range fx.Banners {
		banners[c] = banner.Content(b)
	}
	return listings, banners
}

func openWriter(ctx context.Context, cfg config.Config, logger *zap.Logger) (writer, func(), error) {
	timeout := time.Duration(cfg.Database.ReadinessTimeout) * time.Second

	switch cfg.Database.Driver {
	case config.DriverValkey, config.DriverRedis:
		store, err := dbRedis.NewStore(dbRedis.Config{Addrs: cfg.Database.Addrs, Password: cfg.Database.Password})
		if err != nil {
			return nil, nil, err
		}
		if err := store.WaitForReady(ctx, timeout); err != nil {
			store.Close()
			return nil, nil, err
		}
		return redisWriter{
			Repo:    catalogrepo.New(store, cfg.Catalog.KeyPrefix, logger),
			banners: bannerrepo.New(store, cfg.Catalog.KeyPrefix),
		}, store.Close, nil

	case config.DriverPostgres:
		pool, err := dbPostgres.NewPool(ctx, dbPostgres.Config{URL: cfg.Database.URL, MaxConns: cfg.Database.MaxConns})
		if err != nil {
			return nil, nil, err
		}
		if err := dbPostgres.WaitForReady(ctx, pool, timeout); err != nil {
			pool.Close()
			return nil, nil, err
		}
		repo := pgcatalog.New(pool, logger)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

// redisWriter pairs the listing and banner repositories of one store.
type redisWriter struct {
	*catalogrepo.Repo
	banners *bannerrepo.Repo
}

func (w redisWriter) SaveBanners(ctx context.Context, banners map[banner.Category]banner.Content) error {
	return w.banners.SaveBanners(ctx, banners)
}
