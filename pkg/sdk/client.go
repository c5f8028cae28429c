package propdex

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	dbPostgres "github.com/kailas-cloud/propdex/internal/db/postgres"
	dbRedis "github.com/kailas-cloud/propdex/internal/db/redis"
	"github.com/kailas-cloud/propdex/internal/domain"
	"github.com/kailas-cloud/propdex/internal/domain/landing"
	"github.com/kailas-cloud/propdex/internal/domain/search/facet"
	"github.com/kailas-cloud/propdex/internal/domain/search/state"
	bannerrepo "github.com/kailas-cloud/propdex/internal/repository/banner"
	catalogrepo "github.com/kailas-cloud/propdex/internal/repository/catalog"
	"github.com/kailas-cloud/propdex/internal/repository/pgcatalog"
	healthuc "github.com/kailas-cloud/propdex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/propdex/internal/usecase/search"
	"github.com/kailas-cloud/propdex/internal/usecase/snapshot"
)

const defaultReadinessTimeout = 10 * time.Second

// Узкие интерфейсы use case-слоя, подменяются в тестах.
type searchUseCase interface {
	Search(ctx context.Context, pageName string, values url.Values) (searchuc.View, error)
	Landing(ctx context.Context, slug string, pageNum int) (searchuc.View, error)
	Transition(pageName, rawQuery, key, value string) (string, error)
	Facets(pageName string) (facet.Options, error)
	Pages() []string
	LandingSlugs() []string
}

type catalogCache interface {
	Refresh(ctx context.Context) error
	Run(ctx context.Context, interval time.Duration)
}

// Client is the propdex SDK entry point. It is safe for concurrent use.
type Client struct {
	search    searchUseCase
	catalog   catalogCache
	healthSvc healthUseCase
	obs       *observer
	stop      context.CancelFunc
	closeFn   func()
}

// backend is the catalog source selected by the options.
type backend struct {
	catalog snapshot.Loader
	banners searchuc.BannerReader
	pinger  healthuc.DBPinger
	close   func()
}

// New creates a Client and loads the catalog once.
// The provided context bounds the readiness check and the initial load.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{prefix: domain.KeyPrefix}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.static && cfg.driver != "" {
		return nil, errors.New("propdex: WithListings cannot be combined with a database option")
	}
	if !cfg.static && cfg.driver == "" {
		return nil, errors.New("propdex: catalog source required (use WithValkey, WithRedis, WithPostgres or WithListings)")
	}

	registry, err := landing.NewRegistry(cfg.landing)
	if err != nil {
		return nil, fmt.Errorf("propdex: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	be, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	snap := snapshot.New(be.catalog, zap.NewNop())
	if err := snap.Refresh(ctx); err != nil {
		be.close()
		return nil, fmt.Errorf("propdex: load catalog: %w", err)
	}

	c := &Client{
		search: searchuc.New(snap, be.banners,
			searchuc.WithPageSize(cfg.pageSize),
			searchuc.WithLanding(registry),
		),
		catalog:   snap,
		healthSvc: healthuc.New(be.pinger, snap),
		obs:       obs,
		closeFn:   be.close,
	}
	if cfg.refreshInterval > 0 && !cfg.static {
		c.startRefresh(cfg.refreshInterval)
	}
	return c, nil
}

func openBackend(ctx context.Context, cfg *clientConfig) (backend, error) {
	if cfg.static {
		return backend{
			catalog: staticCatalog(cfg.listings),
			banners: staticBanners(cfg.banners),
			close:   func() {},
		}, nil
	}

	switch cfg.driver {
	case "valkey", "redis":
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return backend{}, fmt.Errorf("propdex: create %s store: %w", cfg.driver, err)
		}
		if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			store.Close()
			return backend{}, fmt.Errorf("propdex: database not ready: %w", err)
		}
		return backend{
			catalog: catalogrepo.New(store, cfg.prefix, zap.NewNop()),
			banners: bannerrepo.New(store, cfg.prefix),
			pinger:  store,
			close:   store.Close,
		}, nil
	case "postgres":
		pool, err := dbPostgres.NewPool(ctx, dbPostgres.Config{URL: cfg.url})
		if err != nil {
			return backend{}, fmt.Errorf("propdex: create postgres pool: %w", err)
		}
		if err := dbPostgres.WaitForReady(ctx, pool, defaultReadinessTimeout); err != nil {
			pool.Close()
			return backend{}, fmt.Errorf("propdex: database not ready: %w", err)
		}
		repo := pgcatalog.New(pool, zap.NewNop())
		return backend{catalog: repo, banners: repo, pinger: pool, close: pool.Close}, nil
	default:
		return backend{}, fmt.Errorf("propdex: unknown driver %q", cfg.driver)
	}
}

func (c *Client) startRefresh(interval time.Duration) {
	ctx, cancel := context.WithCancel(context.Background())
	c.stop = cancel
	go c.catalog.Run(ctx, interval)
}

// Close stops background refresh and releases the database connection.
func (c *Client) Close() {
	if c.stop != nil {
		c.stop()
	}
	if c.closeFn != nil {
		c.closeFn()
	}
}

// Search renders catalog page pageName ("residential" or "commercial") for
// rawQuery. Unknown facet tokens are ignored and the page number is clamped.
func (c *Client) Search(ctx context.Context, pageName, rawQuery string) (v View, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search", pageName, start, err) }()

	res, err := c.search.Search(ctx, pageName, state.ParseQuery(rawQuery))
	if err != nil {
		return View{}, fmt.Errorf("search %s: %w", pageName, err)
	}
	v = toView(res)
	c.obs.view(v)
	return v, nil
}

// Landing renders the SEO landing page slug at page pageNum.
func (c *Client) Landing(ctx context.Context, slug string, pageNum int) (v View, err error) {
	start := time.Now()
	defer func() { c.obs.observe("landing", v.Page, start, err) }()

	res, err := c.search.Landing(ctx, slug, pageNum)
	if err != nil {
		return View{}, fmt.Errorf("landing %s: %w", slug, err)
	}
	v = toView(res)
	c.obs.view(v)
	return v, nil
}

// Transition applies one facet change to rawQuery and returns the canonical
// query of the next view. The page parameter is always reset.
func (c *Client) Transition(pageName, rawQuery, facetKey, value string) (q string, err error) {
	start := time.Now()
	defer func() { c.obs.observe("transition", pageName, start, err) }()

	q, err = c.search.Transition(pageName, rawQuery, facetKey, value)
	if err != nil {
		return "", fmt.Errorf("transition %s: %w", facetKey, err)
	}
	return q, nil
}

// Facets lists the facet tokens page pageName accepts.
func (c *Client) Facets(pageName string) (FacetOptions, error) {
	opts, err := c.search.Facets(pageName)
	if err != nil {
		return FacetOptions{}, fmt.Errorf("facets %s: %w", pageName, err)
	}
	return opts, nil
}

// Pages returns the catalog page names.
func (c *Client) Pages() []string { return c.search.Pages() }

// LandingSlugs returns the registered landing slugs.
func (c *Client) LandingSlugs() []string { return c.search.LandingSlugs() }

// Refresh reloads the catalog from the database now.
func (c *Client) Refresh(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("refresh", "", start, err) }()

	if err = c.catalog.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	return nil
}

// staticCatalog serves a fixed listing slice.
type staticCatalog []Listing

func (s staticCatalog) ListListings(_ context.Context) ([]Listing, error) {
	return s, nil
}

// staticBanners serves fixed banner content.
type staticBanners map[BannerCategory]BannerContent

func (s staticBanners) GetBanner(_ context.Context, c BannerCategory) (BannerContent, error) {
	content, ok := s[c]
	if !ok {
		return BannerContent{}, fmt.Errorf("banner %s: %w", c, domain.ErrNotFound)
	}
	return content, nil
}
