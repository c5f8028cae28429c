package propdex

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver   string // "valkey", "redis" or "postgres"
	addrs    []string
	password string
	url      string
	prefix   string

	listings []Listing
	banners  map[BannerCategory]BannerContent
	static   bool

	pageSize        int
	landing         []LandingPreset
	refreshInterval time.Duration

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithValkey reads the catalog from a Valkey instance with valkey-json.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis reads the catalog from a Redis 8+ instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithPostgres reads the catalog from the listings and banners tables.
func WithPostgres(url string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "postgres"
		c.url = url
	})
}

// WithKeyPrefix sets the Redis/Valkey key namespace. Default: "propdex:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.prefix = prefix
	})
}

// WithListings serves a fixed catalog instead of a database.
// The slice is copied.
func WithListings(listings []Listing) Option {
	return optionFunc(func(c *clientConfig) {
		c.listings = append([]Listing(nil), listings...)
		c.static = true
	})
}

// WithBanners sets banner content for a static catalog.
func WithBanners(banners map[BannerCategory]BannerContent) Option {
	return optionFunc(func(c *clientConfig) {
		c.banners = banners
	})
}

// WithPageSize overrides the number of listings per page. Default: 12.
func WithPageSize(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.pageSize = n
	})
}

// WithLandingPages registers SEO landing presets. Presets are validated by New.
func WithLandingPages(presets ...LandingPreset) Option {
	return optionFunc(func(c *clientConfig) {
		c.landing = append(c.landing, presets...)
	})
}

// WithRefreshInterval reloads a database catalog in the background.
// Zero (default) loads once in New; call Refresh to reload.
func WithRefreshInterval(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.refreshInterval = d
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
