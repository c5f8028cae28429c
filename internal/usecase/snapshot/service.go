// Package snapshot keeps the last loaded listing catalog in memory and
// refreshes it in the background.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/propdex/internal/domain/listing"
	"github.com/kailas-cloud/propdex/internal/metrics"
)

// Refresh sources, used as metric labels.
const (
	SourceStartup    = "startup"
	SourceTick       = "tick"
	SourceInvalidate = "invalidate"
)

// ErrNotLoaded is reported by HealthCheck before the first successful load.
var ErrNotLoaded = errors.New("catalog not loaded")

// Snapshot is a read-mostly catalog cache. Readers never block on loads.
type Snapshot struct {
	loader    Loader
	versioner Versioner
	logger    *zap.Logger
	maxAge    time.Duration
	now       func() time.Time

	tickets    atomic.Uint64
	invalidate chan struct{}

	mu        sync.RWMutex
	listings  []listing.Listing
	installed uint64
	version   int64
	loadedAt  time.Time
}

// Option configures a Snapshot.
type Option func(*Snapshot)

// WithMaxAge makes HealthCheck fail when the last successful load is older than d.
func WithMaxAge(d time.Duration) Option {
	return func(s *Snapshot) { s.maxAge = d }
}

// New creates an empty snapshot over loader.
func New(loader Loader, logger *zap.Logger, opts ...Option) *Snapshot {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Snapshot{
		loader:     loader,
		logger:     logger,
		now:        time.Now,
		invalidate: make(chan struct{}, 1),
	}
	if v, ok := loader.(Versioner); ok {
		s.versioner = v
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Listings returns the installed catalog, empty before the first load.
// The slice is shared; callers must not modify it.
func (s *Snapshot) Listings() []listing.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listings
}

// ListListings lets the snapshot stand in for a Loader.
func (s *Snapshot) ListListings(_ context.Context) ([]listing.Listing, error) {
	return s.Listings(), nil
}

// LoadedAt returns the time of the last installed load (zero if none).
func (s *Snapshot) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Refresh loads the catalog now and installs it unless a newer load won.
func (s *Snapshot) Refresh(ctx context.Context) error {
	return s.refresh(ctx, SourceStartup, true)
}

// Invalidate schedules an immediate reload on the Run loop. Calls made while
// one is already pending coalesce.
func (s *Snapshot) Invalidate() {
	select {
	case s.invalidate <- struct{}{}:
	default:
	}
}

// Run refreshes every interval and on Invalidate until ctx is done.
// A non-positive interval disables periodic refresh.
func (s *Snapshot) Run(ctx context.Context, interval time.Duration) {
	var tick <-chan time.Time
	if interval > 0 {
		t := time.NewTicker(interval)
		defer t.Stop()
		tick = t.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			_ = s.refresh(ctx, SourceTick, false)
		case <-s.invalidate:
			_ = s.refresh(ctx, SourceInvalidate, true)
		}
	}
}

// HealthCheck fails before the first load or when the data is older than the max age.
func (s *Snapshot) HealthCheck(_ context.Context) error {
	loadedAt := s.LoadedAt()
	if loadedAt.IsZero() {
		return ErrNotLoaded
	}
	if s.maxAge > 0 {
		if age := s.now().Sub(loadedAt); age > s.maxAge {
			return fmt.Errorf("catalog is stale: last load %s ago", age.Round(time.Second))
		}
	}
	return nil
}

func (s *Snapshot) refresh(ctx context.Context, source string, force bool) error {
	ticket := s.tickets.Add(1)
	start := time.Now()

	version, versionErr := s.currentVersion(ctx)
	if !force && versionErr == nil && s.unchanged(version) {
		s.touch(ticket)
		metrics.CatalogRefreshTotal.WithLabelValues(source, "unchanged").Inc()
		return nil
	}

	listings, err := s.loader.ListListings(ctx)
	metrics.CatalogRefreshDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CatalogRefreshTotal.WithLabelValues(source, "error").Inc()
		s.logger.Warn("catalog refresh failed, keeping previous snapshot",
			zap.String("source", source),
			zap.Error(err),
		)
		return fmt.Errorf("load catalog: %w", err)
	}
	if listings == nil {
		listings = []listing.Listing{}
	}

	s.mu.Lock()
	if ticket <= s.installed {
		s.mu.Unlock()
		metrics.CatalogRefreshTotal.WithLabelValues(source, "stale").Inc()
		return nil
	}
	s.listings = listings
	s.installed = ticket
	s.loadedAt = s.now()
	if versionErr == nil {
		s.version = version
	}
	s.mu.Unlock()

	metrics.CatalogListings.Set(float64(len(listings)))
	metrics.CatalogRefreshTotal.WithLabelValues(source, "ok").Inc()
	s.logger.Debug("catalog refreshed",
		zap.String("source", source),
		zap.Int("listings", len(listings)),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

func (s *Snapshot) currentVersion(ctx context.Context) (int64, error) {
	if s.versioner == nil {
		return 0, errors.New("no versioner")
	}
	v, err := s.versioner.Version(ctx)
	if err != nil {
		s.logger.Debug("catalog version unavailable", zap.Error(err))
	}
	return v, err
}

func (s *Snapshot) unchanged(version int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.loadedAt.IsZero() && version == s.version
}

// touch marks an unchanged catalog as fresh.
func (s *Snapshot) touch(ticket uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket > s.installed {
		s.installed = ticket
		s.loadedAt = s.now()
	}
}
