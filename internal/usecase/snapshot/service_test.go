package snapshot

import (
	"context"
	"errors"
	"os"
	"slices"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/kailas-cloud/propdex/internal/domain/listing"
	"github.com/kailas-cloud/propdex/internal/metrics"
)

func TestMain(m *testing.M) {
	metrics.RegisterCatalogMetrics()
	os.Exit(m.Run())
}

func TestListings_EmptyBeforeLoad(t *testing.T) {
	s := New(&mockLoader{}, zap.NewNop())

	if got := s.Listings(); len(got) != 0 {
		t.Errorf("expected empty catalog, got %d", len(got))
	}
	if !errors.Is(s.HealthCheck(context.Background()), ErrNotLoaded) {
		t.Error("expected ErrNotLoaded before the first load")
	}
}

func TestRefresh_InstallsCatalog(t *testing.T) {
	loader := &mockLoader{listings: []listing.Listing{{ID: "a"}, {ID: "b"}}}
	s := New(loader, nil)

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(s.Listings()); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Listings() = %v", got)
	}
	if got := testutil.ToFloat64(metrics.CatalogListings); got != 2 {
		t.Errorf("catalog_listings = %f, want 2", got)
	}
	if err := s.HealthCheck(context.Background()); err != nil {
		t.Errorf("unexpected health error: %v", err)
	}
}

func TestRefresh_ErrorKeepsPrevious(t *testing.T) {
	loader := &mockLoader{listings: []listing.Listing{{ID: "a"}}}
	s := New(loader, nil)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := testutil.ToFloat64(metrics.CatalogRefreshTotal.WithLabelValues(SourceStartup, "error"))
	loader.set(nil, errors.New("connection refused"))
	if err := s.Refresh(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if got := ids(s.Listings()); !slices.Equal(got, []string{"a"}) {
		t.Errorf("previous catalog lost: %v", got)
	}
	after := testutil.ToFloat64(metrics.CatalogRefreshTotal.WithLabelValues(SourceStartup, "error"))
	if after-before != 1 {
		t.Errorf("error counter delta = %f", after-before)
	}
}

func TestRefresh_NilCatalogBecomesEmpty(t *testing.T) {
	s := New(&mockLoader{}, nil)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Listings(); got == nil || len(got) != 0 {
		t.Errorf("expected non-nil empty catalog, got %#v", got)
	}
}

func TestRefresh_LastWriteWins(t *testing.T) {
	loader := &gatedLoader{
		started: make(chan int, 2),
		gates:   []chan struct{}{make(chan struct{}), make(chan struct{})},
		results: [][]listing.Listing{{{ID: "old"}}, {{ID: "new"}}},
	}
	s := New(loader, nil)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- s.Refresh(ctx) }()
	<-loader.started // first fetch holds ticket 1

	close(loader.gates[1])
	go func() { <-loader.started }()
	if err := s.Refresh(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(s.Listings()); !slices.Equal(got, []string{"new"}) {
		t.Fatalf("Listings() = %v, want [new]", got)
	}

	before := testutil.ToFloat64(metrics.CatalogRefreshTotal.WithLabelValues(SourceStartup, "stale"))
	close(loader.gates[0])
	if err := <-done; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := ids(s.Listings()); !slices.Equal(got, []string{"new"}) {
		t.Errorf("stale fetch overwrote newer catalog: %v", got)
	}
	after := testutil.ToFloat64(metrics.CatalogRefreshTotal.WithLabelValues(SourceStartup, "stale"))
	if after-before != 1 {
		t.Errorf("stale counter delta = %f", after-before)
	}
}

func TestRun_SkipsUnchangedVersion(t *testing.T) {
	loader := &versionedLoader{mockLoader: mockLoader{listings: []listing.Listing{{ID: "a"}}}, version: 4}
	s := New(loader, nil)
	ctx := context.Background()

	if err := s.Refresh(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.refresh(ctx, SourceTick, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := loader.callCount(); got != 1 {
		t.Errorf("unchanged version should skip the load, got %d calls", got)
	}

	loader.mu.Lock()
	loader.version = 5
	loader.listings = []listing.Listing{{ID: "b"}}
	loader.mu.Unlock()

	if err := s.refresh(ctx, SourceTick, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(s.Listings()); !slices.Equal(got, []string{"b"}) {
		t.Errorf("Listings() = %v, want [b]", got)
	}
}

func TestRun_Invalidate(t *testing.T) {
	loader := &mockLoader{listings: []listing.Listing{{ID: "a"}}}
	s := New(loader, nil)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		s.Run(ctx, 0)
		close(stopped)
	}()

	s.Invalidate()
	deadline := time.After(2 * time.Second)
	for s.LoadedAt().IsZero() {
		select {
		case <-deadline:
			t.Fatal("invalidate did not trigger a refresh")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	<-stopped
	if got := ids(s.Listings()); !slices.Equal(got, []string{"a"}) {
		t.Errorf("Listings() = %v", got)
	}
}

func TestInvalidate_Coalesces(t *testing.T) {
	s := New(&mockLoader{}, nil)
	s.Invalidate()
	s.Invalidate()
	s.Invalidate()

	if got := len(s.invalidate); got != 1 {
		t.Errorf("pending invalidations = %d, want 1", got)
	}
}

func TestHealthCheck_MaxAge(t *testing.T) {
	s := New(&mockLoader{}, nil, WithMaxAge(time.Minute))
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.HealthCheck(context.Background()); err != nil {
		t.Fatalf("fresh catalog reported unhealthy: %v", err)
	}

	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	if err := s.HealthCheck(context.Background()); err == nil {
		t.Error("expected stale catalog error")
	}
}
