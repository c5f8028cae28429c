package snapshot

import (
	"context"
	"sync"

	"github.com/kailas-cloud/propdex/internal/domain/listing"
)

type mockLoader struct {
	mu       sync.Mutex
	listings []listing.Listing
	err      error
	calls    int
}

func (m *mockLoader) ListListings(_ context.Context) ([]listing.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.listings, m.err
}

func (m *mockLoader) set(listings []listing.Listing, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings, m.err = listings, err
}

func (m *mockLoader) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// versionedLoader adds a catalog version counter.
type versionedLoader struct {
	mockLoader
	version int64
}

func (v *versionedLoader) Version(_ context.Context) (int64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.version, nil
}

// gatedLoader blocks each call until its gate is released.
type gatedLoader struct {
	started chan int
	gates   []chan struct{}
	results [][]listing.Listing
	mu      sync.Mutex
	n       int
}

func (g *gatedLoader) ListListings(_ context.Context) ([]listing.Listing, error) {
	g.mu.Lock()
	i := g.n
	g.n++
	g.mu.Unlock()

	g.started <- i
	<-g.gates[i]
	return g.results[i], nil
}

func ids(ls []listing.Listing) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.ID
	}
	return out
}
