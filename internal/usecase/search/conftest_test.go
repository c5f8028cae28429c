package search

import (
	"context"
	"sync/atomic"

	"github.com/kailas-cloud/propdex/internal/domain"
	"github.com/kailas-cloud/propdex/internal/domain/listing"
	"github.com/kailas-cloud/propdex/internal/domain/search/banner"
)

type mockCatalog struct {
	listings []listing.Listing
	err      error
}

func (m *mockCatalog) ListListings(_ context.Context) ([]listing.Listing, error) {
	return m.listings, m.err
}

// mockBanners serves content from a map; absent categories are ErrNotFound.
type mockBanners struct {
	content map[banner.Category]banner.Content
	err     error
	calls   atomic.Int32
	// cancelled is set when a lookup arrives with a done context.
	cancelled atomic.Bool
}

func (m *mockBanners) GetBanner(ctx context.Context, c banner.Category) (banner.Content, error) {
	m.calls.Add(1)
	if ctx.Err() != nil {
		m.cancelled.Store(true)
	}
	if m.err != nil {
		return banner.Content{}, m.err
	}
	content, ok := m.content[c]
	if !ok {
		return banner.Content{}, domain.ErrNotFound
	}
	return content, nil
}

func ts(v int64) *int64 { return &v }

func residential(id, price string, configs ...string) listing.Listing {
	return listing.Listing{
		ID:             id,
		Title:          "Project " + id,
		Category:       listing.CategoryResidential,
		SubTypes:       listing.SubTypeFlags{Apartment: true},
		Configurations: configs,
		PriceRangeText: price,
		IsActive:       true,
	}
}

func ids(ls []listing.Listing) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.ID
	}
	return out
}
