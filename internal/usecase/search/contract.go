package search

import (
	"context"

	"github.com/kailas-cloud/propdex/internal/domain/listing"
	"github.com/kailas-cloud/propdex/internal/domain/search/banner"
)

// CatalogReader supplies the listing catalog.
type CatalogReader interface {
	ListListings(ctx context.Context) ([]listing.Listing, error)
}

// BannerReader supplies banner content; domain.ErrNotFound when a category has none.
type BannerReader interface {
	GetBanner(ctx context.Context, c banner.Category) (banner.Content, error)
}
