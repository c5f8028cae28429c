package snapshot

import (
	"context"

	"github.com/kailas-cloud/propdex/internal/domain/listing"
)

// Loader supplies the full listing catalog.
type Loader interface {
	ListListings(ctx context.Context) ([]listing.Listing, error)
}

// Versioner reports a counter that changes whenever the catalog is written.
// Loaders that also implement it let periodic refreshes skip unchanged data.
type Versioner interface {
	Version(ctx context.Context) (int64, error)
}
