package engine

import (
	"cmp"
	"slices"

	"github.com/kailas-cloud/propdex/internal/domain/listing"
)

// SortByRecency returns a copy of items ordered newest first. Listings without
// a creation time sort as the oldest; ties keep catalog order.
func SortByRecency(items []listing.Listing) []listing.Listing {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b listing.Listing) int {
		return cmp.Compare(b.CreatedAtOrZero(), a.CreatedAtOrZero())
	})
	return out
}
