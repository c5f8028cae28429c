// Package engine narrows and orders a catalog for one page request.
package engine

import (
	"github.com/kailas-cloud/propdex/internal/domain/listing"
	"github.com/kailas-cloud/propdex/internal/domain/search/predicate"
)

// Filter returns the active listings of category that pass every predicate.
// The input slice is never modified.
func Filter(catalog []listing.Listing, category listing.Category, preds ...predicate.Predicate) []listing.Listing {
	inCategory := predicate.Category(category)
	match := predicate.All(preds...)

	out := make([]listing.Listing, 0, len(catalog))
	for _, l := range catalog {
		if !l.IsActive || !inCategory(l) {
			continue
		}
		if match(l) {
			out = append(out, l)
		}
	}
	return out
}
