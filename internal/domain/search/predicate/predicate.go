// Package predicate builds per-facet listing filters. Each facet is independent;
// a set of predicates is combined with AND.
package predicate

import (
	"strings"

	"github.com/kailas-cloud/propdex/internal/domain/listing"
	"github.com/kailas-cloud/propdex/internal/domain/price"
	"github.com/kailas-cloud/propdex/internal/domain/search/facet"
	"github.com/kailas-cloud/propdex/internal/domain/search/state"
)

// Predicate reports whether a listing passes one facet.
type Predicate func(listing.Listing) bool

func matchAll(listing.Listing) bool { return true }

// Category keeps listings of the page's category.
func Category(c listing.Category) Predicate {
	return func(l listing.Listing) bool { return l.Category == c }
}

// Keyword keeps listings whose title, developer, location or sector contains
// kw, ignoring case.
func Keyword(kw string) Predicate {
	needle := strings.ToLower(strings.TrimSpace(kw))
	if needle == "" {
		return matchAll
	}
	return func(l listing.Listing) bool {
		for _, field := range []string{l.Title, l.DeveloperName, l.LocationText, l.SectorText} {
			if strings.Contains(strings.ToLower(field), needle) {
				return true
			}
		}
		return false
	}
}

// SubType keeps listings carrying the token's sub-type flag.
// A token with no flag restricts nothing.
func SubType(t facet.SubType) Predicate {
	flag, ok := t.Flag()
	if !ok {
		return matchAll
	}
	return func(l listing.Listing) bool { return l.SubTypes.Has(flag) }
}

// Status keeps listings carrying the token's status flag.
// A token with no flag restricts nothing.
func Status(s facet.Status) Predicate {
	flag, ok := s.Flag()
	if !ok {
		return matchAll
	}
	return func(l listing.Listing) bool { return l.Statuses.Has(flag) }
}

// Locality keeps listings whose location mentions the locality.
func Locality(loc facet.Locality) Predicate {
	phrase := strings.ToLower(loc.Phrase())
	if phrase == "" {
		return matchAll
	}
	return func(l listing.Listing) bool {
		return strings.Contains(strings.ToLower(l.LocationText), phrase)
	}
}

// Budget keeps listings whose price range overlaps the bucket. The open-ended
// bucket needs the listing's upper price to reach its floor. Listings without a
// readable price never match.
func Budget(b facet.Budget) Predicate {
	lo, hi, open, ok := b.Bounds()
	if !ok {
		return matchAll
	}
	return func(l listing.Listing) bool {
		r, parsed := price.Parse(l.PriceRangeText)
		if !parsed {
			return false
		}
		if open {
			return r.Max >= lo
		}
		return r.Overlaps(lo, hi)
	}
}

// Configuration keeps listings offering at least one matching layout.
func Configuration(c facet.Configuration) Predicate {
	return func(l listing.Listing) bool {
		for _, label := range l.Configurations {
			if facet.MatchConfiguration(label, c) {
				return true
			}
		}
		return false
	}
}

// FromState returns the predicates for every facet set in s.
func FromState(s state.State) []Predicate {
	var preds []Predicate
	if s.Keyword != "" {
		preds = append(preds, Keyword(s.Keyword))
	}
	if s.SubType != "" {
		preds = append(preds, SubType(s.SubType))
	}
	if s.Status != "" {
		preds = append(preds, Status(s.Status))
	}
	if s.Locality != "" {
		preds = append(preds, Locality(s.Locality))
	}
	if s.Budget != "" {
		preds = append(preds, Budget(s.Budget))
	}
	if s.Configuration != "" {
		preds = append(preds, Configuration(s.Configuration))
	}
	return preds
}

// All combines predicates with AND. No predicates accept everything.
func All(preds ...Predicate) Predicate {
	return func(l listing.Listing) bool {
		for _, p := range preds {
			if !p(l) {
				return false
			}
		}
		return true
	}
}
