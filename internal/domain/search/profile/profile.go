// Package profile describes the catalog pages: which category each shows,
// which facet tokens it accepts and how it titles itself.
package profile

import (
	"fmt"
	"slices"

	"github.com/kailas-cloud/propdex/internal/domain"
	"github.com/kailas-cloud/propdex/internal/domain/listing"
	"github.com/kailas-cloud/propdex/internal/domain/search/banner"
	"github.com/kailas-cloud/propdex/internal/domain/search/facet"
	"github.com/kailas-cloud/propdex/internal/domain/search/page"
)

// Page names.
const (
	Residential = "residential"
	Commercial  = "commercial"
)

// Profile is the fixed configuration of one catalog page.
type Profile struct {
	Name          string
	Category      listing.Category
	Vocabulary    facet.Vocabulary
	DefaultTitle  string
	TitleSuffix   string
	DefaultBanner banner.Category
	FallbackIntro string
	PageSize      int
}

var profiles = map[string]Profile{
	Residential: {
		Name:     Residential,
		Category: listing.CategoryResidential,
		Vocabulary: facet.Vocabulary{
			SubTypes: []facet.SubType{facet.SubTypeApartment, facet.SubTypeBuilderFloor},
			Statuses: []facet.Status{
				facet.StatusNewLaunch,
				facet.StatusReadyToMove,
				facet.StatusUnderConstruction,
				facet.StatusPreLaunch,
				facet.StatusTrending,
			},
			Localities:     facet.DefaultLocalities,
			Budgets:        facet.DefaultBudgets,
			Configurations: facet.DefaultConfigurations,
		},
		DefaultTitle:  "Residential Properties in Gurgaon",
		TitleSuffix:   "Residential Properties",
		DefaultBanner: banner.Residential,
		FallbackIntro: "Explore verified apartments and builder floors across Gurgaon's " +
			"most sought-after corridors, from new launches to ready-to-move homes.",
		PageSize: page.DefaultSize,
	},
	Commercial: {
		Name:     Commercial,
		Category: listing.CategoryCommercial,
		Vocabulary: facet.Vocabulary{
			SubTypes: []facet.SubType{facet.SubTypeRetailShops, facet.SubTypeSCOPlots},
			Statuses: []facet.Status{
				facet.StatusNewLaunch,
				facet.StatusReadyToMove,
				facet.StatusUnderConstruction,
				facet.StatusPreLaunch,
			},
			Localities:     facet.DefaultLocalities,
			Budgets:        facet.DefaultBudgets,
			Configurations: facet.DefaultConfigurations,
		},
		DefaultTitle:  "Commercial Properties in Gurgaon",
		TitleSuffix:   "Commercial Properties",
		DefaultBanner: banner.Commercial,
		FallbackIntro: "Browse retail shops and SCO plots on Gurgaon's high-street " +
			"corridors, with pricing and possession status at a glance.",
		PageSize: page.DefaultSize,
	},
}

// Lookup returns the profile for a page name.
func Lookup(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", domain.ErrUnknownPage, name)
	}
	return p, nil
}

// Names returns all page names in sorted order.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
