package propdex

import (
	"github.com/kailas-cloud/propdex/internal/domain/landing"
	"github.com/kailas-cloud/propdex/internal/domain/listing"
	"github.com/kailas-cloud/propdex/internal/domain/search/banner"
	"github.com/kailas-cloud/propdex/internal/domain/search/facet"
	searchuc "github.com/kailas-cloud/propdex/internal/usecase/search"
)

// Listing is a property record.
type Listing = listing.Listing

// ListingCategory is the top-level page a listing belongs to.
type ListingCategory = listing.Category

// Listing categories.
const (
	Residential = listing.CategoryResidential
	Commercial  = listing.CategoryCommercial
)

// SubTypeFlags marks the property types a listing offers.
type SubTypeFlags = listing.SubTypeFlags

// StatusFlags marks the lifecycle states of a listing.
type StatusFlags = listing.StatusFlags

// BannerCategory keys banner content.
type BannerCategory = banner.Category

// BannerContent is the stored copy for one banner category.
type BannerContent = banner.Content

// LandingPreset maps an SEO slug to a catalog page and canonical query.
type LandingPreset = landing.Preset

// FacetOptions lists the tokens a page accepts per facet.
type FacetOptions = facet.Options

// FacetOption is one selectable token with its display label.
type FacetOption = facet.Option

// Filters is the decoded facet selection. Empty strings are unset facets.
type Filters struct {
	Keyword  string
	Type     string
	Status   string
	Locality string
	Budget   string
	BHK      string
}

// Banner is the header block rendered above the listing grid.
type Banner struct {
	Category  BannerCategory
	Image     string
	PageTitle string
	IntroText string
}

// View is one rendered catalog page.
type View struct {
	Page    string
	Slug    string // set for landing pages
	Query   string // canonical query string of the view
	Title   string
	Filters Filters
	Banner  Banner
	Items   []Listing

	TotalCount  int
	TotalPages  int
	CurrentPage int
	PageSize    int
}

// HasNext reports whether a page follows the current one.
func (v View) HasNext() bool { return v.CurrentPage < v.TotalPages }

// HasPrev reports whether a page precedes the current one.
func (v View) HasPrev() bool { return v.CurrentPage > 1 }

func toView(v searchuc.View) View {
	return View{
		Page:  v.Page,
		Slug:  v.Slug,
		Query: v.Query,
		Title: v.Title,
		Filters: Filters{
			Keyword:  v.State.Keyword,
			Type:     string(v.State.SubType),
			Status:   string(v.State.Status),
			Locality: string(v.State.Locality),
			Budget:   string(v.State.Budget),
			BHK:      string(v.State.Configuration),
		},
		Banner: Banner{
			Category:  v.Banner.Category,
			Image:     v.Banner.Image,
			PageTitle: v.Banner.PageTitle,
			IntroText: v.Banner.IntroText,
		},
		Items:       v.Listings.Items,
		TotalCount:  v.Listings.TotalCount,
		TotalPages:  v.Listings.TotalPages,
		CurrentPage: v.Listings.CurrentPage,
		PageSize:    v.Listings.PageSize,
	}
}
