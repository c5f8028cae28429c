package propdex

import (
	"context"
	"net/url"
	"time"

	"github.com/kailas-cloud/propdex/internal/domain/search/facet"
	searchuc "github.com/kailas-cloud/propdex/internal/usecase/search"
)

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn     func(ctx context.Context, pageName string, values url.Values) (searchuc.View, error)
	landingFn    func(ctx context.Context, slug string, pageNum int) (searchuc.View, error)
	transitionFn func(pageName, rawQuery, key, value string) (string, error)
	facetsFn     func(pageName string) (facet.Options, error)
}

func (m *mockSearchUC) Search(ctx context.Context, pageName string, values url.Values) (searchuc.View, error) {
	return m.searchFn(ctx, pageName, values)
}

func (m *mockSearchUC) Landing(ctx context.Context, slug string, pageNum int) (searchuc.View, error) {
	return m.landingFn(ctx, slug, pageNum)
}

func (m *mockSearchUC) Transition(pageName, rawQuery, key, value string) (string, error) {
	return m.transitionFn(pageName, rawQuery, key, value)
}

func (m *mockSearchUC) Facets(pageName string) (facet.Options, error) {
	return m.facetsFn(pageName)
}

func (m *mockSearchUC) Pages() []string { return []string{"commercial", "residential"} }

func (m *mockSearchUC) LandingSlugs() []string { return nil }

// --- catalogCache mock ---

type mockCatalog struct {
	refreshErr error
	refreshes  int
}

func (m *mockCatalog) Refresh(_ context.Context) error {
	m.refreshes++
	return m.refreshErr
}

func (m *mockCatalog) Run(ctx context.Context, _ time.Duration) {
	<-ctx.Done()
}

// --- helpers ---

func int64p(v int64) *int64 { return &v }

func sampleListings() []Listing {
	return []Listing{
		{
			ID: "res-1", Title: "Skyline Residences", Category: Residential,
			SubTypes: SubTypeFlags{Apartment: true}, Statuses: StatusFlags{ReadyToMove: true},
			LocationText: "Golf Course Road", PriceRangeText: "₹2.2 - 2.8 Cr",
			Configurations: []string{"3 BHK"}, IsActive: true, CreatedAt: int64p(300),
		},
		{
			ID: "res-2", Title: "Crest Towers", Category: Residential,
			SubTypes: SubTypeFlags{Apartment: true}, Statuses: StatusFlags{NewLaunch: true},
			LocationText: "Dwarka Expressway", PriceRangeText: "1.85 Cr - 2.9 Cr",
			Configurations: []string{"2 BHK", "3 BHK"}, IsActive: true, CreatedAt: int64p(500),
		},
		{
			ID: "res-3", Title: "Greenwood Floors", Category: Residential,
			SubTypes: SubTypeFlags{BuilderFloor: true}, Statuses: StatusFlags{ReadyToMove: true},
			LocationText: "Sohna Road", PriceRangeText: "₹1.2–1.6 Cr",
			IsActive: true, CreatedAt: int64p(100),
		},
		{
			ID: "res-4", Title: "Archived Meadows", Category: Residential,
			SubTypes: SubTypeFlags{Apartment: true}, PriceRangeText: "₹2.5 Cr",
			IsActive: false, CreatedAt: int64p(900),
		},
		{
			ID: "com-1", Title: "SCO Boulevard", Category: Commercial,
			SubTypes: SubTypeFlags{SCO: true}, PriceRangeText: "₹6.5 - 9 Cr",
			IsActive: true, CreatedAt: int64p(700),
		},
	}
}

func testClient(search searchUseCase, catalog catalogCache) *Client {
	return &Client{search: search, catalog: catalog}
}
