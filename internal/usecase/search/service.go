package search

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/propdex/internal/domain"
	"github.com/kailas-cloud/propdex/internal/domain/landing"
	"github.com/kailas-cloud/propdex/internal/domain/listing"
	"github.com/kailas-cloud/propdex/internal/domain/search/banner"
	"github.com/kailas-cloud/propdex/internal/domain/search/engine"
	"github.com/kailas-cloud/propdex/internal/domain/search/facet"
	"github.com/kailas-cloud/propdex/internal/domain/search/page"
	"github.com/kailas-cloud/propdex/internal/domain/search/predicate"
	"github.com/kailas-cloud/propdex/internal/domain/search/profile"
	"github.com/kailas-cloud/propdex/internal/domain/search/state"
	"github.com/kailas-cloud/propdex/internal/domain/search/title"
	"github.com/kailas-cloud/propdex/internal/logger"
	"github.com/kailas-cloud/propdex/internal/metrics"
)

// View is one rendered catalog page.
type View struct {
	Page     string
	Slug     string
	State    state.State
	Query    string
	Title    string
	Banner   banner.Presentation
	Listings page.Result[listing.Listing]
}

// Service runs the catalog pipeline: decode, filter, sort, paginate, present.
type Service struct {
	catalog  CatalogReader
	banners  BannerReader
	landing  *landing.Registry
	pageSize int
}

// Option configures a Service.
type Option func(*Service)

// WithPageSize overrides every profile's page size.
func WithPageSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithLanding enables SEO landing pages.
func WithLanding(r *landing.Registry) Option {
	return func(s *Service) { s.landing = r }
}

// New creates a search service. banners can be nil.
func New(catalog CatalogReader, banners BannerReader, opts ...Option) *Service {
	s := &Service{catalog: catalog, banners: banners}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Search renders catalog page pageName for the given query values.
func (s *Service) Search(ctx context.Context, pageName string, values url.Values) (View, error) {
	prof, err := profile.Lookup(pageName)
	if err != nil {
		return View{}, err
	}
	return s.render(ctx, prof, values, ""), nil
}

// Landing renders the SEO landing page slug at the requested page number.
func (s *Service) Landing(ctx context.Context, slug string, pageNum int) (View, error) {
	if s.landing == nil {
		return View{}, fmt.Errorf("%w: %q", domain.ErrUnknownLanding, slug)
	}
	r, err := s.landing.Resolve(slug, pageNum)
	if err != nil {
		return View{}, err
	}
	v := s.render(ctx, r.Profile, r.Values, r.Title)
	v.Slug = r.Slug
	return v, nil
}

// Transition applies one facet change to rawQuery and returns the new query string.
func (s *Service) Transition(pageName, rawQuery, key, value string) (string, error) {
	if _, err := profile.Lookup(pageName); err != nil {
		return "", err
	}
	next, err := state.Transition(state.ParseQuery(rawQuery), key, value)
	if err != nil {
		return "", err
	}
	return next.Encode(), nil
}

// Facets lists the tokens page pageName accepts, with display labels.
func (s *Service) Facets(pageName string) (facet.Options, error) {
	prof, err := profile.Lookup(pageName)
	if err != nil {
		return facet.Options{}, err
	}
	return prof.Vocabulary.Options(), nil
}

// Pages returns the catalog page names.
func (s *Service) Pages() []string {
	return profile.Names()
}

// LandingSlugs returns the registered landing slugs.
func (s *Service) LandingSlugs() []string {
	if s.landing == nil {
		return nil
	}
	return s.landing.Slugs()
}

func (s *Service) render(ctx context.Context, prof profile.Profile, values url.Values, heading string) View {
	ctx = logger.With(ctx, zap.String("page", prof.Name))
	st := state.Decode(values, prof.Vocabulary)
	if heading == "" {
		heading = title.Generate(st, prof)
	}
	category := banner.Resolve(st.SubType, prof.DefaultBanner)

	var (
		catalog []listing.Listing
		content banner.Content
	)
	// Both loaders degrade instead of failing; the group only reports the
	// caller going away, which also stops whichever fetch is still running.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		catalog = s.loadCatalog(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		content = s.loadBanner(gctx, category, prof.DefaultBanner)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Debug("render cancelled", zap.Error(err))
	}

	matched := engine.Filter(catalog, prof.Category, predicate.FromState(st)...)
	size := prof.PageSize
	if s.pageSize > 0 {
		size = s.pageSize
	}
	result := page.Paginate(engine.SortByRecency(matched), size, st.Page)
	st.Page = result.CurrentPage

	metrics.SearchResults.WithLabelValues(prof.Name).Observe(float64(result.TotalCount))

	return View{
		Page:     prof.Name,
		State:    st,
		Query:    st.Query(),
		Title:    heading,
		Banner:   banner.Present(category, content, heading, prof.FallbackIntro),
		Listings: result,
	}
}

func (s *Service) loadCatalog(ctx context.Context) []listing.Listing {
	listings, err := s.catalog.ListListings(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn("catalog unavailable, rendering empty page", zap.Error(err))
		return nil
	}
	return listings
}

// loadBanner fetches content for c, falling back to the page default
// category and then to blank content.
func (s *Service) loadBanner(ctx context.Context, c, pageDefault banner.Category) banner.Content {
	if s.banners == nil {
		return banner.Content{}
	}
	for _, cat := range []banner.Category{c, pageDefault} {
		content, err := s.banners.GetBanner(ctx, cat)
		if err == nil {
			return content
		}
		if !errors.Is(err, domain.ErrNotFound) {
			metrics.BannerFallbackTotal.WithLabelValues(string(cat), "error").Inc()
			logger.FromContext(ctx).Warn("banner unavailable", zap.String("category", string(cat)), zap.Error(err))
			return banner.Content{}
		}
		metrics.BannerFallbackTotal.WithLabelValues(string(cat), "missing").Inc()
		if cat == pageDefault {
			break
		}
	}
	return banner.Content{}
}
