package chi

import (
	"github.com/kailas-cloud/propdex/internal/domain/search/banner"
	"github.com/kailas-cloud/propdex/internal/domain/search/facet"
	"github.com/kailas-cloud/propdex/internal/repository/listingdoc"
	searchuc "github.com/kailas-cloud/propdex/internal/usecase/search"
)

// ErrorCode is a machine-readable error identifier.
type ErrorCode string

// Error codes returned in ErrorResponse.
const (
	ErrorCodeBadRequest      ErrorCode = "bad_request"
	ErrorCodeUnauthorized    ErrorCode = "unauthorized"
	ErrorCodePageNotFound    ErrorCode = "page_not_found"
	ErrorCodeLandingNotFound ErrorCode = "landing_not_found"
	ErrorCodeUnknownFacet    ErrorCode = "unknown_facet"
	ErrorCodeInternalError   ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// FiltersResponse is the decoded filter state, tokens only.
type FiltersResponse struct {
	Keyword       string `json:"q,omitempty"`
	SubType       string `json:"type,omitempty"`
	Status        string `json:"status,omitempty"`
	Locality      string `json:"locality,omitempty"`
	Budget        string `json:"budget,omitempty"`
	Configuration string `json:"bhk,omitempty"`
}

// PaginationResponse describes the current page window.
type PaginationResponse struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalCount int  `json:"total_count"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// BannerResponse is the hero banner above the grid.
type BannerResponse struct {
	Category  banner.Category `json:"category"`
	Image     string          `json:"image,omitempty"`
	PageTitle string          `json:"page_title"`
	IntroText string          `json:"intro_text"`
}

// ViewResponse is one rendered catalog or landing page.
type ViewResponse struct {
	Page       string             `json:"page"`
	Slug       string             `json:"slug,omitempty"`
	Title      string             `json:"title"`
	Query      string             `json:"query"`
	Filters    FiltersResponse    `json:"filters"`
	Banner     BannerResponse     `json:"banner"`
	Items      []listingdoc.Doc   `json:"items"`
	Pagination PaginationResponse `json:"pagination"`
}

// TransitionRequest changes one facet of query.
type TransitionRequest struct {
	Query string `json:"query"`
	Facet string `json:"facet"`
	Value string `json:"value"`
}

// TransitionResponse carries the new canonical query.
type TransitionResponse struct {
	Query string `json:"query"`
}

// FacetsResponse lists the selectable tokens of a page.
type FacetsResponse struct {
	Page    string        `json:"page"`
	Options facet.Options `json:"options"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func viewToResponse(v searchuc.View) ViewResponse {
	items := make([]listingdoc.Doc, len(v.Listings.Items))
	for i, l := range v.Listings.Items {
		items[i] = listingdoc.FromListing(l)
	}
	return ViewResponse{
		Page:  v.Page,
		Slug:  v.Slug,
		Title: v.Title,
		Query: v.Query,
		Filters: FiltersResponse{
			Keyword:       v.State.Keyword,
			SubType:       string(v.State.SubType),
			Status:        string(v.State.Status),
			Locality:      string(v.State.Locality),
			Budget:        string(v.State.Budget),
			Configuration: string(v.State.Configuration),
		},
		Banner: BannerResponse{
			Category:  v.Banner.Category,
			Image:     v.Banner.Image,
			PageTitle: v.Banner.PageTitle,
			IntroText: v.Banner.IntroText,
		},
		Items: items,
		Pagination: PaginationResponse{
			Page:       v.Listings.CurrentPage,
			PageSize:   v.Listings.PageSize,
			TotalCount: v.Listings.TotalCount,
			TotalPages: v.Listings.TotalPages,
			HasPrev:    v.Listings.HasPrev(),
			HasNext:    v.Listings.HasNext(),
		},
	}
}
