package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	router "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/propdex/internal/domain"
	healthuc "github.com/kailas-cloud/propdex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/propdex/internal/usecase/search"
)

const maxBodyBytes = 64 << 10

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Invalidator schedules a catalog reload.
type Invalidator interface {
	Invalidate()
}

// Server serves the catalog JSON API.
type Server struct {
	search        *searchuc.Service
	health        *healthuc.Service
	catalog       Invalidator
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. catalog can be nil, which disables
// the admin refresh endpoint.
func NewServer(
	search *searchuc.Service,
	health *healthuc.Service,
	catalog Invalidator,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:  search,
		health:  health,
		catalog: catalog,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrUnknownPage, http.StatusNotFound, ErrorCodePageNotFound),
		sentinelHandler(domain.ErrUnknownLanding, http.StatusNotFound, ErrorCodeLandingNotFound),
		sentinelHandler(domain.ErrUnknownFacet, http.StatusBadRequest, ErrorCodeUnknownFacet),
	}
	return s
}

// Routes mounts the API on r. apiKeys guard the admin endpoints only.
func (s *Server) Routes(r router.Router, apiKeys []string) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r router.Router) {
		r.Get("/pages/{page}/listings", s.ListListings)
		r.Post("/pages/{page}/transitions", s.Transition)
		r.Get("/pages/{page}/facets", s.ListFacets)
		r.Get("/landing/{slug}", s.GetLanding)

		r.Group(func(r router.Router) {
			r.Use(BearerAuthMiddleware(apiKeys))
			r.Post("/admin/catalog/refresh", s.RefreshCatalog)
		})
	})
}

// ListListings handles GET /api/v1/pages/{page}/listings.
func (s *Server) ListListings(w http.ResponseWriter, r *http.Request) {
	v, err := s.search.Search(r.Context(), router.URLParam(r, "page"), r.URL.Query())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewToResponse(v))
}

// Transition handles POST /api/v1/pages/{page}/transitions.
func (s *Server) Transition(w http.ResponseWriter, r *http.Request) {
	var req TransitionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Facet == "" {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "facet is required")
		return
	}

	query, err := s.search.Transition(router.URLParam(r, "page"), req.Query, req.Facet, req.Value)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TransitionResponse{Query: query})
}

// ListFacets handles GET /api/v1/pages/{page}/facets.
func (s *Server) ListFacets(w http.ResponseWriter, r *http.Request) {
	page := router.URLParam(r, "page")
	opts, err := s.search.Facets(page)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, FacetsResponse{Page: page, Options: opts})
}

// GetLanding handles GET /api/v1/landing/{slug}?page=N.
func (s *Server) GetLanding(w http.ResponseWriter, r *http.Request) {
	pageNum, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		pageNum = 1
	}

	v, err := s.search.Landing(r.Context(), router.URLParam(r, "slug"), pageNum)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewToResponse(v))
}

// RefreshCatalog handles POST /api/v1/admin/catalog/refresh.
func (s *Server) RefreshCatalog(w http.ResponseWriter, _ *http.Request) {
	if s.catalog == nil {
		writeError(w, http.StatusNotImplemented, ErrorCodeBadRequest, "catalog refresh is not available")
		return
	}
	s.catalog.Invalidate()
	w.WriteHeader(http.StatusAccepted)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrUnknownPage,
		domain.ErrUnknownLanding,
		domain.ErrUnknownFacet,
		domain.ErrNotFound,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
