package metrics

import "github.com/prometheus/client_golang/prometheus"

// Catalog Prometheus metrics.
var (
	CatalogRefreshTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "propdex",
			Name:      "catalog_refresh_total",
			Help:      "Catalog snapshot refreshes by trigger and outcome",
		},
		[]string{"source", "result"}, // source: "startup" / "tick" / "invalidate"; result: "ok" / "error" / "unchanged" / "stale"
	)

	CatalogRefreshDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "propdex",
			Name:      "catalog_refresh_duration_seconds",
			Help:      "Catalog load duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	CatalogListings = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "propdex",
			Name:      "catalog_listings",
			Help:      "Listings in the installed catalog snapshot",
		},
	)

	SearchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "propdex",
			Name:      "search_results",
			Help:      "Listings matched per search",
			Buckets:   []float64{0, 1, 5, 12, 25, 50, 100, 250, 500},
		},
		[]string{"page"},
	)

	BannerFallbackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "propdex",
			Name:      "banner_fallback_total",
			Help:      "Banner lookups served from page defaults",
		},
		[]string{"category", "reason"}, // reason: "missing" / "error"
	)
)

var catalogMetricsRegistered bool

// RegisterCatalogMetrics registers Prometheus catalog metrics. Must be called once from main.
func RegisterCatalogMetrics() {
	if catalogMetricsRegistered {
		return
	}
	prometheus.MustRegister(CatalogRefreshTotal)
	prometheus.MustRegister(CatalogRefreshDuration)
	prometheus.MustRegister(CatalogListings)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(BannerFallbackTotal)
	catalogMetricsRegistered = true
}
