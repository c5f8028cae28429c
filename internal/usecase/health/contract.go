package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogChecker reports whether the in-memory catalog is loaded and fresh.
type CatalogChecker interface {
	HealthCheck(ctx context.Context) error
}
