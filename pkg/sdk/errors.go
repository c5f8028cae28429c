package propdex

import "github.com/kailas-cloud/propdex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound       = domain.ErrNotFound
	ErrUnknownPage    = domain.ErrUnknownPage
	ErrUnknownLanding = domain.ErrUnknownLanding
	ErrUnknownFacet   = domain.ErrUnknownFacet
	ErrInvalidPreset  = domain.ErrInvalidPreset
)
