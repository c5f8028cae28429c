package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrUnknownPage signals a catalog page that has no profile.
	ErrUnknownPage = errors.New("unknown page")
	// ErrUnknownLanding signals a landing slug with no preset.
	ErrUnknownLanding = errors.New("unknown landing page")
	// ErrUnknownFacet signals a query key that is not a filter facet.
	ErrUnknownFacet = errors.New("unknown facet")
	// ErrInvalidPreset signals a landing preset whose query cannot be represented.
	ErrInvalidPreset = errors.New("invalid landing preset")
)
