// Package facet defines the query tokens a catalog page filters on and the
// mapping from those tokens to listing attributes.
package facet

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kailas-cloud/propdex/internal/domain/listing"
)

// SubType is a sub-type token such as "apartment" or "sco-plots".
type SubType string

// Known sub-type tokens.
const (
	SubTypeApartment    SubType = "apartment"
	SubTypeBuilderFloor SubType = "builder-floor"
	SubTypeRetailShops  SubType = "retail-shops"
	SubTypeSCOPlots     SubType = "sco-plots"
)

// Flag maps the token to the listing flag it selects.
func (t SubType) Flag() (listing.SubType, bool) {
	switch t {
	case SubTypeApartment:
		return listing.SubTypeApartment, true
	case SubTypeBuilderFloor:
		return listing.SubTypeBuilderFloor, true
	case SubTypeRetailShops:
		return listing.SubTypeRetail, true
	case SubTypeSCOPlots:
		return listing.SubTypeSCO, true
	default:
		return 0, false
	}
}

// Status is a status token such as "ready-to-move".
type Status string

// Known status tokens.
const (
	StatusNewLaunch         Status = "new-launch"
	StatusReadyToMove       Status = "ready-to-move"
	StatusUnderConstruction Status = "under-construction"
	StatusPreLaunch         Status = "pre-launch"
	StatusTrending          Status = "trending"
)

// Flag maps the token to the listing flag it selects.
func (s Status) Flag() (listing.Status, bool) {
	switch s {
	case StatusNewLaunch:
		return listing.StatusNewLaunch, true
	case StatusReadyToMove:
		return listing.StatusReadyToMove, true
	case StatusUnderConstruction:
		return listing.StatusUnderConstruction, true
	case StatusPreLaunch:
		return listing.StatusPreLaunch, true
	case StatusTrending:
		return listing.StatusTrending, true
	default:
		return 0, false
	}
}

// Locality is a hyphenated locality token such as "dwarka-expressway".
type Locality string

// Phrase returns the text searched for inside a listing's location.
func (l Locality) Phrase() string {
	return strings.ReplaceAll(string(l), "-", " ")
}

// Humanize turns a hyphenated token into a display label: "ready-to-move" -> "Ready To Move".
func Humanize(token string) string {
	if token == "" {
		return ""
	}
	// Caser keeps state between calls and must not be shared.
	return cases.Title(language.English).String(strings.ReplaceAll(token, "-", " "))
}
