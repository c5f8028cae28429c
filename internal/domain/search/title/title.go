// Package title derives the catalog heading from the active filters.
package title

import (
	"github.com/kailas-cloud/propdex/internal/domain/search/facet"
	"github.com/kailas-cloud/propdex/internal/domain/search/profile"
	"github.com/kailas-cloud/propdex/internal/domain/search/state"
)

// Generate returns the heading for s on page p. Only the highest-precedence
// facet is named: configuration, then sub-type, status, locality, budget.
// With none set the page's default title is used. The keyword never titles a page.
func Generate(s state.State, p profile.Profile) string {
	label := Label(s)
	if label == "" {
		return p.DefaultTitle
	}
	return label + " " + p.TitleSuffix
}

// Label returns the display label of the facet that titles s, or "".
func Label(s state.State) string {
	switch {
	case s.Configuration != "":
		return s.Configuration.Label()
	case s.SubType != "":
		return facet.Humanize(string(s.SubType))
	case s.Status != "":
		return facet.Humanize(string(s.Status))
	case s.Locality != "":
		return facet.Humanize(string(s.Locality))
	case s.Budget != "":
		return s.Budget.Label()
	default:
		return ""
	}
}
