// Package state converts between a catalog page's filter state and its
// shareable query string. The query string is the only place state lives.
package state

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/kailas-cloud/propdex/internal/domain"
	"github.com/kailas-cloud/propdex/internal/domain/search/facet"
)

// Query keys.
const (
	KeyKeyword       = "q"
	KeySubType       = "type"
	KeyStatus        = "status"
	KeyLocality      = "locality"
	KeyBudget        = "budget"
	KeyConfiguration = "bhk"
	KeyPage          = "page"
)

var facetKeys = []string{KeyKeyword, KeySubType, KeyStatus, KeyLocality, KeyBudget, KeyConfiguration}

// IsFacetKey reports whether key selects a filter facet.
func IsFacetKey(key string) bool {
	return slices.Contains(facetKeys, key)
}

// State is the full filter and pagination state of a catalog page.
// Zero-valued facets are unset.
type State struct {
	Keyword       string
	SubType       facet.SubType
	Status        facet.Status
	Locality      facet.Locality
	Budget        facet.Budget
	Configuration facet.Configuration
	Page          int
}

// Decode reads state from query values. Missing or unknown tokens are unset,
// the keyword is trimmed, and a malformed or non-positive page becomes 1.
func Decode(values url.Values, vocab facet.Vocabulary) State {
	page, err := strconv.Atoi(values.Get(KeyPage))
	if err != nil || page < 1 {
		page = 1
	}

	return State{
		Keyword:       strings.TrimSpace(values.Get(KeyKeyword)),
		SubType:       vocab.SubType(values.Get(KeySubType)),
		Status:        vocab.Status(values.Get(KeyStatus)),
		Locality:      vocab.Locality(values.Get(KeyLocality)),
		Budget:        vocab.Budget(values.Get(KeyBudget)),
		Configuration: vocab.Configuration(values.Get(KeyConfiguration)),
		Page:          page,
	}
}

// Encode writes state as query values, omitting unset facets and page 1.
func (s State) Encode() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set(KeyKeyword, s.Keyword)
	set(KeySubType, string(s.SubType))
	set(KeyStatus, string(s.Status))
	set(KeyLocality, string(s.Locality))
	set(KeyBudget, string(s.Budget))
	set(KeyConfiguration, string(s.Configuration))
	if s.Page > 1 {
		v.Set(KeyPage, strconv.Itoa(s.Page))
	}
	return v
}

// Query returns the canonical query string for s.
func (s State) Query() string {
	return s.Encode().Encode()
}

// Filtered reports whether any facet is set.
func (s State) Filtered() bool {
	return s.Keyword != "" || s.SubType != "" || s.Status != "" ||
		s.Locality != "" || s.Budget != "" || s.Configuration != ""
}

// Transition returns a copy of current with one facet set, or removed when value
// is empty. The page always resets to 1; keys it does not own are preserved.
func Transition(current url.Values, key, value string) (url.Values, error) {
	if !IsFacetKey(key) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFacet, key)
	}

	next := clone(current)
	if value == "" {
		next.Del(key)
	} else {
		next.Set(key, value)
	}
	next.Del(KeyPage)
	return next, nil
}

// WithPage returns a copy of current pointing at page n. Filters are untouched.
func WithPage(current url.Values, n int) url.Values {
	next := clone(current)
	if n > 1 {
		next.Set(KeyPage, strconv.Itoa(n))
	} else {
		next.Del(KeyPage)
	}
	return next
}

// ParseQuery parses a raw query string. Malformed pairs are dropped rather than rejected.
func ParseQuery(raw string) url.Values {
	v, _ := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	return v
}

func clone(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vs := range v {
		out[k] = slices.Clone(vs)
	}
	return out
}
