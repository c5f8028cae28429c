// Package landing maps footer SEO slugs onto pre-filtered catalog pages.
// A landing page is nothing more than a stored query for a catalog page.
package landing

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/kailas-cloud/propdex/internal/domain"
	"github.com/kailas-cloud/propdex/internal/domain/search/profile"
	"github.com/kailas-cloud/propdex/internal/domain/search/state"
)

// Preset binds a slug to a catalog page and its filter query.
type Preset struct {
	Slug  string
	Page  string
	Query string
	Title string // optional heading; empty uses the generated title
}

// Resolved is a landing page ready to run through the catalog pipeline.
type Resolved struct {
	Slug    string
	Profile profile.Profile
	Values  url.Values
	Title   string
}

type entry struct {
	preset  Preset
	profile profile.Profile
	values  url.Values
}

// Registry holds validated presets.
type Registry struct {
	entries map[string]entry
}

// NewRegistry validates presets. Every preset must name a known page and use
// only facet keys with tokens that page accepts, so the stored query is already
// canonical.
func NewRegistry(presets []Preset) (*Registry, error) {
	r := &Registry{entries: make(map[string]entry, len(presets))}
	for _, p := range presets {
		p.Slug = strings.ToLower(strings.TrimSpace(p.Slug))
		if p.Slug == "" {
			return nil, fmt.Errorf("%w: slug is required", domain.ErrInvalidPreset)
		}
		if _, dup := r.entries[p.Slug]; dup {
			return nil, fmt.Errorf("%w: duplicate slug %q", domain.ErrInvalidPreset, p.Slug)
		}

		prof, err := profile.Lookup(p.Page)
		if err != nil {
			return nil, fmt.Errorf("%w: slug %q: %w", domain.ErrInvalidPreset, p.Slug, err)
		}

		values := state.ParseQuery(p.Query)
		for key := range values {
			if !state.IsFacetKey(key) {
				return nil, fmt.Errorf("%w: slug %q: key %q is not a facet", domain.ErrInvalidPreset, p.Slug, key)
			}
		}
		canonical := state.Decode(values, prof.Vocabulary).Encode()
		if canonical.Encode() != values.Encode() {
			return nil, fmt.Errorf("%w: slug %q: query %q is not accepted by page %q",
				domain.ErrInvalidPreset, p.Slug, p.Query, p.Page)
		}

		r.entries[p.Slug] = entry{preset: p, profile: prof, values: canonical}
	}
	return r, nil
}

// Resolve returns the catalog query for slug at the requested page.
func (r *Registry) Resolve(slug string, page int) (Resolved, error) {
	e, ok := r.entries[strings.ToLower(slug)]
	if !ok {
		return Resolved{}, fmt.Errorf("%w: %q", domain.ErrUnknownLanding, slug)
	}
	return Resolved{
		Slug:    e.preset.Slug,
		Profile: e.profile,
		Values:  state.WithPage(e.values, page),
		Title:   e.preset.Title,
	}, nil
}

// Slugs returns every registered slug in sorted order.
func (r *Registry) Slugs() []string {
	out := make([]string, 0, len(r.entries))
	for s := range r.entries {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}
