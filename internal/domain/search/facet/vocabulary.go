package facet

import "slices"

// Vocabulary lists the tokens a page accepts for each facet. Tokens outside
// the vocabulary decode to unset, which filters nothing.
type Vocabulary struct {
	SubTypes       []SubType
	Statuses       []Status
	Localities     []Locality
	Budgets        []Budget
	Configurations []Configuration
}

// DefaultLocalities are the localities every catalog page offers.
var DefaultLocalities = []Locality{
	"dwarka-expressway",
	"golf-course-road",
	"golf-course-extension-road",
	"sohna-road",
	"southern-peripheral-road",
	"new-gurgaon",
	"mg-road",
	"nh-48",
}

// DefaultBudgets are the budget buckets every catalog page offers.
var DefaultBudgets = []Budget{
	"1-2-cr",
	"2-3-cr",
	"3-4-cr",
	"4-5-cr",
	"5-8-cr",
	BudgetAbove8Cr,
}

// DefaultConfigurations are the bedroom options every catalog page offers.
var DefaultConfigurations = []Configuration{
	"1-bhk",
	"2-bhk",
	"2.5-bhk",
	"3-bhk",
	"3.5-bhk",
	"4-bhk",
	"4.5-bhk",
	"5-bhk",
	ConfigurationAbove5BHK,
}

// SubType resolves token against the vocabulary.
func (v Vocabulary) SubType(token string) SubType {
	return lookup(v.SubTypes, token)
}

// Status resolves token against the vocabulary.
func (v Vocabulary) Status(token string) Status {
	return lookup(v.Statuses, token)
}

// Locality resolves token against the vocabulary.
func (v Vocabulary) Locality(token string) Locality {
	return lookup(v.Localities, token)
}

// Budget resolves token against the vocabulary.
func (v Vocabulary) Budget(token string) Budget {
	return lookup(v.Budgets, token)
}

// Configuration resolves token against the vocabulary.
func (v Vocabulary) Configuration(token string) Configuration {
	return lookup(v.Configurations, token)
}

func lookup[T ~string](known []T, token string) T {
	if token == "" {
		return ""
	}
	if slices.Contains(known, T(token)) {
		return T(token)
	}
	return ""
}

// Option is a selectable facet value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Options groups the selectable values of every facet on a page.
type Options struct {
	SubTypes       []Option `json:"type"`
	Statuses       []Option `json:"status"`
	Localities     []Option `json:"locality"`
	Budgets        []Option `json:"budget"`
	Configurations []Option `json:"bhk"`
}

// Options returns the vocabulary as display options, in declaration order.
func (v Vocabulary) Options() Options {
	return Options{
		SubTypes:       toOptions(v.SubTypes, func(t SubType) string { return Humanize(string(t)) }),
		Statuses:       toOptions(v.Statuses, func(s Status) string { return Humanize(string(s)) }),
		Localities:     toOptions(v.Localities, func(l Locality) string { return Humanize(string(l)) }),
		Budgets:        toOptions(v.Budgets, Budget.Label),
		Configurations: toOptions(v.Configurations, Configuration.Label),
	}
}

func toOptions[T ~string](tokens []T, label func(T) string) []Option {
	out := make([]Option, len(tokens))
	for i, t := range tokens {
		out[i] = Option{Value: string(t), Label: label(t)}
	}
	return out
}
