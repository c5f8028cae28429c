package predicate

import (
	"testing"

	"github.com/kailas-cloud/propdex/internal/domain/listing"
	"github.com/kailas-cloud/propdex/internal/domain/search/facet"
	"github.com/kailas-cloud/propdex/internal/domain/search/state"
)

func TestBudget(t *testing.T) {
	tests := []struct {
		name   string
		price  string
		budget facet.Budget
		want   bool
	}{
		{"overlap upper bucket", "₹1.8 - 3.0 Cr", "2-3-cr", true},
		{"overlap lower bucket", "₹1.8 - 3.0 Cr", "1-2-cr", true},
		{"no overlap", "₹1.8 - 3.0 Cr", "4-5-cr", false},
		{"touching edge", "3 Cr onwards", "2-3-cr", true},
		{"above 8 reaches floor", "6 - 8 Cr", facet.BudgetAbove8Cr, true},
		{"above 8 below floor", "6 - 7.9 Cr", facet.BudgetAbove8Cr, false},
		{"above 8 single", "above 8 Cr onwards", facet.BudgetAbove8Cr, true},
		{"abbreviation before price", "Approx. 2 Cr", "2-3-cr", true},
		{"abbreviation before open price", "Approx. 8.5 Cr onwards", facet.BudgetAbove8Cr, true},
		{"unparsable price", "Price on request", "1-2-cr", false},
		{"empty price", "", facet.BudgetAbove8Cr, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Budget(tt.budget)(listing.Listing{PriceRangeText: tt.price})
			if got != tt.want {
				t.Errorf("Budget(%q) on %q = %v, want %v", tt.budget, tt.price, got, tt.want)
			}
		})
	}
}

func TestBudget_MalformedTokenRestrictsNothing(t *testing.T) {
	if !Budget("cheap")(listing.Listing{PriceRangeText: "n/a"}) {
		t.Error("malformed budget token should not filter")
	}
}

func TestKeyword(t *testing.T) {
	l := listing.Listing{
		Title:         "Skyline Residences",
		DeveloperName: "DLF Homes",
		LocationText:  "Golf Course Road",
		SectorText:    "Sector 54",
	}

	tests := []struct {
		kw   string
		want bool
	}{
		{"skyline", true},
		{"dlf", true},
		{"GOLF COURSE", true},
		{"sector 54", true},
		{"m3m", false},
		{"  ", true},
	}
	for _, tt := range tests {
		if got := Keyword(tt.kw)(l); got != tt.want {
			t.Errorf("Keyword(%q) = %v, want %v", tt.kw, got, tt.want)
		}
	}
}

func TestLocality(t *testing.T) {
	l := listing.Listing{LocationText: "Sector 106, Dwarka Expressway, Gurugram"}

	if !Locality("dwarka-expressway")(l) {
		t.Error("expected locality match")
	}
	if Locality("sohna-road")(l) {
		t.Error("unexpected locality match")
	}
	if Locality("golf-course-road")(listing.Listing{}) {
		t.Error("missing location should not match")
	}
}

func TestSubTypeAndStatus(t *testing.T) {
	l := listing.Listing{
		SubTypes: listing.SubTypeFlags{Retail: true},
		Statuses: listing.StatusFlags{PreLaunch: true},
	}

	if !SubType(facet.SubTypeRetailShops)(l) {
		t.Error("retail-shops should match retail flag")
	}
	if SubType(facet.SubTypeSCOPlots)(l) {
		t.Error("sco-plots should not match")
	}
	if !SubType("villa")(l) {
		t.Error("unmapped sub-type should not filter")
	}
	if !Status(facet.StatusPreLaunch)(l) {
		t.Error("pre-launch should match")
	}
	if Status(facet.StatusTrending)(l) {
		t.Error("trending should not match")
	}
}

func TestConfiguration(t *testing.T) {
	l := listing.Listing{Configurations: []string{"3 BHK", "4.5 BHK Penthouse"}}

	if !Configuration("3-bhk")(l) {
		t.Error("3-bhk should match")
	}
	if Configuration("4-bhk")(l) {
		t.Error("4-bhk should not match 4.5")
	}
	if Configuration("3-bhk")(listing.Listing{}) {
		t.Error("no configurations should not match")
	}
}

func TestFromState_OnlySetFacets(t *testing.T) {
	if got := len(FromState(state.State{Page: 3})); got != 0 {
		t.Errorf("expected no predicates, got %d", got)
	}

	s := state.State{Keyword: "dlf", Budget: "2-3-cr", Configuration: "2-bhk", Page: 1}
	if got := len(FromState(s)); got != 3 {
		t.Errorf("expected 3 predicates, got %d", got)
	}
}

func TestAll_OrderIndependent(t *testing.T) {
	catalog := []listing.Listing{
		{Title: "A", PriceRangeText: "2 - 3 Cr", Configurations: []string{"2 BHK"}, LocationText: "MG Road"},
		{Title: "B", PriceRangeText: "2 - 3 Cr", Configurations: []string{"3 BHK"}, LocationText: "MG Road"},
		{Title: "C", PriceRangeText: "5 Cr", Configurations: []string{"2 BHK"}, LocationText: "MG Road"},
		{Title: "D", PriceRangeText: "2 Cr", Configurations: []string{"2 BHK"}, LocationText: "Sohna Road"},
	}
	budget := Budget("2-3-cr")
	cfg := Configuration("2-bhk")
	loc := Locality("mg-road")

	orders := [][]Predicate{
		{budget, cfg, loc},
		{loc, cfg, budget},
		{cfg, loc, budget},
	}
	for i, preds := range orders {
		p := All(preds...)
		var got []string
		for _, l := range catalog {
			if p(l) {
				got = append(got, l.Title)
			}
		}
		if len(got) != 1 || got[0] != "A" {
			t.Errorf("order %d: got %v, want [A]", i, got)
		}
	}
}

func TestAll_Empty(t *testing.T) {
	if !All()(listing.Listing{}) {
		t.Error("no predicates should accept everything")
	}
}

func TestCategory(t *testing.T) {
	p := Category(listing.CategoryCommercial)
	if !p(listing.Listing{Category: listing.CategoryCommercial}) {
		t.Error("expected match")
	}
	if p(listing.Listing{Category: listing.CategoryResidential}) {
		t.Error("unexpected match")
	}
}
