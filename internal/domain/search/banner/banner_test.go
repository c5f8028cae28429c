package banner

import (
	"testing"

	"github.com/kailas-cloud/propdex/internal/domain/search/facet"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		subType     facet.SubType
		pageDefault Category
		want        Category
	}{
		{"", Residential, Residential},
		{facet.SubTypeApartment, Residential, Apartment},
		{facet.SubTypeBuilderFloor, Residential, BuilderFloor},
		{facet.SubTypeRetailShops, Commercial, Retail},
		{facet.SubTypeSCOPlots, Commercial, SCO},
		{"villa", Commercial, Commercial},
		{"", Default, Default},
	}
	for _, tt := range tests {
		if got := Resolve(tt.subType, tt.pageDefault); got != tt.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tt.subType, tt.pageDefault, got, tt.want)
		}
	}
}

func TestPresent_FillsBlanks(t *testing.T) {
	p := Present(Apartment, Content{Image: "/img/apartment.jpg"}, "Apartment Residential Properties", "Static intro")

	want := Presentation{
		Category:  Apartment,
		Image:     "/img/apartment.jpg",
		PageTitle: "Apartment Residential Properties",
		IntroText: "Static intro",
	}
	if p != want {
		t.Errorf("got %+v, want %+v", p, want)
	}
}

func TestPresent_KeepsCMSCopy(t *testing.T) {
	content := Content{Image: "i.jpg", IntroText: "From CMS", PageTitle: "CMS Title"}
	p := Present(Retail, content, "Generated", "Static")

	if p.PageTitle != "CMS Title" || p.IntroText != "From CMS" {
		t.Errorf("CMS copy overwritten: %+v", p)
	}
}

func TestPresent_MissingRecord(t *testing.T) {
	p := Present(Default, Content{}, "Residential Properties in Gurgaon", "Static")
	if p.Image != "" || p.PageTitle != "Residential Properties in Gurgaon" || p.IntroText != "Static" {
		t.Errorf("unexpected presentation: %+v", p)
	}
}
