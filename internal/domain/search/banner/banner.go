// Package banner picks the hero banner for a catalog page and fills in
// the copy the CMS left blank.
package banner

import "github.com/kailas-cloud/propdex/internal/domain/search/facet"

// Category keys banner content in the CMS.
type Category string

// Banner categories.
const (
	Default      Category = "default"
	Residential  Category = "residential"
	Apartment    Category = "apartment"
	BuilderFloor Category = "builder-floor"
	Commercial   Category = "commercial"
	Retail       Category = "retail"
	SCO          Category = "sco"
)

var bySubType = map[facet.SubType]Category{
	facet.SubTypeApartment:    Apartment,
	facet.SubTypeBuilderFloor: BuilderFloor,
	facet.SubTypeRetailShops:  Retail,
	facet.SubTypeSCOPlots:     SCO,
}

// Resolve returns the banner category for the active sub-type, or pageDefault
// when none is set or the sub-type has no banner of its own.
func Resolve(t facet.SubType, pageDefault Category) Category {
	if c, ok := bySubType[t]; ok {
		return c
	}
	return pageDefault
}

// Content is the CMS record for one banner category. Text fields may be empty.
type Content struct {
	Image     string
	IntroText string
	PageTitle string
}

// Presentation is what the page renders above the listing grid.
type Presentation struct {
	Category  Category
	Image     string
	PageTitle string
	IntroText string
}

// Present fills blank copy: the title falls back to the generated heading and
// the intro to the page's static paragraph. A missing record is all blanks.
func Present(c Category, content Content, generatedTitle, fallbackIntro string) Presentation {
	p := Presentation{
		Category:  c,
		Image:     content.Image,
		PageTitle: content.PageTitle,
		IntroText: content.IntroText,
	}
	if p.PageTitle == "" {
		p.PageTitle = generatedTitle
	}
	if p.IntroText == "" {
		p.IntroText = fallbackIntro
	}
	return p
}
