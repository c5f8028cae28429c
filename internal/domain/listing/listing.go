// Package listing holds the read-only property record the catalog supplies.
package listing

// Category is the top-level page a listing belongs to.
type Category string

const (
	// CategoryResidential lists homes.
	CategoryResidential Category = "residential"
	// CategoryCommercial lists shops and plots.
	CategoryCommercial Category = "commercial"
)

// Listing is a single property record. Missing source fields arrive as zero values;
// CreatedAt is nil when the supplier has no creation time.
type Listing struct {
	ID             string
	Title          string
	DeveloperName  string
	LocationText   string
	SectorText     string
	Category       Category
	SubTypes       SubTypeFlags
	Statuses       StatusFlags
	Configurations []string
	PriceRangeText string
	AreaRangeText  string
	IsActive       bool
	CreatedAt      *int64
	MainImageURL   string
	Slug           string
}

// CreatedAtOrZero returns the creation time in unix seconds, 0 when unknown.
func (l Listing) CreatedAtOrZero() int64 {
	if l.CreatedAt == nil {
		return 0
	}
	return *l.CreatedAt
}
