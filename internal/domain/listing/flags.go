package listing

// SubType identifies one sub-type flag on a listing.
type SubType int

const (
	// SubTypeApartment is a residential apartment.
	SubTypeApartment SubType = iota + 1
	// SubTypeBuilderFloor is an independent builder floor.
	SubTypeBuilderFloor
	// SubTypeRetail is a commercial retail shop.
	SubTypeRetail
	// SubTypeSCO is a shop-cum-office plot.
	SubTypeSCO
)

// SubTypeFlags are non-exclusive sub-type markers.
type SubTypeFlags struct {
	Apartment    bool
	BuilderFloor bool
	Retail       bool
	SCO          bool
}

// Has reports whether the flag for t is set.
func (f SubTypeFlags) Has(t SubType) bool {
	switch t {
	case SubTypeApartment:
		return f.Apartment
	case SubTypeBuilderFloor:
		return f.BuilderFloor
	case SubTypeRetail:
		return f.Retail
	case SubTypeSCO:
		return f.SCO
	default:
		return false
	}
}

// Status identifies one construction or marketing status flag on a listing.
type Status int

const (
	// StatusNewLaunch is a freshly launched project.
	StatusNewLaunch Status = iota + 1
	// StatusReadyToMove is a completed project.
	StatusReadyToMove
	// StatusUnderConstruction is a project being built.
	StatusUnderConstruction
	// StatusPreLaunch is a project not yet launched.
	StatusPreLaunch
	// StatusTrending is an editor-picked popular project.
	StatusTrending
)

// StatusFlags are non-exclusive status markers.
type StatusFlags struct {
	NewLaunch         bool
	ReadyToMove       bool
	UnderConstruction bool
	PreLaunch         bool
	Trending          bool
}

// Has reports whether the flag for s is set.
func (f StatusFlags) Has(s Status) bool {
	switch s {
	case StatusNewLaunch:
		return f.NewLaunch
	case StatusReadyToMove:
		return f.ReadyToMove
	case StatusUnderConstruction:
		return f.UnderConstruction
	case StatusPreLaunch:
		return f.PreLaunch
	case StatusTrending:
		return f.Trending
	default:
		return false
	}
}
