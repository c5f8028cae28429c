// Package listingdoc is the stored document format of a listing, shared by the
// Redis/Valkey and PostgreSQL catalog drivers and the seed fixtures.
package listingdoc

import (
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/propdex/internal/domain/listing"
)

// Doc is a listing as the CMS exports it. Every field is optional.
type Doc struct {
	ID             string   `json:"id"                       yaml:"id"`
	Title          string   `json:"title"                    yaml:"title"`
	DeveloperName  string   `json:"developer_name,omitempty" yaml:"developer_name"`
	Location       string   `json:"location,omitempty"       yaml:"location"`
	Sector         string   `json:"sector,omitempty"         yaml:"sector"`
	Category       string   `json:"category"                 yaml:"category"`
	SubType        SubType  `json:"sub_type"                 yaml:"sub_type"`
	Status         Status   `json:"status"                   yaml:"status"`
	Configurations []string `json:"configurations,omitempty" yaml:"configurations"`
	PriceRange     string   `json:"price_range,omitempty"    yaml:"price_range"`
	AreaRange      string   `json:"area_range,omitempty"     yaml:"area_range"`
	IsActive       bool     `json:"is_active"                yaml:"is_active"`
	CreatedAt      *int64   `json:"created_at,omitempty"     yaml:"created_at"`
	MainImage      string   `json:"main_image,omitempty"     yaml:"main_image"`
	Slug           string   `json:"slug,omitempty"           yaml:"slug"`
}

// SubType mirrors listing.SubTypeFlags.
type SubType struct {
	Apartment    bool `json:"apartment,omitempty"     yaml:"apartment"`
	BuilderFloor bool `json:"builder_floor,omitempty" yaml:"builder_floor"`
	Retail       bool `json:"retail,omitempty"        yaml:"retail"`
	SCO          bool `json:"sco,omitempty"           yaml:"sco"`
}

// Status mirrors listing.StatusFlags.
type Status struct {
	NewLaunch         bool `json:"new_launch,omitempty"         yaml:"new_launch"`
	ReadyToMove       bool `json:"ready_to_move,omitempty"      yaml:"ready_to_move"`
	UnderConstruction bool `json:"under_construction,omitempty" yaml:"under_construction"`
	PreLaunch         bool `json:"pre_launch,omitempty"         yaml:"pre_launch"`
	Trending          bool `json:"trending,omitempty"           yaml:"trending"`
}

// ToListing converts the document to the domain record.
func (d Doc) ToListing() listing.Listing {
	return listing.Listing{
		ID:             d.ID,
		Title:          d.Title,
		DeveloperName:  d.DeveloperName,
		LocationText:   d.Location,
		SectorText:     d.Sector,
		Category:       listing.Category(d.Category),
		SubTypes:       listing.SubTypeFlags(d.SubType),
		Statuses:       listing.StatusFlags(d.Status),
		Configurations: d.Configurations,
		PriceRangeText: d.PriceRange,
		AreaRangeText:  d.AreaRange,
		IsActive:       d.IsActive,
		CreatedAt:      d.CreatedAt,
		MainImageURL:   d.MainImage,
		Slug:           d.Slug,
	}
}

// FromListing converts a domain record to its document.
func FromListing(l listing.Listing) Doc {
	return Doc{
		ID:             l.ID,
		Title:          l.Title,
		DeveloperName:  l.DeveloperName,
		Location:       l.LocationText,
		Sector:         l.SectorText,
		Category:       string(l.Category),
		SubType:        SubType(l.SubTypes),
		Status:         Status(l.Statuses),
		Configurations: l.Configurations,
		PriceRange:     l.PriceRangeText,
		AreaRange:      l.AreaRangeText,
		IsActive:       l.IsActive,
		CreatedAt:      l.CreatedAt,
		MainImage:      l.MainImageURL,
		Slug:           l.Slug,
	}
}

// Unmarshal decodes a stored JSON document. Some JSON modules wrap the root
// value in a one-element array; both shapes are accepted.
func Unmarshal(data []byte) (listing.Listing, error) {
	var d Doc
	if len(data) > 0 && data[0] == '[' {
		var wrapped []Doc
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return listing.Listing{}, fmt.Errorf("unmarshal listing: %w", err)
		}
		if len(wrapped) != 1 {
			return listing.Listing{}, fmt.Errorf("unmarshal listing: expected 1 document, got %d", len(wrapped))
		}
		d = wrapped[0]
	} else if err := json.Unmarshal(data, &d); err != nil {
		return listing.Listing{}, fmt.Errorf("unmarshal listing: %w", err)
	}
	return d.ToListing(), nil
}

// Marshal encodes a listing as a stored JSON document.
func Marshal(l listing.Listing) ([]byte, error) {
	data, err := json.Marshal(FromListing(l))
	if err != nil {
		return nil, fmt.Errorf("marshal listing: %w", err)
	}
	return data, nil
}
