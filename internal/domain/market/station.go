package market

import (
	"errors"
	"fmt"
)

// CommodityListing is a value object describing one commodity at a station.
// Volatility (0-100) measures recent price instability and feeds opportunity
// confidence scoring.
type CommodityListing struct {
	Commodity  string
	Sells      bool
	Buys       bool
	Price      float64
	Quantity   int
	Capacity   int
	Volatility float64
}

// NewCommodityListing creates a commodity listing with validation
func NewCommodityListing(commodity string, sells, buys bool, price float64, quantity, capacity int, volatility float64) (*CommodityListing, error) {
	if commodity == "" {
		return nil, errors.New("commodity cannot be empty")
	}
	if price < 0 {
		return nil, errors.New("price must be non-negative")
	}
	if quantity < 0 {
		return nil, errors.New("quantity must be non-negative")
	}
	if capacity < 0 {
		return nil, errors.New("capacity must be non-negative")
	}
	if volatility < 0 || volatility > 100 {
		return nil, fmt.Errorf("volatility must be in [0,100], got %.1f", volatility)
	}

	return &CommodityListing{
		Commodity:  commodity,
		Sells:      sells,
		Buys:       buys,
		Price:      price,
		Quantity:   quantity,
		Capacity:   capacity,
		Volatility: volatility,
	}, nil
}

// FreeCapacity returns how many more units the station can absorb
func (l *CommodityListing) FreeCapacity() int {
	free := l.Capacity - l.Quantity
	if free < 0 {
		return 0
	}
	return free
}

// Station represents an immutable snapshot of a sector's trading post.
// A station is attached to exactly one sector; sectors without a station
// have no tradable commodities.
type Station struct {
	id       string
	sectorID string
	name     string
	listings []CommodityListing
}

// NewStation creates a new station with validation
func NewStation(id, sectorID, name string, listings []CommodityListing) (*Station, error) {
	if id == "" {
		return nil, errors.New("station id cannot be empty")
	}
	if sectorID == "" {
		return nil, errors.New("sector id cannot be empty")
	}

	// Copy so the caller's slice cannot mutate the snapshot later
	listingsCopy := make([]CommodityListing, len(listings))
	copy(listingsCopy, listings)

	return &Station{
		id:       id,
		sectorID: sectorID,
		name:     name,
		listings: listingsCopy,
	}, nil
}

func (s *Station) ID() string {
	return s.id
}

func (s *Station) SectorID() string {
	return s.sectorID
}

func (s *Station) Name() string {
	return s.name
}

// Listings returns a defensive copy of all commodity listings
func (s *Station) Listings() []CommodityListing {
	listingsCopy := make([]CommodityListing, len(s.listings))
	copy(listingsCopy, s.listings)
	return listingsCopy
}

// FindListing searches for a specific commodity listing
func (s *Station) FindListing(commodity string) *CommodityListing {
	for i := range s.listings {
		if s.listings[i].Commodity == commodity {
			listing := s.listings[i]
			return &listing
		}
	}
	return nil
}

// SellsCommodity reports whether the station sells a commodity with stock
// on hand
func (s *Station) SellsCommodity(commodity string) bool {
	listing := s.FindListing(commodity)
	return listing != nil && listing.Sells && listing.Quantity > 0
}

// BuysCommodity reports whether the station buys a commodity
func (s *Station) BuysCommodity(commodity string) bool {
	listing := s.FindListing(commodity)
	return listing != nil && listing.Buys
}

func (s *Station) String() string {
	return fmt.Sprintf("Station(%s @ %s, %d commodities)", s.id, s.sectorID, len(s.listings))
}
