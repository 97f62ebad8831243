package helpers

import (
	"testing"

	"github.com/sectorwars/traderoutes/internal/domain/galaxy"
	"github.com/sectorwars/traderoutes/internal/domain/market"
	"github.com/sectorwars/traderoutes/internal/domain/shared"
	"github.com/sectorwars/traderoutes/internal/domain/trading"
)

// MustSector creates a sector or fails the test
func MustSector(t *testing.T, id, name string, x, y, z int) *galaxy.Sector {
	t.Helper()
	sector, err := galaxy.NewSector(id, name, shared.Coordinates{X: x, Y: y, Z: z})
	if err != nil {
		t.Fatalf("failed to create sector %s: %v", id, err)
	}
	return sector
}

// MustTunnel creates a warp tunnel or fails the test
func MustTunnel(t *testing.T, id, from, to string, distance int) *galaxy.WarpTunnel {
	t.Helper()
	tunnel, err := galaxy.NewWarpTunnel(id, from, to, distance)
	if err != nil {
		t.Fatalf("failed to create tunnel %s: %v", id, err)
	}
	return tunnel
}

// MustListing creates a commodity listing or fails the test
func MustListing(t *testing.T, commodity string, sells, buys bool, price float64, quantity, capacity int, volatility float64) market.CommodityListing {
	t.Helper()
	listing, err := market.NewCommodityListing(commodity, sells, buys, price, quantity, capacity, volatility)
	if err != nil {
		t.Fatalf("failed to create listing for %s: %v", commodity, err)
	}
	return *listing
}

// MustStation creates a station or fails the test
func MustStation(t *testing.T, id, sectorID, name string, listings ...market.CommodityListing) *market.Station {
	t.Helper()
	station, err := market.NewStation(id, sectorID, name, listings)
	if err != nil {
		t.Fatalf("failed to create station %s: %v", id, err)
	}
	return station
}

// MustOpportunity creates a trading opportunity with quiet markets (10%
// volatility on both ends) and the standard minimum margin, or fails the
// test. Travel time is half a distance unit per hour.
func MustOpportunity(t *testing.T, from, to, commodity string, buyPrice, sellPrice float64, maxQuantity, distance int, riskFactor float64) *trading.TradingOpportunity {
	t.Helper()
	op, err := trading.NewTradingOpportunity(
		from, to, commodity,
		buyPrice, sellPrice,
		maxQuantity, distance, float64(distance)*0.5,
		riskFactor,
		10, 10,
		0.05,
	)
	if err != nil {
		t.Fatalf("failed to create opportunity %s->%s: %v", from, to, err)
	}
	return op
}

// LineGalaxy builds a three-sector galaxy connected in a line:
// SEC-1 -(3)- SEC-2 -(4)- SEC-3
func LineGalaxy(t *testing.T) ([]*galaxy.Sector, []*galaxy.WarpTunnel) {
	t.Helper()
	sectors := []*galaxy.Sector{
		MustSector(t, "SEC-1", "Alpha", 0, 0, 0),
		MustSector(t, "SEC-2", "Beta", 3, 0, 0),
		MustSector(t, "SEC-3", "Gamma", 7, 0, 0),
	}
	tunnels := []*galaxy.WarpTunnel{
		MustTunnel(t, "WT-1", "SEC-1", "SEC-2", 3),
		MustTunnel(t, "WT-2", "SEC-2", "SEC-3", 4),
	}
	return sectors, tunnels
}
