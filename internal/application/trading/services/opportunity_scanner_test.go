package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sectorwars/traderoutes/internal/application/trading/services"
	"github.com/sectorwars/traderoutes/internal/domain/galaxy"
	"github.com/sectorwars/traderoutes/test/helpers"
)

func newScanner(repo *helpers.MockStationRepository) *services.OpportunityScanner {
	return services.NewOpportunityScanner(repo, 0.5, 4)
}

// Three sectors in a line with distances 1 and 1: SEC-2 buys ORE at 120,
// SEC-1 sells it at 100.
func lineMarket(t *testing.T) (*galaxy.Graph, *helpers.MockStationRepository) {
	t.Helper()
	sectors := []*galaxy.Sector{
		helpers.MustSector(t, "SEC-1", "Alpha", 0, 0, 0),
		helpers.MustSector(t, "SEC-2", "Beta", 1, 0, 0),
		helpers.MustSector(t, "SEC-3", "Gamma", 2, 0, 0),
	}
	tunnels := []*galaxy.WarpTunnel{
		helpers.MustTunnel(t, "WT-1", "SEC-1", "SEC-2", 1),
		helpers.MustTunnel(t, "WT-2", "SEC-2", "SEC-3", 1),
	}
	graph := galaxy.Build(sectors, tunnels, 100)

	repo := helpers.NewMockStationRepository()
	repo.AddStation(helpers.MustStation(t, "ST-1", "SEC-1", "Alpha Post",
		helpers.MustListing(t, "ORE", true, false, 100, 80, 200, 10)))
	repo.AddStation(helpers.MustStation(t, "ST-2", "SEC-2", "Beta Post",
		helpers.MustListing(t, "ORE", false, true, 120, 150, 200, 10)))

	return graph, repo
}

func TestScan_FindsPriceDifferential(t *testing.T) {
	graph, repo := lineMarket(t)

	opportunities, err := newScanner(repo).Scan(context.Background(), graph, services.ScanRequest{
		StartSectorID: "SEC-1",
		MaxDistance:   5,
		MinMargin:     0.05,
	})

	require.NoError(t, err)
	require.Len(t, opportunities, 1)

	op := opportunities[0]
	assert.Equal(t, "SEC-1", op.FromSectorID())
	assert.Equal(t, "SEC-2", op.ToSectorID())
	assert.Equal(t, "ORE", op.Commodity())
	assert.Equal(t, 20.0, op.ProfitPerUnit())
	// Capped by destination free capacity (200 - 150)
	assert.Equal(t, 50, op.MaxQuantity())
	assert.Equal(t, 1, op.Distance())
	assert.InDelta(t, 0.5, op.TravelTime(), 1e-9)
}

func TestScan_EmptyGraph(t *testing.T) {
	repo := helpers.NewMockStationRepository()

	opportunities, err := newScanner(repo).Scan(context.Background(), nil, services.ScanRequest{
		StartSectorID: "SEC-1", MaxDistance: 5, MinMargin: 0.05,
	})
	require.NoError(t, err)
	assert.Empty(t, opportunities)

	opportunities, err = newScanner(repo).Scan(context.Background(), galaxy.Build(nil, nil, 100), services.ScanRequest{
		StartSectorID: "SEC-1", MaxDistance: 5, MinMargin: 0.05,
	})
	require.NoError(t, err)
	assert.Empty(t, opportunities)
}

func TestScan_UnknownStartSector(t *testing.T) {
	graph, repo := lineMarket(t)

	opportunities, err := newScanner(repo).Scan(context.Background(), graph, services.ScanRequest{
		StartSectorID: "SEC-99", MaxDistance: 5, MinMargin: 0.05,
	})

	require.NoError(t, err)
	assert.Empty(t, opportunities)
}

func TestScan_MarginThresholdExcludesThinSpreads(t *testing.T) {
	graph, repo := lineMarket(t)

	// 20% margin requires a sell price above 120
	opportunities, err := newScanner(repo).Scan(context.Background(), graph, services.ScanRequest{
		StartSectorID: "SEC-1", MaxDistance: 5, MinMargin: 0.20,
	})

	require.NoError(t, err)
	assert.Empty(t, opportunities)
}

func TestScan_DistanceBoundExcludesFarSectors(t *testing.T) {
	sectors := []*galaxy.Sector{
		helpers.MustSector(t, "SEC-1", "Alpha", 0, 0, 0),
		helpers.MustSector(t, "SEC-2", "Beta", 9, 0, 0),
	}
	tunnels := []*galaxy.WarpTunnel{
		helpers.MustTunnel(t, "WT-1", "SEC-1", "SEC-2", 9),
	}
	graph := galaxy.Build(sectors, tunnels, 100)

	repo := helpers.NewMockStationRepository()
	repo.AddStation(helpers.MustStation(t, "ST-1", "SEC-1", "Alpha Post",
		helpers.MustListing(t, "ORE", true, false, 100, 80, 200, 10)))
	repo.AddStation(helpers.MustStation(t, "ST-2", "SEC-2", "Beta Post",
		helpers.MustListing(t, "ORE", false, true, 120, 0, 200, 10)))

	opportunities, err := newScanner(repo).Scan(context.Background(), graph, services.ScanRequest{
		StartSectorID: "SEC-1", MaxDistance: 5, MinMargin: 0.05,
	})

	require.NoError(t, err)
	assert.Empty(t, opportunities)
}

func TestScan_SkipsSellersWithoutStock(t *testing.T) {
	graph, _ := lineMarket(t)

	repo := helpers.NewMockStationRepository()
	repo.AddStation(helpers.MustStation(t, "ST-1", "SEC-1", "Alpha Post",
		helpers.MustListing(t, "ORE", true, false, 100, 0, 200, 10)))
	repo.AddStation(helpers.MustStation(t, "ST-2", "SEC-2", "Beta Post",
		helpers.MustListing(t, "ORE", false, true, 120, 150, 200, 10)))

	opportunities, err := newScanner(repo).Scan(context.Background(), graph, services.ScanRequest{
		StartSectorID: "SEC-1", MaxDistance: 5, MinMargin: 0.05,
	})

	require.NoError(t, err)
	assert.Empty(t, opportunities)
}

func TestScan_PicksCheapestSellerAndHighestBuyer(t *testing.T) {
	graph, _ := lineMarket(t)

	repo := helpers.NewMockStationRepository()
	// Two sellers at the source, the cheaper one should win
	repo.AddStation(helpers.MustStation(t, "ST-1A", "SEC-1", "Alpha One",
		helpers.MustListing(t, "ORE", true, false, 110, 80, 200, 10)))
	repo.AddStation(helpers.MustStation(t, "ST-1B", "SEC-1", "Alpha Two",
		helpers.MustListing(t, "ORE", true, false, 100, 60, 200, 10)))
	// Two buyers at the destination, the higher bid should win
	repo.AddStation(helpers.MustStation(t, "ST-2A", "SEC-2", "Beta One",
		helpers.MustListing(t, "ORE", false, true, 115, 0, 200, 10)))
	repo.AddStation(helpers.MustStation(t, "ST-2B", "SEC-2", "Beta Two",
		helpers.MustListing(t, "ORE", false, true, 130, 0, 200, 10)))

	opportunities, err := newScanner(repo).Scan(context.Background(), graph, services.ScanRequest{
		StartSectorID: "SEC-1", MaxDistance: 5, MinMargin: 0.05,
	})

	require.NoError(t, err)
	require.Len(t, opportunities, 1)
	assert.Equal(t, 100.0, opportunities[0].BuyPrice())
	assert.Equal(t, 130.0, opportunities[0].SellPrice())
	assert.Equal(t, 60, opportunities[0].MaxQuantity())
}

func TestScan_LimitTruncatesSortedResults(t *testing.T) {
	sectors := []*galaxy.Sector{helpers.MustSector(t, "SEC-0", "Hub", 0, 0, 0)}
	tunnels := []*galaxy.WarpTunnel{}
	repo := helpers.NewMockStationRepository()
	repo.AddStation(helpers.MustStation(t, "ST-0", "SEC-0", "Hub Post",
		helpers.MustListing(t, "ORE", true, false, 100, 1000, 2000, 10)))

	// Five destinations with increasing bids
	for i := 1; i <= 5; i++ {
		id := fmt.Sprintf("SEC-%d", i)
		sectors = append(sectors, helpers.MustSector(t, id, id, i, 0, 0))
		tunnels = append(tunnels, helpers.MustTunnel(t, fmt.Sprintf("WT-%d", i), "SEC-0", id, 1))
		repo.AddStation(helpers.MustStation(t, fmt.Sprintf("ST-%d", i), id, id,
			helpers.MustListing(t, "ORE", false, true, 120+float64(i*10), 0, 500, 10)))
	}
	graph := galaxy.Build(sectors, tunnels, 100)

	opportunities, err := newScanner(repo).Scan(context.Background(), graph, services.ScanRequest{
		StartSectorID: "SEC-0", MaxDistance: 3, MinMargin: 0.05, Limit: 2,
	})

	require.NoError(t, err)
	require.Len(t, opportunities, 2)
	// Best spreads first: SEC-5 bids 170, SEC-4 bids 160
	assert.Equal(t, "SEC-5", opportunities[0].ToSectorID())
	assert.Equal(t, "SEC-4", opportunities[1].ToSectorID())
}

func TestScan_RiskCeilingFiltersOpportunities(t *testing.T) {
	graph, repo := lineMarket(t)

	// Base risk is 0.1; a negative ceiling leaves no slack to clear it
	ceiling := -0.15
	opportunities, err := newScanner(repo).Scan(context.Background(), graph, services.ScanRequest{
		StartSectorID: "SEC-1", MaxDistance: 5, MinMargin: 0.05, RiskCeiling: &ceiling,
	})

	require.NoError(t, err)
	assert.Empty(t, opportunities)
}

func TestScan_PropagatesStoreFailure(t *testing.T) {
	graph, repo := lineMarket(t)
	storeErr := errors.New("connection reset")
	repo.FailWith(storeErr)

	_, err := newScanner(repo).Scan(context.Background(), graph, services.ScanRequest{
		StartSectorID: "SEC-1", MaxDistance: 5, MinMargin: 0.05,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}
