package trading_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sectorwars/traderoutes/internal/domain/trading"
	"github.com/sectorwars/traderoutes/test/helpers"
)

func TestNewOptimizedRoute_Valid(t *testing.T) {
	hop1 := helpers.MustOpportunity(t, "SEC-1", "SEC-2", "ORE", 100, 120, 50, 3, 0.1)
	hop2 := helpers.MustOpportunity(t, "SEC-2", "SEC-3", "GAS", 40, 60, 30, 4, 0.1)

	route, err := trading.NewOptimizedRoute(
		[]string{"SEC-1", "SEC-2", "SEC-3"},
		[]*trading.TradingOpportunity{hop1, hop2},
	)

	require.NoError(t, err)
	assert.Equal(t, "SEC-1", route.StartSector())
	assert.Equal(t, 2, route.Hops())
}

func TestNewOptimizedRoute_RejectsBrokenChain(t *testing.T) {
	hop1 := helpers.MustOpportunity(t, "SEC-1", "SEC-2", "ORE", 100, 120, 50, 3, 0.1)
	// Departs from SEC-3, but the route is at SEC-2
	hop2 := helpers.MustOpportunity(t, "SEC-3", "SEC-4", "GAS", 40, 60, 30, 4, 0.1)

	_, err := trading.NewOptimizedRoute(
		[]string{"SEC-1", "SEC-2", "SEC-4"},
		[]*trading.TradingOpportunity{hop1, hop2},
	)

	assert.Error(t, err)
}

func TestNewOptimizedRoute_RejectsDuplicateSectorPair(t *testing.T) {
	hop1 := helpers.MustOpportunity(t, "SEC-1", "SEC-2", "ORE", 100, 120, 50, 3, 0.1)
	hop2 := helpers.MustOpportunity(t, "SEC-2", "SEC-1", "FUEL", 100, 118, 50, 3, 0.1)
	// Same pair as hop1, different commodity
	hop3 := helpers.MustOpportunity(t, "SEC-1", "SEC-2", "GAS", 100, 115, 50, 3, 0.1)

	_, err := trading.NewOptimizedRoute(
		[]string{"SEC-1", "SEC-2", "SEC-1", "SEC-2"},
		[]*trading.TradingOpportunity{hop1, hop2, hop3},
	)

	assert.ErrorContains(t, err, "reuses sector pair")
}

func TestNewOptimizedRoute_RejectsMismatchedCounts(t *testing.T) {
	hop := helpers.MustOpportunity(t, "SEC-1", "SEC-2", "ORE", 100, 120, 50, 3, 0.1)

	_, err := trading.NewOptimizedRoute([]string{"SEC-1"}, nil)
	assert.Error(t, err)

	_, err = trading.NewOptimizedRoute(
		[]string{"SEC-1", "SEC-2", "SEC-3"},
		[]*trading.TradingOpportunity{hop},
	)
	assert.Error(t, err)
}
