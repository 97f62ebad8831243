package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sectorwars/traderoutes/internal/adapters/persistence"
	"github.com/sectorwars/traderoutes/test/helpers"
)

func TestStationRepository_SaveAndFindBySector(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStationRepository(db)

	station := helpers.MustStation(t, "ST-1", "SEC-1", "Alpha Post",
		helpers.MustListing(t, "ORE", true, false, 100, 80, 200, 15),
		helpers.MustListing(t, "GAS", false, true, 45, 20, 300, 5))
	require.NoError(t, repo.Save(context.Background(), station))

	found, err := repo.FindBySector(context.Background(), "SEC-1")
	require.NoError(t, err)
	require.Len(t, found, 1)

	got := found[0]
	assert.Equal(t, "ST-1", got.ID())
	assert.Equal(t, "Alpha Post", got.Name())

	ore := got.FindListing("ORE")
	require.NotNil(t, ore)
	assert.True(t, ore.Sells)
	assert.False(t, ore.Buys)
	assert.Equal(t, 100.0, ore.Price)
	assert.Equal(t, 80, ore.Quantity)
	assert.Equal(t, 200, ore.Capacity)
	assert.Equal(t, 15.0, ore.Volatility)

	gas := got.FindListing("GAS")
	require.NotNil(t, gas)
	assert.True(t, gas.Buys)
}

func TestStationRepository_SectorWithoutStations(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStationRepository(db)

	found, err := repo.FindBySector(context.Background(), "SEC-9")

	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestStationRepository_MultipleStationsPerSector(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStationRepository(db)

	require.NoError(t, repo.Save(context.Background(),
		helpers.MustStation(t, "ST-1", "SEC-1", "Alpha One",
			helpers.MustListing(t, "ORE", true, false, 100, 80, 200, 10))))
	require.NoError(t, repo.Save(context.Background(),
		helpers.MustStation(t, "ST-2", "SEC-1", "Alpha Two",
			helpers.MustListing(t, "ORE", true, false, 95, 40, 200, 10))))
	require.NoError(t, repo.Save(context.Background(),
		helpers.MustStation(t, "ST-3", "SEC-2", "Beta One")))

	found, err := repo.FindBySector(context.Background(), "SEC-1")

	require.NoError(t, err)
	assert.Len(t, found, 2)
}
