package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sectorwars/traderoutes/internal/adapters/persistence"
	"github.com/sectorwars/traderoutes/test/helpers"
)

func TestWarpTunnelRepository_SaveAndList(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormWarpTunnelRepository(db)

	tunnels := []struct {
		id, from, to string
		distance     int
	}{
		{"WT-1", "SEC-1", "SEC-2", 3},
		{"WT-2", "SEC-2", "SEC-3", 4},
	}
	for _, tt := range tunnels {
		tunnel := helpers.MustTunnel(t, tt.id, tt.from, tt.to, tt.distance)
		require.NoError(t, repo.Save(context.Background(), tunnel))
	}

	listed, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 2)

	byID := make(map[string]int)
	for _, tunnel := range listed {
		byID[tunnel.ID] = tunnel.Distance
	}
	assert.Equal(t, 3, byID["WT-1"])
	assert.Equal(t, 4, byID["WT-2"])
}

func TestWarpTunnelRepository_EmptyList(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormWarpTunnelRepository(db)

	listed, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, listed)
}
