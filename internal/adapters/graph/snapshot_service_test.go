package graph_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sectorwars/traderoutes/internal/adapters/graph"
	"github.com/sectorwars/traderoutes/internal/adapters/persistence"
	"github.com/sectorwars/traderoutes/test/helpers"
)

func seededService(t *testing.T, rebuildsPerMinute float64) (*graph.SnapshotService, *persistence.GormWarpTunnelRepository) {
	t.Helper()
	db := helpers.NewTestDB(t)
	sectorRepo := persistence.NewGormSectorRepository(db)
	tunnelRepo := persistence.NewGormWarpTunnelRepository(db)

	sectors, tunnels := helpers.LineGalaxy(t)
	for _, sector := range sectors {
		require.NoError(t, sectorRepo.Save(context.Background(), sector))
	}
	for _, tunnel := range tunnels {
		require.NoError(t, tunnelRepo.Save(context.Background(), tunnel))
	}

	return graph.NewSnapshotService(sectorRepo, tunnelRepo, 100, rebuildsPerMinute), tunnelRepo
}

func TestSnapshotService_BuildsOnFirstUse(t *testing.T) {
	service, _ := seededService(t, 60)

	snapshot, err := service.Snapshot(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, snapshot.SectorCount())
	assert.Equal(t, uint64(1), service.Version())

	d, ok := snapshot.Distance("SEC-1", "SEC-3")
	require.True(t, ok)
	assert.Equal(t, 7.0, d)
}

func TestSnapshotService_CachesBetweenCalls(t *testing.T) {
	service, _ := seededService(t, 60)

	first, err := service.Snapshot(context.Background())
	require.NoError(t, err)

	second, err := service.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, uint64(1), service.Version())
}

func TestSnapshotService_InvalidateTriggersRebuild(t *testing.T) {
	service, tunnelRepo := seededService(t, 6000)

	first, err := service.Snapshot(context.Background())
	require.NoError(t, err)

	// A new shortcut tunnel appears, then the snapshot is invalidated
	shortcut := helpers.MustTunnel(t, "WT-9", "SEC-1", "SEC-3", 2)
	require.NoError(t, tunnelRepo.Save(context.Background(), shortcut))
	service.Invalidate()

	second, err := service.Snapshot(context.Background())
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, uint64(2), service.Version())

	d, ok := second.Distance("SEC-1", "SEC-3")
	require.True(t, ok)
	assert.Equal(t, 2.0, d)
}

func TestSnapshotService_ThrottledRebuildServesStale(t *testing.T) {
	// One rebuild per minute: the first invalidation consumes the budget
	service, tunnelRepo := seededService(t, 1)

	_, err := service.Snapshot(context.Background())
	require.NoError(t, err)

	service.Invalidate()
	first, err := service.Snapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(2), service.Version())

	shortcut := helpers.MustTunnel(t, "WT-9", "SEC-1", "SEC-3", 2)
	require.NoError(t, tunnelRepo.Save(context.Background(), shortcut))
	service.Invalidate()

	second, err := service.Snapshot(context.Background())
	require.NoError(t, err)

	// Stale snapshot is served rather than blocking on the limiter
	assert.Same(t, first, second)
	assert.Equal(t, uint64(2), service.Version())
}

func TestSnapshotService_RebuildObserver(t *testing.T) {
	service, _ := seededService(t, 60)

	var observed []float64
	service.SetRebuildObserver(func(seconds float64) {
		observed = append(observed, seconds)
	})

	_, err := service.Snapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, observed, 1)
	assert.GreaterOrEqual(t, observed[0], 0.0)
}
