package graph

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/sectorwars/traderoutes/internal/domain/galaxy"
)

// SnapshotService owns the cached galaxy graph snapshot.
//
// The graph and its all-pairs distance table are read-heavy and change only
// when tunnels are added or sectors created, so the snapshot is rebuilt on
// an explicit invalidation signal rather than per query. All-pairs
// computation is O(N^3); rebuild frequency is additionally throttled with a
// rate limiter so a noisy invalidation source cannot thrash the engine.
//
// Queries receive an immutable *galaxy.Graph pointer; the only lock guards
// the refresh-swap of that pointer.
type SnapshotService struct {
	sectorRepo galaxy.SectorRepository
	tunnelRepo galaxy.WarpTunnelRepository

	maxAllPairsSectors int
	rebuildLimiter     *rate.Limiter

	mu      sync.RWMutex
	current *galaxy.Graph
	version uint64
	stale   bool

	rebuildObserver func(seconds float64)
}

// NewSnapshotService creates a snapshot service.
// maxAllPairsSectors bounds the Floyd-Warshall precomputation; beyond it the
// graph falls back to on-demand bounded traversal. rebuildsPerMinute
// throttles how often invalidation signals can trigger a rebuild.
func NewSnapshotService(
	sectorRepo galaxy.SectorRepository,
	tunnelRepo galaxy.WarpTunnelRepository,
	maxAllPairsSectors int,
	rebuildsPerMinute float64,
) *SnapshotService {
	return &SnapshotService{
		sectorRepo:         sectorRepo,
		tunnelRepo:         tunnelRepo,
		maxAllPairsSectors: maxAllPairsSectors,
		rebuildLimiter:     rate.NewLimiter(rate.Limit(rebuildsPerMinute/60.0), 1),
	}
}

// SetRebuildObserver installs a callback invoked with each rebuild's
// duration in seconds. Must be called before the service is shared.
func (s *SnapshotService) SetRebuildObserver(observer func(seconds float64)) {
	s.rebuildObserver = observer
}

// Snapshot returns the current graph, building it on first use or after an
// invalidation signal. Implements galaxy.GraphProvider.
func (s *SnapshotService) Snapshot(ctx context.Context) (*galaxy.Graph, error) {
	s.mu.RLock()
	current := s.current
	stale := s.stale
	s.mu.RUnlock()

	if current != nil && !stale {
		return current, nil
	}

	// A stale snapshot is still served when the rebuild budget is
	// exhausted; correctness degrades to slightly outdated distances.
	if current != nil && !s.rebuildLimiter.Allow() {
		return current, nil
	}

	return s.rebuild(ctx)
}

// Invalidate marks the snapshot stale. The next Snapshot call rebuilds
// from the store. Implements galaxy.GraphProvider.
func (s *SnapshotService) Invalidate() {
	s.mu.Lock()
	s.stale = true
	s.mu.Unlock()
}

// Version returns the monotonically increasing snapshot version
func (s *SnapshotService) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// rebuild loads sectors and tunnels from the store and swaps in a fresh
// graph. Concurrent callers may both rebuild; the swap keeps the newest.
func (s *SnapshotService) rebuild(ctx context.Context) (*galaxy.Graph, error) {
	started := time.Now()

	sectors, err := s.sectorRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sectors: %w", err)
	}

	tunnels, err := s.tunnelRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load warp tunnels: %w", err)
	}

	built := galaxy.Build(sectors, tunnels, s.maxAllPairsSectors)

	s.mu.Lock()
	s.current = built
	s.version++
	s.stale = false
	version := s.version
	s.mu.Unlock()

	elapsed := time.Since(started)
	if s.rebuildObserver != nil {
		s.rebuildObserver(elapsed.Seconds())
	}
	log.Printf("Built galaxy graph snapshot v%d in %s: %d sectors, %d tunnels",
		version, elapsed, len(sectors), len(tunnels))

	return built, nil
}
