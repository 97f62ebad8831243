package galaxy

import "context"

// SectorRepository defines read access to the sector listing
type SectorRepository interface {
	// ListAll retrieves every sector in the galaxy
	ListAll(ctx context.Context) ([]*Sector, error)

	// FindByID retrieves a single sector
	FindByID(ctx context.Context, id string) (*Sector, error)
}

// WarpTunnelRepository defines read access to the tunnel listing
type WarpTunnelRepository interface {
	// ListAll retrieves every warp tunnel in the galaxy
	ListAll(ctx context.Context) ([]*WarpTunnel, error)
}

// GraphProvider supplies the current immutable graph snapshot.
// Implemented in the adapter layer with caching and explicit invalidation.
type GraphProvider interface {
	// Snapshot returns the current graph, building it on first use
	Snapshot(ctx context.Context) (*Graph, error)

	// Invalidate marks the cached snapshot stale; the next Snapshot call
	// rebuilds from the store
	Invalidate()
}
