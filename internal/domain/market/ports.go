package market

import "context"

// StationRepository defines read access to station and commodity state.
// Implemented in the adapter layer; the engine only ever reads.
type StationRepository interface {
	// FindBySector retrieves all stations attached to a sector.
	// A sector without stations yields an empty slice, not an error.
	FindBySector(ctx context.Context, sectorID string) ([]*Station, error)
}
