package galaxy

import (
	"fmt"

	"github.com/sectorwars/traderoutes/internal/domain/shared"
)

// WarpTunnel represents a connection between two sectors with a travel
// distance. Tunnels are the only source of adjacency in the galaxy; there
// is no implicit connectivity.
//
// Physically one-way tunnels are still treated as bidirectional for
// distance estimation. See Graph for the rationale.
type WarpTunnel struct {
	ID           string `json:"id"`
	FromSectorID string `json:"from_sector_id"`
	ToSectorID   string `json:"to_sector_id"`
	Distance     int    `json:"distance"`
}

// NewWarpTunnel creates a new warp tunnel with validation
func NewWarpTunnel(id, fromSectorID, toSectorID string, distance int) (*WarpTunnel, error) {
	if fromSectorID == "" {
		return nil, shared.NewValidationError("from_sector_id", "cannot be empty")
	}
	if toSectorID == "" {
		return nil, shared.NewValidationError("to_sector_id", "cannot be empty")
	}
	if fromSectorID == toSectorID {
		return nil, shared.NewValidationError("to_sector_id", "tunnel cannot loop back to its origin")
	}
	if distance <= 0 {
		return nil, shared.NewValidationError("distance", "must be positive")
	}

	return &WarpTunnel{
		ID:           id,
		FromSectorID: fromSectorID,
		ToSectorID:   toSectorID,
		Distance:     distance,
	}, nil
}

func (t *WarpTunnel) String() string {
	return fmt.Sprintf("WarpTunnel(%s <-> %s, %du)", t.FromSectorID, t.ToSectorID, t.Distance)
}
