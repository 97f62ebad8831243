package galaxy

import (
	"fmt"

	"github.com/sectorwars/traderoutes/internal/domain/shared"
)

// Sector represents an immutable location in the trading graph.
// Sectors are recreated wholesale on every graph snapshot refresh.
type Sector struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Coordinates shared.Coordinates `json:"coordinates"`
	TunnelIDs   []string           `json:"tunnel_ids,omitempty"`
}

// NewSector creates a new sector with validation
func NewSector(id, name string, coordinates shared.Coordinates) (*Sector, error) {
	if id == "" {
		return nil, shared.NewValidationError("id", "cannot be empty")
	}

	return &Sector{
		ID:          id,
		Name:        name,
		Coordinates: coordinates,
		TunnelIDs:   []string{},
	}, nil
}

func (s *Sector) String() string {
	return fmt.Sprintf("Sector(%s)", s.ID)
}
