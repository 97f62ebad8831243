package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sectorwars/traderoutes/internal/domain/galaxy"
)

// GormWarpTunnelRepository implements galaxy.WarpTunnelRepository using GORM
type GormWarpTunnelRepository struct {
	db *gorm.DB
}

// NewGormWarpTunnelRepository creates a new GORM warp tunnel repository
func NewGormWarpTunnelRepository(db *gorm.DB) *GormWarpTunnelRepository {
	return &GormWarpTunnelRepository{db: db}
}

// ListAll retrieves every warp tunnel
func (r *GormWarpTunnelRepository) ListAll(ctx context.Context) ([]*galaxy.WarpTunnel, error) {
	var models []WarpTunnelModel
	result := r.db.WithContext(ctx).Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list warp tunnels: %w", result.Error)
	}

	tunnels := make([]*galaxy.WarpTunnel, 0, len(models))
	for _, model := range models {
		tunnel, err := galaxy.NewWarpTunnel(model.ID, model.FromSectorID, model.ToSectorID, model.Distance)
		if err != nil {
			return nil, fmt.Errorf("failed to convert warp tunnel %s: %w", model.ID, err)
		}
		tunnels = append(tunnels, tunnel)
	}

	return tunnels, nil
}

// Save persists a warp tunnel (used by fixtures and seeding tools)
func (r *GormWarpTunnelRepository) Save(ctx context.Context, tunnel *galaxy.WarpTunnel) error {
	model := &WarpTunnelModel{
		ID:           tunnel.ID,
		FromSectorID: tunnel.FromSectorID,
		ToSectorID:   tunnel.ToSectorID,
		Distance:     tunnel.Distance,
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save warp tunnel %s: %w", tunnel.ID, result.Error)
	}
	return nil
}
