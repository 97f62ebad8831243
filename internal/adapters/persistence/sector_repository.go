package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/sectorwars/traderoutes/internal/domain/galaxy"
	"github.com/sectorwars/traderoutes/internal/domain/shared"
)

// GormSectorRepository implements galaxy.SectorRepository using GORM
type GormSectorRepository struct {
	db *gorm.DB
}

// NewGormSectorRepository creates a new GORM sector repository
func NewGormSectorRepository(db *gorm.DB) *GormSectorRepository {
	return &GormSectorRepository{db: db}
}

// ListAll retrieves every sector
func (r *GormSectorRepository) ListAll(ctx context.Context) ([]*galaxy.Sector, error) {
	var models []SectorModel
	result := r.db.WithContext(ctx).Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list sectors: %w", result.Error)
	}

	sectors := make([]*galaxy.Sector, 0, len(models))
	for _, model := range models {
		sector, err := r.modelToSector(&model)
		if err != nil {
			return nil, fmt.Errorf("failed to convert sector %s: %w", model.ID, err)
		}
		sectors = append(sectors, sector)
	}

	return sectors, nil
}

// FindByID retrieves a single sector
func (r *GormSectorRepository) FindByID(ctx context.Context, id string) (*galaxy.Sector, error) {
	var model SectorModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("sector not found: %s", id)
		}
		return nil, fmt.Errorf("failed to find sector: %w", result.Error)
	}

	return r.modelToSector(&model)
}

// Save persists a sector (used by fixtures and the snapshot seeding tools)
func (r *GormSectorRepository) Save(ctx context.Context, sector *galaxy.Sector) error {
	model, err := r.sectorToModel(sector)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save sector %s: %w", sector.ID, result.Error)
	}
	return nil
}

func (r *GormSectorRepository) modelToSector(model *SectorModel) (*galaxy.Sector, error) {
	sector, err := galaxy.NewSector(model.ID, model.Name, shared.NewCoordinates(model.X, model.Y, model.Z))
	if err != nil {
		return nil, err
	}

	if model.TunnelIDs != "" {
		if err := json.Unmarshal([]byte(model.TunnelIDs), &sector.TunnelIDs); err != nil {
			return nil, fmt.Errorf("failed to parse tunnel ids: %w", err)
		}
	}

	return sector, nil
}

func (r *GormSectorRepository) sectorToModel(sector *galaxy.Sector) (*SectorModel, error) {
	tunnelIDs, err := json.Marshal(sector.TunnelIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize tunnel ids: %w", err)
	}

	return &SectorModel{
		ID:        sector.ID,
		Name:      sector.Name,
		X:         sector.Coordinates.X,
		Y:         sector.Coordinates.Y,
		Z:         sector.Coordinates.Z,
		TunnelIDs: string(tunnelIDs),
	}, nil
}
