package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/sectorwars/traderoutes/internal/domain/market"
)

// GormStationRepository implements market.StationRepository using GORM
type GormStationRepository struct {
	db *gorm.DB
}

// NewGormStationRepository creates a new GORM station repository
func NewGormStationRepository(db *gorm.DB) *GormStationRepository {
	return &GormStationRepository{db: db}
}

// FindBySector retrieves all stations attached to a sector.
// A sector without stations yields an empty slice.
func (r *GormStationRepository) FindBySector(ctx context.Context, sectorID string) ([]*market.Station, error) {
	var models []StationModel
	result := r.db.WithContext(ctx).Where("sector_id = ?", sectorID).Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find stations for sector %s: %w", sectorID, result.Error)
	}

	stations := make([]*market.Station, 0, len(models))
	for _, model := range models {
		station, err := r.modelToStation(&model)
		if err != nil {
			return nil, fmt.Errorf("failed to convert station %s: %w", model.ID, err)
		}
		stations = append(stations, station)
	}

	return stations, nil
}

// Save persists a station (used by fixtures and seeding tools)
func (r *GormStationRepository) Save(ctx context.Context, station *market.Station) error {
	model, err := r.stationToModel(station)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save station %s: %w", station.ID(), result.Error)
	}
	return nil
}

func (r *GormStationRepository) modelToStation(model *StationModel) (*market.Station, error) {
	var documents []commodityListingDocument
	if model.Listings != "" {
		if err := json.Unmarshal([]byte(model.Listings), &documents); err != nil {
			return nil, fmt.Errorf("failed to parse listings: %w", err)
		}
	}

	listings := make([]market.CommodityListing, 0, len(documents))
	for _, doc := range documents {
		listing, err := market.NewCommodityListing(
			doc.Commodity, doc.Sells, doc.Buys, doc.Price, doc.Quantity, doc.Capacity, doc.Volatility,
		)
		if err != nil {
			return nil, fmt.Errorf("invalid listing for %s: %w", doc.Commodity, err)
		}
		listings = append(listings, *listing)
	}

	return market.NewStation(model.ID, model.SectorID, model.Name, listings)
}

func (r *GormStationRepository) stationToModel(station *market.Station) (*StationModel, error) {
	listings := station.Listings()
	documents := make([]commodityListingDocument, 0, len(listings))
	for _, listing := range listings {
		documents = append(documents, commodityListingDocument{
			Commodity:  listing.Commodity,
			Sells:      listing.Sells,
			Buys:       listing.Buys,
			Price:      listing.Price,
			Quantity:   listing.Quantity,
			Capacity:   listing.Capacity,
			Volatility: listing.Volatility,
		})
	}

	payload, err := json.Marshal(documents)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize listings: %w", err)
	}

	return &StationModel{
		ID:       station.ID(),
		SectorID: station.SectorID(),
		Name:     station.Name(),
		Listings: string(payload),
	}, nil
}
