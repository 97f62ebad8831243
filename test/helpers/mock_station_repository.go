package helpers

import (
	"context"
	"sync"

	"github.com/sectorwars/traderoutes/internal/domain/market"
)

// MockStationRepository is an in-memory test double for the station
// repository. Safe for concurrent reads, matching the scanner's fan-out.
type MockStationRepository struct {
	mu       sync.RWMutex
	stations map[string][]*market.Station // key: sector ID
	err      error
}

// NewMockStationRepository creates an empty mock station repository
func NewMockStationRepository() *MockStationRepository {
	return &MockStationRepository{
		stations: make(map[string][]*market.Station),
	}
}

// AddStation registers a station under its sector
func (m *MockStationRepository) AddStation(station *market.Station) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stations[station.SectorID()] = append(m.stations[station.SectorID()], station)
}

// FailWith makes every subsequent call return the given error
func (m *MockStationRepository) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// FindBySector implements market.StationRepository
func (m *MockStationRepository) FindBySector(ctx context.Context, sectorID string) ([]*market.Station, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.stations[sectorID], nil
}
