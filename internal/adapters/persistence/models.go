package persistence

// SectorModel represents the sectors table
type SectorModel struct {
	ID        string `gorm:"column:id;primaryKey"`
	Name      string `gorm:"column:name;not null"`
	X         int    `gorm:"column:x;not null"`
	Y         int    `gorm:"column:y;not null"`
	Z         int    `gorm:"column:z;not null"`
	TunnelIDs string `gorm:"column:tunnel_ids;type:text"` // JSON array as text
}

func (SectorModel) TableName() string {
	return "sectors"
}

// WarpTunnelModel represents the warp_tunnels table
type WarpTunnelModel struct {
	ID           string `gorm:"column:id;primaryKey"`
	FromSectorID string `gorm:"column:from_sector_id;not null;index"`
	ToSectorID   string `gorm:"column:to_sector_id;not null;index"`
	Distance     int    `gorm:"column:distance;not null"`
}

func (WarpTunnelModel) TableName() string {
	return "warp_tunnels"
}

// StationModel represents the stations table.
// Commodity listings are stored as a JSON document; the engine reads them
// wholesale per sector and never updates them.
type StationModel struct {
	ID       string `gorm:"column:id;primaryKey"`
	SectorID string `gorm:"column:sector_id;not null;index"`
	Name     string `gorm:"column:name"`
	Listings string `gorm:"column:listings;type:text"` // JSON array as text
}

func (StationModel) TableName() string {
	return "stations"
}

// commodityListingDocument is the JSON shape of one listing inside
// StationModel.Listings
type commodityListingDocument struct {
	Commodity  string  `json:"commodity"`
	Sells      bool    `json:"sells"`
	Buys       bool    `json:"buys"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Capacity   int     `json:"capacity"`
	Volatility float64 `json:"volatility"`
}
