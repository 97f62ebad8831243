package config

// EngineConfig holds the route optimization engine tunables
type EngineConfig struct {
	// MinProfitMargin is the minimum viable margin for an opportunity
	// (0.05 = sell price must exceed buy price by 5%)
	MinProfitMargin float64 `mapstructure:"min_profit_margin" validate:"omitempty,gt=0,lt=1"`

	// FuelCostPerDistance is deducted from gross route profit per
	// distance unit traveled (credits)
	FuelCostPerDistance float64 `mapstructure:"fuel_cost_per_distance" validate:"omitempty,gte=0"`

	// TimePerDistance converts travel distance to hours
	TimePerDistance float64 `mapstructure:"time_per_distance" validate:"omitempty,gt=0"`

	// MaxRouteLength caps the number of sectors in a constructed route
	MaxRouteLength int `mapstructure:"max_route_length" validate:"omitempty,min=2"`

	// PlanningPoolSize caps scanned opportunities fed to route planning
	PlanningPoolSize int `mapstructure:"planning_pool_size" validate:"omitempty,min=1"`

	// ArbitragePoolSize caps quick arbitrage scan results
	ArbitragePoolSize int `mapstructure:"arbitrage_pool_size" validate:"omitempty,min=1"`

	// MaxAllPairsSectors bounds the O(N^3) all-pairs precomputation; larger
	// galaxies fall back to on-demand bounded traversal
	MaxAllPairsSectors int `mapstructure:"max_all_pairs_sectors" validate:"omitempty,min=1"`

	// ScanConcurrency limits parallel station lookups during a scan
	ScanConcurrency int `mapstructure:"scan_concurrency" validate:"omitempty,min=1"`

	// SnapshotRebuildsPerMinute throttles graph rebuilds triggered by
	// invalidation signals
	SnapshotRebuildsPerMinute float64 `mapstructure:"snapshot_rebuilds_per_minute" validate:"omitempty,gt=0"`
}
