package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "postgres"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "sectorwars"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "sectorwars"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Engine defaults
	if cfg.Engine.MinProfitMargin == 0 {
		cfg.Engine.MinProfitMargin = 0.05
	}
	if cfg.Engine.FuelCostPerDistance == 0 {
		cfg.Engine.FuelCostPerDistance = 10.0
	}
	if cfg.Engine.TimePerDistance == 0 {
		cfg.Engine.TimePerDistance = 0.5
	}
	if cfg.Engine.MaxRouteLength == 0 {
		cfg.Engine.MaxRouteLength = 8
	}
	if cfg.Engine.PlanningPoolSize == 0 {
		cfg.Engine.PlanningPoolSize = 50
	}
	if cfg.Engine.ArbitragePoolSize == 0 {
		cfg.Engine.ArbitragePoolSize = 10
	}
	if cfg.Engine.MaxAllPairsSectors == 0 {
		cfg.Engine.MaxAllPairsSectors = 2000
	}
	if cfg.Engine.ScanConcurrency == 0 {
		cfg.Engine.ScanConcurrency = 8
	}
	if cfg.Engine.SnapshotRebuildsPerMinute == 0 {
		cfg.Engine.SnapshotRebuildsPerMinute = 6
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}
