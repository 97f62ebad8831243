package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sectorwars/traderoutes/internal/adapters/graph"
	"github.com/sectorwars/traderoutes/internal/adapters/metrics"
	"github.com/sectorwars/traderoutes/internal/adapters/persistence"
	"github.com/sectorwars/traderoutes/internal/application/trading/services"
	"github.com/sectorwars/traderoutes/internal/domain/trading"
	"github.com/sectorwars/traderoutes/internal/infrastructure/config"
	"github.com/sectorwars/traderoutes/internal/infrastructure/database"
)

// buildAdvisor wires the full engine from configuration: database
// connection, repositories, graph snapshot service, scanner, planner and
// evaluator. The returned cleanup closes the database connection.
func buildAdvisor() (*services.RouteAdvisor, func(), error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	cleanup := func() { _ = database.Close(db) }

	sectorRepo := persistence.NewGormSectorRepository(db)
	tunnelRepo := persistence.NewGormWarpTunnelRepository(db)
	stationRepo := persistence.NewGormStationRepository(db)

	snapshots := graph.NewSnapshotService(
		sectorRepo,
		tunnelRepo,
		cfg.Engine.MaxAllPairsSectors,
		cfg.Engine.SnapshotRebuildsPerMinute,
	)

	scanner := services.NewOpportunityScanner(stationRepo, cfg.Engine.TimePerDistance, cfg.Engine.ScanConcurrency)
	planner := trading.NewRoutePlanner(cfg.Engine.MaxRouteLength, cfg.Engine.FuelCostPerDistance)
	collector := metrics.NewRouteMetrics(prometheus.NewRegistry())
	snapshots.SetRebuildObserver(collector.ObserveSnapshotRebuild)

	advisor := services.NewRouteAdvisor(
		snapshots,
		scanner,
		planner,
		trading.NewRouteEvaluator(),
		services.AdvisorConfig{
			MinProfitMargin:   cfg.Engine.MinProfitMargin,
			TimePerDistance:   cfg.Engine.TimePerDistance,
			PlanningPoolSize:  cfg.Engine.PlanningPoolSize,
			ArbitragePoolSize: cfg.Engine.ArbitragePoolSize,
		},
		collector,
	)

	return advisor, cleanup, nil
}

// newTabWriter returns a tabwriter for aligned table output
func newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// printRoute renders a route with its hops and aggregate metrics
func printRoute(route *trading.OptimizedRoute) {
	fmt.Printf("Route (%s, %d sectors):\n", route.RouteType, len(route.Sectors))

	w := newTabWriter()
	fmt.Fprintln(w, "  HOP\tCOMMODITY\tBUY\tSELL\tPROFIT/U\tQTY\tTIME")
	for i, op := range route.Opportunities {
		fmt.Fprintf(w, "  %s -> %s\t%s\t%.2f\t%.2f\t%.2f\t%d\t%.1fh\n",
			route.Sectors[i], route.Sectors[i+1],
			op.Commodity(), op.BuyPrice(), op.SellPrice(),
			op.ProfitPerUnit(), op.MaxQuantity(), op.TravelTime())
	}
	w.Flush()

	fmt.Printf("\n  Net profit: %.2f credits (%.2f/hour)\n", route.TotalProfit, route.ProfitPerHour)
	fmt.Printf("  Distance: %d units, time: %.1f hours\n", route.TotalDistance, route.TotalTime)
	fmt.Printf("  Risk: %.2f, confidence: %.2f, cargo efficiency: %.2f\n",
		route.TotalRisk, route.RouteConfidence, route.CargoEfficiency)
}
