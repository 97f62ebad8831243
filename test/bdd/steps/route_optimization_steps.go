package steps

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/cucumber/godog"

	"github.com/sectorwars/traderoutes/internal/application/trading/services"
	"github.com/sectorwars/traderoutes/internal/domain/galaxy"
	"github.com/sectorwars/traderoutes/internal/domain/market"
	"github.com/sectorwars/traderoutes/internal/domain/shared"
	"github.com/sectorwars/traderoutes/internal/domain/trading"
)

// memoryStationRepository backs BDD scenarios without a database
type memoryStationRepository struct {
	stations map[string][]*market.Station
}

func (r *memoryStationRepository) FindBySector(ctx context.Context, sectorID string) ([]*market.Station, error) {
	return r.stations[sectorID], nil
}

// fixedGraphProvider serves the graph assembled by the scenario steps
type fixedGraphProvider struct {
	graph *galaxy.Graph
}

func (p *fixedGraphProvider) Snapshot(ctx context.Context) (*galaxy.Graph, error) {
	return p.graph, nil
}

func (p *fixedGraphProvider) Invalidate() {}

type routeOptimizationContext struct {
	sectors  []*galaxy.Sector
	tunnels  []*galaxy.WarpTunnel
	stations *memoryStationRepository

	opportunities   []*trading.TradingOpportunity
	route           *trading.OptimizedRoute
	recommendations []*services.RouteRecommendation
	err             error
}

func (rc *routeOptimizationContext) reset() {
	rc.sectors = nil
	rc.tunnels = nil
	rc.stations = &memoryStationRepository{stations: make(map[string][]*market.Station)}
	rc.opportunities = nil
	rc.route = nil
	rc.recommendations = nil
	rc.err = nil
}

func (rc *routeOptimizationContext) advisor() *services.RouteAdvisor {
	graph := galaxy.Build(rc.sectors, rc.tunnels, 100)
	return services.NewRouteAdvisor(
		&fixedGraphProvider{graph: graph},
		services.NewOpportunityScanner(rc.stations, 0.5, 4),
		trading.NewRoutePlanner(8, 10.0),
		trading.NewRouteEvaluator(),
		services.AdvisorConfig{
			MinProfitMargin:   0.05,
			TimePerDistance:   0.5,
			PlanningPoolSize:  50,
			ArbitragePoolSize: 10,
		},
		nil,
	)
}

// Setup steps

func (rc *routeOptimizationContext) aGalaxyWithSectors(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		sector, err := galaxy.NewSector(row.Cells[0].Value, row.Cells[1].Value, shared.Coordinates{})
		if err != nil {
			return err
		}
		rc.sectors = append(rc.sectors, sector)
	}
	return nil
}

func (rc *routeOptimizationContext) warpTunnels(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		distance, err := strconv.Atoi(row.Cells[3].Value)
		if err != nil {
			return err
		}
		tunnel, err := galaxy.NewWarpTunnel(row.Cells[0].Value, row.Cells[1].Value, row.Cells[2].Value, distance)
		if err != nil {
			return err
		}
		rc.tunnels = append(rc.tunnels, tunnel)
	}
	return nil
}

func (rc *routeOptimizationContext) aStationWithListings(stationID, sectorID string, table *godog.Table) error {
	var listings []market.CommodityListing
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		sells, _ := strconv.ParseBool(row.Cells[1].Value)
		buys, _ := strconv.ParseBool(row.Cells[2].Value)
		price, err := strconv.ParseFloat(row.Cells[3].Value, 64)
		if err != nil {
			return err
		}
		quantity, err := strconv.Atoi(row.Cells[4].Value)
		if err != nil {
			return err
		}
		capacity, err := strconv.Atoi(row.Cells[5].Value)
		if err != nil {
			return err
		}
		volatility, err := strconv.ParseFloat(row.Cells[6].Value, 64)
		if err != nil {
			return err
		}

		listing, err := market.NewCommodityListing(row.Cells[0].Value, sells, buys, price, quantity, capacity, volatility)
		if err != nil {
			return err
		}
		listings = append(listings, *listing)
	}

	station, err := market.NewStation(stationID, sectorID, stationID, listings)
	if err != nil {
		return err
	}
	rc.stations.stations[sectorID] = append(rc.stations.stations[sectorID], station)
	return nil
}

func (rc *routeOptimizationContext) aSixSectorRing() error {
	for i := 1; i <= 6; i++ {
		sector, err := galaxy.NewSector(fmt.Sprintf("SEC-%d", i), fmt.Sprintf("Ring %d", i), shared.Coordinates{X: i})
		if err != nil {
			return err
		}
		rc.sectors = append(rc.sectors, sector)
	}

	for i := 1; i <= 6; i++ {
		next := i%6 + 1
		tunnel, err := galaxy.NewWarpTunnel(fmt.Sprintf("WT-%d", i), fmt.Sprintf("SEC-%d", i), fmt.Sprintf("SEC-%d", next), 1)
		if err != nil {
			return err
		}
		rc.tunnels = append(rc.tunnels, tunnel)

		// Sector i sells commodity i cheap; the next sector buys it dear
		commodity := fmt.Sprintf("GOODS-%d", i)
		selling, err := market.NewCommodityListing(commodity, true, false, 100, 80, 200, 10)
		if err != nil {
			return err
		}
		buying, err := market.NewCommodityListing(commodity, false, true, 120, 0, 200, 10)
		if err != nil {
			return err
		}

		seller, err := market.NewStation(fmt.Sprintf("ST-%d-sell", i), fmt.Sprintf("SEC-%d", i), "", []market.CommodityListing{*selling})
		if err != nil {
			return err
		}
		buyer, err := market.NewStation(fmt.Sprintf("ST-%d-buy", next), fmt.Sprintf("SEC-%d", next), "", []market.CommodityListing{*buying})
		if err != nil {
			return err
		}
		rc.stations.stations[seller.SectorID()] = append(rc.stations.stations[seller.SectorID()], seller)
		rc.stations.stations[buyer.SectorID()] = append(rc.stations.stations[buyer.SectorID()], buyer)
	}
	return nil
}

// Action steps

func (rc *routeOptimizationContext) iScanForOpportunities(startSector string, maxDistance int, margin string) error {
	minMargin, err := strconv.ParseFloat(margin, 64)
	if err != nil {
		return err
	}
	rc.opportunities, rc.err = rc.advisor().FindArbitrageOpportunities(context.Background(), startSector, maxDistance, minMargin)
	return nil
}

func (rc *routeOptimizationContext) iRequestARoute(objective, startSector string, capacity int, maxTime int, tolerance string) error {
	riskTolerance, err := strconv.ParseFloat(tolerance, 64)
	if err != nil {
		return err
	}
	rc.route, rc.err = rc.advisor().FindOptimalRoute(context.Background(), services.OptimalRouteQuery{
		StartSectorID: startSector,
		CargoCapacity: capacity,
		MaxRouteTime:  float64(maxTime),
		Objective:     trading.Objective(objective),
		RiskTolerance: riskTolerance,
	})
	return nil
}

func (rc *routeOptimizationContext) iRequestRecommendations(startSector string, capacity int, maxTime int, tolerance string) error {
	riskTolerance, err := strconv.ParseFloat(tolerance, 64)
	if err != nil {
		return err
	}
	rc.recommendations, rc.err = rc.advisor().GetRouteRecommendations(context.Background(), services.PlayerContext{
		CurrentSectorID: startSector,
		CargoCapacity:   capacity,
		MaxRouteTime:    float64(maxTime),
		RiskTolerance:   riskTolerance,
	})
	return nil
}

// Assertion steps

func (rc *routeOptimizationContext) exactlyNOpportunitiesFound(count int) error {
	if rc.err != nil {
		return fmt.Errorf("scan failed: %w", rc.err)
	}
	if len(rc.opportunities) != count {
		return fmt.Errorf("expected %d opportunities, got %d", count, len(rc.opportunities))
	}
	return nil
}

func (rc *routeOptimizationContext) opportunityCarries(commodity, from, to string) error {
	if len(rc.opportunities) == 0 {
		return errors.New("no opportunities to check")
	}
	op := rc.opportunities[0]
	if op.Commodity() != commodity || op.FromSectorID() != from || op.ToSectorID() != to {
		return fmt.Errorf("expected %s from %s to %s, got %s from %s to %s",
			commodity, from, to, op.Commodity(), op.FromSectorID(), op.ToSectorID())
	}
	return nil
}

func (rc *routeOptimizationContext) opportunityProfitPerUnit(expected string) error {
	want, err := strconv.ParseFloat(expected, 64)
	if err != nil {
		return err
	}
	if len(rc.opportunities) == 0 {
		return errors.New("no opportunities to check")
	}
	got := rc.opportunities[0].ProfitPerUnit()
	if got != want {
		return fmt.Errorf("expected profit per unit %.2f, got %.2f", want, got)
	}
	return nil
}

func (rc *routeOptimizationContext) opportunityQuantityAtMost(limit int) error {
	if len(rc.opportunities) == 0 {
		return errors.New("no opportunities to check")
	}
	if got := rc.opportunities[0].MaxQuantity(); got > limit {
		return fmt.Errorf("expected quantity at most %d, got %d", limit, got)
	}
	return nil
}

func (rc *routeOptimizationContext) noRouteIsFound() error {
	if rc.err == nil {
		return fmt.Errorf("expected no route, got one through %v", rc.route.Sectors)
	}
	if !errors.Is(rc.err, trading.ErrNoRouteFound) {
		return fmt.Errorf("expected no-route outcome, got: %w", rc.err)
	}
	return nil
}

func (rc *routeOptimizationContext) aRouteIsFound() error {
	if rc.err != nil {
		return fmt.Errorf("route construction failed: %w", rc.err)
	}
	if rc.route == nil {
		return errors.New("no route returned")
	}
	return nil
}

func (rc *routeOptimizationContext) routeTypeIs(expected string) error {
	if rc.route == nil {
		return errors.New("no route to check")
	}
	if string(rc.route.RouteType) != expected {
		return fmt.Errorf("expected route type %s, got %s", expected, rc.route.RouteType)
	}
	return nil
}

func (rc *routeOptimizationContext) routeStartsAndEndsAt(sectorID string) error {
	if rc.route == nil {
		return errors.New("no route to check")
	}
	first := rc.route.Sectors[0]
	last := rc.route.Sectors[len(rc.route.Sectors)-1]
	if first != sectorID || last != sectorID {
		return fmt.Errorf("expected route to start and end at %s, got %s...%s", sectorID, first, last)
	}
	return nil
}

func (rc *routeOptimizationContext) atLeastNRecommendations(count int) error {
	if rc.err != nil {
		return fmt.Errorf("recommendation query failed: %w", rc.err)
	}
	if len(rc.recommendations) < count {
		return fmt.Errorf("expected at least %d recommendations, got %d", count, len(rc.recommendations))
	}
	return nil
}

func (rc *routeOptimizationContext) recommendationsSortedByExpectedValue() error {
	for i := 1; i < len(rc.recommendations); i++ {
		prev := rc.recommendations[i-1].TotalProfit * rc.recommendations[i-1].Confidence
		curr := rc.recommendations[i].TotalProfit * rc.recommendations[i].Confidence
		if prev < curr {
			return fmt.Errorf("recommendations out of order at position %d: %.2f < %.2f", i, prev, curr)
		}
	}
	return nil
}

// InitializeRouteOptimizationScenario registers the route optimization steps
func InitializeRouteOptimizationScenario(sc *godog.ScenarioContext) {
	rc := &routeOptimizationContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		rc.reset()
		return ctx, nil
	})

	sc.Step(`^a galaxy with sectors:$`, rc.aGalaxyWithSectors)
	sc.Step(`^warp tunnels:$`, rc.warpTunnels)
	sc.Step(`^a station "([^"]+)" in sector "([^"]+)" with listings:$`, rc.aStationWithListings)
	sc.Step(`^a six sector ring with one profitable commodity per hop$`, rc.aSixSectorRing)

	sc.Step(`^I scan for opportunities from "([^"]+)" within distance (\d+) at margin ([\d.]+)$`, rc.iScanForOpportunities)
	sc.Step(`^I request a "([^"]+)" route from "([^"]+)" with capacity (\d+), time budget (\d+) and risk tolerance ([\d.]+)$`, rc.iRequestARoute)
	sc.Step(`^I request route recommendations from "([^"]+)" with capacity (\d+), time budget (\d+) and risk tolerance ([\d.]+)$`, rc.iRequestRecommendations)

	sc.Step(`^exactly (\d+) opportunity is found$`, rc.exactlyNOpportunitiesFound)
	sc.Step(`^the opportunity carries "([^"]+)" from "([^"]+)" to "([^"]+)"$`, rc.opportunityCarries)
	sc.Step(`^the opportunity profit per unit is ([\d.]+)$`, rc.opportunityProfitPerUnit)
	sc.Step(`^the opportunity quantity is at most (\d+)$`, rc.opportunityQuantityAtMost)
	sc.Step(`^no route is found$`, rc.noRouteIsFound)
	sc.Step(`^a route is found$`, rc.aRouteIsFound)
	sc.Step(`^the route type is "([^"]+)"$`, rc.routeTypeIs)
	sc.Step(`^the route starts and ends at "([^"]+)"$`, rc.routeStartsAndEndsAt)
	sc.Step(`^at least (\d+) recommendations are returned$`, rc.atLeastNRecommendations)
	sc.Step(`^recommendations are sorted by expected value$`, rc.recommendationsSortedByExpectedValue)
}
