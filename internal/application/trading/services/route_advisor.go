package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sectorwars/traderoutes/internal/domain/galaxy"
	"github.com/sectorwars/traderoutes/internal/domain/trading"
	"github.com/sectorwars/traderoutes/pkg/utils"
)

// AdvisorMetrics records engine activity for observability.
// A nil recorder disables metrics.
type AdvisorMetrics interface {
	RecordScan(opportunities int)
	RecordRoute(objective trading.Objective)
}

// AdvisorConfig carries the engine tunables the advisor needs
type AdvisorConfig struct {
	MinProfitMargin   float64 // default margin for opportunity viability
	TimePerDistance   float64 // hours per distance unit
	PlanningPoolSize  int     // opportunity cap for route planning
	ArbitragePoolSize int     // opportunity cap for quick arbitrage scans
}

// RouteAdvisor is the engine facade: it orchestrates the graph snapshot,
// opportunity scanner, route planner and evaluator to answer route queries.
//
// The advisor is stateless between calls; the only shared state is the
// cached graph snapshot owned by the GraphProvider.
type RouteAdvisor struct {
	graphProvider galaxy.GraphProvider
	scanner       *OpportunityScanner
	planner       *trading.RoutePlanner
	evaluator     *trading.RouteEvaluator
	cfg           AdvisorConfig
	metrics       AdvisorMetrics
}

// NewRouteAdvisor creates the engine facade
func NewRouteAdvisor(
	graphProvider galaxy.GraphProvider,
	scanner *OpportunityScanner,
	planner *trading.RoutePlanner,
	evaluator *trading.RouteEvaluator,
	cfg AdvisorConfig,
	metrics AdvisorMetrics,
) *RouteAdvisor {
	return &RouteAdvisor{
		graphProvider: graphProvider,
		scanner:       scanner,
		planner:       planner,
		evaluator:     evaluator,
		cfg:           cfg,
		metrics:       metrics,
	}
}

// OptimalRouteQuery describes a single-objective route request
type OptimalRouteQuery struct {
	StartSectorID string
	CargoCapacity int
	MaxRouteTime  float64 // hours
	Objective     trading.Objective
	RiskTolerance float64
}

// Validate rejects invalid inputs before any graph work begins
func (q OptimalRouteQuery) Validate() error {
	if q.StartSectorID == "" {
		return trading.ErrInvalidStartSector
	}
	if q.CargoCapacity <= 0 {
		return trading.ErrInvalidCargoCapacity
	}
	if q.MaxRouteTime <= 0 {
		return trading.ErrInvalidTimeBudget
	}
	if q.RiskTolerance < 0 || q.RiskTolerance > 1 {
		return trading.ErrInvalidRiskTolerance
	}
	if _, err := trading.ParseObjective(string(q.Objective)); err != nil {
		return err
	}
	return nil
}

// FindOptimalRoute computes the best route for the query's objective.
// Returns ErrNoRouteFound when the neighborhood holds no constructible
// route; store failures are propagated distinctly.
func (a *RouteAdvisor) FindOptimalRoute(ctx context.Context, query OptimalRouteQuery) (*trading.OptimizedRoute, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pool, err := a.scanForPlanning(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, trading.ErrNoOpportunitiesFound
	}

	route, err := a.constructRoute(pool, query)
	if err != nil {
		return nil, err
	}

	if a.metrics != nil {
		a.metrics.RecordRoute(query.Objective)
	}

	return a.evaluator.Evaluate(route), nil
}

// constructRoute dispatches to the constructor matching the objective
func (a *RouteAdvisor) constructRoute(pool []*trading.TradingOpportunity, query OptimalRouteQuery) (*trading.OptimizedRoute, error) {
	switch query.Objective {
	case trading.ObjectiveMaxProfit:
		return a.planner.MaxProfitRoute(pool, query.StartSectorID, query.CargoCapacity)
	case trading.ObjectiveMinTime:
		return a.planner.MinTimeRoute(pool, query.StartSectorID, query.CargoCapacity, query.MaxRouteTime)
	case trading.ObjectiveMinRisk:
		return a.planner.MinRiskRoute(pool, query.StartSectorID, query.CargoCapacity, query.RiskTolerance)
	case trading.ObjectiveBalanced:
		return a.planner.BalancedRoute(pool, query.StartSectorID, query.CargoCapacity, query.MaxRouteTime, query.RiskTolerance)
	default:
		return nil, fmt.Errorf("%w: %q", trading.ErrInvalidObjective, query.Objective)
	}
}

// scanForPlanning runs the opportunity scan once per query, bounded by the
// time budget converted to distance
func (a *RouteAdvisor) scanForPlanning(ctx context.Context, query OptimalRouteQuery) ([]*trading.TradingOpportunity, error) {
	graph, err := a.graphProvider.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph snapshot: %w", err)
	}

	maxDistance := int(query.MaxRouteTime / a.cfg.TimePerDistance)
	riskCeiling := query.RiskTolerance

	pool, err := a.scanner.Scan(ctx, graph, ScanRequest{
		StartSectorID: query.StartSectorID,
		MaxDistance:   maxDistance,
		MinMargin:     a.cfg.MinProfitMargin,
		RiskCeiling:   &riskCeiling,
		Limit:         a.cfg.PlanningPoolSize,
	})
	if err != nil {
		return nil, err
	}

	if a.metrics != nil {
		a.metrics.RecordScan(len(pool))
	}

	return pool, nil
}

// FindArbitrageOpportunities answers "what can I do right now" queries:
// a lightweight scan around the player's location with no route
// construction. Returns an empty slice when nothing clears the margin.
func (a *RouteAdvisor) FindArbitrageOpportunities(ctx context.Context, sectorID string, maxDistance int, minMargin float64) ([]*trading.TradingOpportunity, error) {
	if sectorID == "" {
		return nil, trading.ErrInvalidStartSector
	}
	if maxDistance <= 0 {
		return nil, fmt.Errorf("max distance must be positive, got %d", maxDistance)
	}
	if minMargin <= 0 {
		minMargin = a.cfg.MinProfitMargin
	}

	graph, err := a.graphProvider.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph snapshot: %w", err)
	}

	opportunities, err := a.scanner.Scan(ctx, graph, ScanRequest{
		StartSectorID: sectorID,
		MaxDistance:   maxDistance,
		MinMargin:     minMargin,
		Limit:         a.cfg.ArbitragePoolSize,
	})
	if err != nil {
		return nil, err
	}

	if a.metrics != nil {
		a.metrics.RecordScan(len(opportunities))
	}

	return opportunities, nil
}

// PlayerContext carries the session inputs for recommendation queries
type PlayerContext struct {
	CurrentSectorID string
	CargoCapacity   int
	MaxRouteTime    float64
	RiskTolerance   float64
}

// RouteRecommendation is a ranked route description for comparison across
// objectives
type RouteRecommendation struct {
	RouteID       string
	Objective     trading.Objective
	Sectors       []string
	TotalProfit   float64
	TotalTime     float64
	ProfitPerHour float64
	RiskLevel     float64
	Confidence    float64
	Description   string
	Route         *trading.OptimizedRoute
}

// GetRouteRecommendations runs every objective against the same opportunity
// pool and ranks the results by expected value (profit x confidence).
// Objectives that cannot construct a route are simply absent from the
// result; an empty result means the neighborhood has nothing to offer.
func (a *RouteAdvisor) GetRouteRecommendations(ctx context.Context, player PlayerContext) ([]*RouteRecommendation, error) {
	base := OptimalRouteQuery{
		StartSectorID: player.CurrentSectorID,
		CargoCapacity: player.CargoCapacity,
		MaxRouteTime:  player.MaxRouteTime,
		Objective:     trading.ObjectiveMaxProfit,
		RiskTolerance: player.RiskTolerance,
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}

	pool, err := a.scanForPlanning(ctx, base)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, nil
	}

	var recommendations []*RouteRecommendation
	for _, objective := range trading.AllObjectives {
		query := base
		query.Objective = objective

		route, err := a.constructRoute(pool, query)
		if err != nil {
			if errors.Is(err, trading.ErrNoRouteFound) {
				continue
			}
			return nil, err
		}
		route = a.evaluator.Evaluate(route)

		if a.metrics != nil {
			a.metrics.RecordRoute(objective)
		}

		recommendations = append(recommendations, &RouteRecommendation{
			RouteID:       utils.GenerateRouteID(string(objective)),
			Objective:     objective,
			Sectors:       route.Sectors,
			TotalProfit:   route.TotalProfit,
			TotalTime:     route.TotalTime,
			ProfitPerHour: route.ProfitPerHour,
			RiskLevel:     route.TotalRisk,
			Confidence:    route.RouteConfidence,
			Description:   describeRoute(route, objective),
			Route:         route,
		})
	}

	sort.Slice(recommendations, func(i, j int) bool {
		return recommendations[i].TotalProfit*recommendations[i].Confidence >
			recommendations[j].TotalProfit*recommendations[j].Confidence
	})

	return recommendations, nil
}

// describeRoute generates a human-readable route summary per objective
func describeRoute(route *trading.OptimizedRoute, objective trading.Objective) string {
	sectorCount := len(route.Sectors)

	switch objective {
	case trading.ObjectiveMaxProfit:
		return fmt.Sprintf("High-profit %d-sector route generating %.0f credits", sectorCount, route.TotalProfit)
	case trading.ObjectiveMinTime:
		return fmt.Sprintf("Quick %d-sector route completed in %.1f hours", sectorCount, route.TotalTime)
	case trading.ObjectiveMinRisk:
		return fmt.Sprintf("Safe %d-sector route with %.2f risk level", sectorCount, route.TotalRisk)
	default:
		return fmt.Sprintf("Balanced %d-sector route: %.0f credits in %.1fh", sectorCount, route.TotalProfit, route.TotalTime)
	}
}
