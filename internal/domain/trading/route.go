package trading

import (
	"fmt"
)

// RouteType classifies the topology of a route's sector sequence
type RouteType string

const (
	RouteTypeDirect   RouteType = "direct"
	RouteTypeLinear   RouteType = "linear"
	RouteTypeCircular RouteType = "circular"
	RouteTypeHubSpoke RouteType = "hub_spoke"
)

// OptimizedRoute is an ordered chain of sectors connected by consumed
// trading opportunities, with aggregate metrics for comparison.
//
// Invariants (enforced by NewOptimizedRoute):
//   - len(Sectors) >= 2
//   - len(Opportunities) == len(Sectors) - 1
//   - each opportunity departs from the preceding sector and arrives at
//     the following one, so there are no teleporting hops
//   - no (from, to) sector pair is consumed more than once
type OptimizedRoute struct {
	Sectors         []string
	Opportunities   []*TradingOpportunity
	TotalProfit     float64 // net of fuel cost
	TotalDistance   int
	TotalTime       float64 // hours
	TotalRisk       float64 // mean opportunity risk
	CargoEfficiency float64
	ProfitPerHour   float64
	RouteConfidence float64
	RouteType       RouteType
}

// NewOptimizedRoute assembles a route and verifies its structural
// invariants. Constructors either return a fully consistent route through
// this function or no route at all, never a partial one.
func NewOptimizedRoute(sectors []string, opportunities []*TradingOpportunity) (*OptimizedRoute, error) {
	if len(sectors) < 2 {
		return nil, fmt.Errorf("route needs at least 2 sectors, got %d", len(sectors))
	}
	if len(opportunities) != len(sectors)-1 {
		return nil, fmt.Errorf("route has %d sectors but %d opportunities", len(sectors), len(opportunities))
	}
	seen := make(map[pairKey]bool, len(opportunities))
	for i, op := range opportunities {
		if op == nil {
			return nil, fmt.Errorf("opportunity %d is nil", i)
		}
		if op.FromSectorID() != sectors[i] {
			return nil, fmt.Errorf("hop %d departs from %s but route is at %s", i, op.FromSectorID(), sectors[i])
		}
		if op.ToSectorID() != sectors[i+1] {
			return nil, fmt.Errorf("hop %d arrives at %s but route expects %s", i, op.ToSectorID(), sectors[i+1])
		}
		key := pairKey{from: op.FromSectorID(), to: op.ToSectorID()}
		if seen[key] {
			return nil, fmt.Errorf("hop %d reuses sector pair %s->%s", i, op.FromSectorID(), op.ToSectorID())
		}
		seen[key] = true
	}

	return &OptimizedRoute{
		Sectors:       append([]string(nil), sectors...),
		Opportunities: append([]*TradingOpportunity(nil), opportunities...),
	}, nil
}

// StartSector returns the route's origin
func (r *OptimizedRoute) StartSector() string {
	return r.Sectors[0]
}

// Hops returns the number of travel legs in the route
func (r *OptimizedRoute) Hops() int {
	return len(r.Sectors) - 1
}

func (r *OptimizedRoute) String() string {
	return fmt.Sprintf("OptimizedRoute{%d sectors, profit=%.2f, time=%.1fh, type=%s}",
		len(r.Sectors), r.TotalProfit, r.TotalTime, r.RouteType)
}
