package trading

import (
	"sort"
)

// RoutePlanner constructs optimized routes from a pool of trading
// opportunities using one of four objective-driven strategies.
//
// This is a pure domain service: strategies never mutate the pool, perform
// no I/O, and are deterministic given their inputs. Each strategy returns
// ErrNoRouteFound when it cannot extend a route beyond the start sector,
// an expected outcome for empty or infeasible pools rather than a failure.
type RoutePlanner struct {
	maxRouteLength      int     // maximum sectors in a route
	fuelCostPerDistance float64 // credits per distance unit
}

// Hop limits per strategy. Speed-focused routes stay deliberately short;
// balanced routes sit between that and the full profit horizon.
const (
	minTimeMaxHops  = 3
	balancedMaxHops = 4
)

// NewRoutePlanner creates a route planner with the given tunables
func NewRoutePlanner(maxRouteLength int, fuelCostPerDistance float64) *RoutePlanner {
	return &RoutePlanner{
		maxRouteLength:      maxRouteLength,
		fuelCostPerDistance: fuelCostPerDistance,
	}
}

// pairKey identifies a (from, to) sector pair for deduplication
type pairKey struct {
	from string
	to   string
}

// MaxProfitRoute builds a route by greedy chaining: deduplicate the pool by
// sector pair keeping the most profitable opportunity, then repeatedly take
// the unused opportunity departing from the current sector with the best
// profit-per-hour x confidence ratio, up to the hop limit.
func (p *RoutePlanner) MaxProfitRoute(pool []*TradingOpportunity, startSectorID string, cargoCapacity int) (*OptimizedRoute, error) {
	if len(pool) == 0 {
		return nil, ErrNoRouteFound
	}

	// Best opportunity per sector pair
	best := make(map[pairKey]*TradingOpportunity)
	for _, op := range pool {
		key := pairKey{from: op.FromSectorID(), to: op.ToSectorID()}
		if current, ok := best[key]; !ok || op.PotentialProfit(cargoCapacity) > current.PotentialProfit(cargoCapacity) {
			best[key] = op
		}
	}

	// Stable candidate order keeps tie-breaking deterministic
	candidates := make([]*TradingOpportunity, 0, len(best))
	for _, op := range best {
		candidates = append(candidates, op)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].FromSectorID() != candidates[j].FromSectorID() {
			return candidates[i].FromSectorID() < candidates[j].FromSectorID()
		}
		return candidates[i].ToSectorID() < candidates[j].ToSectorID()
	})

	current := startSectorID
	sectors := []string{current}
	var hops []*TradingOpportunity
	used := make(map[pairKey]bool)

	for len(sectors) < p.maxRouteLength {
		var next *TradingOpportunity
		bestRatio := 0.0

		for _, op := range candidates {
			key := pairKey{from: op.FromSectorID(), to: op.ToSectorID()}
			if used[key] || op.FromSectorID() != current {
				continue
			}

			travelTime := op.TravelTime()
			if travelTime < 1 {
				travelTime = 1
			}
			ratio := op.PotentialProfit(cargoCapacity) / travelTime * op.Confidence()

			if ratio > bestRatio {
				bestRatio = ratio
				next = op
			}
		}

		if next == nil {
			break
		}

		hops = append(hops, next)
		sectors = append(sectors, next.ToSectorID())
		used[pairKey{from: next.FromSectorID(), to: next.ToSectorID()}] = true
		current = next.ToSectorID()
	}

	return p.finalize(sectors, hops, cargoCapacity)
}

// MinTimeRoute builds a short route prioritizing speed: only opportunities
// whose travel time fits in half the budget are considered, sorted by travel
// time ascending (profit as tiebreaker), and at most three hops are taken
// while the cumulative time stays under the budget. Each sector pair is
// consumed at most once.
func (p *RoutePlanner) MinTimeRoute(pool []*TradingOpportunity, startSectorID string, cargoCapacity int, maxTime float64) (*OptimizedRoute, error) {
	viable := make([]*TradingOpportunity, 0, len(pool))
	for _, op := range pool {
		if op.TravelTime() <= maxTime/2 {
			viable = append(viable, op)
		}
	}
	if len(viable) == 0 {
		return nil, ErrNoRouteFound
	}

	sort.Slice(viable, func(i, j int) bool {
		if viable[i].TravelTime() != viable[j].TravelTime() {
			return viable[i].TravelTime() < viable[j].TravelTime()
		}
		return viable[i].ProfitPerUnit() > viable[j].ProfitPerUnit()
	})

	current := startSectorID
	sectors := []string{current}
	var hops []*TradingOpportunity
	totalTime := 0.0
	used := make(map[pairKey]bool)

	for _, op := range viable {
		key := pairKey{from: op.FromSectorID(), to: op.ToSectorID()}
		if used[key] || op.FromSectorID() != current || totalTime+op.TravelTime() > maxTime {
			continue
		}

		hops = append(hops, op)
		sectors = append(sectors, op.ToSectorID())
		totalTime += op.TravelTime()
		used[key] = true
		current = op.ToSectorID()

		if len(hops) >= minTimeMaxHops {
			break
		}
	}

	return p.finalize(sectors, hops, cargoCapacity)
}

// MinRiskRoute filters the pool to opportunities within the risk tolerance
// and delegates to the max-profit strategy. If nothing survives the filter
// the route is not found.
func (p *RoutePlanner) MinRiskRoute(pool []*TradingOpportunity, startSectorID string, cargoCapacity int, riskTolerance float64) (*OptimizedRoute, error) {
	safe := make([]*TradingOpportunity, 0, len(pool))
	for _, op := range pool {
		if op.RiskFactor() <= riskTolerance {
			safe = append(safe, op)
		}
	}
	if len(safe) == 0 {
		return nil, ErrNoRouteFound
	}

	return p.MaxProfitRoute(safe, startSectorID, cargoCapacity)
}

// BalancedRoute scores every opportunity on normalized profit, time, risk
// and confidence, then greedily chains the best-scoring opportunities that
// depart from the current sector, respecting the time budget, an eased
// risk ceiling (tolerance + 0.1), and sector-pair uniqueness, up to four hops.
//
// Weights: 0.4 profit, 0.2 time, 0.2 risk, 0.2 confidence.
func (p *RoutePlanner) BalancedRoute(pool []*TradingOpportunity, startSectorID string, cargoCapacity int, maxTime float64, riskTolerance float64) (*OptimizedRoute, error) {
	if len(pool) == 0 {
		return nil, ErrNoRouteFound
	}

	type scoredOpportunity struct {
		score float64
		op    *TradingOpportunity
	}

	scored := make([]scoredOpportunity, 0, len(pool))
	for _, op := range pool {
		profitScore := op.ProfitPerUnit() / 100.0 // normalized to 100 credits
		if profitScore > 1.0 {
			profitScore = 1.0
		}
		timeScore := 1.0 - op.TravelTime()/maxTime
		if timeScore < 0 {
			timeScore = 0
		}
		riskScore := 1.0 - op.RiskFactor()
		if riskScore < 0 {
			riskScore = 0
		}

		score := profitScore*0.4 + timeScore*0.2 + riskScore*0.2 + op.Confidence()*0.2
		scored = append(scored, scoredOpportunity{score: score, op: op})
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	current := startSectorID
	sectors := []string{current}
	var hops []*TradingOpportunity
	totalTime := 0.0
	used := make(map[pairKey]bool)

	for _, candidate := range scored {
		op := candidate.op
		key := pairKey{from: op.FromSectorID(), to: op.ToSectorID()}
		if used[key] || op.FromSectorID() != current {
			continue
		}
		if totalTime+op.TravelTime() > maxTime {
			continue
		}
		if op.RiskFactor() > riskTolerance+0.1 {
			continue
		}

		hops = append(hops, op)
		sectors = append(sectors, op.ToSectorID())
		totalTime += op.TravelTime()
		used[key] = true
		current = op.ToSectorID()

		if len(hops) >= balancedMaxHops {
			break
		}
	}

	return p.finalize(sectors, hops, cargoCapacity)
}

// finalize assembles a validated route and computes its aggregate metrics.
// Net profit subtracts fuel cost (distance x fuelCostPerDistance) from the
// gross opportunity profit at the given cargo capacity.
func (p *RoutePlanner) finalize(sectors []string, hops []*TradingOpportunity, cargoCapacity int) (*OptimizedRoute, error) {
	if len(hops) == 0 {
		return nil, ErrNoRouteFound
	}

	route, err := NewOptimizedRoute(sectors, hops)
	if err != nil {
		return nil, err
	}

	grossProfit := 0.0
	totalDistance := 0
	totalTime := 0.0
	totalRisk := 0.0

	for _, op := range hops {
		grossProfit += op.PotentialProfit(cargoCapacity)
		totalDistance += op.Distance()
		totalTime += op.TravelTime()
		totalRisk += op.RiskFactor()
	}

	netProfit := grossProfit - float64(totalDistance)*p.fuelCostPerDistance

	timeDivisor := totalTime
	if timeDivisor < 1 {
		timeDivisor = 1
	}

	route.TotalProfit = netProfit
	route.TotalDistance = totalDistance
	route.TotalTime = totalTime
	route.TotalRisk = totalRisk / float64(len(hops))
	route.CargoEfficiency = float64(len(hops)) / float64(len(sectors))
	route.ProfitPerHour = netProfit / timeDivisor

	return route, nil
}
