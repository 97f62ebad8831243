package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sectorwars/traderoutes/internal/domain/galaxy"
	"github.com/sectorwars/traderoutes/internal/domain/market"
	"github.com/sectorwars/traderoutes/internal/domain/trading"
)

// Opportunities carry a flat base risk until sector threat data (pirate
// activity, war zones) is wired into the store.
const baseRiskFactor = 0.1

// riskCeilingSlack widens the caller's risk tolerance during scanning so
// that slightly riskier opportunities stay available to the constructors.
const riskCeilingSlack = 0.2

// OpportunityScanner discovers profitable commodity price differentials
// between reachable sector pairs.
//
// This is an application service: it coordinates the station repository
// (the only I/O in the pipeline) with the pure domain construction of
// trading opportunities. Station lookups fan out per sector with bounded
// concurrency; everything after that is sequential and in-memory.
type OpportunityScanner struct {
	stationRepo     market.StationRepository
	timePerDistance float64 // hours per distance unit
	concurrency     int     // station lookup fan-out limit
}

// NewOpportunityScanner creates an opportunity scanner
func NewOpportunityScanner(stationRepo market.StationRepository, timePerDistance float64, concurrency int) *OpportunityScanner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &OpportunityScanner{
		stationRepo:     stationRepo,
		timePerDistance: timePerDistance,
		concurrency:     concurrency,
	}
}

// ScanRequest bounds an opportunity scan
type ScanRequest struct {
	StartSectorID string
	MaxDistance   int
	MinMargin     float64
	// RiskCeiling, when non-nil, drops opportunities whose risk factor
	// exceeds the ceiling plus a fixed slack
	RiskCeiling *float64
	// Limit caps the result size to bound downstream constructor work
	Limit int
}

// Scan finds trading opportunities in the neighborhood of the start sector.
//
// Algorithm:
//  1. Resolve the set of sectors reachable within MaxDistance from the
//     graph snapshot's precomputed distance table.
//  2. Load stations for every reachable sector (bounded fan-out).
//  3. For every ordered pair of station-hosting sectors and every commodity,
//     pair the cheapest selling station at the source with the
//     highest-paying buying station at the destination.
//  4. Emit an opportunity when the margin clears MinMargin, with quantity
//     capped by source stock and destination free capacity.
//  5. Sort by profit potential and truncate to Limit.
//
// Degenerate inputs (no reachable sectors, no stations) yield an empty
// list, not an error. Store failures are propagated.
func (s *OpportunityScanner) Scan(ctx context.Context, graph *galaxy.Graph, req ScanRequest) ([]*trading.TradingOpportunity, error) {
	if graph == nil || graph.IsEmpty() {
		return nil, nil
	}

	reachable := graph.SectorsWithin(req.StartSectorID, req.MaxDistance)
	if len(reachable) == 0 {
		return nil, nil
	}

	stationsBySector, err := s.loadStations(ctx, reachable)
	if err != nil {
		return nil, err
	}
	if len(stationsBySector) < 2 {
		return nil, nil
	}

	var opportunities []*trading.TradingOpportunity

	for fromID, fromStations := range stationsBySector {
		for toID, toStations := range stationsBySector {
			if fromID == toID {
				continue
			}

			distance, ok := graph.Distance(fromID, toID)
			if !ok {
				continue
			}

			pairOps := s.scanSectorPair(fromID, toID, fromStations, toStations, int(math.Round(distance)), req.MinMargin)
			for _, op := range pairOps {
				if req.RiskCeiling != nil && op.RiskFactor() > *req.RiskCeiling+riskCeilingSlack {
					continue
				}
				opportunities = append(opportunities, op)
			}
		}
	}

	// Sector and commodity tiebreakers keep the scan order stable across
	// runs despite map iteration above
	sort.Slice(opportunities, func(i, j int) bool {
		pi := opportunities[i].ProfitPerUnit() * float64(opportunities[i].MaxQuantity())
		pj := opportunities[j].ProfitPerUnit() * float64(opportunities[j].MaxQuantity())
		if pi != pj {
			return pi > pj
		}
		if opportunities[i].FromSectorID() != opportunities[j].FromSectorID() {
			return opportunities[i].FromSectorID() < opportunities[j].FromSectorID()
		}
		if opportunities[i].ToSectorID() != opportunities[j].ToSectorID() {
			return opportunities[i].ToSectorID() < opportunities[j].ToSectorID()
		}
		return opportunities[i].Commodity() < opportunities[j].Commodity()
	})

	if req.Limit > 0 && len(opportunities) > req.Limit {
		opportunities = opportunities[:req.Limit]
	}

	return opportunities, nil
}

// loadStations fetches stations for all reachable sectors with bounded
// concurrency. Sectors without stations are omitted from the result.
func (s *OpportunityScanner) loadStations(ctx context.Context, reachable map[string]int) (map[string][]*market.Station, error) {
	var mu sync.Mutex
	stationsBySector := make(map[string][]*market.Station)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for sectorID := range reachable {
		sectorID := sectorID
		g.Go(func() error {
			stations, err := s.stationRepo.FindBySector(gctx, sectorID)
			if err != nil {
				return fmt.Errorf("failed to load stations for sector %s: %w", sectorID, err)
			}
			if len(stations) == 0 {
				return nil
			}
			mu.Lock()
			stationsBySector[sectorID] = stations
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stationsBySector, nil
}

// scanSectorPair finds, per commodity, the cheapest selling station at the
// source and the highest-paying buying station at the destination, and
// emits an opportunity when the pair clears the margin.
func (s *OpportunityScanner) scanSectorPair(
	fromID, toID string,
	fromStations, toStations []*market.Station,
	distance int,
	minMargin float64,
) []*trading.TradingOpportunity {
	type sellSide struct {
		price      float64
		quantity   int
		volatility float64
	}
	type buySide struct {
		price        float64
		freeCapacity int
		volatility   float64
	}

	// Cheapest station selling each commodity at the source
	sellers := make(map[string]sellSide)
	for _, station := range fromStations {
		for _, listing := range station.Listings() {
			if !listing.Sells || listing.Quantity <= 0 {
				continue
			}
			if current, ok := sellers[listing.Commodity]; !ok || listing.Price < current.price {
				sellers[listing.Commodity] = sellSide{
					price:      listing.Price,
					quantity:   listing.Quantity,
					volatility: listing.Volatility,
				}
			}
		}
	}

	// Highest-paying station buying each commodity at the destination
	buyers := make(map[string]buySide)
	for _, station := range toStations {
		for _, listing := range station.Listings() {
			if !listing.Buys {
				continue
			}
			if current, ok := buyers[listing.Commodity]; !ok || listing.Price > current.price {
				buyers[listing.Commodity] = buySide{
					price:        listing.Price,
					freeCapacity: listing.FreeCapacity(),
					volatility:   listing.Volatility,
				}
			}
		}
	}

	var opportunities []*trading.TradingOpportunity
	for commodity, seller := range sellers {
		buyer, ok := buyers[commodity]
		if !ok {
			continue
		}
		if buyer.price <= seller.price*(1+minMargin) {
			continue
		}

		maxQuantity := seller.quantity
		if buyer.freeCapacity < maxQuantity {
			maxQuantity = buyer.freeCapacity
		}

		op, err := trading.NewTradingOpportunity(
			fromID,
			toID,
			commodity,
			seller.price,
			buyer.price,
			maxQuantity,
			distance,
			float64(distance)*s.timePerDistance,
			baseRiskFactor,
			seller.volatility,
			buyer.volatility,
			minMargin,
		)
		if err != nil {
			// The margin check above should make construction infallible;
			// skip rather than fail the whole scan.
			continue
		}
		opportunities = append(opportunities, op)
	}

	return opportunities
}
