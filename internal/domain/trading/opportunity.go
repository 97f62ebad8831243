package trading

import (
	"errors"
	"fmt"
)

// TradingOpportunity represents an immutable profitable buy-here/sell-there
// pairing for one commodity between two sectors.
//
// Invariants enforced at construction:
//   - profitPerUnit > 0
//   - sellPrice >= buyPrice x (1 + minMargin)
//   - maxQuantity >= 0
//   - riskFactor and confidence in [0,1]
//
// An opportunity violating any of these is never constructed, so every
// opportunity in circulation is viable by definition.
type TradingOpportunity struct {
	fromSectorID  string
	toSectorID    string
	commodity     string
	buyPrice      float64
	sellPrice     float64
	profitPerUnit float64 // sellPrice - buyPrice
	maxQuantity   int     // min(source stock, destination free capacity)
	distance      int
	travelTime    float64 // hours
	riskFactor    float64
	confidence    float64 // 1 - avg(source, destination volatility)/100
}

// NewTradingOpportunity creates a trading opportunity with validation.
// Confidence is derived from the volatility (0-100) of the source and
// destination listings.
func NewTradingOpportunity(
	fromSectorID string,
	toSectorID string,
	commodity string,
	buyPrice float64,
	sellPrice float64,
	maxQuantity int,
	distance int,
	travelTime float64,
	riskFactor float64,
	sourceVolatility float64,
	destVolatility float64,
	minMargin float64,
) (*TradingOpportunity, error) {
	if fromSectorID == "" {
		return nil, errors.New("from sector required")
	}
	if toSectorID == "" {
		return nil, errors.New("to sector required")
	}
	if fromSectorID == toSectorID {
		return nil, errors.New("opportunity cannot start and end in the same sector")
	}
	if commodity == "" {
		return nil, errors.New("commodity required")
	}
	if buyPrice <= 0 {
		return nil, errors.New("buy price must be positive")
	}
	if sellPrice < buyPrice*(1+minMargin) {
		return nil, fmt.Errorf("%w: sell price %.2f below %.2f margin over buy price %.2f",
			ErrInsufficientMargin, sellPrice, minMargin, buyPrice)
	}
	if maxQuantity < 0 {
		return nil, errors.New("max quantity cannot be negative")
	}
	if distance < 0 {
		return nil, errors.New("distance cannot be negative")
	}
	if travelTime < 0 {
		return nil, errors.New("travel time cannot be negative")
	}
	if riskFactor < 0 || riskFactor > 1 {
		return nil, fmt.Errorf("risk factor must be in [0,1], got %.2f", riskFactor)
	}
	if sourceVolatility < 0 || sourceVolatility > 100 {
		return nil, fmt.Errorf("source volatility must be in [0,100], got %.1f", sourceVolatility)
	}
	if destVolatility < 0 || destVolatility > 100 {
		return nil, fmt.Errorf("destination volatility must be in [0,100], got %.1f", destVolatility)
	}

	return &TradingOpportunity{
		fromSectorID:  fromSectorID,
		toSectorID:    toSectorID,
		commodity:     commodity,
		buyPrice:      buyPrice,
		sellPrice:     sellPrice,
		profitPerUnit: sellPrice - buyPrice,
		maxQuantity:   maxQuantity,
		distance:      distance,
		travelTime:    travelTime,
		riskFactor:    riskFactor,
		confidence:    1.0 - (sourceVolatility+destVolatility)/2.0/100.0,
	}, nil
}

// ErrInsufficientMargin indicates a price pair below the minimum profit margin
var ErrInsufficientMargin = errors.New("profit margin below threshold")

// Getters - read-only access keeps the value object immutable

func (o *TradingOpportunity) FromSectorID() string {
	return o.fromSectorID
}

func (o *TradingOpportunity) ToSectorID() string {
	return o.toSectorID
}

func (o *TradingOpportunity) Commodity() string {
	return o.commodity
}

func (o *TradingOpportunity) BuyPrice() float64 {
	return o.buyPrice
}

func (o *TradingOpportunity) SellPrice() float64 {
	return o.sellPrice
}

func (o *TradingOpportunity) ProfitPerUnit() float64 {
	return o.profitPerUnit
}

func (o *TradingOpportunity) MaxQuantity() int {
	return o.maxQuantity
}

func (o *TradingOpportunity) Distance() int {
	return o.distance
}

func (o *TradingOpportunity) TravelTime() float64 {
	return o.travelTime
}

func (o *TradingOpportunity) RiskFactor() float64 {
	return o.riskFactor
}

func (o *TradingOpportunity) Confidence() float64 {
	return o.confidence
}

// PotentialProfit returns profit for a ship of the given capacity:
// profitPerUnit x min(capacity, maxQuantity)
func (o *TradingOpportunity) PotentialProfit(cargoCapacity int) float64 {
	qty := o.maxQuantity
	if cargoCapacity < qty {
		qty = cargoCapacity
	}
	return o.profitPerUnit * float64(qty)
}

func (o *TradingOpportunity) String() string {
	return fmt.Sprintf("TradingOpportunity{%s: %s -> %s, +%.2f/u x %d}",
		o.commodity, o.fromSectorID, o.toSectorID, o.profitPerUnit, o.maxQuantity)
}
