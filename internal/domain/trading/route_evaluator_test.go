package trading_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sectorwars/traderoutes/internal/domain/trading"
	"github.com/sectorwars/traderoutes/test/helpers"
)

func TestRouteEvaluator_Classify(t *testing.T) {
	evaluator := trading.NewRouteEvaluator()

	tests := []struct {
		name    string
		sectors []string
		want    trading.RouteType
	}{
		{"two sectors", []string{"A", "B"}, trading.RouteTypeDirect},
		{"ends at start", []string{"A", "B", "C", "A"}, trading.RouteTypeCircular},
		{"no repeats", []string{"A", "B", "C", "D"}, trading.RouteTypeLinear},
		{"hub revisited", []string{"A", "B", "A", "C", "A", "D"}, trading.RouteTypeHubSpoke},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evaluator.Classify(tt.sectors))
		})
	}
}

func TestRouteEvaluator_Confidence(t *testing.T) {
	evaluator := trading.NewRouteEvaluator()

	assert.Equal(t, 0.0, evaluator.Confidence(nil))

	// Both fixtures carry 10% volatility on each end: confidence 0.9 each
	ops := []*trading.TradingOpportunity{
		helpers.MustOpportunity(t, "A", "B", "ORE", 100, 120, 50, 2, 0.1),
		helpers.MustOpportunity(t, "B", "C", "GAS", 40, 60, 30, 2, 0.1),
	}

	assert.InDelta(t, 0.9, evaluator.Confidence(ops), 1e-9)
}

func TestRouteEvaluator_EvaluateFillsDerivedFields(t *testing.T) {
	evaluator := trading.NewRouteEvaluator()
	hop := helpers.MustOpportunity(t, "A", "B", "ORE", 100, 120, 50, 2, 0.1)

	route, err := trading.NewOptimizedRoute([]string{"A", "B"}, []*trading.TradingOpportunity{hop})
	assert.NoError(t, err)

	evaluator.Evaluate(route)

	assert.Equal(t, trading.RouteTypeDirect, route.RouteType)
	assert.InDelta(t, 0.9, route.RouteConfidence, 1e-9)
}
