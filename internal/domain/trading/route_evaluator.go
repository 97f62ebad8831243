package trading

// RouteEvaluator derives comparison metrics from a constructed route.
//
// This is a domain service with no infrastructure dependencies. All methods
// are pure functions over the route's existing fields; prices and distances
// are never recomputed here.
type RouteEvaluator struct{}

// NewRouteEvaluator creates a route evaluator
func NewRouteEvaluator() *RouteEvaluator {
	return &RouteEvaluator{}
}

// Confidence returns the mean confidence across a route's opportunities.
// An empty list yields 0.
func (e *RouteEvaluator) Confidence(opportunities []*TradingOpportunity) float64 {
	if len(opportunities) == 0 {
		return 0.0
	}

	total := 0.0
	for _, op := range opportunities {
		total += op.Confidence()
	}
	return total / float64(len(opportunities))
}

// Classify determines the route topology from its sector sequence:
//   - direct: two sectors or fewer
//   - circular: ends where it started
//   - hub_spoke: more than 30% of visited sectors repeat
//   - linear: everything else
func (e *RouteEvaluator) Classify(sectors []string) RouteType {
	if len(sectors) < 3 {
		return RouteTypeDirect
	}
	if sectors[0] == sectors[len(sectors)-1] {
		return RouteTypeCircular
	}

	unique := make(map[string]struct{}, len(sectors))
	for _, id := range sectors {
		unique[id] = struct{}{}
	}
	if float64(len(unique)) < float64(len(sectors))*0.7 {
		return RouteTypeHubSpoke
	}

	return RouteTypeLinear
}

// Evaluate fills in the derived fields of a route in place and returns it
func (e *RouteEvaluator) Evaluate(route *OptimizedRoute) *OptimizedRoute {
	route.RouteConfidence = e.Confidence(route.Opportunities)
	route.RouteType = e.Classify(route.Sectors)
	return route
}
