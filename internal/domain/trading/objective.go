package trading

import "fmt"

// Objective selects the optimization goal for route construction
type Objective string

const (
	ObjectiveMaxProfit Objective = "max_profit"
	ObjectiveMinTime   Objective = "min_time"
	ObjectiveMinRisk   Objective = "min_risk"
	ObjectiveBalanced  Objective = "balanced"
)

// AllObjectives lists every objective in recommendation order
var AllObjectives = []Objective{
	ObjectiveMaxProfit,
	ObjectiveMinTime,
	ObjectiveMinRisk,
	ObjectiveBalanced,
}

// ParseObjective validates and converts a string into an Objective
func ParseObjective(s string) (Objective, error) {
	switch Objective(s) {
	case ObjectiveMaxProfit, ObjectiveMinTime, ObjectiveMinRisk, ObjectiveBalanced:
		return Objective(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidObjective, s)
	}
}

func (o Objective) String() string {
	return string(o)
}
