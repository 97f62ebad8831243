package trading

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRouteFound indicates no route could be constructed under the
	// given constraints. This is an expected outcome, not a failure.
	ErrNoRouteFound = errors.New("no route found")

	// ErrNoOpportunitiesFound indicates no viable trading opportunities
	// exist in the scanned neighborhood. Wraps ErrNoRouteFound so callers
	// checking for the broad no-route outcome match both.
	ErrNoOpportunitiesFound = fmt.Errorf("no trading opportunities found: %w", ErrNoRouteFound)

	// ErrInvalidCargoCapacity indicates the cargo capacity is invalid
	ErrInvalidCargoCapacity = errors.New("cargo capacity must be positive")

	// ErrInvalidTimeBudget indicates the route time budget is invalid
	ErrInvalidTimeBudget = errors.New("time budget must be positive")

	// ErrInvalidRiskTolerance indicates the risk tolerance is outside [0,1]
	ErrInvalidRiskTolerance = errors.New("risk tolerance must be between 0 and 1")

	// ErrInvalidObjective indicates an unknown optimization objective
	ErrInvalidObjective = errors.New("unknown route objective")

	// ErrInvalidStartSector indicates the start sector is missing or unknown
	ErrInvalidStartSector = errors.New("start sector required")
)
