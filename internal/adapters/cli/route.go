package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sectorwars/traderoutes/internal/application/trading/services"
	"github.com/sectorwars/traderoutes/internal/domain/trading"
)

// NewRouteCommand creates the route command for single-objective planning
func NewRouteCommand() *cobra.Command {
	var (
		fromSector    string
		cargoCapacity int
		maxTime       float64
		objective     string
		riskTolerance float64
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute an optimized trade route for one objective",
		Long: `Compute an optimized trade route starting from the given sector.

The objective selects the construction strategy:
  max_profit  maximize net profit within the cargo and length limits
  min_time    fastest profitable loop within half the time budget
  min_risk    highest profit among sufficiently safe opportunities
  balanced    weighted blend of profit, speed, safety and confidence`,
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := trading.ParseObjective(objective)
			if err != nil {
				return err
			}

			advisor, cleanup, err := buildAdvisor()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			route, err := advisor.FindOptimalRoute(ctx, services.OptimalRouteQuery{
				StartSectorID: fromSector,
				CargoCapacity: cargoCapacity,
				MaxRouteTime:  maxTime,
				Objective:     obj,
				RiskTolerance: riskTolerance,
			})
			if err != nil {
				if errors.Is(err, trading.ErrNoRouteFound) {
					fmt.Printf("No viable %s route from %s within %.1f hours\n", obj, fromSector, maxTime)
					return nil
				}
				return err
			}

			printRoute(route)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromSector, "from", "", "Starting sector ID (required)")
	cmd.Flags().IntVar(&cargoCapacity, "capacity", 100, "Cargo capacity in units")
	cmd.Flags().Float64Var(&maxTime, "max-time", 24, "Time budget in hours")
	cmd.Flags().StringVar(&objective, "objective", "max_profit",
		"Optimization objective (max_profit, min_time, min_risk, balanced)")
	cmd.Flags().Float64Var(&riskTolerance, "risk-tolerance", 0.5, "Maximum acceptable risk factor (0-1)")
	cmd.MarkFlagRequired("from")

	return cmd
}
