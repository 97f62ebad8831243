package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sectorwars/traderoutes/internal/application/trading/services"
)

// NewRecommendCommand creates the recommend command, which compares all
// objectives against the same opportunity pool
func NewRecommendCommand() *cobra.Command {
	var (
		fromSector    string
		cargoCapacity int
		maxTime       float64
		riskTolerance float64
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank route recommendations across all objectives",
		RunE: func(cmd *cobra.Command, args []string) error {
			advisor, cleanup, err := buildAdvisor()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			recommendations, err := advisor.GetRouteRecommendations(ctx, services.PlayerContext{
				CurrentSectorID: fromSector,
				CargoCapacity:   cargoCapacity,
				MaxRouteTime:    maxTime,
				RiskTolerance:   riskTolerance,
			})
			if err != nil {
				return err
			}
			if len(recommendations) == 0 {
				fmt.Printf("No viable routes from %s within %.1f hours\n", fromSector, maxTime)
				return nil
			}

			fmt.Printf("Route recommendations from %s:\n\n", fromSector)
			for i, rec := range recommendations {
				fmt.Printf("%d. [%s] %s\n", i+1, rec.Objective, rec.Description)
				fmt.Printf("   Profit: %.2f credits (%.2f/hour), time: %.1fh, risk: %.2f, confidence: %.2f\n",
					rec.TotalProfit, rec.ProfitPerHour, rec.TotalTime, rec.RiskLevel, rec.Confidence)
				if verbose {
					fmt.Printf("   ID: %s\n", rec.RouteID)
					printRoute(rec.Route)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromSector, "from", "", "Starting sector ID (required)")
	cmd.Flags().IntVar(&cargoCapacity, "capacity", 100, "Cargo capacity in units")
	cmd.Flags().Float64Var(&maxTime, "max-time", 24, "Time budget in hours")
	cmd.Flags().Float64Var(&riskTolerance, "risk-tolerance", 0.5, "Maximum acceptable risk factor (0-1)")
	cmd.MarkFlagRequired("from")

	return cmd
}
