package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewArbitrageCommand creates the arbitrage command for quick nearby scans
func NewArbitrageCommand() *cobra.Command {
	var (
		fromSector  string
		maxDistance int
		minMargin   float64
	)

	cmd := &cobra.Command{
		Use:   "arbitrage",
		Short: "Scan nearby sectors for immediate buy-low-sell-high opportunities",
		RunE: func(cmd *cobra.Command, args []string) error {
			advisor, cleanup, err := buildAdvisor()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			opportunities, err := advisor.FindArbitrageOpportunities(ctx, fromSector, maxDistance, minMargin)
			if err != nil {
				return err
			}
			if len(opportunities) == 0 {
				fmt.Printf("No arbitrage opportunities within %d distance of %s\n", maxDistance, fromSector)
				return nil
			}

			fmt.Printf("Arbitrage opportunities near %s:\n", fromSector)
			w := newTabWriter()
			fmt.Fprintln(w, "  ROUTE\tCOMMODITY\tBUY\tSELL\tPROFIT/U\tQTY\tTIME\tRISK\tCONF")
			for _, op := range opportunities {
				fmt.Fprintf(w, "  %s -> %s\t%s\t%.2f\t%.2f\t%.2f\t%d\t%.1fh\t%.2f\t%.2f\n",
					op.FromSectorID(), op.ToSectorID(), op.Commodity(),
					op.BuyPrice(), op.SellPrice(), op.ProfitPerUnit(),
					op.MaxQuantity(), op.TravelTime(), op.RiskFactor(), op.Confidence())
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&fromSector, "from", "", "Sector ID to scan around (required)")
	cmd.Flags().IntVar(&maxDistance, "max-distance", 5, "Maximum warp distance to scan")
	cmd.Flags().Float64Var(&minMargin, "min-margin", 0,
		"Minimum profit margin (0 uses the configured default)")
	cmd.MarkFlagRequired("from")

	return cmd
}
