package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "traderoutes",
		Short: "Trade route optimizer for the sector galaxy",
		Long: `traderoutes computes profitable trading routes across the sector galaxy.

Given a starting sector, cargo capacity and a time budget, the engine scans
nearby markets for price differentials and chains them into optimized routes
for a chosen objective (profit, speed, safety, or a balanced weighting).

Examples:
  traderoutes route --from SEC-7 --capacity 100 --max-time 24 --objective max_profit
  traderoutes arbitrage --from SEC-7 --max-distance 5
  traderoutes recommend --from SEC-7 --capacity 100 --max-time 12`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: config.yaml in ., ./configs, /etc/traderoutes)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewRouteCommand())
	rootCmd.AddCommand(NewArbitrageCommand())
	rootCmd.AddCommand(NewRecommendCommand())

	return rootCmd
}

// Execute runs the root command and exits non-zero on error
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
