package costs

import (
	"fmt"
	"os"

	"azops/internal/azure"
	"azops/internal/costs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type costsOptions struct {
	resourceGroup string
	days          int
}

// NewCostsCmd creates the costs command
func NewCostsCmd() *cobra.Command {
	opts := &costsOptions{}

	cmd := &cobra.Command{
		Use:   "costs",
		Short: "Analyze subscription costs",
		Long: `Analyze subscription costs and flag optimization opportunities.

The report ranks resource groups by cost over the chosen window, then walks
App Service plans, SQL databases, and storage accounts looking for tiers
that are oversized for what they run. Sections that cannot fetch data are
skipped with a note; the report never aborts as a whole.`,
		Example: `  # Analyze the last 30 days across the whole subscription
  azops costs

  # Analyze one resource group over the last 7 days
  azops costs --resource-group my-rg --days 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.days <= 0 {
				return fmt.Errorf("invalid day count: %d", opts.days)
			}

			// Fall back to the default group the az CLI itself is configured with
			if opts.resourceGroup == "" {
				opts.resourceGroup = azure.ReadConfigDefaults().ResourceGroup
			}

			client := azure.NewClient(azure.NewCLIRunner())
			analyzer := costs.NewAnalyzer(client, os.Stdout)
			analyzer.Run(cmd.Context(), opts.resourceGroup, opts.days)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.resourceGroup, "resource-group", "g", viper.GetString("azure.resource_group"), "Limit the analysis to one resource group")
	cmd.Flags().IntVarP(&opts.days, "days", "d", viper.GetInt("costs.days"), "Number of days of cost data to analyze")

	return cmd
}
