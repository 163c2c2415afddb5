package deploy

import (
	"fmt"
	"os"

	"azops/internal/azure"
	"azops/internal/deploy"
	"azops/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type deployOptions struct {
	resourceGroup string
	name          string
	runtime       string
	location      string
	sku           string
}

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	opts := &deployOptions{}

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy a web app to Azure App Service",
		Long: `Deploy a web app to Azure App Service.

Creates the resource group if needed, provisions a Linux App Service plan
with the requested SKU, creates the web app with the given runtime, and
wires up Application Insights when possible. There is no rollback: a
failure partway through leaves the resources created so far in place.`,
		Example: `  # Deploy a Node.js app on the default B1 plan
  azops deploy --resource-group my-rg --name my-app --runtime NODE:20-lts

  # Deploy a Python app on a Standard plan in another region
  azops deploy -g my-rg -n my-app -r PYTHON:3.11 --location westeurope --sku S1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := azure.NewClient(azure.NewCLIRunner())
			deployer := deploy.NewDeployer(client, os.Stdout)

			if err := deployer.Preflight(cmd.Context()); err != nil {
				logging.Error("Azure CLI is not installed or not logged in", err, nil)
				fmt.Fprintln(os.Stderr, "Run: az login")
				return err
			}

			return deployer.Run(cmd.Context(), deploy.Options{
				ResourceGroup: opts.resourceGroup,
				Name:          opts.name,
				Runtime:       opts.runtime,
				Location:      opts.location,
				SKU:           opts.sku,
			})
		},
	}

	cmd.Flags().StringVarP(&opts.resourceGroup, "resource-group", "g", "", "Resource group name")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Web app name")
	cmd.Flags().StringVarP(&opts.runtime, "runtime", "r", "", "Runtime stack (e.g. DOTNET:8.0, NODE:20-lts, PYTHON:3.11, JAVA:17-java17)")
	cmd.Flags().StringVarP(&opts.location, "location", "l", viper.GetString("azure.location"), "Azure region")
	cmd.Flags().StringVarP(&opts.sku, "sku", "s", viper.GetString("deploy.sku"), "App Service plan SKU (F1, B1, B2, S1, P1V2, ...)")

	for _, flag := range []string{"resource-group", "name", "runtime"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}

	return cmd
}
