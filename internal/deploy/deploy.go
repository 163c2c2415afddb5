package deploy

import (
	"context"
	"fmt"
	"io"

	"azops/internal/azure"
	"azops/internal/logging"

	"github.com/pterm/pterm"
)

// Options describes one web app deployment.
type Options struct {
	ResourceGroup string
	Name          string
	Runtime       string
	Location      string
	SKU           string
}

// PlanName is the hosting plan created for an app.
func (o Options) PlanName() string {
	return o.Name + "-plan"
}

// InsightsName is the Application Insights component created for an app.
func (o Options) InsightsName() string {
	return o.Name + "-insights"
}

// Deployer provisions a web app through a fixed sequence of az calls.
// There is no rollback: a failure partway through leaves the resources
// created so far in place.
type Deployer struct {
	client *azure.Client
	out    io.Writer
}

// NewDeployer creates a Deployer writing progress to out.
func NewDeployer(client *azure.Client, out io.Writer) *Deployer {
	return &Deployer{client: client, out: out}
}

// Preflight verifies the az binary is installed and a login session exists.
// It must pass before any provisioning call is issued.
func (d *Deployer) Preflight(ctx context.Context) error {
	if err := d.client.CheckInstalled(ctx); err != nil {
		return err
	}
	if _, err := d.client.Account(ctx); err != nil {
		return fmt.Errorf("no active login session: %w", err)
	}
	return nil
}

// Run executes the provisioning pipeline: resource group (best-effort),
// hosting plan (required), web app (required), Application Insights wiring
// (best-effort), then the public URL.
func (d *Deployer) Run(ctx context.Context, opts Options) error {
	fmt.Fprintf(d.out, "Deploying %s to Azure App Service...\n", opts.Name)

	// Idempotent on the az side; an already existing group is fine and any
	// other failure surfaces again at plan creation.
	fmt.Fprintf(d.out, "Creating resource group: %s\n", opts.ResourceGroup)
	if err := d.client.CreateResourceGroup(ctx, opts.ResourceGroup, opts.Location); err != nil {
		logging.Warn("Resource group creation failed, continuing", map[string]interface{}{
			"resource_group": opts.ResourceGroup,
			"error":          err.Error(),
		})
	}

	planName := opts.PlanName()
	fmt.Fprintf(d.out, "Creating App Service plan: %s\n", planName)
	if err := d.client.CreateAppServicePlan(ctx, opts.ResourceGroup, planName, opts.SKU); err != nil {
		return fmt.Errorf("creating App Service plan %s: %w", planName, err)
	}

	fmt.Fprintf(d.out, "Creating web app: %s\n", opts.Name)
	if err := d.client.CreateWebApp(ctx, opts.ResourceGroup, planName, opts.Name, opts.Runtime); err != nil {
		return fmt.Errorf("creating web app %s: %w", opts.Name, err)
	}

	d.enableInsights(ctx, opts)

	hostname, err := d.client.WebAppHostname(ctx, opts.ResourceGroup, opts.Name)
	if err != nil {
		return fmt.Errorf("resolving web app hostname: %w", err)
	}

	pterm.Success.WithWriter(d.out).Println("Deployment complete")
	fmt.Fprintf(d.out, "URL: https://%s\n", hostname)
	fmt.Fprintln(d.out, "\nNext steps:")
	fmt.Fprintf(d.out, "  1. Deploy your code: az webapp up --name %s\n", opts.Name)
	fmt.Fprintf(d.out, "  2. View logs: az webapp log tail --name %s --resource-group %s\n",
		opts.Name, opts.ResourceGroup)
	fmt.Fprintf(d.out, "  3. Configure settings: az webapp config appsettings set --name %s --resource-group %s --settings KEY=VALUE\n",
		opts.Name, opts.ResourceGroup)
	return nil
}

// enableInsights creates an Application Insights component and attaches its
// instrumentation key to the app. Every step is best-effort: telemetry is
// optional and never fails the deployment.
func (d *Deployer) enableInsights(ctx context.Context, opts Options) {
	insightsName := opts.InsightsName()
	fmt.Fprintln(d.out, "Enabling Application Insights...")

	if err := d.client.CreateAppInsights(ctx, opts.ResourceGroup, insightsName, opts.Location); err != nil {
		logging.Warn("Application Insights creation failed, continuing", map[string]interface{}{
			"component": insightsName,
			"error":     err.Error(),
		})
	}

	key, err := d.client.InstrumentationKey(ctx, opts.ResourceGroup, insightsName)
	if err != nil {
		logging.Warn("Could not read instrumentation key, continuing", map[string]interface{}{
			"component": insightsName,
			"error":     err.Error(),
		})
		return
	}
	if key == "" {
		return
	}

	err = d.client.SetAppSetting(ctx, opts.ResourceGroup, opts.Name,
		"APPINSIGHTS_INSTRUMENTATIONKEY", key)
	if err != nil {
		logging.Warn("Could not attach instrumentation key, continuing", map[string]interface{}{
			"app":   opts.Name,
			"error": err.Error(),
		})
	}
}
