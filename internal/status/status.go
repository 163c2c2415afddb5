package status

import (
	"context"
	"fmt"
	"io"
	"strings"

	"azops/internal/azure"

	"github.com/pterm/pterm"
)

// logTailLines is how many trailing log lines the web app snapshot shows.
const logTailLines = 10

// Checker prints status snapshots for individual resources. Missing fields
// are defaulted rather than treated as errors.
type Checker struct {
	client *azure.Client
	out    io.Writer
}

// NewChecker creates a Checker writing to out.
func NewChecker(client *azure.Client, out io.Writer) *Checker {
	return &Checker{client: client, out: out}
}

func (c *Checker) header(title string) {
	pterm.DefaultSection.WithWriter(c.out).Println(title)
}

// orUnknown substitutes "Unknown" for an absent state field.
func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// orNA substitutes "N/A" for any other absent field.
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// WebApp prints state, URL, location, runtime, availability, and the last
// few log lines for a web app.
func (c *Checker) WebApp(ctx context.Context, resourceGroup, name string) error {
	c.header(fmt.Sprintf("Web App: %s", name))

	app, err := c.client.ShowWebApp(ctx, resourceGroup, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "  State: %s\n", orUnknown(app.State))
	fmt.Fprintf(c.out, "  URL: https://%s\n", orNA(app.DefaultHostName))
	fmt.Fprintf(c.out, "  Location: %s\n", orNA(app.Location))
	fmt.Fprintf(c.out, "  Runtime: %s\n", orNA(app.SiteConfig.LinuxFxVersion))

	if availability, err := c.client.WebAppAvailability(ctx, resourceGroup, name); err == nil {
		fmt.Fprintf(c.out, "  Availability: %s\n", orUnknown(availability))
	}

	logs, err := c.client.WebAppLog(ctx, resourceGroup, name)
	if err != nil || strings.TrimSpace(logs) == "" {
		return nil
	}
	fmt.Fprintln(c.out, "\n  Recent logs:")
	for _, line := range tailLines(logs, logTailLines) {
		fmt.Fprintf(c.out, "    %s\n", line)
	}
	return nil
}

// FunctionApp prints state, runtime kind, URL, and the deployed function
// count for a function app.
func (c *Checker) FunctionApp(ctx context.Context, resourceGroup, name string) error {
	c.header(fmt.Sprintf("Function App: %s", name))

	app, err := c.client.ShowFunctionApp(ctx, resourceGroup, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "  State: %s\n", orUnknown(app.State))
	fmt.Fprintf(c.out, "  Runtime: %s\n", orNA(app.Kind))
	fmt.Fprintf(c.out, "  URL: https://%s\n", orNA(app.DefaultHostName))

	deployed := 0
	if functions, err := c.client.ListFunctions(ctx, resourceGroup, name); err == nil {
		deployed = len(functions)
	}
	fmt.Fprintf(c.out, "  Functions deployed: %d\n", deployed)
	return nil
}

// ContainerApp prints provisioning state, running status, ingress FQDN, and
// the replica scale bounds for a container app.
func (c *Checker) ContainerApp(ctx context.Context, resourceGroup, name string) error {
	c.header(fmt.Sprintf("Container App: %s", name))

	app, err := c.client.ShowContainerApp(ctx, resourceGroup, name)
	if err != nil {
		return err
	}

	props := app.Properties
	fmt.Fprintf(c.out, "  Provisioning State: %s\n", orUnknown(props.ProvisioningState))
	fmt.Fprintf(c.out, "  Running Status: %s\n", orUnknown(props.RunningStatus))
	fmt.Fprintf(c.out, "  FQDN: %s\n", orNA(props.Configuration.Ingress.FQDN))
	fmt.Fprintf(c.out, "  Replicas: %d - %d\n",
		props.Template.Scale.MinReplicas, props.Template.Scale.MaxReplicas)
	return nil
}

// SQLDatabase prints status, tier, max size in GB, and location for a database.
func (c *Checker) SQLDatabase(ctx context.Context, resourceGroup, server, database string) error {
	c.header(fmt.Sprintf("SQL Database: %s/%s", server, database))

	db, err := c.client.ShowSQLDatabase(ctx, resourceGroup, server, database)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "  Status: %s\n", orUnknown(db.Status))
	fmt.Fprintf(c.out, "  Tier: %s\n", orNA(db.SKU.Tier))
	fmt.Fprintf(c.out, "  Size: %.2f GB\n", float64(db.MaxSizeBytes)/(1<<30))
	fmt.Fprintf(c.out, "  Location: %s\n", orNA(db.Location))
	return nil
}

// ListAll prints every resource in the group as a type/name bullet list.
func (c *Checker) ListAll(ctx context.Context, resourceGroup string) error {
	c.header(fmt.Sprintf("Resources in %s", resourceGroup))

	resources, err := c.client.ListResources(ctx, resourceGroup)
	if err != nil {
		return err
	}
	if len(resources) == 0 {
		fmt.Fprintln(c.out, "  No resources found")
		return nil
	}

	for _, resource := range resources {
		fmt.Fprintf(c.out, "  - %s: %s\n", resource.Type, resource.Name)
	}
	return nil
}

// tailLines returns the last n non-empty lines of text, trimmed of trailing
// whitespace.
func tailLines(text string, n int) []string {
	all := strings.Split(text, "\n")

	var lines []string
	start := len(all) - n
	if start < 0 {
		start = 0
	}
	for _, line := range all[start:] {
		if trimmed := strings.TrimRight(line, " \t\r"); strings.TrimSpace(trimmed) != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
