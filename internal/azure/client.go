package azure

import (
	"context"
	"fmt"
	"time"
)

// Client wraps a Runner with typed az operations. Every method issues exactly
// one CLI invocation and blocks until the subprocess exits.
type Client struct {
	runner Runner
}

// NewClient creates a Client on top of the given runner.
func NewClient(runner Runner) *Client {
	return &Client{runner: runner}
}

// CheckInstalled verifies the az binary can be executed at all.
func (c *Client) CheckInstalled(ctx context.Context) error {
	if _, err := c.runner.Run(ctx, "version"); err != nil {
		return fmt.Errorf("azure cli not available: %w", err)
	}
	return nil
}

// Account returns the active subscription, failing when no login session exists.
func (c *Client) Account(ctx context.Context) (*Account, error) {
	var account Account
	if err := runJSON(ctx, c.runner, &account, "account", "show"); err != nil {
		return nil, err
	}
	return &account, nil
}

// QueryCosts runs a cost-management usage query over [from, to], summing
// pre-tax cost grouped by resource group.
func (c *Client) QueryCosts(ctx context.Context, from, to time.Time) (*CostQueryResult, error) {
	var result CostQueryResult
	err := runJSON(ctx, c.runner, &result,
		"costmanagement", "query",
		"--type", "Usage",
		"--timeframe", "Custom",
		"--time-period",
		fmt.Sprintf("from=%s", from.Format("2006-01-02")),
		fmt.Sprintf("to=%s", to.Format("2006-01-02")),
		"--dataset-aggregation", `{"totalCost":{"name":"PreTaxCost","function":"Sum"}}`,
		"--dataset-grouping", "name=ResourceGroup", "type=Dimension",
	)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListAppServicePlans lists hosting plans, optionally scoped to one resource group.
func (c *Client) ListAppServicePlans(ctx context.Context, resourceGroup string) ([]AppServicePlan, error) {
	args := []string{"appservice", "plan", "list"}
	if resourceGroup != "" {
		args = append(args, "--resource-group", resourceGroup)
	}
	var plans []AppServicePlan
	if err := runJSON(ctx, c.runner, &plans, args...); err != nil {
		return nil, err
	}
	return plans, nil
}

// ListWebAppsInPlan lists the web apps bound to a hosting plan, filtered
// server-side on the plan's resource ID.
func (c *Client) ListWebAppsInPlan(ctx context.Context, planID string) ([]WebApp, error) {
	var apps []WebApp
	err := runJSON(ctx, c.runner, &apps,
		"webapp", "list", "--query", fmt.Sprintf("[?appServicePlanId=='%s']", planID))
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// ListSQLServers lists SQL servers, optionally scoped to one resource group.
func (c *Client) ListSQLServers(ctx context.Context, resourceGroup string) ([]SQLServer, error) {
	args := []string{"sql", "server", "list"}
	if resourceGroup != "" {
		args = append(args, "--resource-group", resourceGroup)
	}
	var servers []SQLServer
	if err := runJSON(ctx, c.runner, &servers, args...); err != nil {
		return nil, err
	}
	return servers, nil
}

// ListSQLDatabases lists the databases on one server.
func (c *Client) ListSQLDatabases(ctx context.Context, resourceGroup, server string) ([]SQLDatabase, error) {
	var databases []SQLDatabase
	err := runJSON(ctx, c.runner, &databases,
		"sql", "db", "list", "--server", server, "--resource-group", resourceGroup)
	if err != nil {
		return nil, err
	}
	return databases, nil
}

// ListStorageAccounts lists storage accounts, optionally scoped to one resource group.
func (c *Client) ListStorageAccounts(ctx context.Context, resourceGroup string) ([]StorageAccount, error) {
	args := []string{"storage", "account", "list"}
	if resourceGroup != "" {
		args = append(args, "--resource-group", resourceGroup)
	}
	var accounts []StorageAccount
	if err := runJSON(ctx, c.runner, &accounts, args...); err != nil {
		return nil, err
	}
	return accounts, nil
}

// ListResources lists every resource in a resource group.
func (c *Client) ListResources(ctx context.Context, resourceGroup string) ([]Resource, error) {
	var resources []Resource
	err := runJSON(ctx, c.runner, &resources,
		"resource", "list", "--resource-group", resourceGroup)
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// ShowWebApp fetches one web app's descriptor.
func (c *Client) ShowWebApp(ctx context.Context, resourceGroup, name string) (*WebApp, error) {
	var app WebApp
	err := runJSON(ctx, c.runner, &app,
		"webapp", "show", "--name", name, "--resource-group", resourceGroup)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// WebAppAvailability returns the availabilityState field for a web app.
func (c *Client) WebAppAvailability(ctx context.Context, resourceGroup, name string) (string, error) {
	return runTSV(ctx, c.runner,
		"webapp", "show", "--name", name, "--resource-group", resourceGroup,
		"--query", "availabilityState")
}

// WebAppLog returns the available log text for a web app.
func (c *Client) WebAppLog(ctx context.Context, resourceGroup, name string) (string, error) {
	out, err := c.runner.Run(ctx,
		"webapp", "log", "show", "--name", name, "--resource-group", resourceGroup)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ShowFunctionApp fetches one function app's descriptor.
func (c *Client) ShowFunctionApp(ctx context.Context, resourceGroup, name string) (*FunctionApp, error) {
	var app FunctionApp
	err := runJSON(ctx, c.runner, &app,
		"functionapp", "show", "--name", name, "--resource-group", resourceGroup)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ListFunctions lists the functions deployed in a function app.
func (c *Client) ListFunctions(ctx context.Context, resourceGroup, name string) ([]FunctionEntry, error) {
	var functions []FunctionEntry
	err := runJSON(ctx, c.runner, &functions,
		"functionapp", "function", "list", "--name", name, "--resource-group", resourceGroup)
	if err != nil {
		return nil, err
	}
	return functions, nil
}

// ShowContainerApp fetches one container app's descriptor.
func (c *Client) ShowContainerApp(ctx context.Context, resourceGroup, name string) (*ContainerApp, error) {
	var app ContainerApp
	err := runJSON(ctx, c.runner, &app,
		"containerapp", "show", "--name", name, "--resource-group", resourceGroup)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ShowSQLDatabase fetches one database's descriptor.
func (c *Client) ShowSQLDatabase(ctx context.Context, resourceGroup, server, database string) (*SQLDatabase, error) {
	var db SQLDatabase
	err := runJSON(ctx, c.runner, &db,
		"sql", "db", "show", "--resource-group", resourceGroup,
		"--server", server, "--name", database)
	if err != nil {
		return nil, err
	}
	return &db, nil
}

// CreateResourceGroup creates a resource group. The operation is idempotent
// on the az side; an existing group is not an error.
func (c *Client) CreateResourceGroup(ctx context.Context, name, location string) error {
	_, err := c.runner.Run(ctx,
		"group", "create", "--name", name, "--location", location)
	return err
}

// CreateAppServicePlan creates a Linux hosting plan with the given SKU.
func (c *Client) CreateAppServicePlan(ctx context.Context, resourceGroup, name, sku string) error {
	_, err := c.runner.Run(ctx,
		"appservice", "plan", "create", "--name", name,
		"--resource-group", resourceGroup, "--sku", sku, "--is-linux")
	return err
}

// CreateWebApp creates a web app on an existing plan with the given runtime.
func (c *Client) CreateWebApp(ctx context.Context, resourceGroup, plan, name, runtime string) error {
	_, err := c.runner.Run(ctx,
		"webapp", "create", "--resource-group", resourceGroup,
		"--plan", plan, "--name", name, "--runtime", runtime)
	return err
}

// CreateAppInsights creates an Application Insights component for a web workload.
func (c *Client) CreateAppInsights(ctx context.Context, resourceGroup, name, location string) error {
	_, err := c.runner.Run(ctx,
		"monitor", "app-insights", "component", "create",
		"--app", name, "--location", location,
		"--resource-group", resourceGroup, "--application-type", "web")
	return err
}

// InstrumentationKey returns the instrumentation key of an Application
// Insights component, or an empty string when the component has none.
func (c *Client) InstrumentationKey(ctx context.Context, resourceGroup, name string) (string, error) {
	return runTSV(ctx, c.runner,
		"monitor", "app-insights", "component", "show",
		"--app", name, "--resource-group", resourceGroup,
		"--query", "instrumentationKey")
}

// SetAppSetting sets one application setting on a web app.
func (c *Client) SetAppSetting(ctx context.Context, resourceGroup, name, key, value string) error {
	_, err := c.runner.Run(ctx,
		"webapp", "config", "appsettings", "set",
		"--name", name, "--resource-group", resourceGroup,
		"--settings", fmt.Sprintf("%s=%s", key, value))
	return err
}

// WebAppHostname returns the public hostname of a web app.
func (c *Client) WebAppHostname(ctx context.Context, resourceGroup, name string) (string, error) {
	return runTSV(ctx, c.runner,
		"webapp", "show", "--name", name, "--resource-group", resourceGroup,
		"--query", "defaultHostName")
}
