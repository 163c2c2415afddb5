package costs

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"azops/internal/azure"
	"azops/internal/logging"

	"github.com/pterm/pterm"
	"github.com/schollz/progressbar/v3"
)

// Analyzer produces the multi-section cost report. Every section degrades
// independently: a failed or undecodable az call prints a fallback line and
// the next section still runs.
type Analyzer struct {
	client *azure.Client
	out    io.Writer
}

// NewAnalyzer creates an Analyzer writing to out.
func NewAnalyzer(client *azure.Client, out io.Writer) *Analyzer {
	return &Analyzer{client: client, out: out}
}

// Run prints the full report: subscription header, cost ranking, hosting
// plan analysis, SQL database analysis, storage analysis, general advice.
func (a *Analyzer) Run(ctx context.Context, resourceGroup string, days int) {
	a.subscriptionHeader(ctx)
	a.costSection(ctx, days)
	a.planSection(ctx, resourceGroup)
	a.databaseSection(ctx, resourceGroup)
	a.storageSection(ctx, resourceGroup)
	a.adviceSection()
}

func (a *Analyzer) section(title string) {
	pterm.DefaultSection.WithWriter(a.out).Println(title)
}

func (a *Analyzer) subscriptionHeader(ctx context.Context) {
	account, err := a.client.Account(ctx)
	if err != nil {
		logging.Debug("Could not resolve active subscription", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	fmt.Fprintf(a.out, "Subscription: %s (%s)\n", account.Name, account.ID)
}

func (a *Analyzer) costSection(ctx context.Context, days int) {
	a.section(fmt.Sprintf("Cost by resource group (last %d days)", days))

	end := time.Now()
	start := end.AddDate(0, 0, -days)

	result, err := a.client.QueryCosts(ctx, start, end)
	if err != nil {
		logging.Error("Cost query failed", err, nil)
		fmt.Fprintln(a.out, "No cost data available")
		return
	}

	summary := Summarize(ParseRows(result.Properties.Rows))
	if len(summary.Rows) == 0 {
		fmt.Fprintln(a.out, "No cost data available")
		return
	}

	data := pterm.TableData{{"Resource Group", "Cost", "% of Total"}}
	for i, row := range summary.Rows {
		if i >= TopGroups {
			break
		}
		data = append(data, []string{
			row.ResourceGroup,
			fmt.Sprintf("$%.2f", row.Cost),
			fmt.Sprintf("%.1f%%", summary.Percent(row.Cost)),
		})
	}
	data = append(data, []string{"Total", fmt.Sprintf("$%.2f", summary.Total), ""})

	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		logging.Error("Failed to render cost table", err, nil)
		return
	}
	fmt.Fprintln(a.out, rendered)
}

func (a *Analyzer) planSection(ctx context.Context, resourceGroup string) {
	a.section("App Service plan analysis")

	plans, err := a.client.ListAppServicePlans(ctx, resourceGroup)
	if err != nil {
		logging.Error("Failed to list App Service plans", err, nil)
		fmt.Fprintln(a.out, "No App Service plans found")
		return
	}
	if len(plans) == 0 {
		fmt.Fprintln(a.out, "No App Service plans found")
		return
	}

	bar := progressbar.NewOptions(len(plans),
		progressbar.OptionSetDescription("Counting apps per plan"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)

	var advice []string
	for _, plan := range plans {
		appCount := 0
		apps, err := a.client.ListWebAppsInPlan(ctx, plan.ID)
		if err != nil {
			logging.Warn("Failed to list apps for plan", map[string]interface{}{
				"plan":  plan.Name,
				"error": err.Error(),
			})
		} else {
			appCount = len(apps)
		}

		fmt.Fprintf(a.out, "%s\n", plan.Name)
		fmt.Fprintf(a.out, "  SKU: %s (%s) x%s\n", plan.SKU.Tier, plan.SKU.Name, plan.SKU.CapacityString())
		fmt.Fprintf(a.out, "  Apps: %d\n", appCount)

		if rec := PlanAdvice(plan.Name, plan.SKU.Tier, appCount); rec != "" {
			advice = append(advice, rec)
		}
		_ = bar.Add(1)
	}

	if len(advice) > 0 {
		fmt.Fprintln(a.out, "\nRecommendations:")
		for _, rec := range advice {
			pterm.Warning.WithWriter(a.out).Println(rec)
		}
	}
}

func (a *Analyzer) databaseSection(ctx context.Context, resourceGroup string) {
	a.section("SQL database analysis")

	servers, err := a.client.ListSQLServers(ctx, resourceGroup)
	if err != nil {
		logging.Error("Failed to list SQL servers", err, nil)
		fmt.Fprintln(a.out, "No SQL servers found")
		return
	}
	if len(servers) == 0 {
		fmt.Fprintln(a.out, "No SQL servers found")
		return
	}

	for _, server := range servers {
		databases, err := a.client.ListSQLDatabases(ctx, server.ResourceGroup, server.Name)
		if err != nil {
			logging.Warn("Failed to list databases", map[string]interface{}{
				"server": server.Name,
				"error":  err.Error(),
			})
			continue
		}

		fmt.Fprintf(a.out, "Server: %s\n", server.Name)
		for _, db := range databases {
			if db.Name == "master" {
				continue
			}
			fmt.Fprintf(a.out, "  %s: %s (%s DTUs)\n", db.Name, db.SKU.Tier, db.SKU.CapacityString())
			if DatabaseNeedsReview(db.SKU.Tier) {
				pterm.Warning.WithWriter(a.out).Printfln(
					"%s: consider whether the %s tier is necessary", db.Name, db.SKU.Tier)
			}
		}
	}
}

func (a *Analyzer) storageSection(ctx context.Context, resourceGroup string) {
	a.section("Storage account analysis")

	accounts, err := a.client.ListStorageAccounts(ctx, resourceGroup)
	if err != nil {
		logging.Error("Failed to list storage accounts", err, nil)
		fmt.Fprintln(a.out, "No storage accounts found")
		return
	}
	if len(accounts) == 0 {
		fmt.Fprintln(a.out, "No storage accounts found")
		return
	}

	for _, account := range accounts {
		fmt.Fprintf(a.out, "%s\n", account.Name)
		fmt.Fprintf(a.out, "  SKU: %s (%s)\n", account.SKU.Tier, account.SKU.Name)
		if StorageNeedsReview(account.SKU.Name) {
			pterm.Warning.WithWriter(a.out).Printfln(
				"%s: premium storage - make sure the performance is needed", account.Name)
		}
	}
}

func (a *Analyzer) adviceSection() {
	a.section("General recommendations")
	for _, line := range GeneralAdvice() {
		fmt.Fprintf(a.out, "  - %s\n", line)
	}
}
