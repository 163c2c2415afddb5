package costs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"azops/internal/azure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/undefinedlabs/go-mpatch"
)

// fakeRunner routes az invocations to a handler and records every call.
type fakeRunner struct {
	handler func(args []string) ([]byte, error)
	calls   [][]string
}

func (f *fakeRunner) Run(_ context.Context, args ...string) ([]byte, error) {
	f.calls = append(f.calls, args)
	return f.handler(args)
}

// hasPrefix reports whether args starts with the given tokens.
func hasPrefix(args []string, parts ...string) bool {
	if len(args) < len(parts) {
		return false
	}
	for i, part := range parts {
		if args[i] != part {
			return false
		}
	}
	return true
}

func fullReportHandler(args []string) ([]byte, error) {
	switch {
	case hasPrefix(args, "account", "show"):
		return []byte(`{"id":"sub-1","name":"Test Subscription","state":"Enabled"}`), nil
	case hasPrefix(args, "costmanagement", "query"):
		return []byte(`{"properties":{"rows":[[120.0,"rg-a","USD"],[80.0,"rg-b","USD"]]}}`), nil
	case hasPrefix(args, "appservice", "plan", "list"):
		return []byte(`[{"id":"/plans/plan-a","name":"plan-a","resourceGroup":"rg-a",
			"sku":{"name":"P1v2","tier":"Premium","capacity":1}}]`), nil
	case hasPrefix(args, "webapp", "list"):
		return []byte(`[{"name":"app-1","appServicePlanId":"/plans/plan-a"}]`), nil
	case hasPrefix(args, "sql", "server", "list"):
		return []byte(`[{"name":"srv-1","resourceGroup":"rg-a","location":"eastus"}]`), nil
	case hasPrefix(args, "sql", "db", "list"):
		return []byte(`[{"name":"master","sku":{"tier":"System"}},
			{"name":"orders","sku":{"name":"P1","tier":"Premium","capacity":125}}]`), nil
	case hasPrefix(args, "storage", "account", "list"):
		return []byte(`[{"name":"stpremium","sku":{"name":"Premium_LRS","tier":"Premium"}},
			{"name":"ststandard","sku":{"name":"Standard_LRS","tier":"Standard"}}]`), nil
	default:
		return nil, errors.New("unexpected command: " + strings.Join(args, " "))
	}
}

func TestAnalyzerFullReport(t *testing.T) {
	runner := &fakeRunner{handler: fullReportHandler}
	var buf bytes.Buffer

	analyzer := NewAnalyzer(azure.NewClient(runner), &buf)
	analyzer.Run(context.Background(), "", 30)

	out := buf.String()

	// Subscription header
	assert.Contains(t, out, "Subscription: Test Subscription (sub-1)")

	// Cost ranking: the worked 120/80 example
	assert.Contains(t, out, "$200.00")
	assert.Contains(t, out, "60.0%")
	assert.Contains(t, out, "40.0%")
	assert.Less(t, strings.Index(out, "rg-a"), strings.Index(out, "rg-b"),
		"higher cost group must rank first")

	// Plan analysis: Premium plan with one app gets exactly one recommendation
	assert.Contains(t, out, "plan-a")
	assert.Contains(t, out, "Premium (P1v2) x1")
	assert.Contains(t, out, "Apps: 1")
	assert.Equal(t, 1, strings.Count(out, "consider downgrading"))

	// SQL analysis: master skipped, premium tier flagged
	assert.NotContains(t, out, "master")
	assert.Contains(t, out, "orders: Premium (125 DTUs)")
	assert.Contains(t, out, "consider whether the Premium tier is necessary")

	// Storage analysis: only the premium SKU flagged
	assert.Contains(t, out, "Premium (Premium_LRS)")
	assert.Equal(t, 1, strings.Count(out, "premium storage"))

	// Footer always present
	assert.Contains(t, out, "Reserved Instances")
}

func TestAnalyzerSectionsDegradeIndependently(t *testing.T) {
	runner := &fakeRunner{handler: func(args []string) ([]byte, error) {
		return nil, errors.New("not logged in")
	}}
	var buf bytes.Buffer

	analyzer := NewAnalyzer(azure.NewClient(runner), &buf)
	analyzer.Run(context.Background(), "", 30)

	out := buf.String()

	// Every section prints its fallback and the report runs to the end
	assert.Contains(t, out, "No cost data available")
	assert.Contains(t, out, "No App Service plans found")
	assert.Contains(t, out, "No SQL servers found")
	assert.Contains(t, out, "No storage accounts found")
	assert.Contains(t, out, "Reserved Instances")
}

func TestAnalyzerEmptyCostRows(t *testing.T) {
	runner := &fakeRunner{handler: func(args []string) ([]byte, error) {
		if hasPrefix(args, "costmanagement", "query") {
			return []byte(`{"properties":{"rows":[]}}`), nil
		}
		return nil, errors.New("no data")
	}}
	var buf bytes.Buffer

	analyzer := NewAnalyzer(azure.NewClient(runner), &buf)
	analyzer.Run(context.Background(), "", 30)

	assert.Contains(t, buf.String(), "No cost data available")
}

func TestAnalyzerCostWindow(t *testing.T) {
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	patch, err := mpatch.PatchMethod(time.Now, func() time.Time { return fixed })
	require.NoError(t, err)
	defer func() {
		require.NoError(t, patch.Unpatch())
	}()

	runner := &fakeRunner{handler: func(args []string) ([]byte, error) {
		return nil, errors.New("no data")
	}}
	var buf bytes.Buffer

	analyzer := NewAnalyzer(azure.NewClient(runner), &buf)
	analyzer.Run(context.Background(), "", 7)

	var costArgs []string
	for _, call := range runner.calls {
		if hasPrefix(call, "costmanagement", "query") {
			costArgs = call
			break
		}
	}
	require.NotNil(t, costArgs, "cost query must be issued")
	assert.Contains(t, costArgs, "from=2026-08-23")
	assert.Contains(t, costArgs, "to=2026-08-30")
}
