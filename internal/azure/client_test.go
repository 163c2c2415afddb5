package azure

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner returns canned output and records the last invocation.
type fakeRunner struct {
	output   []byte
	err      error
	lastArgs []string
}

func (f *fakeRunner) Run(_ context.Context, args ...string) ([]byte, error) {
	f.lastArgs = args
	return f.output, f.err
}

func TestAccount(t *testing.T) {
	runner := &fakeRunner{output: []byte(`{"id":"sub-1","name":"Prod","state":"Enabled","tenantId":"t-1","isDefault":true}`)}
	client := NewClient(runner)

	account, err := client.Account(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "sub-1", account.ID)
	assert.Equal(t, "Prod", account.Name)
	assert.True(t, account.IsDefault)
	assert.Equal(t, []string{"account", "show", "--output", "json"}, runner.lastArgs)
}

func TestAccountNotLoggedIn(t *testing.T) {
	runner := &fakeRunner{err: errors.New("az account show: Please run 'az login'")}
	client := NewClient(runner)

	_, err := client.Account(context.Background())
	require.Error(t, err)
}

func TestRunJSONDecodeFailure(t *testing.T) {
	runner := &fakeRunner{output: []byte("WARNING: not json at all")}
	client := NewClient(runner)

	_, err := client.Account(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestRunJSONEmptyResponse(t *testing.T) {
	runner := &fakeRunner{output: []byte("")}
	client := NewClient(runner)

	_, err := client.ShowWebApp(context.Background(), "rg", "app")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestQueryCostsArguments(t *testing.T) {
	runner := &fakeRunner{output: []byte(`{"properties":{"rows":[]}}`)}
	client := NewClient(runner)

	from := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	_, err := client.QueryCosts(context.Background(), from, to)
	require.NoError(t, err)

	args := runner.lastArgs
	assert.Equal(t, "costmanagement", args[0])
	assert.Contains(t, args, "from=2026-07-31")
	assert.Contains(t, args, "to=2026-08-30")
	assert.Contains(t, args, `{"totalCost":{"name":"PreTaxCost","function":"Sum"}}`)
	assert.Contains(t, args, "name=ResourceGroup")
}

func TestListAppServicePlansScoping(t *testing.T) {
	runner := &fakeRunner{output: []byte(`[]`)}
	client := NewClient(runner)

	_, err := client.ListAppServicePlans(context.Background(), "")
	require.NoError(t, err)
	assert.NotContains(t, runner.lastArgs, "--resource-group")

	_, err = client.ListAppServicePlans(context.Background(), "my-rg")
	require.NoError(t, err)
	assert.Contains(t, runner.lastArgs, "--resource-group")
	assert.Contains(t, runner.lastArgs, "my-rg")
}

func TestListWebAppsInPlanFilter(t *testing.T) {
	runner := &fakeRunner{output: []byte(`[]`)}
	client := NewClient(runner)

	_, err := client.ListWebAppsInPlan(context.Background(), "/plans/plan-a")
	require.NoError(t, err)
	assert.Contains(t, runner.lastArgs, "[?appServicePlanId=='/plans/plan-a']")
}

func TestInstrumentationKeyTSV(t *testing.T) {
	runner := &fakeRunner{output: []byte("key-123\n")}
	client := NewClient(runner)

	key, err := client.InstrumentationKey(context.Background(), "rg", "app-insights")
	require.NoError(t, err)
	assert.Equal(t, "key-123", key)
	assert.Contains(t, runner.lastArgs, "tsv")
	assert.Contains(t, runner.lastArgs, "instrumentationKey")
}

func TestSKUCapacityString(t *testing.T) {
	capacity := 3
	assert.Equal(t, "3", SKU{Capacity: &capacity}.CapacityString())
	assert.Equal(t, "N/A", SKU{}.CapacityString())
}
